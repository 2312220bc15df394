package massutil

import (
	"errors"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key and signature sizes.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
	XOnlyPubKeyBytesLen        = 32
	CompactSigLen              = 64

	// MaxDERSigLen is the largest DER encoded ECDSA signature.
	MaxDERSigLen = 72
)

var (
	ErrInvalidPubKey    = errors.New("invalid public key")
	ErrInvalidSignature = errors.New("invalid compact signature")
	ErrInvalidTweak     = errors.New("invalid tweak scalar")
	ErrPointAtInfinity  = errors.New("result is the point at infinity")
)

var (
	tagTapTweak         = []byte("TapTweak")
	tagTapTweakElements = []byte("TapTweak/elements")
)

// SecpContext performs secp256k1 point arithmetic. It holds no mutable
// state and is safe for concurrent use.
type SecpContext struct {
	curve *btcec.KoblitzCurve
}

var (
	secpOnce sync.Once
	secpCtx  *SecpContext
)

// Secp returns the process-wide secp256k1 context, initialising it on
// first use.
func Secp() *SecpContext {
	secpOnce.Do(func() {
		secpCtx = &SecpContext{curve: btcec.S256()}
	})
	return secpCtx
}

// ParsePubKey parses a compressed or uncompressed public key.
func (c *SecpContext) ParsePubKey(b []byte) (*btcec.PublicKey, error) {
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidPubKey
	}
	if !c.curve.IsOnCurve(pub.X(), pub.Y()) {
		return nil, ErrInvalidPubKey
	}
	return pub, nil
}

// SerializeCompressed returns the 33-byte encoding of pub.
func (c *SecpContext) SerializeCompressed(pub *btcec.PublicKey) []byte {
	return pub.SerializeCompressed()
}

func parseTweak(tweak []byte) (*btcec.ModNScalar, error) {
	if len(tweak) != 32 {
		return nil, ErrInvalidTweak
	}
	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(tweak); overflow {
		return nil, ErrInvalidTweak
	}
	return &k, nil
}

func toPubKey(p *btcec.JacobianPoint) (*btcec.PublicKey, error) {
	p.ToAffine()
	if p.X.IsZero() && p.Y.IsZero() {
		return nil, ErrPointAtInfinity
	}
	return btcec.NewPublicKey(&p.X, &p.Y), nil
}

// CreatePubKey returns tweak·G.
func (c *SecpContext) CreatePubKey(tweak []byte) (*btcec.PublicKey, error) {
	k, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}
	defer k.Zero()
	if k.IsZero() {
		return nil, ErrInvalidTweak
	}
	var p btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(k, &p)
	return toPubKey(&p)
}

// NegatePubKey returns -pub.
func (c *SecpContext) NegatePubKey(pub *btcec.PublicKey) *btcec.PublicKey {
	var p btcec.JacobianPoint
	pub.AsJacobian(&p)
	p.Y.Negate(1).Normalize()
	return btcec.NewPublicKey(&p.X, &p.Y)
}

// TweakAddPubKey returns pub + tweak·G.
func (c *SecpContext) TweakAddPubKey(pub *btcec.PublicKey, tweak []byte) (*btcec.PublicKey, error) {
	k, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}
	defer k.Zero()

	var p, t, sum btcec.JacobianPoint
	pub.AsJacobian(&p)
	btcec.ScalarBaseMultNonConst(k, &t)
	btcec.AddNonConst(&p, &t, &sum)
	return toPubKey(&sum)
}

// CombinePubKeys returns the sum of pubs.
func (c *SecpContext) CombinePubKeys(pubs ...*btcec.PublicKey) (*btcec.PublicKey, error) {
	if len(pubs) == 0 {
		return nil, ErrInvalidPubKey
	}
	var sum btcec.JacobianPoint
	pubs[0].AsJacobian(&sum)
	for _, pub := range pubs[1:] {
		var p, next btcec.JacobianPoint
		pub.AsJacobian(&p)
		btcec.AddNonConst(&sum, &p, &next)
		sum = next
	}
	return toPubKey(&sum)
}

// TaprootTweak applies the BIP341 key tweak to a compressed public key and
// returns the compressed output key. The internal key is taken as x-only,
// so its parity is ignored. A nil merkleRoot commits to the key alone.
// When elements is set the Elements tag "TapTweak/elements" is used.
func (c *SecpContext) TaprootTweak(pubKey, merkleRoot []byte, elements bool) ([]byte, error) {
	if len(pubKey) != PubKeyBytesLenCompressed {
		return nil, ErrInvalidPubKey
	}
	if _, err := c.ParsePubKey(pubKey); err != nil {
		return nil, err
	}
	xOnly := pubKey[1:]
	evenKey := make([]byte, PubKeyBytesLenCompressed)
	evenKey[0] = secp256k1.PubKeyFormatCompressedEven
	copy(evenKey[1:], xOnly)
	internal, err := c.ParsePubKey(evenKey)
	if err != nil {
		return nil, err
	}

	tag := tagTapTweak
	if elements {
		tag = tagTapTweakElements
	}
	tweak := TaggedHash(tag, xOnly, merkleRoot)
	defer ZeroBytes(tweak)

	tweaked, err := c.TweakAddPubKey(internal, tweak)
	if err != nil {
		return nil, err
	}
	return tweaked.SerializeCompressed(), nil
}

// SigToDER converts a 64-byte compact (r || s) ECDSA signature into its DER
// encoding. The encoding is canonical: s is normalised to the lower half of
// the group order.
func SigToDER(sig []byte) ([]byte, error) {
	if len(sig) != CompactSigLen {
		return nil, ErrInvalidSignature
	}
	var r, s btcec.ModNScalar
	defer r.Zero()
	defer s.Zero()
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:]) {
		return nil, ErrInvalidSignature
	}
	return ecdsa.NewSignature(&r, &s).Serialize(), nil
}
