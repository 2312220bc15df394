package txscript

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"massnet.org/scriptkit/massutil"
)

// PointArith is the secp256k1 arithmetic used to tweak peg-in keys.
// *massutil.SecpContext implements it.
type PointArith interface {
	ParsePubKey(b []byte) (*btcec.PublicKey, error)
	SerializeCompressed(pub *btcec.PublicKey) []byte
	CreatePubKey(tweak []byte) (*btcec.PublicKey, error)
	NegatePubKey(pub *btcec.PublicKey) *btcec.PublicKey
	TweakAddPubKey(pub *btcec.PublicKey, tweak []byte) (*btcec.PublicKey, error)
	CombinePubKeys(pubs ...*btcec.PublicKey) (*btcec.PublicKey, error)
}

var _ PointArith = (*massutil.SecpContext)(nil)

// PegoutScriptSize returns the size of a peg-out script with fields of the
// given lengths.
func PegoutScriptSize(genesisLen, mainchainLen, subPubKeyLen, proofLen int) int {
	return 1 + PushSize(genesisLen) + PushSize(mainchainLen) +
		PushSize(subPubKeyLen) + PushSize(proofLen)
}

// PegoutScript builds the Elements peg-out output script
//
//	OP_RETURN <parent genesis hash> <mainchain script> <pubkey> <whitelist proof>
func PegoutScript(genesisHash, mainchainScript, subPubKey, whitelistProof []byte, flags ScriptFlags, buf []byte) (int, error) {
	if len(genesisHash) != sha256Len || len(mainchainScript) == 0 ||
		len(subPubKey) != pubKeyCompressedLen || len(whitelistProof) == 0 || flags != 0 {
		return 0, invalidArgf("invalid pegout arguments")
	}
	size := PegoutScriptSize(len(genesisHash), len(mainchainScript),
		len(subPubKey), len(whitelistProof))
	if len(buf) < size {
		return size, nil
	}

	buf[0] = OP_RETURN
	off := 1
	for _, field := range [][]byte{genesisHash, mainchainScript, subPubKey, whitelistProof} {
		off += putPush(buf[off:], field)
	}
	return size, nil
}

// PeginContractScript rewrites a federation redeem script for a peg-in
// claim. Each direct 33-byte key push before the first OP_ELSE is replaced
// by P + HMAC-SHA256(P, contractScript)·G; keys after OP_ELSE are emergency
// keys and are kept. Everything else is copied, so the result has the
// length of redeemScript. A nil ctx uses massutil.Secp().
func PeginContractScript(ctx PointArith, redeemScript, contractScript []byte, flags ScriptFlags, buf []byte) (n int, err error) {
	if len(redeemScript) == 0 || len(contractScript) == 0 || flags != 0 {
		return 0, invalidArgf("invalid pegin arguments")
	}
	size := len(redeemScript)
	if len(buf) < size {
		return size, nil
	}
	if ctx == nil {
		ctx = massutil.Secp()
	}

	out := buf[:size]
	defer func() {
		if err != nil {
			massutil.ZeroBytes(out)
		}
	}()

	elseFound := false
	start := 0
	tokenizer := makeLenientScriptTokenizer(redeemScript)
	for tokenizer.Next() {
		end := tokenizer.ByteIndex()
		if tokenizer.IsPush() && tokenizer.Opcode() == OP_DATA_33 && !elseFound {
			if err := tweakContractKey(ctx, tokenizer.Data(), contractScript, out[start:end]); err != nil {
				return 0, err
			}
		} else {
			if tokenizer.Opcode() == OP_ELSE && !tokenizer.IsPush() {
				elseFound = true
			}
			copy(out[start:end], redeemScript[start:end])
		}
		start = end
	}
	return size, nil
}

// tweakContractKey writes the push of the tweaked key into out and checks
// (-P) + P' == t·G.
func tweakContractKey(ctx PointArith, key, contract, out []byte) error {
	pub, err := ctx.ParsePubKey(key)
	if err != nil {
		return invalidArgf("pegin key: %v", err)
	}
	tweak := massutil.HmacSha256(key, contract)
	defer massutil.ZeroBytes(tweak)

	tweaked, err := ctx.TweakAddPubKey(pub, tweak)
	if err != nil {
		return internalErrorf("pegin tweak: %v", err)
	}
	serialized := ctx.SerializeCompressed(tweaked)
	if PushSize(len(serialized)) != len(out) {
		return internalErrorf("tweaked key serialized to %d bytes", len(serialized))
	}
	putPush(out, serialized)

	fromTweak, err := ctx.CreatePubKey(tweak)
	if err != nil {
		return internalErrorf("pegin tweak point: %v", err)
	}
	combined, err := ctx.CombinePubKeys(ctx.NegatePubKey(pub), tweaked)
	if err != nil {
		return internalErrorf("pegin tweak check: %v", err)
	}
	if !combined.IsEqual(fromTweak) {
		return internalErrorf("pegin tweak check failed")
	}
	return nil
}
