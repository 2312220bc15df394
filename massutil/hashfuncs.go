package massutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Digest sizes.
const (
	Hash160Size    = ripemd160.Size
	Sha256Size     = sha256.Size
	HmacSha256Size = sha256.Size
)

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 returns ripemd160(sha256(b)).
func Hash160(data []byte) []byte {
	s := sha256.Sum256(data)
	defer ZeroBytes(s[:])
	return calcHash(s[:], ripemd160.New())
}

// Sha256 returns sha256(data)
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// HmacSha256 returns HMAC-SHA256 of msg under key.
func HmacSha256(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// TaggedHash returns the BIP340 tagged hash
// sha256(sha256(tag) || sha256(tag) || msgs...).
func TaggedHash(tag []byte, msgs ...[]byte) []byte {
	return chainhash.TaggedHash(tag, msgs...).CloneBytes()
}

// ZeroBytes overwrites b with zeros. It is used to scrub scratch buffers
// holding signature or tweak material before they are released.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
