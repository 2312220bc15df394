package testutil

import (
	"encoding/hex"
	"strings"
	"testing"
)

// MustDecodeHex decodes s, ignoring spaces, and fails the test on error.
func MustDecodeHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Replace(s, " ", "", -1))
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

// Repeat returns n copies of b.
func Repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
