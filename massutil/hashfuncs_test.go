package massutil

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleSha256() {
	data := []byte("test hash256")
	fmt.Println(hex.EncodeToString(Sha256(data)))

	// Output:
	// de8503647d0760bbabc8bf47526176bd1046afa9f5f20d8831d0ff455cee0523
}

func ExampleHash160() {
	data := []byte("test hash160")
	fmt.Println(hex.EncodeToString(Hash160(data)))

	// Output:
	// b720061a734285a70e86cb32b31f32884e198c32
}

func TestDigestSizes(t *testing.T) {
	assert.Len(t, Hash160([]byte("abc")), Hash160Size)
	assert.Len(t, Sha256([]byte("abc")), Sha256Size)
	assert.Len(t, TaggedHash([]byte("TapTweak"), nil), Sha256Size)
}

// TestHmacSha256 checks RFC 4231 test case 2.
func TestHmacSha256(t *testing.T) {
	mac := HmacSha256([]byte("Jefe"), []byte("what do ya want for nothing?"))
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		hex.EncodeToString(mac))
	assert.Len(t, mac, HmacSha256Size)
}

// TestTaggedHash checks the tagged hash construction against a manual
// computation.
func TestTaggedHash(t *testing.T) {
	tag := []byte("TapTweak")
	msg := []byte{0x01, 0x02, 0x03}
	tagHash := Sha256(tag)
	pre := append(append(append([]byte{}, tagHash...), tagHash...), msg...)
	assert.Equal(t, Sha256(pre), TaggedHash(tag, msg))
}

func TestZeroBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	ZeroBytes(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
	ZeroBytes(nil)
}

// BenchmarkSha256-8   	 5000000	       245 ns/op	      32 B/op	       1 allocs/op
func BenchmarkSha256(b *testing.B) {
	data := []byte("bench sha256")

	for i := 0; i < b.N; i++ {
		Sha256(data)
	}
}

func BenchmarkHash160(b *testing.B) {
	data := []byte("bench hash160")

	for i := 0; i < b.N; i++ {
		Hash160(data)
	}
}
