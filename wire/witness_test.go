package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxWitnessAppendCopies(t *testing.T) {
	item := []byte{1, 2, 3}
	w := NewTxWitness(2)
	w.Append(item)
	w.Append(nil)
	item[0] = 9

	assert.Len(t, w, 2)
	assert.Equal(t, []byte{1, 2, 3}, w[0])
	assert.Empty(t, w[1])
	assert.Equal(t, 3, w.PlainSize())
}

func TestTxWitnessSerialize(t *testing.T) {
	w := NewTxWitness(2)
	w.Append([]byte{0xaa})
	w.Append([]byte{})
	assert.Equal(t, 4, w.SerializeSize())
	assert.Equal(t, []byte{0x02, 0x01, 0xaa, 0x00}, w.Serialize())
}
