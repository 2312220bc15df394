package wire

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestVarIntWire tests wire encode and decode for variable length integers.
func TestVarIntWire(t *testing.T) {
	tests := []struct {
		in  uint64
		buf []byte
	}{
		{0, []byte{0x00}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, test := range tests {
		size := VarIntSerializeSize(test.in)
		require.Equal(t, len(test.buf), size, "test %d", i)

		buf := make([]byte, size)
		assert.Equal(t, size, PutVarInt(buf, test.in), "test %d", i)
		assert.Equal(t, test.buf, buf, "test %d", i)

		assert.Equal(t, size, VarIntLengthFromTag(test.buf[0]), "test %d", i)
		v, n := VarInt(test.buf)
		assert.Equal(t, test.in, v, "test %d", i)
		assert.Equal(t, size, n, "test %d", i)
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64().Draw(t, "v")
		buf := make([]byte, MaxVarIntPayload)
		n := PutVarInt(buf, v)
		if n != VarIntSerializeSize(v) {
			t.Fatalf("wrote %d bytes, size says %d", n, VarIntSerializeSize(v))
		}
		got, m := VarInt(buf[:n])
		if got != v || m != n {
			t.Fatalf("decoded (%d, %d), want (%d, %d)", got, m, v, n)
		}
	})
}

func TestWriteVarIntShortBuffer(t *testing.T) {
	_, err := WriteVarInt(make([]byte, 2), 0xffff)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	n, err := WriteVarInt(make([]byte, 3), 0xffff)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, _, err = ReadVarInt([]byte{0xfe, 0x01})
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	_, _, err = ReadVarInt(nil)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestVarBuff(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 300)
	size := VarBuffSerializeSize(data)
	assert.Equal(t, 303, size)

	_, err := WriteVarBuff(make([]byte, size-1), data)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	buf := make([]byte, size)
	n, err := WriteVarBuff(buf, data)
	require.NoError(t, err)
	assert.Equal(t, size, n)
	assert.Equal(t, []byte{0xfd, 0x2c, 0x01}, buf[:3])
	assert.Equal(t, data, buf[3:])

	assert.Equal(t, 1, PutVarBuff(buf, nil))
	assert.Equal(t, byte(0), buf[0])
}
