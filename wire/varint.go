package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Varint tags and limits.
const (
	varIntTag16 = 0xfd
	varIntTag32 = 0xfe
	varIntTag64 = 0xff

	varIntMax8  = 0xfc
	varIntMax16 = 0xffff
	varIntMax32 = 0xffffffff

	// MaxVarIntPayload is the maximum payload size for a variable length
	// integer.
	MaxVarIntPayload = 9
)

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val <= varIntMax8:
		return 1
	case val <= varIntMax16:
		return 3
	case val <= varIntMax32:
		return 5
	}
	return 9
}

// VarIntLengthFromTag returns the total encoded length of a variable length
// integer whose first byte is tag.
func VarIntLengthFromTag(tag byte) int {
	switch tag {
	case varIntTag16:
		return 3
	case varIntTag32:
		return 5
	case varIntTag64:
		return 9
	}
	return 1
}

// PutVarInt writes the minimal encoding of val into buf and returns the
// number of bytes written. buf must hold at least VarIntSerializeSize(val)
// bytes.
func PutVarInt(buf []byte, val uint64) int {
	switch {
	case val <= varIntMax8:
		buf[0] = uint8(val)
		return 1
	case val <= varIntMax16:
		buf[0] = varIntTag16
		binary.LittleEndian.PutUint16(buf[1:3], uint16(val))
		return 3
	case val <= varIntMax32:
		buf[0] = varIntTag32
		binary.LittleEndian.PutUint32(buf[1:5], uint32(val))
		return 5
	}
	buf[0] = varIntTag64
	binary.LittleEndian.PutUint64(buf[1:9], val)
	return 9
}

// VarInt decodes the variable length integer at the start of b, returning
// the value and the number of bytes it occupied. The tag byte is trusted:
// b must hold at least VarIntLengthFromTag(b[0]) bytes, which is the
// responsibility of whoever sliced b.
func VarInt(b []byte) (uint64, int) {
	switch b[0] {
	case varIntTag16:
		return uint64(binary.LittleEndian.Uint16(b[1:3])), 3
	case varIntTag32:
		return uint64(binary.LittleEndian.Uint32(b[1:5])), 5
	case varIntTag64:
		return binary.LittleEndian.Uint64(b[1:9]), 9
	}
	return uint64(b[0]), 1
}

// WriteVarInt is the checked form of PutVarInt.
func WriteVarInt(buf []byte, val uint64) (int, error) {
	if len(buf) < VarIntSerializeSize(val) {
		return 0, errors.Wrapf(ErrInvalidArgument,
			"varint %d needs %d bytes, have %d", val,
			VarIntSerializeSize(val), len(buf))
	}
	return PutVarInt(buf, val), nil
}

// ReadVarInt is the checked form of VarInt.
func ReadVarInt(b []byte) (uint64, int, error) {
	if len(b) == 0 || len(b) < VarIntLengthFromTag(b[0]) {
		return 0, 0, errors.Wrap(ErrInvalidArgument, "truncated varint")
	}
	v, n := VarInt(b)
	return v, n, nil
}

// VarBuffSerializeSize returns the size of data serialized with a varint
// length prefix.
func VarBuffSerializeSize(data []byte) int {
	return VarIntSerializeSize(uint64(len(data))) + len(data)
}

// PutVarBuff writes data prefixed with its varint length into buf, which
// must hold at least VarBuffSerializeSize(data) bytes.
func PutVarBuff(buf []byte, data []byte) int {
	n := PutVarInt(buf, uint64(len(data)))
	return n + copy(buf[n:], data)
}

// WriteVarBuff is the checked form of PutVarBuff.
func WriteVarBuff(buf []byte, data []byte) (int, error) {
	if len(buf) < VarBuffSerializeSize(data) {
		return 0, errors.Wrapf(ErrInvalidArgument,
			"varbuff needs %d bytes, have %d",
			VarBuffSerializeSize(data), len(buf))
	}
	return PutVarBuff(buf, data), nil
}
