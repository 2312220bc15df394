package txscript

import (
	"encoding/binary"

	"massnet.org/scriptkit/massutil"
)

// PushOpcodeSize returns the size of the opcode header pushing n bytes.
func PushOpcodeSize(n int) int {
	switch {
	case n < OP_PUSHDATA1:
		return 1
	case n <= 0xff:
		return 2
	case n <= 0xffff:
		return 3
	}
	return 5
}

// PushSize returns the size of a push of n bytes, header included.
func PushSize(n int) int {
	return PushOpcodeSize(n) + n
}

// decodePush reads the push at the start of b and returns the header and
// payload lengths.
func decodePush(b []byte) (opLen, dataLen int, err error) {
	if len(b) == 0 {
		return 0, 0, invalidArgf("empty push")
	}
	var n uint64
	switch op := b[0]; {
	case op < OP_PUSHDATA1:
		opLen, n = 1, uint64(op)
	case op == OP_PUSHDATA1:
		opLen = 2
		if len(b) < opLen {
			return 0, 0, invalidArgf("truncated OP_PUSHDATA1")
		}
		n = uint64(b[1])
	case op == OP_PUSHDATA2:
		opLen = 3
		if len(b) < opLen {
			return 0, 0, invalidArgf("truncated OP_PUSHDATA2")
		}
		n = uint64(binary.LittleEndian.Uint16(b[1:3]))
	case op == OP_PUSHDATA4:
		opLen = 5
		if len(b) < opLen {
			return 0, 0, invalidArgf("truncated OP_PUSHDATA4")
		}
		n = uint64(binary.LittleEndian.Uint32(b[1:5]))
	default:
		return 0, 0, invalidArgf("opcode %s is not a push", OpcodeName(op))
	}
	if uint64(len(b)) < uint64(opLen)+n {
		return 0, 0, invalidArgf("push of %d bytes runs past end of script", n)
	}
	return opLen, int(n), nil
}

// PushDataLen returns the payload length of the push at the start of b.
func PushDataLen(b []byte) (int, error) {
	_, n, err := decodePush(b)
	return n, err
}

// PushOpcodeLen returns the header length of the push at the start of b.
func PushOpcodeLen(b []byte) (int, error) {
	n, _, err := decodePush(b)
	return n, err
}

// putPushOpcode writes the minimal header pushing n bytes and returns its
// length.
func putPushOpcode(buf []byte, n int) int {
	switch {
	case n < OP_PUSHDATA1:
		buf[0] = byte(n)
		return 1
	case n <= 0xff:
		buf[0] = OP_PUSHDATA1
		buf[1] = byte(n)
		return 2
	case n <= 0xffff:
		buf[0] = OP_PUSHDATA2
		binary.LittleEndian.PutUint16(buf[1:3], uint16(n))
		return 3
	}
	buf[0] = OP_PUSHDATA4
	binary.LittleEndian.PutUint32(buf[1:5], uint32(n))
	return 5
}

// putPush writes a minimal push of data and returns the bytes written.
// buf must hold PushSize(len(data)) bytes.
func putPush(buf []byte, data []byte) int {
	n := putPushOpcode(buf, len(data))
	return n + copy(buf[n:], data)
}

// PushFromBytes writes a push of data into buf and returns the size of
// the push. ScriptHash160 or ScriptSha256 replace data with its digest
// first. Nothing is written when buf is shorter than the returned size.
func PushFromBytes(data []byte, flags ScriptFlags, buf []byte) (int, error) {
	if !hashFlagsOK(flags, 0) {
		return 0, invalidArgf("invalid push flags %#x", uint32(flags))
	}
	switch {
	case flags&ScriptHash160 != 0:
		data = massutil.Hash160(data)
		defer massutil.ZeroBytes(data)
	case flags&ScriptSha256 != 0:
		data = massutil.Sha256(data)
		defer massutil.ZeroBytes(data)
	}
	size := PushSize(len(data))
	if len(buf) < size {
		return size, nil
	}
	return putPush(buf, data), nil
}

// scriptTokenizer walks a script one opcode at a time. Pushes expose their
// payload through Data. Iteration stops at the end of the script or at the
// first malformed push, which is then reported by Err.
type scriptTokenizer struct {
	script  []byte
	offset  int
	op      byte
	data    []byte
	push    bool
	lenient bool
	err     error
}

func makeScriptTokenizer(script []byte) scriptTokenizer {
	return scriptTokenizer{script: script}
}

// makeLenientScriptTokenizer returns a tokenizer that never fails: a push
// that runs past the end of the script is returned as a single non-push
// byte and iteration continues after it.
func makeLenientScriptTokenizer(script []byte) scriptTokenizer {
	return scriptTokenizer{script: script, lenient: true}
}

// Next advances to the next opcode and reports whether one was read.
func (t *scriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}
	rest := t.script[t.offset:]
	t.op = rest[0]
	if t.op > OP_PUSHDATA4 {
		t.push, t.data = false, nil
		t.offset++
		return true
	}
	opLen, dataLen, err := decodePush(rest)
	if err != nil {
		if t.lenient {
			t.push, t.data = false, nil
			t.offset++
			return true
		}
		t.err = err
		return false
	}
	t.push = true
	t.data = rest[opLen : opLen+dataLen]
	t.offset += opLen + dataLen
	return true
}

// Done reports whether iteration has finished.
func (t *scriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= len(t.script)
}

func (t *scriptTokenizer) Opcode() byte   { return t.op }
func (t *scriptTokenizer) Data() []byte   { return t.data }
func (t *scriptTokenizer) IsPush() bool   { return t.push }
func (t *scriptTokenizer) ByteIndex() int { return t.offset }
func (t *scriptTokenizer) Err() error     { return t.err }
