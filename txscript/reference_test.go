package txscript

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Compressed encodings of G, 2G and 3G, plus G uncompressed.
const (
	hexKeyG  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	hexKey2G = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	hexKey3G = "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"

	hexUncompressedG = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

// decodeHex decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs.  This is only used in the tests as a helper since
// the only way it can fail is if there is an error in the test source code.
func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic("invalid hex string in test source: err " + err.Error() +
			", hex: " + hexStr)
	}

	return b
}

// shortFormOps maps opcode names, with and without the OP_ prefix, to their
// values.
var shortFormOps = func() map[string]byte {
	ops := make(map[string]byte, 2*len(opcodeNames))
	for op, name := range opcodeNames {
		ops[name] = op
		ops[strings.TrimPrefix(name, "OP_")] = op
	}
	ops["OP_FALSE"], ops["FALSE"] = OP_FALSE, OP_FALSE
	ops["OP_TRUE"], ops["TRUE"] = OP_TRUE, OP_TRUE
	return ops
}()

// parseShortForm parses a string in the reference test format into a
// script. Opcode names may omit the OP_ prefix, DATA_n is the direct push
// opcode for n bytes, 0x-prefixed tokens are copied verbatim, numbers from
// -1 to 16 become small integer opcodes and other numbers are pushed as
// script integers.
func parseShortForm(script string) ([]byte, error) {
	var out []byte
	for _, tok := range strings.Fields(script) {
		if op, ok := shortFormOps[tok]; ok {
			out = append(out, op)
			continue
		}
		switch {
		case strings.HasPrefix(tok, "DATA_"):
			n, err := strconv.ParseUint(tok[5:], 10, 8)
			if err != nil || n > OP_DATA_75 {
				return nil, fmt.Errorf("bad direct push %q", tok)
			}
			out = append(out, byte(n))
		case strings.HasPrefix(tok, "0x"):
			b, err := hex.DecodeString(tok[2:])
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		default:
			n, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad token %q", tok)
			}
			switch {
			case n == -1:
				out = append(out, OP_1NEGATE)
			case n >= 0 && n <= 16:
				out = append(out, smallIntOpcode(int(n)))
			default:
				num := make([]byte, ScriptIntSerializeSize(n))
				PutScriptInt(num, n)
				push := make([]byte, PushSize(len(num)))
				putPush(push, num)
				out = append(out, push...)
			}
		}
	}
	return out, nil
}

// mustParseShortForm parses the passed short form script and returns the
// resulting bytes.  It panics if an error occurs.  This is only used in the
// tests as a helper since the only way it can fail is if there is an error in
// the test source code.
func mustParseShortForm(script string) []byte {
	s, err := parseShortForm(script)
	if err != nil {
		panic("invalid short form script in test source: err " +
			err.Error() + ", script: " + script)
	}

	return s
}

// compactSig returns a 64-byte r || s signature with small r and s.
func compactSig(r, s byte) []byte {
	sig := make([]byte, compactSigLen)
	sig[31], sig[63] = r, s
	return sig
}
