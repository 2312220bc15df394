package txscript

// ScriptIntSerializeSize returns the number of bytes PutScriptInt writes
// for v. Zero encodes as no bytes.
func ScriptIntSerializeSize(v int64) int {
	mag := scriptIntMagnitude(v)
	n := 0
	var last byte
	for mag != 0 {
		last = byte(mag)
		mag >>= 8
		n++
	}
	if last&0x80 != 0 {
		n++
	}
	return n
}

func scriptIntMagnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// PutScriptInt writes the minimal little-endian sign-magnitude encoding of
// v into buf, which must hold ScriptIntSerializeSize(v) bytes, and returns
// the number of bytes written. When the top bit of the magnitude is set an
// extra byte carries the sign.
func PutScriptInt(buf []byte, v int64) int {
	mag := scriptIntMagnitude(v)
	n := 0
	var last byte
	for mag != 0 {
		last = byte(mag)
		buf[n] = last
		mag >>= 8
		n++
	}
	switch {
	case last&0x80 != 0:
		if v < 0 {
			buf[n] = 0x80
		} else {
			buf[n] = 0x00
		}
		n++
	case v < 0:
		buf[n-1] |= 0x80
	}
	return n
}

// ScriptIntFromBytes decodes a pushed script integer. b[0] is the push
// length, at most four, followed by that many data bytes.
func ScriptIntFromBytes(b []byte) (int64, error) {
	if len(b) < 1 || b[0] > maxScriptIntLen || len(b) <= int(b[0]) {
		return 0, invalidArgf("malformed script integer")
	}
	n := int(b[0])
	var v int64
	for i := 0; i < n; i++ {
		v |= int64(b[i+1]) << uint(8*i)
	}
	if n > 0 && b[n]&0x80 != 0 {
		v &^= int64(0x80) << uint(8*(n-1))
		v = -v
	}
	return v, nil
}
