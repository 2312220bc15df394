package txscript

import (
	"massnet.org/scriptkit/massutil"
)

// derWithHashType DER-encodes a compact signature and appends the sighash
// byte. The caller must zero the result.
func derWithHashType(sig []byte, hashType SigHashType) ([]byte, error) {
	if hashType > 0xff {
		return nil, invalidArgf("sighash %#x does not fit a byte", uint32(hashType))
	}
	der, err := massutil.SigToDER(sig)
	if err != nil {
		return nil, invalidArgf("signature: %v", err)
	}
	return append(der, byte(hashType)), nil
}

// P2PKHScriptSigFromDER builds <sig> <pubkey> from a DER signature with its
// sighash byte already appended.
func P2PKHScriptSigFromDER(pubKey, derSig []byte, buf []byte) (int, error) {
	if !isPubKeyLen(len(pubKey)) {
		return 0, invalidArgf("public key must be 33 or 65 bytes, got %d", len(pubKey))
	}
	if len(derSig) == 0 || len(derSig) > maxDERSigWithHashLen {
		return 0, invalidArgf("DER signature must be 1 to %d bytes, got %d",
			maxDERSigWithHashLen, len(derSig))
	}
	size := PushSize(len(derSig)) + PushSize(len(pubKey))
	if len(buf) < size {
		return size, nil
	}
	n := putPush(buf, derSig)
	putPush(buf[n:], pubKey)
	return size, nil
}

// P2PKHScriptSigFromSig is P2PKHScriptSigFromDER for a 64-byte compact
// signature, which is DER-encoded and tagged with hashType. A high s is
// replaced by n - s, so the pushed signature is always low-S and may differ
// from a verbatim encoding of sig.
func P2PKHScriptSigFromSig(pubKey, sig []byte, hashType SigHashType, buf []byte) (int, error) {
	der, err := derWithHashType(sig, hashType)
	if err != nil {
		return 0, err
	}
	defer massutil.ZeroBytes(der)
	return P2PKHScriptSigFromDER(pubKey, der, buf)
}

// MultiSigScriptSig builds
//
//	OP_0 <sig>... <redeemScript>
//
// from up to MaxMultiSigKeys compact signatures, each DER-encoded with a
// low s and tagged with the matching entry of hashTypes.
func MultiSigScriptSig(redeemScript []byte, sigs [][]byte, hashTypes []SigHashType, flags ScriptFlags, buf []byte) (int, error) {
	n := len(sigs)
	if len(redeemScript) == 0 || n < 1 || n > MaxMultiSigKeys ||
		len(hashTypes) != n || flags != 0 {
		return 0, invalidArgf("invalid multisig scriptSig arguments")
	}

	var ders [MaxMultiSigKeys][]byte
	defer func() {
		for _, der := range ders[:n] {
			massutil.ZeroBytes(der)
		}
	}()

	size := 1 + PushSize(len(redeemScript))
	for i, sig := range sigs {
		if len(sig) != compactSigLen {
			return 0, invalidArgf("signature %d is %d bytes", i, len(sig))
		}
		der, err := derWithHashType(sig, hashTypes[i])
		if err != nil {
			return 0, err
		}
		ders[i] = der
		size += PushSize(len(der))
	}
	if len(buf) < size {
		return size, nil
	}

	buf[0] = OP_0
	off := 1
	for _, der := range ders[:n] {
		off += putPush(buf[off:], der)
	}
	off += putPush(buf[off:], redeemScript)
	if off != size {
		return 0, internalErrorf("multisig scriptSig wrote %d of %d bytes", off, size)
	}
	return size, nil
}
