package txscript

import (
	"massnet.org/scriptkit/massutil"
	"massnet.org/scriptkit/wire"
)

// PushOnlyScriptToWitness converts a push-only scriptSig into the
// equivalent witness stack, one item per push. Any other opcode is an
// error, and no partial stack is returned.
func PushOnlyScriptToWitness(script []byte) (wire.TxWitness, error) {
	if len(script) == 0 {
		return nil, invalidArgf("empty script")
	}
	witness := wire.NewTxWitness(2)
	tokenizer := makeScriptTokenizer(script)
	for tokenizer.Next() {
		if !tokenizer.IsPush() {
			return nil, invalidArgf("opcode %s at offset %d is not a push",
				OpcodeName(tokenizer.Opcode()), tokenizer.ByteIndex()-1)
		}
		witness.Append(tokenizer.Data())
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return witness, nil
}

// TaprootWitnessFromSig returns the key path witness for a 64-byte Schnorr
// signature, or a 65-byte one carrying an explicit sighash byte.
func TaprootWitnessFromSig(sig []byte) (wire.TxWitness, error) {
	if len(sig) != schnorrSigLen && len(sig) != schnorrSigLen+1 {
		return nil, invalidArgf("taproot signature must be 64 or 65 bytes, got %d", len(sig))
	}
	witness := wire.NewTxWitness(1)
	witness.Append(sig)
	return witness, nil
}

// p2pkhScriptSigToWitness builds a scriptSig with build into a stack buffer and
// decomposes it.
func p2pkhScriptSigToWitness(build func(buf []byte) (int, error)) (wire.TxWitness, error) {
	var buf [MaxP2PKHScriptSigSize]byte
	defer massutil.ZeroBytes(buf[:])

	n, err := build(buf[:])
	if err != nil {
		return nil, err
	}
	if n > len(buf) {
		return nil, internalErrorf("p2pkh scriptSig needs %d bytes", n)
	}
	return PushOnlyScriptToWitness(buf[:n])
}

// P2WPKHWitnessFromDER returns the two item witness <sig> <pubkey> for a
// DER signature with its sighash byte appended.
func P2WPKHWitnessFromDER(pubKey, derSig []byte) (wire.TxWitness, error) {
	return p2pkhScriptSigToWitness(func(buf []byte) (int, error) {
		return P2PKHScriptSigFromDER(pubKey, derSig, buf)
	})
}

// P2WPKHWitnessFromSig returns the two item witness <sig> <pubkey> for a
// compact signature.
func P2WPKHWitnessFromSig(pubKey, sig []byte, hashType SigHashType) (wire.TxWitness, error) {
	return p2pkhScriptSigToWitness(func(buf []byte) (int, error) {
		return P2PKHScriptSigFromSig(pubKey, sig, hashType, buf)
	})
}

// MultiSigWitness returns the witness for a multisig redeem script: an
// empty item, one item per signature and the script itself.
func MultiSigWitness(redeemScript []byte, sigs [][]byte, hashTypes []SigHashType, flags ScriptFlags) (wire.TxWitness, error) {
	if len(redeemScript) == 0 {
		return nil, invalidArgf("empty redeem script")
	}
	if m, ok := isSmallInt(redeemScript[0]); !ok || m > MaxMultiSigKeys {
		return nil, invalidArgf("redeem script does not start with a valid threshold")
	}

	scriptSig, err := AllocScript(func(buf []byte) (int, error) {
		return MultiSigScriptSig(redeemScript, sigs, hashTypes, flags, buf)
	})
	if err != nil {
		return nil, err
	}
	defer massutil.ZeroBytes(scriptSig)
	return PushOnlyScriptToWitness(scriptSig)
}
