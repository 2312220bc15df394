// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// isNullData returns true if the passed script is a null data script.
// Anything starting with OP_RETURN is provably unspendable.
func isNullData(script []byte) bool {
	return len(script) > 0 && script[0] == OP_RETURN
}

// isMultiSig returns true if the passed script is a bare multisig script of
// the form <m> <pubkey>... <n> OP_CHECKMULTISIG with n pushes of 33 or 65
// byte keys.
func isMultiSig(script []byte) bool {
	// OP_1 <33-byte key> OP_1 OP_CHECKMULTISIG
	const minLen = 1 + 1 + pubKeyCompressedLen + 1 + 1

	n := len(script)
	if n < minLen || script[n-1] != OP_CHECKMULTISIG {
		return false
	}
	if _, ok := isSmallInt(script[0]); !ok {
		return false
	}
	numPubKeys, ok := isSmallInt(script[n-2])
	if !ok {
		return false
	}

	rest := script[1:]
	for i := 0; i < numPubKeys; i++ {
		opLen, dataLen, err := decodePush(rest)
		if err != nil || !isPubKeyLen(dataLen) || len(rest) < opLen+dataLen+2 {
			return false
		}
		rest = rest[opLen+dataLen:]
	}
	return len(rest) == 2
}

func isPubKeyLen(n int) bool {
	return n == pubKeyCompressedLen || n == pubKeyUncompressedLen
}

// csvBlocksFromBytes decodes the pushed CSV delay at the start of b and
// returns it with the number of bytes it occupied.
func csvBlocksFromBytes(b []byte) (uint32, int, bool) {
	blocks, err := ScriptIntFromBytes(b)
	if err != nil || blocks < MinCSVBlocks || blocks > MaxCSVBlocks {
		return 0, 0, false
	}
	return uint32(blocks), int(b[0]) + 1, true
}

// matchCSV2of2Then1 matches
//
//	OP_DEPTH OP_1SUB OP_IF <main> OP_CHECKSIGVERIFY OP_ELSE
//	<blocks> OP_CHECKSEQUENCEVERIFY OP_DROP OP_ENDIF <recovery> OP_CHECKSIG
//
// and returns the delay. Bytes after the final OP_CHECKSIG are allowed
// while the script stays within the length a four byte delay would give.
func matchCSV2of2Then1(script []byte) (uint32, bool) {
	const (
		headLen = 3 + 1 + pubKeyCompressedLen + 2
		tailLen = 3 + 1 + pubKeyCompressedLen + 1
		minLen  = headLen + 2 + tailLen
	)
	if len(script) < minLen || len(script) > minLen+2 {
		return 0, false
	}
	if script[0] != OP_DEPTH || script[1] != OP_1SUB || script[2] != OP_IF ||
		script[3] != OP_DATA_33 ||
		script[4+pubKeyCompressedLen] != OP_CHECKSIGVERIFY ||
		script[5+pubKeyCompressedLen] != OP_ELSE {
		return 0, false
	}
	blocks, n, ok := csvBlocksFromBytes(script[headLen:])
	if !ok {
		return 0, false
	}
	tail := script[headLen+n:]
	if len(tail) < tailLen ||
		tail[0] != OP_CHECKSEQUENCEVERIFY || tail[1] != OP_DROP ||
		tail[2] != OP_ENDIF || tail[3] != OP_DATA_33 ||
		tail[4+pubKeyCompressedLen] != OP_CHECKSIG {
		return 0, false
	}
	return blocks, true
}

// matchCSV2of2Then1Opt matches
//
//	<recovery> OP_CHECKSIGVERIFY <main> OP_CHECKSIG OP_IFDUP OP_NOTIF
//	<blocks> OP_CHECKSEQUENCEVERIFY OP_ENDIF
//
// and returns the delay.
func matchCSV2of2Then1Opt(script []byte) (uint32, bool) {
	const (
		headLen = 2*(pubKeyCompressedLen+1) + 4
		minLen  = headLen + 2 + 2
	)
	if len(script) < minLen || len(script) > minLen+2 {
		return 0, false
	}
	if script[0] != OP_DATA_33 ||
		script[1+pubKeyCompressedLen] != OP_CHECKSIGVERIFY ||
		script[2+pubKeyCompressedLen] != OP_DATA_33 {
		return 0, false
	}
	ops := script[3+2*pubKeyCompressedLen:]
	if ops[0] != OP_CHECKSIG || ops[1] != OP_IFDUP || ops[2] != OP_NOTIF {
		return 0, false
	}
	blocks, n, ok := csvBlocksFromBytes(script[headLen:])
	if !ok {
		return 0, false
	}
	tail := script[headLen+n:]
	if len(tail) != 2 || tail[0] != OP_CHECKSEQUENCEVERIFY || tail[1] != OP_ENDIF {
		return 0, false
	}
	return blocks, true
}

// IsPayToPubKeyHash returns true if the script is in the standard
// pay-to-pubkey-hash (P2PKH) format.
func IsPayToPubKeyHash(script []byte) bool {
	return len(script) == PayToPubKeyHashScriptSize &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG
}

// IsPayToScriptHash returns true if the script is in the standard
// pay-to-script-hash (P2SH) format.
func IsPayToScriptHash(script []byte) bool {
	return len(script) == PayToScriptHashScriptSize &&
		script[0] == OP_HASH160 &&
		script[1] == OP_DATA_20 &&
		script[22] == OP_EQUAL
}

// IsPayToWitnessPubKeyHash returns true if the script is a version 0
// witness program paying to a 20-byte key hash.
func IsPayToWitnessPubKeyHash(script []byte) bool {
	return len(script) == PayToWitnessPubKeyHashScriptSize &&
		script[0] == OP_0 &&
		script[1] == OP_DATA_20
}

// IsPayToWitnessScriptHash returns true if the script is a version 0
// witness program paying to a 32-byte script hash.
func IsPayToWitnessScriptHash(script []byte) bool {
	return len(script) == PayToWitnessScriptHashScriptSize &&
		script[0] == OP_0 &&
		script[1] == OP_DATA_32
}

// IsPayToTaproot returns true if the script is a version 1 witness
// program carrying a 32-byte x-only output key.
func IsPayToTaproot(script []byte) bool {
	return len(script) == PayToTaprootScriptSize &&
		script[0] == OP_1 &&
		script[1] == OP_DATA_32
}

// IsMultiSig returns true if the script is a bare multisig script.
func IsMultiSig(script []byte) bool {
	return isMultiSig(script)
}

// IsNullData returns true if the script starts with OP_RETURN.
func IsNullData(script []byte) bool {
	return isNullData(script)
}

// typeOfScript returns the type of the script being inspected from the known
// standard types. Earlier templates take precedence over later ones that
// the same bytes may also satisfy.
func typeOfScript(script []byte) ScriptClass {
	if isNullData(script) {
		return NullDataTy
	}
	if isMultiSig(script) {
		return MultiSigTy
	}
	if _, ok := matchCSV2of2Then1(script); ok {
		return CSV2of2Then1Ty
	}
	if _, ok := matchCSV2of2Then1Opt(script); ok {
		return CSV2of2Then1OptTy
	}
	switch len(script) {
	case PayToPubKeyHashScriptSize:
		if IsPayToPubKeyHash(script) {
			return PubKeyHashTy
		}
	case PayToScriptHashScriptSize:
		if IsPayToScriptHash(script) {
			return ScriptHashTy
		}
	case PayToWitnessPubKeyHashScriptSize:
		if IsPayToWitnessPubKeyHash(script) {
			return WitnessV0PubKeyHashTy
		}
	case PayToWitnessScriptHashScriptSize:
		if IsPayToWitnessScriptHash(script) {
			return WitnessV0ScriptHashTy
		}
		if IsPayToTaproot(script) {
			return WitnessV1TaprootTy
		}
	}
	return NonStandardTy
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy is returned for any script matching no known template.
// Only an empty script is an error.
func GetScriptClass(script []byte) (ScriptClass, error) {
	if len(script) == 0 {
		return NonStandardTy, invalidArgf("empty script")
	}
	return typeOfScript(script), nil
}

// ExtractCSVBlocks returns the relative delay of either CSV recovery
// template.
func ExtractCSVBlocks(script []byte) (uint32, error) {
	if len(script) == 0 {
		return 0, invalidArgf("empty script")
	}
	if blocks, ok := matchCSV2of2Then1(script); ok {
		return blocks, nil
	}
	if blocks, ok := matchCSV2of2Then1Opt(script); ok {
		return blocks, nil
	}
	return 0, invalidArgf("not a CSV recovery script")
}
