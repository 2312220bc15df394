package txscript

import (
	"bytes"
	"sort"

	"massnet.org/scriptkit/massutil"
)

// Every builder in this package follows the same contract. It returns the
// exact size of the script it builds and writes the script only when buf
// can hold it, so a nil buf is a pure size probe. Invalid arguments are
// reported whatever the size of buf.

// AllocScript sizes a script with fill, allocates it and fills it.
func AllocScript(fill func(buf []byte) (int, error)) ([]byte, error) {
	size, err := fill(nil)
	if err != nil {
		return nil, err
	}
	script := make([]byte, size)
	n, err := fill(script)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, internalErrorf("script size changed from %d to %d", size, n)
	}
	return script, nil
}

// PayToPubKeyHashScript builds
//
//	OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG
//
// from a 20-byte key hash, or from a 33 or 65 byte public key when
// ScriptHash160 is set.
func PayToPubKeyHashScript(data []byte, flags ScriptFlags, buf []byte) (int, error) {
	if len(data) == 0 || !hashFlagsOK(flags, 0) || flags&ScriptSha256 != 0 {
		return 0, invalidArgf("invalid p2pkh arguments")
	}
	if flags&ScriptHash160 != 0 {
		if !isPubKeyLen(len(data)) {
			return 0, invalidArgf("p2pkh public key must be 33 or 65 bytes, got %d", len(data))
		}
	} else if len(data) != hash160Len {
		return 0, invalidArgf("p2pkh hash must be %d bytes, got %d", hash160Len, len(data))
	}

	if len(buf) < PayToPubKeyHashScriptSize {
		return PayToPubKeyHashScriptSize, nil
	}
	buf[0] = OP_DUP
	buf[1] = OP_HASH160
	if _, err := PushFromBytes(data, flags, buf[2:PayToPubKeyHashScriptSize-2]); err != nil {
		return 0, err
	}
	buf[PayToPubKeyHashScriptSize-2] = OP_EQUALVERIFY
	buf[PayToPubKeyHashScriptSize-1] = OP_CHECKSIG
	return PayToPubKeyHashScriptSize, nil
}

// PayToScriptHashScript builds OP_HASH160 <hash> OP_EQUAL from a 20-byte
// script hash, or from the script itself when ScriptHash160 is set.
func PayToScriptHashScript(data []byte, flags ScriptFlags, buf []byte) (int, error) {
	if len(data) == 0 || flags&^ScriptHash160 != 0 {
		return 0, invalidArgf("invalid p2sh arguments")
	}
	if flags&ScriptHash160 == 0 && len(data) != hash160Len {
		return 0, invalidArgf("p2sh hash must be %d bytes, got %d", hash160Len, len(data))
	}

	if len(buf) < PayToScriptHashScriptSize {
		return PayToScriptHashScriptSize, nil
	}
	buf[0] = OP_HASH160
	if _, err := PushFromBytes(data, flags, buf[1:PayToScriptHashScriptSize-1]); err != nil {
		return 0, err
	}
	buf[PayToScriptHashScriptSize-1] = OP_EQUAL
	return PayToScriptHashScriptSize, nil
}

// NullDataScript builds OP_RETURN <data>. data may be empty and holds at
// most MaxDataCarrierSize bytes.
func NullDataScript(data []byte, flags ScriptFlags, buf []byte) (int, error) {
	if len(data) > MaxDataCarrierSize || flags != 0 {
		return 0, invalidArgf("invalid nulldata arguments: %d bytes, flags %#x",
			len(data), uint32(flags))
	}
	size := 1 + PushSize(len(data))
	if len(buf) < size {
		return size, nil
	}
	buf[0] = OP_RETURN
	putPush(buf[1:], data)
	return size, nil
}

// MultiSigScript builds
//
//	<threshold> <pubkey>... <n> OP_CHECKMULTISIG
//
// from up to MaxMultiSigKeys compressed keys. With ScriptMultisigSorted the
// keys are emitted in lexicographic order (BIP67); pubKeys is not modified.
func MultiSigScript(pubKeys [][]byte, threshold int, flags ScriptFlags, buf []byte) (int, error) {
	n := len(pubKeys)
	if n < 1 || n > MaxMultiSigKeys {
		return 0, invalidArgf("multisig needs 1 to %d keys, got %d", MaxMultiSigKeys, n)
	}
	if threshold < 1 || threshold > n {
		return 0, invalidArgf("multisig threshold %d out of range for %d keys", threshold, n)
	}
	if flags&^ScriptMultisigSorted != 0 {
		return 0, invalidArgf("invalid multisig flags %#x", uint32(flags))
	}
	for i, key := range pubKeys {
		if len(key) != pubKeyCompressedLen {
			return 0, invalidArgf("multisig key %d is %d bytes", i, len(key))
		}
	}

	size := 3 + n*(pubKeyCompressedLen+1)
	if len(buf) < size {
		return size, nil
	}

	keys := pubKeys
	if flags&ScriptMultisigSorted != 0 {
		keys = make([][]byte, n)
		copy(keys, pubKeys)
		sort.Slice(keys, func(i, j int) bool {
			return bytes.Compare(keys[i], keys[j]) < 0
		})
	}

	buf[0] = smallIntOpcode(threshold)
	off := 1
	for _, key := range keys {
		off += putPush(buf[off:], key)
	}
	buf[off] = smallIntOpcode(n)
	buf[off+1] = OP_CHECKMULTISIG
	return size, nil
}

func checkCSVArgs(mainKey, recoveryKey []byte, blocks uint32, flags ScriptFlags) error {
	if len(mainKey) != pubKeyCompressedLen || len(recoveryKey) != pubKeyCompressedLen {
		return invalidArgf("csv keys must be %d bytes", pubKeyCompressedLen)
	}
	if blocks < MinCSVBlocks || blocks > MaxCSVBlocks {
		return invalidArgf("csv delay %d outside [%d, %d]", blocks, MinCSVBlocks, MaxCSVBlocks)
	}
	if flags != 0 {
		return invalidArgf("invalid csv flags %#x", uint32(flags))
	}
	return nil
}

// putCSVBlocks writes the delay as a direct push of its script integer.
func putCSVBlocks(buf []byte, blocks uint32) int {
	n := PutScriptInt(buf[1:], int64(blocks))
	buf[0] = byte(n)
	return n + 1
}

// CSV2of2Then1Script builds a script spendable by main and recovery
// together, or by recovery alone once blocks have passed:
//
//	OP_DEPTH OP_1SUB OP_IF <main> OP_CHECKSIGVERIFY OP_ELSE
//	<blocks> OP_CHECKSEQUENCEVERIFY OP_DROP OP_ENDIF <recovery> OP_CHECKSIG
func CSV2of2Then1Script(mainKey, recoveryKey []byte, blocks uint32, flags ScriptFlags, buf []byte) (int, error) {
	if err := checkCSVArgs(mainKey, recoveryKey, blocks, flags); err != nil {
		return 0, err
	}
	size := 2*(pubKeyCompressedLen+1) + 9 + 1 + ScriptIntSerializeSize(int64(blocks))
	if len(buf) < size {
		return size, nil
	}

	buf[0] = OP_DEPTH
	buf[1] = OP_1SUB
	buf[2] = OP_IF
	off := 3 + putPush(buf[3:], mainKey)
	buf[off] = OP_CHECKSIGVERIFY
	buf[off+1] = OP_ELSE
	off += 2
	off += putCSVBlocks(buf[off:], blocks)
	buf[off] = OP_CHECKSEQUENCEVERIFY
	buf[off+1] = OP_DROP
	buf[off+2] = OP_ENDIF
	off += 3
	off += putPush(buf[off:], recoveryKey)
	buf[off] = OP_CHECKSIG
	return size, nil
}

// CSV2of2Then1OptScript builds the shorter form of CSV2of2Then1Script:
//
//	<recovery> OP_CHECKSIGVERIFY <main> OP_CHECKSIG OP_IFDUP OP_NOTIF
//	<blocks> OP_CHECKSEQUENCEVERIFY OP_ENDIF
func CSV2of2Then1OptScript(mainKey, recoveryKey []byte, blocks uint32, flags ScriptFlags, buf []byte) (int, error) {
	if err := checkCSVArgs(mainKey, recoveryKey, blocks, flags); err != nil {
		return 0, err
	}
	size := 2*(pubKeyCompressedLen+1) + 6 + 1 + ScriptIntSerializeSize(int64(blocks))
	if len(buf) < size {
		return size, nil
	}

	off := putPush(buf, recoveryKey)
	buf[off] = OP_CHECKSIGVERIFY
	off++
	off += putPush(buf[off:], mainKey)
	buf[off] = OP_CHECKSIG
	buf[off+1] = OP_IFDUP
	buf[off+2] = OP_NOTIF
	off += 3
	off += putCSVBlocks(buf[off:], blocks)
	buf[off] = OP_CHECKSEQUENCEVERIFY
	buf[off+1] = OP_ENDIF
	return size, nil
}

// WitnessProgramScript builds <version> <program>. Version 0 programs are
// 20 or 32 bytes and later versions 2 to 40 bytes, unless ScriptHash160 or
// ScriptSha256 is set, in which case the digest of program is used.
// ScriptAsPush prefixes the result with its own push length.
func WitnessProgramScript(program []byte, version uint32, flags ScriptFlags, buf []byte) (int, error) {
	if version > MaxWitnessVersion || !hashFlagsOK(flags, ScriptAsPush) {
		return 0, invalidArgf("invalid witness program version %d or flags %#x",
			version, uint32(flags))
	}
	dataLen := len(program)
	switch {
	case flags&ScriptHash160 != 0, flags&ScriptSha256 != 0:
		if len(program) == 0 {
			return 0, invalidArgf("empty witness program")
		}
		dataLen = hash160Len
		if flags&ScriptSha256 != 0 {
			dataLen = sha256Len
		}
	case version == 0 && dataLen != hash160Len && dataLen != sha256Len:
		return 0, invalidArgf("v0 witness program must be 20 or 32 bytes, got %d", dataLen)
	case dataLen < MinWitnessProgramSize || dataLen > MaxWitnessProgramSize:
		return 0, invalidArgf("witness program must be %d to %d bytes, got %d",
			MinWitnessProgramSize, MaxWitnessProgramSize, dataLen)
	}

	progSize := 1 + PushSize(dataLen)
	size := progSize
	if flags&ScriptAsPush != 0 {
		size++
	}
	if len(buf) < size {
		return size, nil
	}

	out := buf[:size]
	if flags&ScriptAsPush != 0 {
		out[0] = byte(progSize)
		out = out[1:]
	}
	out[0] = smallIntOpcode(int(version))
	if _, err := PushFromBytes(program, flags&^ScriptAsPush, out[1:]); err != nil {
		return 0, err
	}
	return size, nil
}

// WitnessProgramV0Script is WitnessProgramScript for version 0.
func WitnessProgramV0Script(program []byte, flags ScriptFlags, buf []byte) (int, error) {
	return WitnessProgramScript(program, 0, flags, buf)
}

// PayToTaprootScript builds OP_1 <x-only key>. A 32-byte key is used as the
// output key. A 33-byte compressed key is treated as the internal key and
// tweaked per BIP341 first; ScriptTaprootElements selects the Elements tag.
func PayToTaprootScript(key []byte, flags ScriptFlags, buf []byte) (int, error) {
	if flags&^ScriptTaprootElements != 0 {
		return 0, invalidArgf("invalid taproot flags %#x", uint32(flags))
	}
	switch len(key) {
	case xOnlyPubKeyLen:
	case pubKeyCompressedLen:
		tweaked, err := massutil.Secp().TaprootTweak(key, nil, flags&ScriptTaprootElements != 0)
		if err != nil {
			return 0, ecError(err, "taproot tweak")
		}
		key = tweaked[1:]
	default:
		return 0, invalidArgf("taproot key must be 32 or 33 bytes, got %d", len(key))
	}

	if len(buf) < PayToTaprootScriptSize {
		return PayToTaprootScriptSize, nil
	}
	buf[0] = OP_1
	putPush(buf[1:], key)
	return PayToTaprootScriptSize, nil
}

// ecError maps a failure of the curve collaborator. Unparsable keys are the
// caller's fault; anything else should not happen.
func ecError(err error, what string) error {
	if err == massutil.ErrInvalidPubKey {
		return invalidArgf("%s: %v", what, err)
	}
	return internalErrorf("%s: %v", what, err)
}
