// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"massnet.org/scriptkit/massutil"
)

// ScriptFlags is a bitmask selecting optional behaviour of the script
// builders.
type ScriptFlags uint32

const (
	// ScriptHash160 replaces pushed data with its HASH160.
	ScriptHash160 ScriptFlags = 1 << iota

	// ScriptSha256 replaces pushed data with its SHA-256.
	ScriptSha256

	// ScriptAsPush wraps a witness program in one more push, giving the
	// form embedded in a P2SH redeem script.
	ScriptAsPush

	// ScriptMultisigSorted sorts multisig public keys (BIP67).
	ScriptMultisigSorted

	// ScriptTaprootElements selects the Elements taproot tweak tag.
	ScriptTaprootElements
)

// scriptHashFlags are the mutually exclusive pre-hash flags.
const scriptHashFlags = ScriptHash160 | ScriptSha256

// hashFlagsOK reports whether flags holds nothing beyond the hash flags and
// extra, and does not request both hashes at once.
func hashFlagsOK(flags, extra ScriptFlags) bool {
	return flags&^(scriptHashFlags|extra) == 0 &&
		flags&scriptHashFlags != scriptHashFlags
}

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80
)

// These are the constants specified for maximums in individual scripts.
const (
	// MaxDataCarrierSize is the maximum number of bytes allowed in pushed
	// data to be considered a nulldata script.
	MaxDataCarrierSize = 80

	// MaxMultiSigKeys bounds keys and signatures in the multisig builders.
	MaxMultiSigKeys = 15

	// MaxWitnessProgramSize is the largest v1+ witness program.
	MaxWitnessProgramSize = 40

	// MinWitnessProgramSize is the smallest v1+ witness program.
	MinWitnessProgramSize = 2

	// MaxWitnessVersion is the highest witness version.
	MaxWitnessVersion = 16

	// MaxWitnessScriptSize is the largest witness program script,
	// version byte and push opcode included.
	MaxWitnessScriptSize = MaxWitnessProgramSize + 2

	// MaxP2PKHScriptSigSize bounds a P2PKH scriptSig: a push of a DER
	// signature plus sighash byte and a push of an uncompressed key.
	MaxP2PKHScriptSigSize = 1 + maxDERSigWithHashLen + 1 + pubKeyUncompressedLen

	// MinCSVBlocks and MaxCSVBlocks bound the relative delay of the CSV
	// recovery templates.
	MinCSVBlocks = 17
	MaxCSVBlocks = 0xffff

	// maxScriptIntLen is the longest script integer decoded here.
	maxScriptIntLen = 4
)

// Fixed template sizes.
const (
	hash160Len            = massutil.Hash160Size
	sha256Len             = massutil.Sha256Size
	pubKeyCompressedLen   = massutil.PubKeyBytesLenCompressed
	pubKeyUncompressedLen = massutil.PubKeyBytesLenUncompressed
	xOnlyPubKeyLen        = massutil.XOnlyPubKeyBytesLen
	compactSigLen         = massutil.CompactSigLen
	schnorrSigLen         = 64
	maxDERSigLen          = massutil.MaxDERSigLen
	maxDERSigWithHashLen  = maxDERSigLen + 1

	PayToPubKeyHashScriptSize        = 25
	PayToScriptHashScriptSize        = 23
	PayToWitnessPubKeyHashScriptSize = 22
	PayToWitnessScriptHashScriptSize = 34
	PayToTaprootScriptSize           = 34
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy         ScriptClass = iota // None of the recognized forms.
	NullDataTy                               // Empty data-only (provably prunable).
	PubKeyHashTy                             // Pay to pubkey hash.
	ScriptHashTy                             // Pay to script hash.
	WitnessV0PubKeyHashTy                    // Pay to witness pubkey hash.
	WitnessV0ScriptHashTy                    // Pay to witness script hash.
	WitnessV1TaprootTy                       // Pay to taproot output key.
	MultiSigTy                               // Multi signature.
	CSV2of2Then1Ty                           // 2-of-2 degrading to 1 after a CSV delay.
	CSV2of2Then1OptTy                        // Shorter form of CSV2of2Then1Ty.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy:         "nonstandard",
	NullDataTy:            "nulldata",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessV1TaprootTy:    "witness_v1_taproot",
	MultiSigTy:            "multisig",
	CSV2of2Then1Ty:        "csv_2of2_then_1",
	CSV2of2Then1OptTy:     "csv_2of2_then_1_opt",
}

// String implements the Stringer interface by returning the name of
// the enum script class.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return fmt.Sprintf("Invalid(%d)", int(t))
	}
	return scriptClassToName[t]
}
