package wire

// Elements confidential commitment prefixes and lengths.
const (
	ConfidentialExplicitPrefix = 0x01

	ConfidentialValuePrefixA = 0x08
	ConfidentialValuePrefixB = 0x09
	ConfidentialAssetPrefixA = 0x0a
	ConfidentialAssetPrefixB = 0x0b
	ConfidentialNoncePrefixA = 0x02
	ConfidentialNoncePrefixB = 0x03

	// ConfidentialCommitmentLen is the length of a blinded commitment, or
	// of an explicit asset tag or nonce: one prefix byte plus 32 bytes.
	ConfidentialCommitmentLen = 33

	// ConfidentialExplicitValueLen is the length of an explicit value: one
	// prefix byte plus a big-endian uint64.
	ConfidentialExplicitValueLen = 9

	// ConfidentialNullLen is the length of a null (absent) commitment.
	ConfidentialNullLen = 1
)

// commitmentLen returns the serialized length of the commitment starting at
// b, or 0 if the leading byte is not a valid prefix for the field described
// by prefixA and prefixB.
func commitmentLen(b []byte, prefixA, prefixB byte) int {
	if len(b) == 0 {
		return 0
	}
	switch b[0] {
	case 0:
		return ConfidentialNullLen
	case ConfidentialExplicitPrefix:
		if prefixA == ConfidentialValuePrefixA {
			return ConfidentialExplicitValueLen
		}
		return ConfidentialCommitmentLen
	case prefixA, prefixB:
		return ConfidentialCommitmentLen
	}
	return 0
}

// ConfidentialAssetLen returns the length of the asset commitment at the
// start of b. A return of 0 means the serialization is invalid and must be
// treated as a parse failure.
func ConfidentialAssetLen(b []byte) int {
	return commitmentLen(b, ConfidentialAssetPrefixA, ConfidentialAssetPrefixB)
}

// ConfidentialValueLen returns the length of the value commitment at the
// start of b, or 0 if invalid.
func ConfidentialValueLen(b []byte) int {
	return commitmentLen(b, ConfidentialValuePrefixA, ConfidentialValuePrefixB)
}

// ConfidentialNonceLen returns the length of the nonce commitment at the
// start of b, or 0 if invalid.
func ConfidentialNonceLen(b []byte) int {
	return commitmentLen(b, ConfidentialNoncePrefixA, ConfidentialNoncePrefixB)
}

// commitmentVarInt reads a commitment prefix as though it were a varint tag,
// so varbuff style readers can size the field. Recognised prefixes yield
// the field length for both the value and the consumed size; anything else
// yields a zero value occupying one byte.
func commitmentVarInt(b []byte, isValue bool) (uint64, int) {
	switch b[0] {
	case ConfidentialExplicitPrefix:
		if isValue {
			return ConfidentialExplicitValueLen, ConfidentialExplicitValueLen
		}
		return ConfidentialCommitmentLen, ConfidentialCommitmentLen
	case ConfidentialValuePrefixA, ConfidentialValuePrefixB,
		ConfidentialAssetPrefixA, ConfidentialAssetPrefixB,
		ConfidentialNoncePrefixA, ConfidentialNoncePrefixB:
		return ConfidentialCommitmentLen, ConfidentialCommitmentLen
	}
	return 0, 1
}

// ConfidentialAssetVarInt is the varint-style accessor for asset fields.
// b must not be empty.
func ConfidentialAssetVarInt(b []byte) (uint64, int) {
	return commitmentVarInt(b, false)
}

// ConfidentialValueVarInt is the varint-style accessor for value fields.
// b must not be empty.
func ConfidentialValueVarInt(b []byte) (uint64, int) {
	return commitmentVarInt(b, true)
}

// ConfidentialNonceVarInt is the varint-style accessor for nonce fields.
// b must not be empty.
func ConfidentialNonceVarInt(b []byte) (uint64, int) {
	return commitmentVarInt(b, false)
}

// PutConfidentialValue writes a commitment field into buf. An empty
// commitment is written as the single null byte.
func PutConfidentialValue(buf []byte, data []byte) int {
	if len(data) == 0 {
		buf[0] = 0
		return ConfidentialNullLen
	}
	return copy(buf, data)
}
