package wire

// TxWitness defines the witness for a TxIn. A witness is to be interpreted as
// a slice of byte slices, or a stack with one or many elements.
type TxWitness [][]byte

// NewTxWitness returns an empty witness stack with room for capacity items.
func NewTxWitness(capacity int) TxWitness {
	return make(TxWitness, 0, capacity)
}

// Append pushes a copy of item onto the witness stack. The stack never
// aliases caller memory.
func (t *TxWitness) Append(item []byte) {
	elem := make([]byte, len(item))
	copy(elem, item)
	*t = append(*t, elem)
}

// PlainSize returns the total number of bytes held by the witness items.
func (t TxWitness) PlainSize() int {
	var n = 0

	for _, witItem := range t {
		n += len(witItem)
	}

	return n
}

// SerializeSize returns the number of bytes it would take to serialize the
// witness as an item count followed by each item as a varbuff.
func (t TxWitness) SerializeSize() int {
	n := VarIntSerializeSize(uint64(len(t)))
	for _, witItem := range t {
		n += VarBuffSerializeSize(witItem)
	}
	return n
}

// Serialize returns the witness in its on-wire form.
func (t TxWitness) Serialize() []byte {
	buf := make([]byte, t.SerializeSize())
	n := PutVarInt(buf, uint64(len(t)))
	for _, witItem := range t {
		n += PutVarBuff(buf[n:], witItem)
	}
	return buf
}
