package txscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massnet.org/scriptkit/wire"
)

func TestPushOnlyScriptToWitness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		want   wire.TxWitness
		valid  bool
	}{
		{"single push", "DATA_2 0xaabb", wire.TxWitness{{0xaa, 0xbb}}, true},
		{"empty push", "0 DATA_1 0x01", wire.TxWitness{{}, {0x01}}, true},
		{"pushdata2", "PUSHDATA2 0x0100 0xcc", wire.TxWitness{{0xcc}}, true},
		{"small int", "DATA_1 0x01 1", nil, false},
		{"opcode", "DUP", nil, false},
		{"truncated push", "DATA_1 0x01 DATA_2 0xaa", nil, false},
	}
	for _, test := range tests {
		got, err := PushOnlyScriptToWitness(mustParseShortForm(test.script))
		if !test.valid {
			assert.Nil(t, got, test.name)
			assert.True(t, IsInvalidArgument(err), test.name)
			continue
		}
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, got, test.name)
	}

	_, err := PushOnlyScriptToWitness(nil)
	assert.True(t, IsInvalidArgument(err))
}

func TestPushOnlyScriptToWitnessCopies(t *testing.T) {
	t.Parallel()

	script := mustParseShortForm("DATA_2 0xaabb")
	witness, err := PushOnlyScriptToWitness(script)
	require.NoError(t, err)
	script[1] = 0
	assert.Equal(t, []byte{0xaa, 0xbb}, witness[0])
}

func TestP2WPKHWitness(t *testing.T) {
	t.Parallel()

	der := append(append([]byte{}, derSig11...), byte(SigHashAll))
	want := wire.TxWitness{der, keyG}

	witness, err := P2WPKHWitnessFromSig(keyG, compactSig(1, 1), SigHashAll)
	require.NoError(t, err)
	assert.Equal(t, want, witness)

	witness, err = P2WPKHWitnessFromDER(keyG, der)
	require.NoError(t, err)
	assert.Equal(t, want, witness)

	_, err = P2WPKHWitnessFromDER(keyG[:20], der)
	assert.True(t, IsInvalidArgument(err))
	_, err = P2WPKHWitnessFromSig(keyG, compactSig(1, 1)[:10], SigHashAll)
	assert.True(t, IsInvalidArgument(err))
}

func TestMultiSigWitness(t *testing.T) {
	t.Parallel()

	redeem := buildScript(t, func(buf []byte) (int, error) {
		return MultiSigScript([][]byte{keyG, key2G, key3G}, 2, 0, buf)
	})
	witness, err := MultiSigWitness(redeem,
		[][]byte{compactSig(1, 1), compactSig(1, 2)},
		[]SigHashType{SigHashAll, SigHashAll}, 0)
	require.NoError(t, err)
	require.Len(t, witness, 4)
	assert.Empty(t, witness[0])
	assert.Equal(t, append(append([]byte{}, derSig11...), 0x01), witness[1])
	assert.Equal(t, append(append([]byte{}, derSig12...), 0x01), witness[2])
	assert.Equal(t, redeem, witness[3])

	sigs := [][]byte{compactSig(1, 1)}
	hashTypes := []SigHashType{SigHashAll}
	_, err = MultiSigWitness(nil, sigs, hashTypes, 0)
	assert.True(t, IsInvalidArgument(err))
	_, err = MultiSigWitness([]byte{OP_DUP}, sigs, hashTypes, 0)
	assert.True(t, IsInvalidArgument(err))
	_, err = MultiSigWitness([]byte{OP_16, OP_CHECKMULTISIG}, sigs, hashTypes, 0)
	assert.True(t, IsInvalidArgument(err))
	_, err = MultiSigWitness(redeem, sigs, nil, 0)
	assert.True(t, IsInvalidArgument(err))
}

func TestTaprootWitnessFromSig(t *testing.T) {
	t.Parallel()

	for _, n := range []int{64, 65} {
		sig := make([]byte, n)
		sig[0] = 0x01
		witness, err := TaprootWitnessFromSig(sig)
		require.NoError(t, err)
		assert.Equal(t, wire.TxWitness{sig}, witness)
	}

	for _, n := range []int{0, 63, 66} {
		_, err := TaprootWitnessFromSig(make([]byte, n))
		assert.True(t, IsInvalidArgument(err), "length %d", n)
	}
}
