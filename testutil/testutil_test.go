package testutil

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCausedBy(t *testing.T) {
	root := errors.New("root")
	assert.True(t, CausedBy(errors.Wrap(root, "ctx"), root))
	assert.False(t, CausedBy(nil, root))
	assert.False(t, CausedBy(errors.New("other"), root))
}

func TestSameErrorString(t *testing.T) {
	assert.True(t, SameErrorString(nil, nil))
	assert.False(t, SameErrorString(errors.New("a"), nil))
	assert.True(t, SameErrorString(errors.New("a"), errors.New("a")))
}

func TestMustDecodeHex(t *testing.T) {
	assert.Equal(t, []byte{0x6a, 0x00}, MustDecodeHex(t, "6a 00"))
	assert.Equal(t, []byte{7, 7, 7}, Repeat(7, 3))
}
