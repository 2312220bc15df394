package errors

import (
	"testing"

	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"massnet.org/scriptkit/txscript"
)

func TestErrCodeComplete(t *testing.T) {
	codes := []uint32{
		ErrAPICreatePkScript, ErrAPIExtractPKScript, ErrAPICreateScriptSig,
		ErrAPICreateWitness, ErrAPICreatePegScript, ErrAPIScriptInternal,
		ErrAPIEncodeScriptInt, ErrAPIEncodeVarInt, ErrAPIClassifyFile,
		ErrAPIUnsupportedClass, ErrAPIInvalidParameter, ErrAPIInvalidFlag,
		ErrAPIInvalidIndex, ErrAPIDecodeHexString, ErrAPIEncode,
		ErrAPIDeserialization, ErrAPIDisasmScript, ErrAPIUnknownErr,
		ErrAPINet, ErrAPIConfig,
	}
	for _, code := range codes {
		assert.NotEmpty(t, ErrCode[code], "code %d", code)
	}
	assert.Len(t, ErrCode, len(codes))
}

func TestFromError(t *testing.T) {
	_, buildErr := txscript.NullDataScript(make([]byte, 81), 0, nil)
	_, allocErr := txscript.AllocScript(func(buf []byte) (int, error) {
		if buf == nil {
			return 2, nil
		}
		return 1, nil
	})

	tests := []struct {
		name string
		err  error
		code uint32
	}{
		{"nil", nil, 0},
		{"plain", pkgerr.New("boom"), ErrAPIUnknownErr},
		{"invalid argument", buildErr, ErrAPIInvalidParameter},
		{"wrapped invalid argument", pkgerr.Wrap(buildErr, "nulldata"), ErrAPIInvalidParameter},
		{"tagged", New(ErrAPIDecodeHexString, pkgerr.New("odd length")), ErrAPIDecodeHexString},
		{"tagged invalid argument", New(ErrAPICreatePkScript, buildErr), ErrAPICreatePkScript},
		{"wrapped tag", pkgerr.Wrap(Errorf(ErrAPINet, "net %q", "x"), "config"), ErrAPINet},
		{"internal", allocErr, ErrAPIScriptInternal},
		{"tagged internal", New(ErrAPICreatePkScript, allocErr), ErrAPIScriptInternal},
	}
	for _, test := range tests {
		code, msg := FromError(test.err)
		assert.Equal(t, test.code, code, test.name)
		if test.err != nil {
			assert.Equal(t, test.err.Error(), msg, test.name)
		}
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := New(ErrAPIDecodeHexString, pkgerr.New("odd length"))
	assert.Equal(t, "Argument must be hexadecimal string: odd length", err.Error())
	assert.Equal(t, "Unknown error", New(9999, nil).Error())
	assert.Equal(t, "odd length", err.Cause().Error())
}
