package errors

import (
	"fmt"

	pkgerr "github.com/pkg/errors"

	"massnet.org/scriptkit/txscript"
)

const (
	// script building
	ErrAPICreatePkScript   = 1401
	ErrAPIExtractPKScript  = 1406
	ErrAPICreateScriptSig  = 1407
	ErrAPICreateWitness    = 1408
	ErrAPICreatePegScript  = 1409
	ErrAPIScriptInternal   = 1410
	ErrAPIEncodeScriptInt  = 1411
	ErrAPIEncodeVarInt     = 1412
	ErrAPIClassifyFile     = 1413
	ErrAPIUnsupportedClass = 1414

	// Invalid Parameter
	ErrAPIInvalidParameter = 1501
	ErrAPIInvalidFlag      = 1505
	ErrAPIInvalidIndex     = 1506

	// Decode, Encode and deserialize err
	ErrAPIDecodeHexString = 1602
	ErrAPIEncode          = 1604
	ErrAPIDeserialization = 1605
	ErrAPIDisasmScript    = 1607

	// other err
	ErrAPIUnknownErr = 1701
	ErrAPINet        = 1702
	ErrAPIConfig     = 1703
)

var ErrCode = map[uint32]string{
	ErrAPICreatePkScript:   "Failed to create pkScript",
	ErrAPIExtractPKScript:  "Failed to extract info from pkScript",
	ErrAPICreateScriptSig:  "Failed to create scriptSig",
	ErrAPICreateWitness:    "Failed to create witness",
	ErrAPICreatePegScript:  "Failed to create peg script",
	ErrAPIScriptInternal:   "Internal script error",
	ErrAPIEncodeScriptInt:  "Failed to encode script integer",
	ErrAPIEncodeVarInt:     "Failed to encode varint",
	ErrAPIClassifyFile:     "Failed to classify scripts from file",
	ErrAPIUnsupportedClass: "Unsupported script class",
	ErrAPIInvalidParameter: "Invalid parameter",
	ErrAPIInvalidFlag:      "Invalid script flags",
	ErrAPIInvalidIndex:     "Invalid index",
	ErrAPIDecodeHexString:  "Argument must be hexadecimal string",
	ErrAPIEncode:           "Failed to encode data",
	ErrAPIDeserialization:  "Failed to deserialize",
	ErrAPIDisasmScript:     "Failed to disasm script to string",
	ErrAPIUnknownErr:       "Unknown error",
	ErrAPINet:              "Unknown network",
	ErrAPIConfig:           "Invalid configuration",
}

// APIError attaches a numeric code to an error reported to the user.
type APIError struct {
	Code uint32
	Err  error
}

// New returns err tagged with code.
func New(code uint32, err error) *APIError {
	return &APIError{Code: code, Err: err}
}

// Errorf returns a new error tagged with code.
func Errorf(code uint32, format string, args ...interface{}) *APIError {
	return &APIError{Code: code, Err: pkgerr.Errorf(format, args...)}
}

func (e *APIError) Error() string {
	msg, ok := ErrCode[e.Code]
	if !ok {
		msg = ErrCode[ErrAPIUnknownErr]
	}
	if e.Err == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Cause returns the wrapped error.
func (e *APIError) Cause() error {
	return e.Err
}

type causer interface {
	Cause() error
}

// FromError returns the code and message to report for err. A tagged
// error keeps its code unless the underlying failure was an internal one.
// Untagged script errors are mapped by cause.
func FromError(err error) (uint32, string) {
	if err == nil {
		return 0, ""
	}
	cause := pkgerr.Cause(err)
	if txscript.IsInternal(cause) {
		return ErrAPIScriptInternal, err.Error()
	}
	for e := err; e != nil; {
		if apiErr, ok := e.(*APIError); ok {
			return apiErr.Code, err.Error()
		}
		c, ok := e.(causer)
		if !ok {
			break
		}
		e = c.Cause()
	}
	if txscript.IsInvalidArgument(cause) {
		return ErrAPIInvalidParameter, err.Error()
	}
	return ErrAPIUnknownErr, err.Error()
}
