// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"

	"massnet.org/scriptkit/logging"
	"massnet.org/scriptkit/wire"
)

var (
	// ErrInvalidArgument is returned for malformed input, out of range
	// parameters and scripts that do not match the requested template.
	ErrInvalidArgument = wire.ErrInvalidArgument

	// ErrInternal is returned when a post-condition that should always
	// hold is violated, such as a failed tweak self-check or a size probe
	// that disagrees with the bytes written.
	ErrInternal = errors.New("internal error")
)

// invalidArgf wraps ErrInvalidArgument with context. Rejections are part
// of normal classification, so they are not logged here.
func invalidArgf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// internalErrorf wraps ErrInternal with context. Reaching it means a bug
// here or in a collaborator, so it is always logged.
func internalErrorf(format string, args ...interface{}) error {
	err := errors.Wrapf(ErrInternal, format, args...)
	logging.CPrint(logging.ERROR, "script internal error", logging.LogFormat{"err": err.Error()})
	return err
}

// IsInvalidArgument reports whether err was caused by ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Cause(err) == ErrInvalidArgument
}

// IsInternal reports whether err was caused by ErrInternal.
func IsInternal(err error) bool {
	return errors.Cause(err) == ErrInternal
}
