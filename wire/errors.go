package wire

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when an input is malformed, out of
	// range, or a destination buffer cannot hold the result.
	ErrInvalidArgument = errors.New("invalid argument")
)
