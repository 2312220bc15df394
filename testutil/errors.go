package testutil

import (
	"github.com/pkg/errors"
)

func SameErrorString(err, target error) bool {
	if err == nil && target == nil {
		return true
	}
	if err == nil || target == nil {
		return false
	}
	return err.Error() == target.Error()
}

// CausedBy reports whether the root cause of err is target.
func CausedBy(err, target error) bool {
	return err != nil && errors.Cause(err) == target
}
