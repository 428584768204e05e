package decimal

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of decimal parsing errors.
var Error = errs.Class("decimal")

var (
	// ErrCapacity means a checked arithmetic step did not fit in the
	// significand's width.
	ErrCapacity = errors.New("capacity")

	// ErrIncomplete means the literal ended before reaching an
	// acceptable state.
	ErrIncomplete = errors.New("incomplete")

	// ErrInvalidCharacter means a byte was fed that is not valid in
	// the current state.
	ErrInvalidCharacter = errors.New("invalid character")
)
