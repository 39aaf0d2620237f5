package wrapnum

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by New when value is not strictly below wrap.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnderflow is returned by the Sub family when the right operand
	// exceeds the left operand's magnitude.
	ErrUnderflow = errors.New("underflow")

	// ErrDivisionByZero is returned by the Rem family when the right
	// operand is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// CastOverflowError indicates that a right operand's magnitude cannot be
// represented in the left operand's width.
type CastOverflowError struct {
	Value uint64 // the right operand's magnitude
	Max   uint64 // maximum representable in the left operand's width
}

func (e *CastOverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %d cannot be represented in the left operand's width (max %d)", e.Value, e.Max)
}
