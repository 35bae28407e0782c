package reedsolomon

import (
	"errors"

	"github.com/Davincible/qrecc/pkg/gf256"
)

var (
	// ErrInvalidParameter is returned for a codeword count or message length
	// the engine cannot represent.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvariantViolation is returned when an internal computation left
	// the valid index or exponent range.
	ErrInvariantViolation = gf256.ErrInvariantViolation
)

// recoverInvariant turns an invariant-violation panic into *err. Any other
// panic is re-raised.
func recoverInvariant(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && errors.Is(e, ErrInvariantViolation) {
		*err = e
		return
	}
	panic(r)
}
