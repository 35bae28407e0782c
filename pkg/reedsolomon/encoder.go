package reedsolomon

import (
	"fmt"

	"github.com/Davincible/qrecc/pkg/gf256"
)

// Divide divides message by generator and returns the n remainder
// coefficients as bytes, highest power first. message must already be
// multiplied by x^n.
func Divide(message, generator Polynomial, n int) (codewords []byte, err error) {
	defer recoverInvariant(&err)

	if err := validateCodewords(n); err != nil {
		return nil, err
	}
	if d := generator.Degree(); d != n {
		return nil, fmt.Errorf("%w: generator has degree %d, want %d", ErrInvalidParameter, d, n)
	}

	degree := message.Degree()
	if degree < 0 {
		return make([]byte, n), nil
	}
	if degree < n {
		return nil, fmt.Errorf("%w: message degree %d is below %d, shift it by x^%d first", ErrInvalidParameter, degree, n, n)
	}

	remainder := message
	for d := degree; d >= n; d-- {
		lead := remainder[d]
		if lead.IsZero() {
			continue
		}

		// Align the generator's leading term with x^d and scale it to cancel.
		term := generator
		term.Shift(d - n)
		term.Scale(lead)
		remainder.AddInPlace(&term)

		if !remainder[d].IsZero() {
			panic(fmt.Errorf("%w: x^%d not cancelled", ErrInvariantViolation, d))
		}
	}

	return remainder.Bytes(n), nil
}

// Encode returns the n error correction codewords for message.
func Encode(message []byte, n int) (codewords []byte, err error) {
	defer recoverInvariant(&err)

	if err := validateCodewords(n); err != nil {
		return nil, err
	}
	if len(message)+n > Capacity {
		return nil, fmt.Errorf("%w: %d message bytes plus %d codewords exceeds capacity %d",
			ErrInvalidParameter, len(message), n, Capacity)
	}

	p, err := MessagePolynomial(message)
	if err != nil {
		return nil, err
	}
	p.Shift(n)

	generator, err := BuildGenerator(n)
	if err != nil {
		return nil, fmt.Errorf("failed to build generator: %w", err)
	}

	return Divide(p, generator, n)
}

// Syndrome returns the Reed-Solomon syndrome of a full codeword block
// (message followed by its correction codewords): the block evaluated at
// α^0..α^(n-1). A block produced by Encode has an all-zero syndrome.
func Syndrome(block []byte, n int) (syndrome []gf256.Element, err error) {
	defer recoverInvariant(&err)

	if err := validateCodewords(n); err != nil {
		return nil, err
	}
	if len(block) < n {
		return nil, fmt.Errorf("%w: block of %d bytes is shorter than %d codewords", ErrInvalidParameter, len(block), n)
	}
	p, err := MessagePolynomial(block)
	if err != nil {
		return nil, err
	}

	syndrome = make([]gf256.Element, n)
	for i := range syndrome {
		syndrome[i] = p.Evaluate(gf256.Exp(i))
	}
	return syndrome, nil
}

// SyndromeIsZero reports whether every syndrome value is zero.
func SyndromeIsZero(syndrome []gf256.Element) bool {
	for _, s := range syndrome {
		if !s.IsZero() {
			return false
		}
	}
	return true
}

// Verify reports whether block is a valid codeword block with n correction
// codewords at its end.
func Verify(block []byte, n int) (bool, error) {
	syndrome, err := Syndrome(block, n)
	if err != nil {
		return false, err
	}
	return SyndromeIsZero(syndrome), nil
}

// SingleError is a block that differs from a valid codeword in exactly
// one position.
type SingleError struct {
	Index     int  `json:"index"`     // offset into the block
	Magnitude byte `json:"magnitude"` // XOR into block[Index] to repair it
}

// LocateSingleError explains a syndrome as one corrupted codeword of a
// block of blockLen bytes. ok is false for a zero syndrome, for fewer than
// two syndrome values, and when no single position accounts for all of
// them.
func LocateSingleError(syndrome []gf256.Element, blockLen int) (fix SingleError, ok bool) {
	if len(syndrome) < 2 || syndrome[0].IsZero() {
		return SingleError{}, false
	}

	// An error e at x^j gives S_i = e·α^(ij), so S_0 = e and S_1/S_0 = α^j.
	locator := gf256.Div(syndrome[1], syndrome[0])
	j, nonzero := locator.Log()
	if !nonzero || j >= blockLen {
		return SingleError{}, false
	}
	for i, s := range syndrome {
		if gf256.Mul(syndrome[0], gf256.Pow(locator, i)) != s {
			return SingleError{}, false
		}
	}

	return SingleError{Index: blockLen - 1 - j, Magnitude: syndrome[0].Value()}, true
}
