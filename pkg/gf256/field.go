// Package gf256 implements arithmetic in GF(256) as used by QR code
// Reed-Solomon error correction: the field generated by α = 2 modulo the
// primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D).
//
// Elements are kept in log form. Multiplication is addition of exponents
// and addition goes through the antilog table and XOR.
package gf256

import (
	"errors"
	"fmt"
)

const (
	// Primitive polynomial: x^8 + x^4 + x^3 + x^2 + 1
	Primitive = 0x11D

	// Order is the size of the multiplicative group.
	Order = 255
)

// ErrInvariantViolation marks a logic defect inside the engine, such as an
// exponent outside the field. It is raised with panic and is never a
// recoverable input error.
var ErrInvariantViolation = errors.New("invariant violation")

// exp and log tables, built once and read-only afterwards
var (
	expTable [256]byte
	logTable [256]byte
)

func init() {
	x := 1
	for i := 0; i < Order; i++ {
		expTable[i] = byte(x)
		logTable[x] = byte(i)

		x <<= 1
		if x&0x100 != 0 {
			x ^= Primitive
		}
	}
	// Complete the cycle
	expTable[Order] = expTable[0]
}

// Element is a field element in log form. The zero value is the additive
// identity, so there is exactly one representation of zero.
type Element struct {
	log     uint8
	nonzero bool
}

// Zero is the additive identity.
var Zero Element

// One is α^0.
var One = Element{log: 0, nonzero: true}

// Exp returns α^i. The exponent is reduced modulo 255.
func Exp(i int) Element {
	if i < 0 {
		panic(fmt.Errorf("%w: negative exponent %d", ErrInvariantViolation, i))
	}
	return Element{log: uint8(i % Order), nonzero: true}
}

// FromValue converts a byte to log form. 0 maps to Zero.
func FromValue(v byte) Element {
	if v == 0 {
		return Zero
	}
	return Element{log: logTable[v], nonzero: true}
}

// Value converts the element back to its byte value.
func (e Element) Value() byte {
	if !e.nonzero {
		return 0
	}
	return expTable[e.log]
}

// Log returns the discrete logarithm of e. ok is false for Zero.
func (e Element) Log() (exp int, ok bool) {
	return int(e.log), e.nonzero
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return !e.nonzero
}

func (e Element) String() string {
	if !e.nonzero {
		return "0"
	}
	return fmt.Sprintf("α^%d", e.log)
}

// Mul multiplies two elements by adding their exponents. Zero absorbs.
func Mul(a, b Element) Element {
	if !a.nonzero || !b.nonzero {
		return Zero
	}
	return Exp(int(a.log) + int(b.log))
}

// Add adds two elements (XOR of their values). Zero is the identity.
func Add(a, b Element) Element {
	if !a.nonzero {
		return b
	}
	if !b.nonzero {
		return a
	}
	return FromValue(a.Value() ^ b.Value())
}

// Inverse returns the multiplicative inverse of e.
func Inverse(e Element) Element {
	if !e.nonzero {
		panic(fmt.Errorf("%w: inverse of zero", ErrInvariantViolation))
	}
	return Exp(Order - int(e.log))
}

// Div divides a by b.
func Div(a, b Element) Element {
	if !b.nonzero {
		panic(fmt.Errorf("%w: division by zero", ErrInvariantViolation))
	}
	return Mul(a, Inverse(b))
}

// Pow raises e to the power n.
func Pow(e Element, n int) Element {
	if n < 0 {
		panic(fmt.Errorf("%w: negative power %d", ErrInvariantViolation, n))
	}
	if n == 0 {
		return One
	}
	if !e.nonzero {
		return Zero
	}
	return Exp(int(e.log) * n % Order)
}
