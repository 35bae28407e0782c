// Package reedsolomon computes QR code error correction codewords: it builds
// the Reed-Solomon generator polynomial for a number of correction codewords
// and divides a message polynomial by it. The remainder is the codewords.
package reedsolomon

import (
	"fmt"
	"strings"

	"github.com/Davincible/qrecc/pkg/gf256"
)

// Capacity is the number of coefficient slots in a Polynomial. Message
// length plus correction codewords can never exceed it.
const Capacity = 255

// Polynomial holds one coefficient per power of x; index 0 is the constant
// term. Slots above the degree are gf256.Zero.
type Polynomial [Capacity]gf256.Element

// MessagePolynomial maps msg onto a polynomial with the first (most
// significant) byte at the highest power.
func MessagePolynomial(msg []byte) (Polynomial, error) {
	var p Polynomial
	if len(msg) > Capacity {
		return p, fmt.Errorf("%w: message of %d bytes exceeds capacity %d", ErrInvalidParameter, len(msg), Capacity)
	}

	top := len(msg) - 1
	for i, b := range msg {
		p[top-i] = gf256.FromValue(b)
	}
	return p, nil
}

// Degree returns the highest power with a nonzero coefficient, or -1 for
// the zero polynomial.
func (p *Polynomial) Degree() int {
	for i := Capacity - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Coefficient returns the coefficient of x^i.
func (p *Polynomial) Coefficient(i int) gf256.Element {
	checkIndex(i)
	return p[i]
}

// Shift multiplies p by x^k in place.
func (p *Polynomial) Shift(k int) {
	if k < 0 {
		panic(fmt.Errorf("%w: negative shift %d", ErrInvariantViolation, k))
	}
	if k == 0 {
		return
	}

	// Walk downward so unprocessed slots are not overwritten.
	for i := Capacity - 1; i >= 0; i-- {
		if i+k >= Capacity {
			if !p[i].IsZero() {
				panic(fmt.Errorf("%w: x^%d shifted past capacity", ErrInvariantViolation, i+k))
			}
			continue
		}
		p[i+k] = p[i]
	}
	for i := 0; i < k && i < Capacity; i++ {
		p[i] = gf256.Zero
	}
}

// Scale multiplies every coefficient by e in place.
func (p *Polynomial) Scale(e gf256.Element) {
	for i := range p {
		p[i] = gf256.Mul(p[i], e)
	}
}

// AddInPlace adds q to p coefficient by coefficient.
func (p *Polynomial) AddInPlace(q *Polynomial) {
	for i := range p {
		p[i] = gf256.Add(p[i], q[i])
	}
}

// Evaluate returns p(x).
func (p *Polynomial) Evaluate(x gf256.Element) gf256.Element {
	result := gf256.Zero
	for i := p.Degree(); i >= 0; i-- {
		result = gf256.Add(gf256.Mul(result, x), p[i])
	}
	return result
}

// Bytes returns the values of the coefficients x^(n-1) down to x^0.
func (p *Polynomial) Bytes(n int) []byte {
	if n < 0 || n > Capacity {
		panic(fmt.Errorf("%w: %d coefficients requested", ErrInvariantViolation, n))
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = p[n-1-i].Value()
	}
	return out
}

// String renders the nonzero terms lowest power first, e.g.
// "α^0 * x^0 + α^0 * x^1".
func (p *Polynomial) String() string {
	var terms []string
	for i := 0; i <= p.Degree(); i++ {
		if p[i].IsZero() {
			continue
		}
		terms = append(terms, fmt.Sprintf("%s * x^%d", p[i], i))
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

func checkIndex(i int) {
	if i < 0 || i >= Capacity {
		panic(fmt.Errorf("%w: coefficient index %d outside [0,%d]", ErrInvariantViolation, i, Capacity-1))
	}
}
