package reedsolomon

import (
	"errors"
	"testing"

	"github.com/Davincible/qrecc/pkg/gf256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagePolynomial(t *testing.T) {
	p, err := MessagePolynomial([]byte{0x10, 0x00, 0x02})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, gf256.FromValue(0x10), p.Coefficient(2), "first byte is the highest power")
	assert.True(t, p.Coefficient(1).IsZero())
	assert.Equal(t, gf256.Exp(1), p.Coefficient(0))

	_, err = MessagePolynomial(make([]byte, Capacity+1))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDegree(t *testing.T) {
	var p Polynomial
	assert.Equal(t, -1, p.Degree())

	p, err := MessagePolynomial([]byte{0, 0, 0, 9, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Degree(), "leading zero bytes do not count")
}

func TestShift(t *testing.T) {
	p, err := MessagePolynomial([]byte{3, 2, 1})
	require.NoError(t, err)

	p.Shift(4)
	assert.Equal(t, 6, p.Degree())
	assert.Equal(t, []byte{3, 2, 1, 0, 0, 0, 0}, p.Bytes(7))

	p.Shift(0)
	assert.Equal(t, 6, p.Degree())
}

func TestShift_PastCapacityPanics(t *testing.T) {
	var p Polynomial
	p[Capacity-1] = gf256.One

	assert.Panics(t, func() { p.Shift(1) })

	var low Polynomial
	low[0] = gf256.One
	assert.NotPanics(t, func() { low.Shift(Capacity - 1) })
	assert.Equal(t, Capacity-1, low.Degree())
}

func TestScaleAndAdd(t *testing.T) {
	p, err := MessagePolynomial([]byte{1, 0, 2})
	require.NoError(t, err)

	q := p
	q.Scale(gf256.Exp(1))
	assert.Equal(t, []byte{2, 0, 4}, q.Bytes(3))

	q.AddInPlace(&p)
	assert.Equal(t, []byte{3, 0, 6}, q.Bytes(3))

	q.Scale(gf256.Zero)
	assert.Equal(t, -1, q.Degree())
}

func TestEvaluate(t *testing.T) {
	// p(x) = x^2 + 1 has a double root at 1
	var p Polynomial
	p[2] = gf256.One
	p[0] = gf256.One

	assert.True(t, p.Evaluate(gf256.One).IsZero())
	assert.Equal(t, gf256.Add(gf256.Exp(2), gf256.One), p.Evaluate(gf256.Exp(1)))
	assert.Equal(t, gf256.One, p.Evaluate(gf256.Zero))
}

func TestString(t *testing.T) {
	g, err := BuildGenerator(1)
	require.NoError(t, err)
	assert.Equal(t, "α^0 * x^0 + α^0 * x^1", g.String())

	g, err = BuildGenerator(2)
	require.NoError(t, err)
	assert.Equal(t, "α^1 * x^0 + α^25 * x^1 + α^0 * x^2", g.String())

	var zero Polynomial
	assert.Equal(t, "0", zero.String())
}

func TestCoefficient_OutOfRange(t *testing.T) {
	var p Polynomial
	assert.Panics(t, func() { p.Coefficient(Capacity) })
	assert.Panics(t, func() { p.Coefficient(-1) })
}

func TestRecoverInvariant(t *testing.T) {
	run := func(f func()) (err error) {
		defer recoverInvariant(&err)
		f()
		return nil
	}

	err := run(func() {
		var p Polynomial
		p.Coefficient(300)
	})
	assert.ErrorIs(t, err, ErrInvariantViolation)

	assert.Panics(t, func() {
		_ = run(func() { panic(errors.New("unrelated")) })
	})
	assert.NoError(t, run(func() {}))
}
