package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	// Spot checks against the published antilog table
	tests := []struct {
		exp   int
		value byte
	}{
		{0, 1},
		{1, 2},
		{7, 128},
		{8, 29},
		{9, 58},
		{25, 3},
		{100, 17},
		{254, 142},
		{255, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.value, Exp(tt.exp).Value(), "α^%d", tt.exp)
	}

	assert.Equal(t, byte(1), expTable[255], "table must wrap around")
}

func TestRoundTrip(t *testing.T) {
	for v := 1; v <= 255; v++ {
		assert.Equal(t, byte(v), FromValue(byte(v)).Value(), "value %d", v)
	}

	for e := 0; e < Order; e++ {
		exp, nonzero := FromValue(Exp(e).Value()).Log()
		require.True(t, nonzero)
		assert.Equal(t, e, exp, "exponent %d", e)
	}
}

func TestZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.Equal(t, byte(0), Zero.Value())
	assert.Equal(t, Zero, FromValue(0))
	assert.Equal(t, Element{}, Zero, "zero value of Element is Zero")

	_, ok := Zero.Log()
	assert.False(t, ok)
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "α^25", Exp(25).String())
}

func TestExpReducesModulo255(t *testing.T) {
	assert.Equal(t, Exp(0), Exp(255))
	assert.Equal(t, Exp(3), Exp(258))
	assert.Equal(t, Exp(200), Exp(200+4*Order))
}

func TestExpNegativePanics(t *testing.T) {
	assert.PanicsWithError(t, "invariant violation: negative exponent -1", func() {
		Exp(-1)
	})
}

func TestAddIdentity(t *testing.T) {
	for e := 0; e < Order; e++ {
		a := Exp(e)
		assert.Equal(t, a, Add(a, Zero))
		assert.Equal(t, a, Add(Zero, a))
	}
	assert.Equal(t, Zero, Add(Zero, Zero))
}

func TestAddSelfIsZero(t *testing.T) {
	for e := 0; e < Order; e++ {
		assert.True(t, Add(Exp(e), Exp(e)).IsZero(), "α^%d + α^%d", e, e)
	}
}

func TestAddMatchesXOR(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{1, 2, 3},
		{0x53, 0xCA, 0x99},
		{0xFF, 0x01, 0xFE},
		{0x80, 0x80, 0x00},
	}

	for _, tt := range tests {
		got := Add(FromValue(tt.a), FromValue(tt.b))
		assert.Equal(t, tt.want, got.Value())
	}
}

// The XOR of two byte values never leaves the byte range, so addition never
// needs a reduction against the primitive polynomial.
func TestAddNeverExceedsByteRange(t *testing.T) {
	for a := 1; a <= 255; a++ {
		for b := 1; b <= 255; b++ {
			sum := int(FromValue(byte(a)).Value()) ^ int(FromValue(byte(b)).Value())
			require.LessOrEqual(t, sum, 255)
			assert.Equal(t, byte(sum), Add(FromValue(byte(a)), FromValue(byte(b))).Value())
		}
	}
}

func TestMulZeroAbsorbs(t *testing.T) {
	for e := 0; e < Order; e++ {
		assert.Equal(t, Zero, Mul(Exp(e), Zero))
		assert.Equal(t, Zero, Mul(Zero, Exp(e)))
	}
}

func TestMul(t *testing.T) {
	assert.Equal(t, Exp(5), Mul(Exp(2), Exp(3)))
	assert.Equal(t, Exp(1), Mul(Exp(200), Exp(56)))
	assert.Equal(t, byte(29), Mul(FromValue(128), FromValue(2)).Value())

	// 0x53 * 0xCA under 0x11D
	assert.Equal(t, byte(schoolbook(0x53, 0xCA)), Mul(FromValue(0x53), FromValue(0xCA)).Value())
}

func TestMulMatchesSchoolbook(t *testing.T) {
	for a := 0; a <= 255; a += 7 {
		for b := 0; b <= 255; b += 11 {
			got := Mul(FromValue(byte(a)), FromValue(byte(b))).Value()
			assert.Equal(t, schoolbook(byte(a), byte(b)), got, "%d * %d", a, b)
		}
	}
}

func TestInverseAndDiv(t *testing.T) {
	for v := 1; v <= 255; v++ {
		e := FromValue(byte(v))
		assert.Equal(t, One, Mul(e, Inverse(e)), "value %d", v)
		assert.Equal(t, One, Div(e, e))
	}

	assert.Equal(t, Zero, Div(Zero, Exp(9)))
	assert.Panics(t, func() { Div(One, Zero) })
	assert.Panics(t, func() { Inverse(Zero) })
}

func TestPow(t *testing.T) {
	assert.Equal(t, One, Pow(Zero, 0))
	assert.Equal(t, Zero, Pow(Zero, 3))
	assert.Equal(t, Exp(6), Pow(Exp(2), 3))
	assert.Equal(t, One, Pow(Exp(1), Order))
}

// schoolbook multiplies in GF(256) without tables
func schoolbook(a, b byte) byte {
	var result uint16
	x, y := uint16(a), uint16(b)
	for y > 0 {
		if y&1 == 1 {
			result ^= x
		}
		x <<= 1
		if x&0x100 != 0 {
			x ^= Primitive
		}
		y >>= 1
	}
	return byte(result)
}
