package reedsolomon

import (
	"fmt"

	"github.com/Davincible/qrecc/pkg/gf256"
)

// MaxCodewords is the largest generator degree a Polynomial can hold.
const MaxCodewords = Capacity - 1

// BuildGenerator returns g(x) = (x + α^0)(x + α^1)...(x + α^(n-1)).
//
// The product is built one linear factor at a time: multiplying by
// (x + α^i) takes every coefficient times α^i plus its lower neighbour,
// and the new top coefficient is α^0.
func BuildGenerator(n int) (Polynomial, error) {
	var g Polynomial
	if err := validateCodewords(n); err != nil {
		return g, err
	}

	g[0] = gf256.One
	g[1] = gf256.One

	for i := 1; i < n; i++ {
		var next Polynomial
		root := gf256.Exp(i)
		for j := 0; j <= i+1; j++ {
			if j == i+1 {
				next[j] = gf256.One
				continue
			}
			lower := gf256.Zero
			if j > 0 {
				lower = g[j-1]
			}
			next[j] = gf256.Add(gf256.Mul(g[j], root), lower)
		}
		g = next
	}

	return g, nil
}

func validateCodewords(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: need at least 1 correction codeword, got %d", ErrInvalidParameter, n)
	}
	if n > MaxCodewords {
		return fmt.Errorf("%w: %d correction codewords exceeds maximum %d", ErrInvalidParameter, n, MaxCodewords)
	}
	return nil
}
