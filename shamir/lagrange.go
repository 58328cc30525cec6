package shamir

import (
	"fmt"
	"math/big"
)

// Interpolate returns the unique polynomial of degree len(points)-1 passing
// through every point, computed exactly by Lagrange interpolation.
//
// Each basis polynomial L_i(x) = prod_{j!=i} (x - x_j) / (x_i - x_j) is
// expanded into coefficients and accumulated with weight y_i, so no
// Vandermonde matrix is formed.
func Interpolate(points []Share) (*Polynomial, error) {
	k := len(points)
	if k == 0 {
		return nil, fmt.Errorf("%w: no points to interpolate", ErrInsufficientShares)
	}

	// acc is ordered lowest degree first until the final reversal.
	acc := make([]*big.Rat, k)
	for i := range acc {
		acc[i] = new(big.Rat)
	}

	for i := range points {
		xi := big.NewInt(points[i].X)

		basis := make([]*big.Int, 1, k)
		basis[0] = big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range points {
			if i == j {
				continue
			}

			xj := big.NewInt(points[j].X)

			// denominator *= (x_i - x_j)
			diff := new(big.Int).Sub(xi, xj)
			if diff.Sign() == 0 {
				return nil, fmt.Errorf("%w: duplicate x-coordinate %d", ErrSingularSystem, points[i].X)
			}
			denominator.Mul(denominator, diff)

			basis = mulLinear(basis, xj)
		}

		// acc += basis * y_i / denominator
		weight := new(big.Rat).SetFrac(points[i].Y, denominator)
		term := new(big.Rat)
		for d, c := range basis {
			term.SetInt(c)
			term.Mul(term, weight)
			acc[d].Add(acc[d], term)
		}
	}

	coefficients := make([]*big.Rat, k)
	for d, c := range acc {
		coefficients[k-1-d] = c
	}

	return NewPolynomial(coefficients), nil
}

// mulLinear multiplies a lowest-degree-first polynomial by (x - root).
func mulLinear(poly []*big.Int, root *big.Int) []*big.Int {
	out := make([]*big.Int, len(poly)+1)
	for i := range out {
		out[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for d, c := range poly {
		out[d+1].Add(out[d+1], c)
		out[d].Sub(out[d], tmp.Mul(c, root))
	}

	return out
}
