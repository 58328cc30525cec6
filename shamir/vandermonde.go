package shamir

import (
	"fmt"
	"math/big"
)

// SolveVandermonde returns the interpolating polynomial by building the
// k x k system A * c = y, with row i equal to [x_i^(k-1), ..., x_i^0], and
// solving it with Gauss-Jordan elimination over the rationals.
func SolveVandermonde(points []Share) (*Polynomial, error) {
	k := len(points)
	if k == 0 {
		return nil, fmt.Errorf("%w: no points to interpolate", ErrInsufficientShares)
	}

	m := vandermondeSystem(points)

	for col := range k {
		pivot := -1
		for row := col; row < k; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}

		if pivot < 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingularSystem, col)
		}

		m[col], m[pivot] = m[pivot], m[col]

		inv := new(big.Rat).Inv(m[col][col])
		for c := col; c <= k; c++ {
			m[col][c].Mul(m[col][c], inv)
		}

		factor := new(big.Rat)
		tmp := new(big.Rat)
		for row := range k {
			if row == col || m[row][col].Sign() == 0 {
				continue
			}

			factor.Set(m[row][col])
			for c := col; c <= k; c++ {
				m[row][c].Sub(m[row][c], tmp.Mul(factor, m[col][c]))
			}
		}
	}

	coefficients := make([]*big.Rat, k)
	for row := range k {
		coefficients[row] = m[row][k]
	}

	return NewPolynomial(coefficients), nil
}

// vandermondeSystem returns the augmented matrix [A | y].
func vandermondeSystem(points []Share) [][]*big.Rat {
	k := len(points)
	m := make([][]*big.Rat, k)

	for i, p := range points {
		row := make([]*big.Rat, k+1)
		x := big.NewInt(p.X)
		power := big.NewInt(1)

		for c := k - 1; c >= 0; c-- {
			row[c] = new(big.Rat).SetInt(power)
			power = new(big.Int).Mul(power, x)
		}

		row[k] = new(big.Rat).SetInt(p.Y)
		m[i] = row
	}

	return m
}
