package shamir

import (
	"math/big"
)

// Polynomial is a polynomial with rational coefficients.
// Coefficients[0] is the highest-degree coefficient and the last one is the
// constant term.
type Polynomial struct {
	Coefficients []*big.Rat
}

// NewPolynomial creates a polynomial from coefficients ordered highest degree first.
func NewPolynomial(coefficients []*big.Rat) *Polynomial {
	return &Polynomial{Coefficients: coefficients}
}

// Degree returns the nominal degree, len(Coefficients)-1. Leading zero
// coefficients are kept, so a line through three points has degree 2 here.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Constant returns a copy of the constant term, or zero for an empty polynomial.
func (p *Polynomial) Constant() *big.Rat {
	if len(p.Coefficients) == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.Coefficients[len(p.Coefficients)-1])
}

// Evaluate evaluates the polynomial at point x using Horner's method.
func (p *Polynomial) Evaluate(x *big.Rat) *big.Rat {
	result := new(big.Rat)
	for _, c := range p.Coefficients {
		result.Mul(result, x)
		result.Add(result, c)
	}
	return result
}

// Float64s returns the coefficients as float64, highest degree first.
// The second result is false if any coefficient was rounded.
func (p *Polynomial) Float64s() ([]float64, bool) {
	out := make([]float64, len(p.Coefficients))
	exact := true
	for i, c := range p.Coefficients {
		f, ok := c.Float64()
		out[i] = f
		exact = exact && ok
	}
	return out, exact
}

// Equal checks if two polynomials have identical coefficient vectors.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p == nil || other == nil {
		return p == other
	}

	if len(p.Coefficients) != len(other.Coefficients) {
		return false
	}

	for i, c := range p.Coefficients {
		if c.Cmp(other.Coefficients[i]) != 0 {
			return false
		}
	}

	return true
}
