// Package shamir reconstructs the constant term of a polynomial from
// threshold shares whose values are encoded in arbitrary numeral bases.
//
// Arithmetic is exact: numerals decode into big.Int and interpolation runs
// over big.Rat. This is interpolation over the rationals, not a finite-field
// secret sharing scheme.
package shamir

import (
	"fmt"
	"strings"
)

// Method selects the interpolation algorithm.
type Method int

const (
	// MethodLagrange expands Lagrange basis polynomials. This is the default.
	MethodLagrange Method = iota
	// MethodVandermonde solves the Vandermonde system by elimination.
	MethodVandermonde
)

func (m Method) String() string {
	switch m {
	case MethodLagrange:
		return "lagrange"
	case MethodVandermonde:
		return "vandermonde"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod parses a method name as printed by Method.String.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "lagrange":
		return MethodLagrange, nil
	case "vandermonde":
		return MethodVandermonde, nil
	default:
		return 0, fmt.Errorf("shamir: unknown method %q", name)
	}
}

type options struct {
	method Method
}

// Option configures Reconstruct.
type Option func(*options)

// WithMethod selects the interpolation algorithm.
func WithMethod(method Method) Option {
	return func(o *options) {
		o.method = method
	}
}

// Reconstruct parses a share document and reconstructs its polynomial.
func Reconstruct(doc []byte, opts ...Option) (*Result, error) {
	set, err := ParseShareSet(doc)
	if err != nil {
		return nil, err
	}

	return ReconstructShareSet(set, opts...)
}

// ReconstructShareSet decodes the shares of set, selects the K shares with
// the smallest indices and interpolates them.
func ReconstructShareSet(set *ShareSet, opts ...Option) (*Result, error) {
	o := &options{method: MethodLagrange}
	for _, opt := range opts {
		opt(o)
	}

	shares, err := DecodeShares(set)
	if err != nil {
		return nil, err
	}

	selected, err := SelectShares(shares, set.K)
	if err != nil {
		return nil, err
	}

	var poly *Polynomial
	switch o.method {
	case MethodLagrange:
		poly, err = Interpolate(selected)
	case MethodVandermonde:
		poly, err = SolveVandermonde(selected)
	default:
		return nil, fmt.Errorf("shamir: unknown method %s", o.method)
	}
	if err != nil {
		return nil, err
	}

	return NewResult(set, shares, selected, poly, o.method), nil
}
