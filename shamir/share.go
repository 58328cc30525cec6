package shamir

import (
	"fmt"
	"math/big"
	"sort"
)

// RawShare is a share value as it appears in the input document.
type RawShare struct {
	// Base is the numeral base of Value, in [2, 36].
	Base int
	// Value is the encoded y-coordinate.
	Value string
}

// ShareSet is a parsed share document.
type ShareSet struct {
	// N is the declared total share count. Informational only.
	N int
	// K is the reconstruction threshold.
	K int
	// Shares maps share index to its encoded value.
	Shares map[int64]RawShare
}

// Share is a decoded share: a point (X, Y) on the hidden polynomial.
type Share struct {
	// X is the share index, used as the x-coordinate.
	X int64
	// Y is the decoded y-coordinate.
	Y *big.Int
	// Base and Value keep the encoding the share was decoded from.
	Base  int
	Value string
}

// Float returns Y as a float64 with the accuracy of the conversion.
func (s Share) Float() (float64, big.Accuracy) {
	return toFloat64(s.Y)
}

// Exact reports whether Y is representable as a float64 without rounding.
func (s Share) Exact() bool {
	_, acc := s.Float()
	return acc == big.Exact
}

// Clone creates a deep copy of the share.
func (s Share) Clone() Share {
	out := s
	if s.Y != nil {
		out.Y = new(big.Int).Set(s.Y)
	}
	return out
}

// Equal checks if two shares describe the same point.
func (s Share) Equal(other Share) bool {
	if s.Y == nil || other.Y == nil {
		return s.X == other.X && s.Y == other.Y
	}
	return s.X == other.X && s.Y.Cmp(other.Y) == 0
}

// DecodeShares decodes every raw share of the set, sorted ascending by index.
func DecodeShares(set *ShareSet) ([]Share, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil share set", ErrMalformedInput)
	}

	shares := make([]Share, 0, len(set.Shares))
	for index, raw := range set.Shares {
		y, err := DecodeNumeral(raw.Value, raw.Base)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", index, err)
		}

		shares = append(shares, Share{
			X:     index,
			Y:     y,
			Base:  raw.Base,
			Value: raw.Value,
		})
	}

	sortShares(shares)

	return shares, nil
}

func sortShares(shares []Share) {
	sort.Slice(shares, func(i, j int) bool {
		return shares[i].X < shares[j].X
	})
}
