package shamir

import (
	"fmt"
	"math/big"
)

const (
	// MinBase is the smallest supported numeral base.
	MinBase = 2
	// MaxBase is the largest supported numeral base (digits 0-9 then a-z).
	MaxBase = 36
)

// FloatBoundary is the largest magnitude below which every integer is exactly
// representable as a float64 (2^53).
var FloatBoundary = new(big.Int).Lsh(big.NewInt(1), 53)

// DecodeNumeral converts a numeral string in the given base into an integer.
// Letters are case-insensitive digits 10..35. The string is not trimmed,
// and signs, prefixes and separators are rejected.
func DecodeNumeral(value string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: base %d out of range [%d, %d]", ErrInvalidNumeral, base, MinBase, MaxBase)
	}

	if len(value) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidNumeral)
	}

	bigBase := big.NewInt(int64(base))
	result := new(big.Int)
	digit := new(big.Int)

	for pos := 0; pos < len(value); pos++ {
		d := digitValue(value[pos])
		if d < 0 || d >= base {
			return nil, fmt.Errorf("%w: character %q at position %d is not a base-%d digit",
				ErrInvalidNumeral, value[pos], pos, base)
		}

		result.Mul(result, bigBase)
		result.Add(result, digit.SetInt64(int64(d)))
	}

	return result, nil
}

// digitValue returns the digit value of c or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// toFloat64 converts v to the nearest float64 and reports the rounding direction.
func toFloat64(v *big.Int) (float64, big.Accuracy) {
	if v.CmpAbs(FloatBoundary) <= 0 {
		return float64(v.Int64()), big.Exact
	}

	return new(big.Float).SetInt(v).Float64()
}
