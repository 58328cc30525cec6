package shamir

import "errors"

var (
	// ErrMalformedInput is returned when the share document fails structural validation.
	ErrMalformedInput = errors.New("shamir: malformed input")

	// ErrInvalidNumeral is returned when a share value is not a valid numeral for its base,
	// or when the base is outside [2, 36].
	ErrInvalidNumeral = errors.New("shamir: invalid numeral")

	// ErrInsufficientShares is returned when fewer shares than the threshold are available.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrSingularSystem is returned when the interpolation system has no unique solution.
	ErrSingularSystem = errors.New("shamir: interpolation system is singular")
)

// Error kinds reported by ErrorKind.
const (
	KindMalformedInput     = "malformed_input"
	KindInvalidNumeral     = "invalid_numeral"
	KindInsufficientShares = "insufficient_shares"
	KindSingularSystem     = "singular_system"
	KindUnknown            = "unknown"
)

// ErrorKind maps an error returned by this package to a stable identifier.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrInvalidNumeral):
		return KindInvalidNumeral
	case errors.Is(err, ErrInsufficientShares):
		return KindInsufficientShares
	case errors.Is(err, ErrSingularSystem):
		return KindSingularSystem
	default:
		return KindUnknown
	}
}
