package shamir

import "fmt"

// SelectShares returns the k shares with the smallest indices, sorted ascending.
// The input slice is left untouched.
func SelectShares(shares []Share, k int) ([]Share, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: threshold must be positive, got %d", ErrMalformedInput, k)
	}

	if len(shares) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(shares))
	}

	sorted := make([]Share, len(shares))
	copy(sorted, shares)
	sortShares(sorted)

	return sorted[:k:k], nil
}
