package shamir

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharesAt(xs ...int64) []Share {
	shares := make([]Share, len(xs))
	for i, x := range xs {
		shares[i] = Share{X: x, Y: big.NewInt(x * 10)}
	}
	return shares
}

func indices(shares []Share) []int64 {
	out := make([]int64, len(shares))
	for i, s := range shares {
		out[i] = s.X
	}
	return out
}

func TestSelectShares(t *testing.T) {
	tests := []struct {
		name     string
		xs       []int64
		k        int
		expected []int64
	}{
		{"exact threshold", []int64{1, 2, 3}, 3, []int64{1, 2, 3}},
		{"smallest of many", []int64{9, 4, 7, 1, 12}, 2, []int64{1, 4}},
		{"threshold one", []int64{5, 3}, 1, []int64{3}},
		{"sparse indices", []int64{100, 2, 50}, 3, []int64{2, 50, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sharesAt(tt.xs...)
			before := indices(input)

			selected, err := SelectShares(input, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, indices(selected))
			assert.Equal(t, before, indices(input), "input must not be reordered")
		})
	}
}

func TestSelectSharesDeterministic(t *testing.T) {
	xs := []int64{11, 3, 8, 1, 6, 15, 2}
	rng := rand.New(rand.NewSource(1))

	for range 20 {
		shuffled := sharesAt(xs...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		selected, err := SelectShares(shuffled, 4)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 6}, indices(selected))
	}
}

func TestSelectSharesErrors(t *testing.T) {
	t.Run("insufficient", func(t *testing.T) {
		selected, err := SelectShares(sharesAt(1, 2), 3)
		assert.ErrorIs(t, err, ErrInsufficientShares)
		assert.Nil(t, selected)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := SelectShares(nil, 1)
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("zero threshold", func(t *testing.T) {
		_, err := SelectShares(sharesAt(1), 0)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestSelectSharesAppendDoesNotAlias(t *testing.T) {
	input := sharesAt(1, 2, 3)

	selected, err := SelectShares(input, 2)
	require.NoError(t, err)

	selected = append(selected, Share{X: 99, Y: big.NewInt(0)})
	assert.Len(t, selected, 3)
	assert.Equal(t, []int64{1, 2, 3}, indices(input))
}
