package shamir

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveVandermonde(t *testing.T) {
	tests := []struct {
		name     string
		points   []Share
		expected []*big.Rat
	}{
		{"line through three points", sharesAt(1, 2, 3), rats(0, 10, 0)},
		{"quadratic", sample(rats(1, 0, 3), 1, 2, 3), rats(1, 0, 3)},
		{"cubic", sample(rats(-2, 0, 1, -7), 4, 1, 3, 2), rats(-2, 0, 1, -7)},
		{"single point", []Share{{X: 9, Y: big.NewInt(-4)}}, rats(-4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly, err := SolveVandermonde(tt.points)
			require.NoError(t, err)
			assertCoefficients(t, tt.expected, poly)
		})
	}
}

func TestSolveVandermondeErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := SolveVandermonde([]Share{})
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("duplicate x", func(t *testing.T) {
		points := []Share{
			{X: 3, Y: big.NewInt(1)},
			{X: 3, Y: big.NewInt(2)},
		}
		_, err := SolveVandermonde(points)
		assert.ErrorIs(t, err, ErrSingularSystem)
	})
}

func TestVandermondeSystem(t *testing.T) {
	m := vandermondeSystem([]Share{
		{X: 2, Y: big.NewInt(11)},
		{X: 3, Y: big.NewInt(13)},
	})

	require.Len(t, m, 2)
	assert.Equal(t, "2/1 1/1 11/1", m[0][0].String()+" "+m[0][1].String()+" "+m[0][2].String())
	assert.Equal(t, "3/1 1/1 13/1", m[1][0].String()+" "+m[1][1].String()+" "+m[1][2].String())
}

func TestSolversAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := range 50 {
		k := rng.Intn(7) + 1

		seen := make(map[int64]bool)
		points := make([]Share, 0, k)
		for len(points) < k {
			x := rng.Int63n(1000) + 1
			if seen[x] {
				continue
			}
			seen[x] = true
			points = append(points, Share{X: x, Y: big.NewInt(rng.Int63n(1 << 40))})
		}

		lagrange, err := Interpolate(points)
		require.NoError(t, err, "round %d", round)

		vandermonde, err := SolveVandermonde(points)
		require.NoError(t, err, "round %d", round)

		assert.True(t, lagrange.Equal(vandermonde), "round %d: solvers disagree", round)
	}
}

func BenchmarkSolveVandermonde(b *testing.B) {
	points := sample(rats(3, -1, 4, 1, -5, 9, 2, 6), 1, 2, 3, 4, 5, 6, 7, 8)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = SolveVandermonde(points)
	}
}
