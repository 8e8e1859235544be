package diophantine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/osmiumic/temper/diophantine"
	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/normalform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInts(t *testing.T, rows [][]int64) *intmat.Matrix {
	t.Helper()
	m, err := intmat.FromInts(rows)
	require.NoError(t, err)

	return m
}

func randomMatrix(t *testing.T, rng *rand.Rand, r, c int, span int64) *intmat.Matrix {
	t.Helper()
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int64N(2*span+1) - span
		}
	}

	return mustInts(t, rows)
}

// TestSolveDiagonal checks a hand-solvable system.
func TestSolveDiagonal(t *testing.T) {
	a := mustInts(t, [][]int64{{2, 0}, {0, 3}})
	b := intmat.Col(4, 9)

	x, err := diophantine.Solve(a, b)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(intmat.Col(2, 3), x), "got\n%s", x)
}

// TestSolveUnsolvable checks that 2x = 3 has no integer solution.
func TestSolveUnsolvable(t *testing.T) {
	_, err := diophantine.Solve(intmat.Row(2), intmat.Row(3))
	require.ErrorIs(t, err, diophantine.ErrUnsolvable)
}

// TestSolveShapeErrors checks the precondition sentinels.
func TestSolveShapeErrors(t *testing.T) {
	_, err := diophantine.Solve(intmat.Row(1, 2), intmat.Col(1, 2))
	require.ErrorIs(t, err, diophantine.ErrDimensionMismatch)

	_, err = diophantine.Solve(nil, intmat.Row(1))
	require.ErrorIs(t, err, diophantine.ErrNilMatrix)
}

// TestSolveConsistentProperty: A·Solve(A, A·X₀) = A·X₀ for random consistent systems.
func TestSolveConsistentProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(41, 43))
	for trial := 0; trial < 40; trial++ {
		d := 2 + rng.IntN(4)
		r := 1 + rng.IntN(d)
		k := 1 + rng.IntN(3)
		a := randomMatrix(t, rng, r, d, 7)
		x0 := randomMatrix(t, rng, d, k, 5)
		b, err := intmat.Mul(a, x0)
		require.NoError(t, err)

		x, err := diophantine.Solve(a, b)
		require.NoError(t, err, "A=\n%sB=\n%s", a, b)

		ax, err := intmat.Mul(a, x)
		require.NoError(t, err)
		require.True(t, intmat.Equal(b, ax))
	}
}

// TestPreimageMeantone checks M·G = I for meantone and that the generators
// are an octave-like and a fifth-like interval.
func TestPreimageMeantone(t *testing.T) {
	m := mustInts(t, [][]int64{{1, 0, -4}, {0, 1, 4}})

	g, err := diophantine.Preimage(m)
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 2, g.Cols())

	mg, err := intmat.Mul(m, g)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(intmat.Identity(2), mg))
}

// TestPreimageProperty: M·Preimage(M) = I for random saturated mappings.
func TestPreimageProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(47, 53))
	for trial := 0; trial < 30; trial++ {
		d := 2 + rng.IntN(4)
		r := 1 + rng.IntN(d)
		m := randomMatrix(t, rng, r, d, 6)
		rank, err := normalform.Rank(m)
		require.NoError(t, err)
		if rank < r {
			continue
		}
		sat, err := normalform.DefactoredHNF(m)
		require.NoError(t, err)

		g, err := diophantine.Preimage(sat)
		require.NoError(t, err)

		mg, err := intmat.Mul(sat, g)
		require.NoError(t, err)
		require.True(t, intmat.Equal(intmat.Identity(r), mg))
	}
}
