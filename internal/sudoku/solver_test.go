package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

// eulerPuzzle is grid 01 of the Project Euler #96 collection.
const (
	eulerPuzzle   = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	eulerSolution = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"
)

func boardToString(b *Board) string {
	var out [Size * Size]byte
	for r := range Size {
		for c := range Size {
			out[r*Size+c] = byte('0' + b.Get(r, c))
		}
	}
	return string(out[:])
}

// assertComplete checks that every row, column and box holds each of 1-9
// exactly once.
func assertComplete(t *testing.T, b *Board) {
	t.Helper()
	for i := range Size {
		var row, col, box [Size + 1]int
		for j := range Size {
			row[b.Get(i, j)]++
			col[b.Get(j, i)]++
			box[b.Get(i/3*3+j/3, i%3*3+j%3)]++
		}
		for v := 1; v <= Size; v++ {
			assert.Equal(t, 1, row[v], "row %d digit %d", i, v)
			assert.Equal(t, 1, col[v], "col %d digit %d", i, v)
			assert.Equal(t, 1, box[v], "box %d digit %d", i, v)
		}
	}
}

func TestSolveKnownPuzzles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		puzzle  string
		want    string
		wantRow []int
	}{
		{
			name:    "classic",
			puzzle:  classicPuzzle,
			want:    classicSolution,
			wantRow: []int{5, 3, 4, 6, 7, 8, 9, 1, 2},
		},
		{
			name:   "euler 01",
			puzzle: eulerPuzzle,
			want:   eulerSolution,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b := boardFromString(t, test.puzzle)
			require.True(t, Solve(b))
			assertComplete(t, b)
			assert.Equal(t, test.want, boardToString(b))
			if test.wantRow != nil {
				for col, want := range test.wantRow {
					assert.Equal(t, want, b.Get(0, col))
				}
			}
		})
	}
}

func TestSolveEmptyGrid(t *testing.T) {
	t.Parallel()

	b := &Board{}
	require.True(t, Solve(b))
	assertComplete(t, b)

	// the fixed scan and trial orders make even the fully unconstrained
	// search deterministic
	want := "123456789456789123789123456214365897365897214897214365531642978642978531978531642"
	assert.Equal(t, want, boardToString(b))
}

func TestSolveLeavesNoResidueOnFailure(t *testing.T) {
	t.Parallel()

	// two 5s in row 0; the lone hole in that row admits only 1 or 2,
	// both of which already sit in its column
	contradictory := "553467890" +
		"000000001" +
		"000000002" +
		"000000000000000000000000000000000000000000000000000000"

	b := boardFromString(t, contradictory)
	before := b.Grid()

	require.False(t, Solve(b))
	assert.Equal(t, before, b.Grid())
}

func TestSolveContradictoryGivens(t *testing.T) {
	t.Parallel()

	// the 81-digit example string the upstream docs circulated has a
	// mistyped last row that puts two 1s in the last column; the solver
	// does not pre-validate givens, it just exhausts the search
	mistyped := "530070000600195000098000060800060003400803001700020006060000280000419005900005001"

	b := boardFromString(t, mistyped)
	before := b.Grid()

	require.False(t, Solve(b))
	assert.Equal(t, before, b.Grid())
}

func TestSolveSolvedBoardIsIdempotent(t *testing.T) {
	t.Parallel()

	b := boardFromString(t, classicSolution)
	before := b.Grid()

	require.True(t, Solve(b))
	assert.Equal(t, before, b.Grid())
}
