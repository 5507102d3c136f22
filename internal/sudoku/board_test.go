package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromString builds a board from an 81-digit row-major string.
func boardFromString(t *testing.T, s string) *Board {
	t.Helper()
	require.Len(t, s, Size*Size)
	var grid [Size][Size]int
	for i, ch := range s {
		require.True(t, '0' <= ch && ch <= '9')
		grid[i/Size][i%Size] = int(ch - '0')
	}
	return NewBoard(grid)
}

const classicPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestGetSet(t *testing.T) {
	t.Parallel()

	b := &Board{}
	assert.Equal(t, Empty, b.Get(4, 7))

	b.Set(4, 7, 9)
	assert.Equal(t, 9, b.Get(4, 7))

	b.Set(4, 7, Empty)
	assert.Equal(t, Empty, b.Get(4, 7))
}

func TestBoundsViolationsPanic(t *testing.T) {
	t.Parallel()

	b := &Board{}
	assert.Panics(t, func() { b.Get(-1, 0) })
	assert.Panics(t, func() { b.Get(0, 9) })
	assert.Panics(t, func() { b.Set(9, 0, 1) })
	assert.Panics(t, func() { b.Set(0, 0, 10) })
	assert.Panics(t, func() { b.Set(0, 0, -1) })
	assert.Panics(t, func() { b.IsPlacementValid(0, 0, 0) })
	assert.Panics(t, func() { b.IsPlacementValid(0, -2, 5) })
}

func TestIsPlacementValid(t *testing.T) {
	t.Parallel()

	b := boardFromString(t, classicPuzzle)

	tests := []struct {
		name          string
		row, col, val int
		want          bool
	}{
		{"row conflict", 0, 2, 5, false},
		{"col conflict", 2, 0, 6, false},
		{"box conflict", 1, 1, 5, false},
		{"no conflict", 0, 2, 4, true},
		{"no conflict elsewhere", 8, 3, 2, true},
		{"conflict across box rows", 2, 3, 1, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, b.IsPlacementValid(test.row, test.col, test.val))
		})
	}
}

func TestIsPlacementValidIgnoresOwnCell(t *testing.T) {
	t.Parallel()

	b := &Board{}
	b.Set(3, 3, 7)
	// the occupant itself must not count as a conflict
	assert.True(t, b.IsPlacementValid(3, 3, 7))
	assert.True(t, b.IsPlacementValid(3, 3, 2))
}

func TestFindNextEmptyRowMajorOrder(t *testing.T) {
	t.Parallel()

	b := boardFromString(t, classicPuzzle)

	row, col, ok := b.FindNextEmpty()
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)

	// filling the first hole must move the scan to the next one in the
	// same row, not to a later row
	b.Set(0, 2, 4)
	row, col, ok = b.FindNextEmpty()
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 3, col)
}

func TestFindNextEmptyOnFullBoard(t *testing.T) {
	t.Parallel()

	b := boardFromString(t, classicSolution)
	_, _, ok := b.FindNextEmpty()
	assert.False(t, ok)
	assert.Equal(t, 0, b.EmptyCount())
}

func TestEmptyCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 81, (&Board{}).EmptyCount())
	assert.Equal(t, 51, boardFromString(t, classicPuzzle).EmptyCount())
}

func TestNewBoardCopiesGrid(t *testing.T) {
	t.Parallel()

	grid := [Size][Size]int{}
	grid[0][0] = 5
	b := NewBoard(grid)

	grid[0][0] = 9
	assert.Equal(t, 5, b.Get(0, 0))

	out := b.Grid()
	out[0][0] = 1
	assert.Equal(t, 5, b.Get(0, 0))
}

func TestString(t *testing.T) {
	t.Parallel()

	// every digit row carries a trailing space, one per rendered cell
	want := strings.Join([]string{
		"=========================",
		"5 3 . | . 7 . | . . . ",
		"6 . . | 1 9 5 | . . . ",
		". 9 8 | . . . | . 6 . ",
		"-------------------------",
		"8 . . | . 6 . | . . 3 ",
		"4 . . | 8 . 3 | . . 1 ",
		"7 . . | . 2 . | . . 6 ",
		"-------------------------",
		". 6 . | . . . | 2 8 . ",
		". . . | 4 1 9 | . . 5 ",
		". . . | . 8 . | . 7 9 ",
		"=========================",
	}, "\n")
	assert.Equal(t, want, boardFromString(t, classicPuzzle).String())
}
