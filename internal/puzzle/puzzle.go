// Package puzzle converts between external puzzle representations (81-digit
// strings, JSON files, literal grids) and [sudoku.Board] values. All input
// validation lives here: the board itself assumes well-formed grids.
package puzzle

import (
	"fmt"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// StringLength is the length of a row-major puzzle string.
const StringLength = sudoku.Size * sudoku.Size

var (
	ErrBadLength    = fmt.Errorf("puzzle string must contain exactly %d characters", StringLength)
	ErrBadCharacter = fmt.Errorf("puzzle string must contain only digits")
	ErrBadShape     = fmt.Errorf("puzzle must be a 9x9 grid")
	ErrBadDigit     = fmt.Errorf("puzzle cells must be integers between 0 and 9")
)

// ParseString builds a board from an 81-digit row-major string, 0 marking
// empty cells.
func ParseString(s string) (*sudoku.Board, error) {
	if len(s) != StringLength {
		return nil, fmt.Errorf("%w (got %d)", ErrBadLength, len(s))
	}
	var grid [sudoku.Size][sudoku.Size]int
	for i := 0; i < StringLength; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w (found %q at position %d)", ErrBadCharacter, ch, i)
		}
		grid[i/sudoku.Size][i%sudoku.Size] = int(ch - '0')
	}
	return sudoku.NewBoard(grid), nil
}

// FormatString is the inverse of [ParseString].
func FormatString(b *sudoku.Board) string {
	var out [StringLength]byte
	for row := range sudoku.Size {
		for col := range sudoku.Size {
			out[row*sudoku.Size+col] = byte('0' + b.Get(row, col))
		}
	}
	return string(out[:])
}

// FromGrid builds a board from a literal grid, rejecting out-of-range
// cells with an error instead of the board's assertion panic.
func FromGrid(grid [sudoku.Size][sudoku.Size]int) (*sudoku.Board, error) {
	for row := range grid {
		for col, value := range grid[row] {
			if value < 0 || value > 9 {
				return nil, fmt.Errorf("%w (found %d at row %d, col %d)", ErrBadDigit, value, row, col)
			}
		}
	}
	return sudoku.NewBoard(grid), nil
}

func fromRows(rows [][]int) (*sudoku.Board, error) {
	if len(rows) != sudoku.Size {
		return nil, fmt.Errorf("%w (got %d rows)", ErrBadShape, len(rows))
	}
	var grid [sudoku.Size][sudoku.Size]int
	for r, row := range rows {
		if len(row) != sudoku.Size {
			return nil, fmt.Errorf("%w (row %d has %d columns)", ErrBadShape, r, len(row))
		}
		copy(grid[r][:], row)
	}
	return FromGrid(grid)
}
