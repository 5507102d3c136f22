package sudoku

import (
	"fmt"
	"strings"
)

const (
	// Size is the number of cells per row, column and value range top.
	Size = 9
	// Empty marks an unfilled cell.
	Empty = 0

	boxSize = 3
)

// Board is a standard 9x9 Sudoku grid. Cells hold 0 (empty) or a digit
// 1-9. The zero value is a fully empty board.
type Board struct {
	cells [Size][Size]int
}

// NewBoard copies grid into a fresh board. Values outside [0,9] panic
// with [AssertionError]; range-checking untrusted input is the loader's
// job, not the board's.
func NewBoard(grid [Size][Size]int) *Board {
	b := &Board{}
	for row := range grid {
		for col, value := range grid[row] {
			b.Set(row, col, value)
		}
	}
	return b
}

func checkIndex(name string, i int) {
	if i < 0 || i >= Size {
		panic(AssertionError{fmt.Sprintf("%s %d out of range [0,%d]", name, i, Size-1)})
	}
}

// Get returns the digit at (row, col), or [Empty].
func (b *Board) Get(row, col int) int {
	checkIndex("row", row)
	checkIndex("col", col)
	return b.cells[row][col]
}

// Set stores value at (row, col) unconditionally. Whether the placement
// is legal is the solver's concern; clearing a cell is Set(row, col, 0).
func (b *Board) Set(row, col, value int) {
	checkIndex("row", row)
	checkIndex("col", col)
	if value < Empty || value > Size {
		panic(AssertionError{fmt.Sprintf("value %d out of range [0,%d]", value, Size)})
	}
	b.cells[row][col] = value
}

// IsPlacementValid reports whether value could be placed at (row, col)
// without repeating a digit elsewhere in the cell's row, column or 3x3
// box. The cell itself is excluded from the scan, so the answer does not
// depend on its current occupant.
func (b *Board) IsPlacementValid(row, col, value int) bool {
	checkIndex("row", row)
	checkIndex("col", col)
	if value < 1 || value > Size {
		panic(AssertionError{fmt.Sprintf("value %d out of range [1,%d]", value, Size)})
	}
	for i := range Size {
		if i != col && b.cells[row][i] == value {
			return false
		}
		if i != row && b.cells[i][col] == value {
			return false
		}
	}
	boxRow, boxCol := row/boxSize*boxSize, col/boxSize*boxSize
	for r := boxRow; r < boxRow+boxSize; r++ {
		for c := boxCol; c < boxCol+boxSize; c++ {
			if (r != row || c != col) && b.cells[r][c] == value {
				return false
			}
		}
	}
	return true
}

// FindNextEmpty returns the first empty cell in row-major order, or
// ok=false when the grid is full. The scan order determines which of
// several completions the solver reaches first, so it stays fixed.
func (b *Board) FindNextEmpty() (row, col int, ok bool) {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Grid returns a copy of the cell array.
func (b *Board) Grid() [Size][Size]int {
	return b.cells
}

// EmptyCount returns the number of unfilled cells.
func (b *Board) EmptyCount() (count int) {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				count++
			}
		}
	}
	return count
}

// String renders the grid with band separators every three cells and a
// dot for each empty cell.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 25) + "\n")
	for row := range Size {
		if row%boxSize == 0 && row != 0 {
			sb.WriteString(strings.Repeat("-", 25) + "\n")
		}
		for col := range Size {
			if col%boxSize == 0 && col != 0 {
				sb.WriteString("| ")
			}
			if value := b.cells[row][col]; value == Empty {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", value)
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("=", 25))
	return sb.String()
}
