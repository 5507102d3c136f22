package sudoku

// Solve fills every empty cell of b so that no digit repeats within any
// row, column or 3x3 box, and reports whether such a completion exists.
//
// The search is a plain recursive depth-first walk: take the first empty
// cell in row-major order, try digits 1-9 ascending, recurse on the
// first legal placement, undo and move on when the subtree fails. On a
// false return the board is exactly as it was on entry (every tentative
// placement has been cleared), so the caller never sees residue from a
// failed branch. Contradictory givens are not detected up front; they
// simply exhaust the search and come back false.
//
// Recursion depth is bounded by the number of empty cells (at most 81).
// The board must not be shared with another goroutine for the duration
// of the call.
func Solve(b *Board) bool {
	row, col, ok := b.FindNextEmpty()
	if !ok {
		return true
	}
	for value := 1; value <= Size; value++ {
		if !b.IsPlacementValid(row, col, value) {
			continue
		}
		b.Set(row, col, value)
		if Solve(b) {
			return true
		}
		b.Set(row, col, Empty)
	}
	return false
}
