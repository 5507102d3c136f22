package sudoku

// AssertionError signals a contract violation at the board API boundary,
// e.g. an out-of-range coordinate. It is raised via panic: a caller that
// trips it has a bug, there is nothing to recover from.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
