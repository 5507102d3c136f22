package puzzle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type puzzleFile struct {
	Puzzle [][]int `json:"puzzle"`
}

// LoadFile reads a puzzle from a JSON file holding either an object with
// a "puzzle" key or a bare 9x9 array.
func LoadFile(path string) (*sudoku.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read puzzle file: %w", err)
	}

	var file puzzleFile
	if err := json.Unmarshal(data, &file); err != nil || file.Puzzle == nil {
		var rows [][]int
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("unable to parse puzzle file %s: %w", path, err)
		}
		file.Puzzle = rows
	}

	board, err := fromRows(file.Puzzle)
	if err != nil {
		return nil, fmt.Errorf("invalid puzzle in %s: %w", path, err)
	}
	return board, nil
}

// SaveFile writes the board to path as a "puzzle"-keyed JSON object.
func SaveFile(path string, b *sudoku.Board) error {
	rows := make([][]int, sudoku.Size)
	grid := b.Grid()
	for r := range rows {
		rows[r] = grid[r][:]
	}
	data, err := json.MarshalIndent(puzzleFile{Puzzle: rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal puzzle: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write puzzle file: %w", err)
	}
	return nil
}
