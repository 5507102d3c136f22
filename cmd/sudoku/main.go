package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sudoku-server/internal/puzzle"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

const exampleString = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

type solveResult struct {
	example  puzzle.Example
	board    *sudoku.Board
	solved   bool
	duration time.Duration
}

func solveExamples() error {
	examples, err := puzzle.Examples()
	if err != nil {
		return err
	}

	results := make([]solveResult, len(examples))
	var g errgroup.Group
	for i, example := range examples {
		g.Go(func() error {
			board, err := puzzle.ParseString(example.Puzzle)
			if err != nil {
				return fmt.Errorf("bundled puzzle %q is malformed: %w", example.Name, err)
			}
			start := time.Now()
			solved := sudoku.Solve(board)
			results[i] = solveResult{example, board, solved, time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		fmt.Printf("\n%s (%s), %d empty cells\n",
			result.example.Name,
			result.example.Difficulty,
			strings.Count(result.example.Puzzle, "0"),
		)
		if result.solved {
			fmt.Printf("solved in %v\n%s\n", result.duration, result.board)
		} else {
			fmt.Println("no solution found")
		}
	}
	return nil
}

func solveCustom(in *bufio.Scanner) error {
	fmt.Println("\nEnter your puzzle as an 81-digit string, 0 for empty cells.")
	fmt.Printf("Example: %s\n\npuzzle> ", exampleString)

	if !in.Scan() {
		return in.Err()
	}

	board, err := puzzle.ParseString(strings.TrimSpace(in.Text()))
	if err != nil {
		return err
	}

	fmt.Printf("\nOriginal puzzle, %d empty cells:\n%s\n", board.EmptyCount(), board)

	start := time.Now()
	if !sudoku.Solve(board) {
		fmt.Println("\nno solution found")
		return nil
	}
	fmt.Printf("\nSolved in %v:\n%s\n", time.Since(start), board)

	fmt.Print("\nsave to file? (path, empty to skip)> ")
	if !in.Scan() {
		return in.Err()
	}
	if path := strings.TrimSpace(in.Text()); path != "" {
		if err := puzzle.SaveFile(path, board); err != nil {
			return err
		}
		fmt.Printf("saved to %s\n", path)
	}
	return nil
}

func main() {
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(`
Sudoku solver
 1) solve the bundled example puzzles
 2) solve a custom 81-digit puzzle
 3) exit

choice> `)
		if !in.Scan() {
			return
		}

		var err error
		switch strings.TrimSpace(in.Text()) {
		case "1":
			err = solveExamples()
		case "2":
			err = solveCustom(in)
		case "3", "q", "exit":
			return
		default:
			fmt.Println("please pick 1, 2 or 3")
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
