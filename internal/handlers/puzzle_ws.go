package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sudoku-server/internal/puzzle"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var commandNargs = map[string]int{
	"g": 0, // get current grid
	"s": 3, // set <row> <col> <value>
	"z": 0, // solve
	"x": 0, // reset to givens
}

func parseCellArgs(threeStrings []string) (row, col, value int, err error) {
	if row, err = strconv.Atoi(threeStrings[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("first argument must be an int")
	}
	if col, err = strconv.Atoi(threeStrings[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("second argument must be an int")
	}
	if value, err = strconv.Atoi(threeStrings[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("third argument must be an int")
	}
	return row, col, value, nil
}

func inRange(i, lo, hi int) bool {
	return lo <= i && i <= hi
}

// executeCommand applies one whitespace-separated command to the working
// board. givens is consulted by "x" (reset) and to protect original
// clues from "s" (set).
func executeCommand(board *sudoku.Board, givens *sudoku.Board, c string) error {
	parts := strings.Split(c, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "s":
		row, col, value, err := parseCellArgs(parts[1:])
		if err != nil {
			return err
		}
		if !inRange(row, 0, 8) || !inRange(col, 0, 8) || !inRange(value, 0, 9) {
			return fmt.Errorf("cell arguments out of range")
		}
		if givens.Get(row, col) != sudoku.Empty {
			return fmt.Errorf("cell holds an original clue")
		}
		if value != sudoku.Empty && !board.IsPlacementValid(row, col, value) {
			return fmt.Errorf("placement conflicts with row, column or box")
		}
		board.Set(row, col, value)
		return nil
	case "z":
		// unsolvable is not an error: the client learns from the grid
		// coming back unchanged
		sudoku.Solve(board)
		return nil
	case "x":
		grid := givens.Grid()
		for row := range sudoku.Size {
			for col := range sudoku.Size {
				board.Set(row, col, grid[row][col])
			}
		}
		return nil
	}
	return fmt.Errorf("invalid command")
}

func (h PuzzleHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.fetch(w, r)
	if !ok {
		return
	}

	board, err := puzzle.ParseString(stored.Cells)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle.cells", "error", err)
		return
	}
	givens, err := puzzle.ParseString(stored.Givens)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle.givens", "error", err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))

		var cmdErr error
		for _, line := range strings.Split(text, "\n") {
			if cmdErr = executeCommand(board, givens, line); cmdErr != nil {
				break
			}
		}
		if cmdErr != nil {
			if err := c.WriteJSON(wrapError(cmdErr)); err != nil {
				h.logger.Error("unable to write json", slog.Any("error", err))
				break
			}
			continue
		}

		cells := puzzle.FormatString(board)
		params := repository.UpdatePuzzleParams{Cells: &cells}
		if board.EmptyCount() == 0 {
			solvable := true
			solvedAt := time.Now().UTC()
			params.Solvable = &solvable
			params.SolvedAt = &solvedAt
		}

		updated, err := h.repo.UpdatePuzzle(r.Context(), stored.PuzzleId, params)
		if err != nil {
			h.logger.Error("unable to update puzzle in db", slog.Any("error", err))
			return
		}

		c.SetWriteDeadline(time.Now().Add(h.ws.WriteTimeout))
		if err := c.WriteJSON(NewPuzzleDTO(updated, board.String())); err != nil {
			h.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
