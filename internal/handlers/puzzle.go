package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/puzzle"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type PuzzleHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewPuzzleHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *PuzzleHandler {
	return &PuzzleHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

// Create stores a new solve session from an 81-digit "puzzle" value
// (query or form). Givens are kept verbatim; the solver only checks
// syntax here, so a contradictory puzzle is accepted and will simply
// turn out unsolvable.
func (h PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	board, err := puzzle.ParseString(r.FormValue("puzzle"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	params := repository.CreatePuzzleParams{
		Givens: puzzle.FormatString(board),
	}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.PlayerId = &claims.PlayerId
	}

	stored, err := h.repo.CreatePuzzle(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create puzzle", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleDTO(stored, board.String()))
}

func (h PuzzleHandler) fetch(w http.ResponseWriter, r *http.Request) (*repository.Puzzle, bool) {
	puzzleId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	stored, err := h.repo.FetchPuzzle(r.Context(), puzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch puzzle", "error", err)
		return nil, false
	}
	return stored, true
}

func (h PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
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

	sendJSONOrLog(w, h.logger, NewPuzzleDTO(stored, board.String()))
}

func (h PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseListPuzzlesDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	filter := repository.PuzzleFilter{
		Solvable: dto.Solvable,
		Limit:    dto.Limit,
		Offset:   dto.Offset,
	}
	if dto.Mine {
		claims, ok := middleware.PlayerClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		filter.PlayerId = &claims.PlayerId
	}

	puzzles, err := h.repo.ListPuzzles(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list puzzles", "error", err)
		return
	}

	dtos := make([]*PuzzleDTO, 0, len(puzzles))
	for i := range puzzles {
		dtos = append(dtos, NewPuzzleDTO(&puzzles[i], ""))
	}
	sendJSONOrLog(w, h.logger, dtos)
}

// Solve runs the backtracking solver on the stored working grid and
// persists the outcome. An exhausted search is a regular result, not an
// error: the session is marked solvable=false and returned unchanged.
func (h PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
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

	start := time.Now()
	solved := sudoku.Solve(board)
	h.logger.Debug(
		"solve attempt",
		slog.Int64("puzzleId", stored.PuzzleId),
		slog.Bool("solved", solved),
		slog.Duration("duration", time.Since(start)),
	)

	params := repository.UpdatePuzzleParams{Solvable: &solved}
	if solved {
		cells := puzzle.FormatString(board)
		solvedAt := time.Now().UTC()
		params.Cells = &cells
		params.SolvedAt = &solvedAt
	}

	updated, err := h.repo.UpdatePuzzle(r.Context(), stored.PuzzleId, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update puzzle", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleDTO(updated, board.String()))
}

// Reset restores the working grid to the original givens.
func (h PuzzleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.fetch(w, r)
	if !ok {
		return
	}

	updated, err := h.repo.UpdatePuzzle(r.Context(), stored.PuzzleId, repository.UpdatePuzzleParams{
		Cells: &stored.Givens,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to reset puzzle", "error", err)
		return
	}

	board, err := puzzle.ParseString(updated.Cells)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle.cells", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleDTO(updated, board.String()))
}
