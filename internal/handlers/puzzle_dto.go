package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/repository"
)

type PuzzleDTO struct {
	PuzzleId  string `json:"puzzle_id"`
	Givens    string `json:"givens"`
	Cells     string `json:"cells"`
	Rendered  string `json:"rendered,omitempty"`
	Solvable  *bool  `json:"solvable,omitempty"`
	SolvedAt  *int64 `json:"solved_at,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func NewPuzzleDTO(p *repository.Puzzle, rendered string) *PuzzleDTO {
	dto := &PuzzleDTO{
		PuzzleId:  strconv.FormatInt(p.PuzzleId, 10),
		Givens:    p.Givens,
		Cells:     p.Cells,
		Rendered:  rendered,
		Solvable:  p.Solvable,
		CreatedAt: p.CreatedAt.Time.UnixMilli(),
	}
	if p.SolvedAt.Valid {
		solvedAt := p.SolvedAt.Time.UnixMilli()
		dto.SolvedAt = &solvedAt
	}
	return dto
}

type ListPuzzlesDTO struct {
	Limit    int   `schema:"limit"`
	Offset   int   `schema:"offset"`
	Solvable *bool `schema:"solvable"`
	Mine     bool  `schema:"mine"`
}

func ParseListPuzzlesDTO(src map[string][]string) (ListPuzzlesDTO, error) {
	dto := ListPuzzlesDTO{Limit: 20}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}
