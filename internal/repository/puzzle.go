package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Puzzle is a stored solve session: the immutable givens plus the
// current working grid, both as 81-digit row-major strings. Solvable is
// nil until a solve has been attempted.
type Puzzle struct {
	PuzzleId  int64
	PlayerId  *int64
	Givens    string
	Cells     string
	Solvable  *bool
	SolvedAt  pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	PlayerId *int64
	Givens   string
}

func (q *Queries) CreatePuzzle(ctx context.Context, params CreatePuzzleParams) (*Puzzle, error) {
	args := pgx.NamedArgs{
		"givens": params.Givens,
		"cells":  params.Givens,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (player_id, givens, cells)
		VALUES (@player_id, @givens, @cells)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) FetchPuzzle(ctx context.Context, puzzleId int64) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle WHERE puzzle_id = $1", puzzleId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

type UpdatePuzzleParams struct {
	Cells    *string
	Solvable *bool
	SolvedAt *time.Time
}

func (p UpdatePuzzleParams) SetClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Cells != nil {
		parts = append(parts, "cells = @cells")
		args["cells"] = *p.Cells
	}
	if p.Solvable != nil {
		parts = append(parts, "solvable = @solvable")
		args["solvable"] = *p.Solvable
	}
	if p.SolvedAt != nil {
		parts = append(parts, "solved_at = @solved_at")
		args["solved_at"] = *p.SolvedAt
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdatePuzzle(
	ctx context.Context, puzzleId int64, params UpdatePuzzleParams,
) (*Puzzle, error) {
	setClause, args := params.SetClause()
	if setClause == "" {
		return q.FetchPuzzle(ctx, puzzleId)
	}
	args["puzzle_id"] = puzzleId

	rows, _ := q.db.Query(
		ctx,
		"UPDATE puzzle SET "+setClause+" WHERE puzzle_id = @puzzle_id RETURNING *;",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

type PuzzleFilter struct {
	PlayerId *int64
	Solvable *bool
	Limit    int
	Offset   int
}

func (f PuzzleFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.PlayerId != nil {
		clauses = append(clauses, "player_id = @player_id")
		args["player_id"] = *f.PlayerId
	}
	if f.Solvable != nil {
		clauses = append(clauses, "solvable = @solvable")
		args["solvable"] = *f.Solvable
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListPuzzles(ctx context.Context, filter PuzzleFilter) ([]Puzzle, error) {
	query := "SELECT * FROM puzzle"

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT @limit"
		args["limit"] = filter.Limit
	}
	if filter.Offset > 0 {
		query += " OFFSET @offset"
		args["offset"] = filter.Offset
	}

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Puzzle])
}
