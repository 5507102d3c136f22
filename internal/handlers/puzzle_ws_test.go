package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/puzzle"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		wantErr string
	}{
		{"noop", "g", ""},
		{"set empty cell", "s 0 2 4", ""},
		{"clear a cell", "s 0 2 0", ""},
		{"solve", "z", ""},
		{"reset", "x", ""},
		{"unknown command", "q", "unknown command"},
		{"wrong arg count", "s 1 2", "invalid number of arguments"},
		{"non-numeric arg", "s a 2 3", "first argument must be an int"},
		{"out of range", "s 9 0 1", "cell arguments out of range"},
		{"overwrite given", "s 0 0 1", "cell holds an original clue"},
		{"conflicting placement", "s 0 2 5", "placement conflicts with row, column or box"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			board, err := puzzle.ParseString(classic)
			require.NoError(t, err)
			givens, err := puzzle.ParseString(classic)
			require.NoError(t, err)

			err = executeCommand(board, givens, test.command)
			if test.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, test.wantErr)
			}
		})
	}
}

func TestExecuteCommandSolveFillsBoard(t *testing.T) {
	t.Parallel()

	board, err := puzzle.ParseString(classic)
	require.NoError(t, err)
	givens, err := puzzle.ParseString(classic)
	require.NoError(t, err)

	require.NoError(t, executeCommand(board, givens, "z"))
	assert.Equal(t, 0, board.EmptyCount())

	require.NoError(t, executeCommand(board, givens, "x"))
	assert.Equal(t, classic, puzzle.FormatString(board))
}

func TestParseListPuzzlesDTO(t *testing.T) {
	t.Parallel()

	query := url.Values{
		"limit":    {"5"},
		"solvable": {"true"},
		"mine":     {"true"},
		"whatever": {"ignored"},
	}

	dto, err := ParseListPuzzlesDTO(query)
	require.NoError(t, err)
	assert.Equal(t, 5, dto.Limit)
	assert.Equal(t, 0, dto.Offset)
	require.NotNil(t, dto.Solvable)
	assert.True(t, *dto.Solvable)
	assert.True(t, dto.Mine)
}

func TestParseListPuzzlesDTODefaults(t *testing.T) {
	t.Parallel()

	dto, err := ParseListPuzzlesDTO(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 20, dto.Limit)
	assert.Nil(t, dto.Solvable)
	assert.False(t, dto.Mine)
}
