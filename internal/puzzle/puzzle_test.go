package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func writeFile(t *testing.T, path, data string) error {
	t.Helper()
	return os.WriteFile(path, []byte(data), 0644)
}

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseString(t *testing.T) {
	t.Parallel()

	b, err := ParseString(classic)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Get(0, 0))
	assert.Equal(t, 0, b.Get(0, 2))
	assert.Equal(t, 9, b.Get(8, 8))
	assert.Equal(t, classic, FormatString(b))
}

func TestParseStringErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", "530", ErrBadLength},
		{"too long", classic + "0", ErrBadLength},
		{"empty", "", ErrBadLength},
		{"non-digit", classic[:80] + "x", ErrBadCharacter},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseString(test.input)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestFromGrid(t *testing.T) {
	t.Parallel()

	var grid [sudoku.Size][sudoku.Size]int
	grid[4][4] = 7
	b, err := FromGrid(grid)
	require.NoError(t, err)
	assert.Equal(t, 7, b.Get(4, 4))

	grid[0][0] = 12
	_, err = FromGrid(grid)
	assert.ErrorIs(t, err, ErrBadDigit)
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := ParseString(classic)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "puzzle.json")
	require.NoError(t, SaveFile(path, b))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Grid(), loaded.Grid())
}

func TestLoadFileBareArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bare.json")
	data := `[[5,3,0,0,7,0,0,0,0],
		[6,0,0,1,9,5,0,0,0],
		[0,9,8,0,0,0,0,6,0],
		[8,0,0,0,6,0,0,0,3],
		[4,0,0,8,0,3,0,0,1],
		[7,0,0,0,2,0,0,0,6],
		[0,6,0,0,0,0,2,8,0],
		[0,0,0,4,1,9,0,0,5],
		[0,0,0,0,8,0,0,7,9]]`
	require.NoError(t, writeFile(t, path, data))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, classic, FormatString(b))
}

func TestLoadFileBadShape(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, writeFile(t, path, `{"puzzle": [[1,2,3]]}`))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestBundledExamplesSolve(t *testing.T) {
	t.Parallel()

	examples, err := Examples()
	require.NoError(t, err)
	require.NotEmpty(t, examples)

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			t.Parallel()
			b, err := ParseString(example.Puzzle)
			require.NoError(t, err)
			assert.True(t, sudoku.Solve(b))
			assert.Equal(t, 0, b.EmptyCount())
		})
	}
}
