package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardOf builds a board from three row strings such as "XO_".
func boardOf(t testing.TB, rows ...string) Board {
	t.Helper()
	var b Board
	for r, row := range rows {
		for c, ch := range row {
			var m Mark
			switch ch {
			case 'X':
				m = X
			case 'O':
				m = O
			default:
				continue
			}
			require.NoError(t, b.Place(Cell{r, c}, m))
		}
	}
	return b
}

func TestPlaceRejectsOutOfRangeAndOccupied(t *testing.T) {
	var b Board
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		assert.ErrorIs(t, b.Place(c, X), ErrOutOfRange, c.String())
	}

	require.NoError(t, b.Place(Cell{1, 1}, X))
	assert.ErrorIs(t, b.Place(Cell{1, 1}, O), ErrOccupied)
	assert.Equal(t, X, b.At(Cell{1, 1}))
}

func TestWinnerEveryLine(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Mark
	}{
		{"empty", []string{"___", "___", "___"}, Empty},
		{"row 0", []string{"XXX", "OO_", "___"}, X},
		{"row 1", []string{"X__", "OOO", "X_X"}, O},
		{"row 2", []string{"O__", "_O_", "XXX"}, X},
		{"col 0", []string{"OX_", "OX_", "O__"}, O},
		{"col 1", []string{"OX_", "_X_", "OX_"}, X},
		{"col 2", []string{"X_O", "X_O", "__O"}, O},
		{"diagonal", []string{"X_O", "_XO", "__X"}, X},
		{"anti-diagonal", []string{"X_O", "XO_", "O__"}, O},
		{"two in a row only", []string{"XX_", "OO_", "___"}, Empty},
		{"full no line", []string{"XOX", "XOO", "OXX"}, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.rows...)
			assert.Equal(t, tt.want, b.Winner())
			if tt.want != Empty {
				assert.True(t, b.HasWon(tt.want))
				assert.False(t, b.HasWon(tt.want.Opponent()))
			}
		})
	}
}

func TestWinnerReportsFirstLineInScanOrder(t *testing.T) {
	// Not reachable in play, but rows are scanned top to bottom before columns.
	var b Board
	b.cells[1] = [Size]Mark{O, O, O}
	b.cells[2] = [Size]Mark{X, X, X}
	assert.Equal(t, O, b.Winner())
}

func TestEmptyCellsAndFull(t *testing.T) {
	b := boardOf(t, "XO_", "___", "__X")
	assert.Equal(t, []Cell{{0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}}, b.EmptyCells())
	assert.False(t, b.Full())

	full := boardOf(t, "XOX", "XOO", "OXX")
	assert.Empty(t, full.EmptyCells())
	assert.True(t, full.Full())
}

func TestBoardIsAValue(t *testing.T) {
	a := boardOf(t, "X__", "___", "___")
	b := a
	require.NoError(t, b.Place(Cell{2, 2}, O))
	assert.Equal(t, Empty, a.At(Cell{2, 2}))
}

func TestBoardString(t *testing.T) {
	b := boardOf(t, "X_O", "___", "_X_")
	assert.Equal(t, "X _ O\n_ _ _\n_ X _\n", b.String())
}

func TestMarkHelpers(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())

	m, err := ParseMark(" o ")
	require.NoError(t, err)
	assert.Equal(t, O, m)
	_, err = ParseMark("Z")
	assert.Error(t, err)
}

func BenchmarkWinner(b *testing.B) {
	board := boardOf(b, "XOX", "XOO", "OXX")
	var sink Mark
	for i := 0; i < b.N; i++ {
		sink = board.Winner()
	}
	_ = sink
}
