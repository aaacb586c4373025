package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playAll(t *testing.T, g *Game, cells ...Cell) Outcome {
	t.Helper()
	var out Outcome
	for _, c := range cells {
		var err error
		out, err = g.Play(c)
		require.NoError(t, err, "play %s", c)
	}
	return out
}

func TestTurnAlternatesStartingWithX(t *testing.T) {
	g := NewGame()
	assert.Equal(t, X, g.Turn())
	playAll(t, g, Cell{0, 0})
	assert.Equal(t, O, g.Turn())
	playAll(t, g, Cell{1, 1})
	assert.Equal(t, X, g.Turn())
}

func TestInvalidMoveKeepsTurn(t *testing.T) {
	g := NewGame()
	playAll(t, g, Cell{0, 0})

	_, err := g.Play(Cell{0, 0})
	assert.ErrorIs(t, err, ErrOccupied)
	_, err = g.Play(Cell{3, 1})
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, O, g.Turn())
	assert.Len(t, g.Moves(), 1)
}

func TestWinEndsGameImmediately(t *testing.T) {
	g := NewGame()
	out := playAll(t, g,
		Cell{0, 0}, Cell{1, 0}, // X, O
		Cell{0, 1}, Cell{1, 1},
		Cell{0, 2}, // X completes the top row
	)
	assert.Equal(t, XWins, out)
	assert.Equal(t, X, out.Winner())

	_, err := g.Play(Cell{2, 2})
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Len(t, g.Moves(), 5)
}

func TestOCanWin(t *testing.T) {
	g := NewGame()
	out := playAll(t, g,
		Cell{0, 0}, Cell{0, 2},
		Cell{1, 0}, Cell{1, 1},
		Cell{2, 2}, Cell{2, 0}, // O completes the anti-diagonal
	)
	assert.Equal(t, OWins, out)
}

func TestNineMovesWithoutLineIsDraw(t *testing.T) {
	// X O X
	// X O O
	// O X X
	g := NewGame()
	out := playAll(t, g,
		Cell{0, 0}, Cell{0, 1},
		Cell{0, 2}, Cell{1, 1},
		Cell{1, 0}, Cell{1, 2},
		Cell{2, 1}, Cell{2, 0},
		Cell{2, 2},
	)
	assert.Equal(t, Draw, out)
	assert.Equal(t, Empty, out.Winner())
	board := g.Board()
	assert.True(t, board.Full())
}

func TestWinOnNinthMoveIsAWinNotADraw(t *testing.T) {
	// X O X
	// O X O
	// O X X  <- the ninth move completes the diagonal
	g := NewGame()
	out := playAll(t, g,
		Cell{0, 0}, Cell{0, 1},
		Cell{0, 2}, Cell{1, 0},
		Cell{1, 1}, Cell{1, 2},
		Cell{2, 1}, Cell{2, 0},
	)
	require.Equal(t, InProgress, out)

	out = playAll(t, g, Cell{2, 2})
	assert.Equal(t, XWins, out)
}

func TestMovesReturnsCopy(t *testing.T) {
	g := NewGame()
	playAll(t, g, Cell{0, 0})
	moves := g.Moves()
	moves[0] = Cell{2, 2}
	assert.Equal(t, Cell{0, 0}, g.Moves()[0])
}
