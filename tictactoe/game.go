package tictactoe

import "fmt"

// Outcome is the state of a game after a move.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Winner returns the winning mark, or Empty for a draw or running game.
func (o Outcome) Winner() Mark {
	switch o {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

func winOutcome(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

// Game tracks one match: the board, whose turn it is, and the moves so far.
// X always moves first.
type Game struct {
	board   Board
	xToMove bool // the turn flag
	moves   []Cell
	outcome Outcome
}

func NewGame() *Game {
	return &Game{xToMove: true}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board { return g.board }

// Turn returns the mark that moves next.
func (g *Game) Turn() Mark {
	if g.xToMove {
		return X
	}
	return O
}

// Moves returns the cells played so far, in order.
func (g *Game) Moves() []Cell { return append([]Cell(nil), g.moves...) }

func (g *Game) Outcome() Outcome { return g.outcome }

// Play places the current player's mark at c and flips the turn. A line
// win ends the game at once; the ninth move without a win is a draw.
// An invalid move leaves the game untouched.
func (g *Game) Play(c Cell) (Outcome, error) {
	if g.outcome != InProgress {
		return g.outcome, ErrGameOver
	}

	mark := g.Turn()
	if err := g.board.Place(c, mark); err != nil {
		return g.outcome, fmt.Errorf("%s: %w", mark, err)
	}
	g.moves = append(g.moves, c)
	g.xToMove = !g.xToMove

	switch {
	case g.board.HasWon(mark):
		g.outcome = winOutcome(mark)
	case len(g.moves) == Size*Size:
		g.outcome = Draw
	}
	return g.outcome, nil
}
