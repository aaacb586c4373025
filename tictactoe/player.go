package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when a human player's input ends mid-game.
var ErrInputClosed = errors.New("input closed")

var errBadInput = errors.New("bad input")

// Player chooses the next cell for mark on board. Implementations must
// return a cell that is on the board and empty.
type Player interface {
	Move(ctx context.Context, board Board, mark Mark) (Cell, error)
	Name() string
}

// Human reads "row col" from its input. The two numbers may be on one line
// or on consecutive lines. Anything that is not a free on-board cell is
// answered with "Enter valid input : " and read again, and so is a line that
// brings the count past two numbers ("0 1 2"): extra numbers are never
// carried over to the next move.
type Human struct {
	in      *bufio.Reader
	out     io.Writer
	pending []int
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewReader(in), out: out}
}

func (h *Human) Name() string { return "Player" }

func (h *Human) Move(ctx context.Context, board Board, mark Mark) (Cell, error) {
	fmt.Fprintf(h.out, "Enter position for %s : ", mark)
	for {
		if err := ctx.Err(); err != nil {
			return Cell{}, err
		}

		c, err := h.readCell()
		if errors.Is(err, errBadInput) {
			fmt.Fprint(h.out, "Enter valid input : ")
			continue
		}
		if err != nil {
			return Cell{}, err
		}

		if err := board.Place(c, mark); err != nil {
			fmt.Fprint(h.out, "Enter valid input : ")
			continue
		}
		return c, nil
	}
}

// readCell collects two integers, reading as many lines as needed.
func (h *Human) readCell() (Cell, error) {
	for len(h.pending) < 2 {
		line, err := h.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return Cell{}, ErrInputClosed
			}
			return Cell{}, fmt.Errorf("read move: %w", err)
		}

		for _, field := range strings.FieldsFunc(line, isSeparator) {
			n, convErr := strconv.Atoi(field)
			if convErr != nil {
				h.pending = h.pending[:0]
				return Cell{}, errBadInput
			}
			h.pending = append(h.pending, n)
		}
		if len(h.pending) > 2 {
			h.pending = h.pending[:0]
			return Cell{}, errBadInput
		}
	}

	c := Cell{Row: h.pending[0], Col: h.pending[1]}
	h.pending = h.pending[:0]
	return c, nil
}

func isSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
}

// Computer looks one move ahead: it takes any cell that wins immediately,
// otherwise it picks uniformly at random among the empty cells.
type Computer struct {
	rand *rand.Rand
}

func NewComputer(r *rand.Rand) *Computer {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Computer{rand: r}
}

func (c *Computer) Name() string { return "Computer" }

func (c *Computer) Move(ctx context.Context, board Board, mark Mark) (Cell, error) {
	if err := ctx.Err(); err != nil {
		return Cell{}, err
	}

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, ErrGameOver
	}

	if cell, ok := WinningMove(board, mark); ok {
		return cell, nil
	}
	return empty[c.rand.IntN(len(empty))], nil
}

// WinningMove returns the first empty cell, in row-major order, that
// completes a line for mark.
func WinningMove(board Board, mark Mark) (Cell, bool) {
	for _, cell := range board.EmptyCells() {
		trial := board
		_ = trial.Place(cell, mark)
		if trial.HasWon(mark) {
			return cell, true
		}
	}
	return Cell{}, false
}
