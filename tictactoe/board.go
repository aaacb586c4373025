// Package tictactoe implements a console tic-tac-toe match: the board and
// its win detection, turn alternation, human and computer players, and an
// optional sqlite-backed match history.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board's side length.
const Size = 3

var (
	ErrOutOfRange = errors.New("position out of range")
	ErrOccupied   = errors.New("position already taken")
	ErrGameOver   = errors.New("game is over")
)

// Mark is the content of a cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "_"
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark accepts "X" or "O" in either case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("mark %q: must be X or O", s)
	}
}

// Cell addresses a board position by zero-based row and column.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

func (c Cell) valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Board is a 3×3 grid. The zero value is an empty board. Board is a value
// type: assigning it copies the grid, which the computer player relies on
// to try moves without touching the real game.
type Board struct {
	cells [Size][Size]Mark
}

// At returns the mark at c, or Empty if c is off the board.
func (b Board) At(c Cell) Mark {
	if !c.valid() {
		return Empty
	}
	return b.cells[c.Row][c.Col]
}

// Place puts m at c.
func (b *Board) Place(c Cell, m Mark) error {
	if !c.valid() {
		return fmt.Errorf("place %s: %w", c, ErrOutOfRange)
	}
	if b.cells[c.Row][c.Col] != Empty {
		return fmt.Errorf("place %s: %w", c, ErrOccupied)
	}
	b.cells[c.Row][c.Col] = m
	return nil
}

// lines lists the 8 winning lines in scan order: rows, columns, diagonals.
var lines = func() [][Size]Cell {
	var out [][Size]Cell
	for i := 0; i < Size; i++ {
		out = append(out, [Size]Cell{{i, 0}, {i, 1}, {i, 2}})
	}
	for i := 0; i < Size; i++ {
		out = append(out, [Size]Cell{{0, i}, {1, i}, {2, i}})
	}
	out = append(out,
		[Size]Cell{{0, 0}, {1, 1}, {2, 2}},
		[Size]Cell{{0, 2}, {1, 1}, {2, 0}},
	)
	return out
}()

// Winner scans rows, then columns, then both diagonals and returns the mark
// of the first line holding three equal non-empty marks. It returns Empty
// when no line is complete.
func (b Board) Winner() Mark {
	for _, line := range lines {
		m := b.At(line[0])
		if m != Empty && m == b.At(line[1]) && m == b.At(line[2]) {
			return m
		}
	}
	return Empty
}

// HasWon reports whether m owns a complete line.
func (b Board) HasWon(m Mark) bool {
	if m == Empty {
		return false
	}
	for _, line := range lines {
		if b.At(line[0]) == m && b.At(line[1]) == m && b.At(line[2]) == m {
			return true
		}
	}
	return false
}

// EmptyCells returns the free positions in row-major order.
func (b Board) EmptyCells() []Cell {
	var out []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == Empty {
				out = append(out, Cell{r, c})
			}
		}
	}
	return out
}

// Full reports whether no empty cell is left.
func (b Board) Full() bool { return len(b.EmptyCells()) == 0 }

// Rows returns the board as printable strings, one slice per row.
func (b Board) Rows() [][]string {
	rows := make([][]string, Size)
	for r := range rows {
		rows[r] = make([]string, Size)
		for c := range rows[r] {
			rows[r][c] = b.cells[r][c].String()
		}
	}
	return rows
}

// String renders the board as "_ _ _" lines.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b.Rows() {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
