package tictactoe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcodamonte/langtour/internal/ui"
)

// Mode names who sits at the board.
type Mode string

const (
	PlayerVsPlayer     Mode = "pvp"
	PlayerVsComputer   Mode = "pvc"
	ComputerVsComputer Mode = "cvc"
)

// Result is the record of a finished match.
type Result struct {
	ID         uuid.UUID
	Mode       Mode
	Outcome    Outcome
	Moves      []Cell
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r Result) Winner() Mark { return r.Outcome.Winner() }

// Match drives a Game between two players, printing the board after every
// move.
type Match struct {
	Mode    Mode
	Players map[Mark]Player
	Out     io.Writer
	Log     *zap.Logger
	Now     func() time.Time
}

// Run plays until a win or a draw. It returns early with the context's
// error or a player's error; the partial game is not reported as a result.
func (m *Match) Run(ctx context.Context) (Result, error) {
	if m.Players[X] == nil || m.Players[O] == nil {
		return Result{}, fmt.Errorf("match needs a player for both X and O")
	}
	log := m.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := m.Now
	if now == nil {
		now = time.Now
	}
	out := m.Out
	if out == nil {
		out = io.Discard
	}

	res := Result{ID: uuid.New(), Mode: m.Mode, StartedAt: now()}
	log = log.With(zap.String("match", res.ID.String()), zap.String("mode", string(m.Mode)))
	log.Info("match started")

	game := NewGame()
	board := game.Board()
	ui.Grid(out, board.Rows())

	for game.Outcome() == InProgress {
		mark := game.Turn()
		player := m.Players[mark]

		cell, err := player.Move(ctx, game.Board(), mark)
		if err != nil {
			log.Warn("match aborted", zap.Stringer("turn", mark), zap.Error(err))
			return Result{}, fmt.Errorf("%s move: %w", mark, err)
		}
		if _, ok := player.(*Computer); ok {
			fmt.Fprintf(out, "%s (%s) plays %d %d\n", player.Name(), mark, cell.Row, cell.Col)
		}

		outcome, err := game.Play(cell)
		if err != nil {
			return Result{}, fmt.Errorf("%s played %s: %w", player.Name(), cell, err)
		}
		log.Debug("move", zap.Stringer("mark", mark), zap.Int("row", cell.Row), zap.Int("col", cell.Col))

		board = game.Board()
		ui.Grid(out, board.Rows())

		switch outcome {
		case XWins, OWins:
			fmt.Fprintf(out, "Player %s Won !!!\n", outcome.Winner())
		case Draw:
			fmt.Fprintln(out, "Draw !!!")
		}
	}

	res.Outcome = game.Outcome()
	res.Moves = game.Moves()
	res.FinishedAt = now()
	log.Info("match finished", zap.Stringer("outcome", res.Outcome), zap.Int("moves", len(res.Moves)))
	return res, nil
}
