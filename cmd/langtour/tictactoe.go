package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/langtour/internal/ui"
	"github.com/marcodamonte/langtour/tictactoe"
)

var errNoHistory = errors.New("no history database configured (set tictactoe.history or --history)")

func (a *app) tictactoeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tictactoe",
		Aliases: []string{"ttt"},
		Short:   "Play tic-tac-toe or inspect past matches",
	}

	var (
		mode     string
		computer string
		history  string
	)
	play := &cobra.Command{
		Use:   "play",
		Short: "Play a match on the console",
		Long: `Players enter a move as "row col" with both numbers in 0..2, for
example "1 2". Invalid or occupied cells are rejected and re-prompted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.TicTacToe
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("computer") {
				cfg.Computer = computer
			}
			if cmd.Flags().Changed("history") {
				cfg.History = history
			}
			return a.play(cmd.Context(), tictactoe.Mode(cfg.Mode), cfg.Computer, cfg.History)
		},
	}
	play.Flags().StringVar(&mode, "mode", "pvp", "pvp, pvc or cvc")
	play.Flags().StringVar(&computer, "computer", "O", "mark the computer plays in pvc mode")
	play.Flags().StringVar(&history, "history", "", "sqlite file to record the match in")

	var limit int
	hist := &cobra.Command{
		Use:   "history",
		Short: "Show recent matches and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("history") {
				a.cfg.TicTacToe.History = history
			}
			return a.history(cmd.Context(), limit)
		},
	}
	hist.Flags().IntVarP(&limit, "limit", "n", 10, "number of matches to show")
	hist.Flags().StringVar(&history, "history", "", "sqlite file to read")

	cmd.AddCommand(play, hist)
	return cmd
}

func (a *app) players(mode tictactoe.Mode, computer string) (map[tictactoe.Mark]tictactoe.Player, error) {
	// One Human per console: it buffers stdin, so two would steal each
	// other's input.
	human := tictactoe.NewHuman(a.in, a.out)
	bot := tictactoe.NewComputer(a.env().Rand)

	switch mode {
	case tictactoe.PlayerVsPlayer:
		return map[tictactoe.Mark]tictactoe.Player{tictactoe.X: human, tictactoe.O: human}, nil
	case tictactoe.ComputerVsComputer:
		return map[tictactoe.Mark]tictactoe.Player{tictactoe.X: bot, tictactoe.O: bot}, nil
	case tictactoe.PlayerVsComputer:
		mark, err := tictactoe.ParseMark(computer)
		if err != nil {
			return nil, err
		}
		return map[tictactoe.Mark]tictactoe.Player{mark: bot, mark.Opponent(): human}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func (a *app) play(ctx context.Context, mode tictactoe.Mode, computer, historyPath string) error {
	players, err := a.players(mode, computer)
	if err != nil {
		return err
	}

	m := tictactoe.Match{Mode: mode, Players: players, Out: a.out, Log: a.log}
	res, err := m.Run(ctx)
	if err != nil {
		return err
	}
	if historyPath == "" {
		return nil
	}

	store, err := tictactoe.OpenStore(ctx, historyPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(ctx, res); err != nil {
		return err
	}
	a.log.Info("match saved", zap.String("id", res.ID.String()), zap.String("history", historyPath))
	return nil
}

func (a *app) history(ctx context.Context, limit int) error {
	path := a.cfg.TicTacToe.History
	if path == "" {
		return errNoHistory
	}
	store, err := tictactoe.OpenStore(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	recent, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}

	ui.Section(a.out, "Recent matches")
	rows := make([][2]string, 0, len(recent))
	for _, r := range recent {
		rows = append(rows, [2]string{
			r.FinishedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%-4s %-7s in %d moves", r.Mode, r.Outcome, len(r.Moves)),
		})
	}
	ui.Table(a.out, [2]string{"finished", "result"}, rows)

	ui.Section(a.out, "Totals")
	ui.Table(a.out, [2]string{"outcome", "count"}, [][2]string{
		{"X wins", strconv.Itoa(stats.XWins)},
		{"O wins", strconv.Itoa(stats.OWins)},
		{"draws", strconv.Itoa(stats.Draws)},
		{"total", strconv.Itoa(stats.Total())},
	})
	return nil
}
