package tictactoe

import (
	"context"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Demos returns a hands-off computer-vs-computer match for the tour.
// Interactive play lives under the "tictactoe play" command.
func Demos() []catalog.Demo {
	return []catalog.Demo{{
		Name:  "tictactoe",
		Topic: "project",
		Title: "Project: tic-tac-toe (computer vs computer)",
		Run: func(ctx context.Context, env *catalog.Env) error {
			m := Match{
				Mode: ComputerVsComputer,
				Players: map[Mark]Player{
					X: NewComputer(env.Rand),
					O: NewComputer(env.Rand),
				},
				Out: env.Out,
				Log: env.Log,
				Now: env.Now,
			}
			res, err := m.Run(ctx)
			if err != nil {
				return err
			}
			env.Printf("\n  result: %s after %d moves\n", res.Outcome, len(res.Moves))
			return nil
		},
	}}
}
