package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/langtour/basics"
	"github.com/marcodamonte/langtour/collections"
	"github.com/marcodamonte/langtour/delegates"
	"github.com/marcodamonte/langtour/events"
	"github.com/marcodamonte/langtour/exceptions"
	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/config"
	"github.com/marcodamonte/langtour/internal/logging"
	"github.com/marcodamonte/langtour/internal/ui"
	"github.com/marcodamonte/langtour/lambdas"
	"github.com/marcodamonte/langtour/linq"
	"github.com/marcodamonte/langtour/oop"
	"github.com/marcodamonte/langtour/tasks"
	"github.com/marcodamonte/langtour/threading"
	"github.com/marcodamonte/langtour/tictactoe"
	"github.com/marcodamonte/langtour/timeutil"
)

const defaultConfig = "langtour.yaml"

// app is the state shared by every subcommand once PersistentPreRunE has
// run.
type app struct {
	in  io.Reader
	out io.Writer

	// flags
	configPath string
	logLevel   string
	pace       float64
	seed       uint64

	cfg      config.Config
	log      *zap.Logger
	registry *catalog.Registry
}

// newLogger is swapped in tests to keep stderr quiet.
var newLogger = logging.New

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:   "langtour",
		Short: "A guided tour of core language features, plus tic-tac-toe",
		Long: `langtour runs small self-contained demos, one per language feature:
arrays and strings, collections, delegates and events, query combinators,
closures, the object-oriented pillars, errors, threads, tasks and time.

Run "langtour list" to see every demo, "langtour run <name|topic>" to run
some of them, or "langtour tictactoe play" for a game.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", defaultConfig, "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.Float64Var(&a.pace, "pace", 1, "demo sleep multiplier, 0 disables sleeping")
	pf.Uint64Var(&a.seed, "seed", 0, "random seed, 0 seeds from the clock")

	root.AddCommand(
		a.listCmd(),
		a.runCmd(),
		a.allCmd(),
		a.tictactoeCmd(),
	)
	return root
}

// setup loads configuration, lets flags override it, and builds the logger
// and the demo registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	cfg, err := config.Read(a.configPath, !flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("pace") {
		cfg.Pace = a.pace
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.registry, err = newRegistry()
	if err != nil {
		return err
	}
	a.log.Debug("ready", zap.Int("demos", len(a.registry.All())), zap.Float64("pace", cfg.Pace))
	return nil
}

func newRegistry() (*catalog.Registry, error) {
	r := catalog.New()
	for _, demos := range [][]catalog.Demo{
		basics.Demos(),
		collections.Demos(),
		delegates.Demos(),
		events.Demos(),
		linq.Demos(),
		lambdas.Demos(),
		oop.Demos(),
		exceptions.Demos(),
		threading.Demos(),
		tasks.Demos(),
		timeutil.Demos(),
		tictactoe.Demos(),
	} {
		if err := r.Register(demos...); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (a *app) env() *catalog.Env {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &catalog.Env{
		Out:  a.out,
		In:   a.in,
		Log:  a.log,
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Now:  time.Now,
		Pace: a.cfg.Pace,
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every demo grouped by topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			byTopic := make(map[string][][2]string)
			for _, d := range a.registry.All() {
				byTopic[d.Topic] = append(byTopic[d.Topic], [2]string{d.Name, d.Title})
			}
			for _, topic := range a.registry.Topics() {
				ui.Section(a.out, topic)
				ui.Table(a.out, [2]string{"name", "title"}, byTopic[topic])
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <name|topic>...",
		Short: "Run demos by name or by topic",
		Example: `  langtour run arrays strings
  langtour run oop
  langtour --pace 0 run threading`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.registry.Run(cmd.Context(), a.env(), args...)
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demo in topic order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return catalog.RunDemos(cmd.Context(), a.env(), a.registry.All())
		},
	}
}
