// Package config loads the tour's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root of langtour.yaml.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Pace      float64         `yaml:"pace"` // sleep multiplier for demos, 0 = no sleeping
	Seed      uint64          `yaml:"seed"` // 0 = seed from the clock
	TicTacToe TicTacToeConfig `yaml:"tictactoe"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

type TicTacToeConfig struct {
	Mode     string `yaml:"mode"`     // pvp, pvc, cvc
	Computer string `yaml:"computer"` // mark played by the computer in pvc
	History  string `yaml:"history"`  // sqlite file, empty disables persistence
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info", Format: "console"},
		Pace: 1,
		TicTacToe: TicTacToeConfig{
			Mode:     "pvp",
			Computer: "O",
		},
	}
}

// Load reads path over the defaults and validates the result. A missing
// file is not an error when optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg, err := Read(path, optional)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Read is Load without validation, for callers that apply further
// overrides (command-line flags) before validating.
func Read(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && optional:
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LANGTOUR_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LANGTOUR_PACE"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LANGTOUR_PACE: %w", err)
		}
		c.Pace = p
	}
	if v := os.Getenv("LANGTOUR_HISTORY"); v != "" {
		c.TicTacToe.History = v
	}
	return nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Pace < 0 {
		errs = append(errs, fmt.Errorf("pace: must be >= 0, got %v", c.Pace))
	}
	switch c.TicTacToe.Mode {
	case "pvp", "pvc", "cvc":
	default:
		errs = append(errs, fmt.Errorf("tictactoe.mode: unknown mode %q", c.TicTacToe.Mode))
	}
	switch c.TicTacToe.Computer {
	case "X", "O":
	default:
		errs = append(errs, fmt.Errorf("tictactoe.computer: must be X or O, got %q", c.TicTacToe.Computer))
	}

	return errors.Join(errs...)
}
