// Package cli parses driver configuration and prints the solver's two
// result tables.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/optstop/race"
)

// Config holds the driver configuration: the die face count and the goal
// position. Environment variables provide defaults; flags override them.
type Config struct {
	Faces int `env:"OPTSTOP_FACES" envDefault:"6"`
	Goal  int `env:"OPTSTOP_GOAL" envDefault:"20"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.IntVar(&cfg.Faces, "faces", cfg.Faces, "number of die faces")
	fs.IntVar(&cfg.Goal, "goal", cfg.Goal, "goal position (finish line)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

// Run solves the configured board and writes both result tables to w.
//
// Stream 1: one line per position below the goal — "<pos> <expected>".
// Stream 2: one line per position — "<pos>" followed by a "(total, stop)"
// pair for every die face 1..faces.
func Run(cfg Config, w io.Writer) error {
	solver, err := race.NewSolver(cfg.Faces, cfg.Goal)
	if err != nil {
		return err
	}

	values, err := solver.Table()
	if err != nil {
		return err
	}
	for pos, v := range values {
		if _, err := fmt.Fprintf(w, "%d %v\n", pos, v); err != nil {
			return fmt.Errorf("write values: %w", err)
		}
	}

	rows, err := solver.StrategyTable()
	if err != nil {
		return err
	}
	for pos, row := range rows {
		if _, err := fmt.Fprintf(w, "%d", pos); err != nil {
			return fmt.Errorf("write strategies: %w", err)
		}
		for _, d := range row {
			if _, err := fmt.Fprintf(w, " (%v, %v)", d.Total, d.Stop); err != nil {
				return fmt.Errorf("write strategies: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write strategies: %w", err)
		}
	}
	return nil
}
