package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/dddictionary/cars/internal/preset"
	"github.com/dddictionary/cars/pkg/rules"
)

// Options carries process-level collaborators into the command tree.
type Options struct {
	Out      io.Writer
	Terminal bool
}

// NewCommand builds the cars command tree on top of cfg, which supplies the
// flag defaults. Invoked without a subcommand, cars behaves like run.
func NewCommand(cfg Config, opts Options) *cli.Command {
	root := cfg
	return &cli.Command{
		Name:   "cars",
		Usage:  "simulate birth/survival cellular automata",
		Writer: opts.Out,
		Flags:  runFlags(&root, true),
		Action: runAction(&root, opts),
		Commands: []*cli.Command{
			runCommand(cfg, opts),
			sweepCommand(cfg, opts),
			serveCommand(cfg),
			presetsCommand(opts),
		},
	}
}

func configureLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	log.SetFlags(log.LstdFlags)
}

func runFlags(cfg *Config, local bool) []cli.Flag {
	return append(cfg.flags(local),
		&cli.StringFlag{Name: "ui", Value: cfg.UI, Destination: &cfg.UI, Local: local, Usage: "output mode: plain or tui"},
	)
}

func runAction(cfg *Config, opts Options) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) (err error) {
		configureLogging(cfg.Debug)
		if err := cfg.Validate(); err != nil {
			return err
		}
		s, err := NewSession(*cfg)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, s.SaveStats())
			if err == nil {
				log.Printf("ran %s generations, %s live cells", humanize.Comma(int64(s.Automaton().Generation())), humanize.Comma(int64(s.Automaton().LiveCells())))
			}
		}()
		if cfg.UI == UITUI {
			return RunTUI(ctx, s)
		}
		return RunPlain(ctx, opts.Out, s, opts.Terminal)
	}
}

func runCommand(cfg Config, opts Options) *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "run a single automaton in the terminal",
		Flags:  runFlags(&cfg, false),
		Action: runAction(&cfg, opts),
	}
}

func sweepCommand(cfg Config, opts Options) *cli.Command {
	var (
		ruleList []string
		workers  int
	)
	if cfg.Steps == 0 {
		cfg.Steps = 100
	}
	return &cli.Command{
		Name:  "sweep",
		Usage: "run several rules from the same random start and compare the outcome",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "rules", Value: []string{rules.Conway, "B36/S23", "B2/S", "B1357/S02468"}, Destination: &ruleList, Usage: "comma-separated rules"},
			&cli.IntFlag{Name: "width", Value: cfg.Width, Destination: &cfg.Width, Usage: "grid width in cells"},
			&cli.IntFlag{Name: "height", Value: cfg.Height, Destination: &cfg.Height, Usage: "grid height in cells"},
			&cli.IntFlag{Name: "steps", Value: cfg.Steps, Destination: &cfg.Steps, Usage: "generations per rule"},
			&cli.Int64Flag{Name: "seed", Value: cfg.Seed, Destination: &cfg.Seed, Usage: "seed for the random start"},
			&cli.FloatFlag{Name: "density", Value: cfg.Density, Destination: &cfg.Density, Usage: "live-cell probability for the random start"},
			&cli.IntFlag{Name: "workers", Value: 0, Destination: &workers, Usage: "concurrent automata (0 uses every CPU)"},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			if cfg.Steps < 1 {
				return errors.New("sweep needs at least one step")
			}
			if cfg.Width < 0 || cfg.Height < 0 {
				return fmt.Errorf("grid size %dx%d must not be negative", cfg.Width, cfg.Height)
			}
			if cfg.Density < 0 || cfg.Density > 1 {
				return fmt.Errorf("density %v must be within [0, 1]", cfg.Density)
			}
			results, err := Sweep(ctx, SweepConfig{
				Rules:   ruleList,
				Width:   cfg.Width,
				Height:  cfg.Height,
				Steps:   cfg.Steps,
				Seed:    cfg.Seed,
				Density: cfg.Density,
				Workers: workers,
			})
			if err != nil {
				return err
			}
			return WriteSweep(opts.Out, results)
		},
	}
}

func serveCommand(cfg Config) *cli.Command {
	var addr string
	flags := append(cfg.Flags(),
		&cli.StringFlag{Name: "addr", Value: ":8080", Destination: &addr, Sources: cli.EnvVars("CARS_ADDR"), Usage: "listen address for the websocket stream"},
	)
	return &cli.Command{
		Name:  "serve",
		Usage: "stream generations to websocket clients on /ws",
		Flags: flags,
		Action: func(ctx context.Context, _ *cli.Command) (err error) {
			configureLogging(cfg.Debug)
			cfg.UI = UIPlain
			if err := cfg.Validate(); err != nil {
				return err
			}
			s, err := NewSession(cfg)
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, s.SaveStats()) }()
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			log.Printf("streaming %s on ws://%s/ws", s.Automaton().Rule(), lis.Addr())
			return Serve(ctx, s, lis)
		},
	}
}

func presetsCommand(opts Options) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "list the built-in starting patterns",
		Action: func(context.Context, *cli.Command) error {
			names := append(preset.Names(), preset.Random)
			_, err := fmt.Fprintln(opts.Out, strings.Join(names, "\n"))
			return err
		},
	}
}
