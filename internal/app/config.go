package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/urfave/cli/v3"

	"github.com/dddictionary/cars/internal/preset"
	"github.com/dddictionary/cars/pkg/rules"
)

// UI modes understood by the run command.
const (
	UIPlain = "plain"
	UITUI   = "tui"
)

// Config represents the simulation parameters. Environment variables provide
// the defaults and command-line flags override them.
type Config struct {
	Rule     string        `env:"CARS_RULE" envDefault:"B3/S23"`
	Width    int           `env:"CARS_WIDTH" envDefault:"10"`
	Height   int           `env:"CARS_HEIGHT" envDefault:"10"`
	Steps    int           `env:"CARS_STEPS"`
	Preset   string        `env:"CARS_PRESET" envDefault:"glider"`
	Seed     int64         `env:"CARS_SEED" envDefault:"42"`
	Density  float64       `env:"CARS_DENSITY" envDefault:"0.3"`
	Delay    time.Duration `env:"CARS_DELAY" envDefault:"150ms"`
	UI       string        `env:"CARS_UI" envDefault:"plain"`
	StatsOut string        `env:"CARS_STATS_OUT"`
	Debug    bool          `env:"CARS_DEBUG"`
}

// LoadConfig returns a Config populated from CARS_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Flags attaches the configuration to a set of command-line flags. Each flag
// defaults to the value currently held by c.
func (c *Config) Flags() []cli.Flag {
	return c.flags(false)
}

// flags is Flags with every flag scoped to the command that owns it when
// local is set, so the root command does not hand them down to subcommands.
func (c *Config) flags(local bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "rule", Value: c.Rule, Destination: &c.Rule, Local: local, Usage: "birth/survival rule, e.g. B3/S23"},
		&cli.IntFlag{Name: "width", Value: c.Width, Destination: &c.Width, Local: local, Usage: "grid width in cells"},
		&cli.IntFlag{Name: "height", Value: c.Height, Destination: &c.Height, Local: local, Usage: "grid height in cells"},
		&cli.IntFlag{Name: "steps", Value: c.Steps, Destination: &c.Steps, Local: local, Usage: "generations to simulate (0 runs until interrupted)"},
		&cli.StringFlag{Name: "preset", Value: c.Preset, Destination: &c.Preset, Local: local, Usage: "starting pattern, or \"random\""},
		&cli.Int64Flag{Name: "seed", Value: c.Seed, Destination: &c.Seed, Local: local, Usage: "seed for the random preset"},
		&cli.FloatFlag{Name: "density", Value: c.Density, Destination: &c.Density, Local: local, Usage: "live-cell probability for the random preset"},
		&cli.DurationFlag{Name: "delay", Value: c.Delay, Destination: &c.Delay, Local: local, Usage: "pause between generations"},
		&cli.StringFlag{Name: "stats-out", Value: c.StatsOut, Destination: &c.StatsOut, Local: local, Usage: "write per-generation stats CSV to this path"},
		&cli.BoolFlag{Name: "debug", Value: c.Debug, Destination: &c.Debug, Local: local, Usage: "verbose logging"},
	}
}

// Validate checks the configuration before any simulation starts.
func (c Config) Validate() error {
	if _, err := rules.Parse(c.Rule); err != nil {
		return fmt.Errorf("rule %q: %w", c.Rule, err)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("grid size %dx%d must not be negative", c.Width, c.Height)
	}
	if c.Steps < 0 {
		return errors.New("steps must not be negative")
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v must be within [0, 1]", c.Density)
	}
	if c.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	if c.UI != UIPlain && c.UI != UITUI {
		return fmt.Errorf("unsupported ui mode %q", c.UI)
	}
	if !strings.EqualFold(c.Preset, preset.Random) {
		if _, err := preset.Lookup(c.Preset); err != nil {
			return err
		}
	}
	return nil
}
