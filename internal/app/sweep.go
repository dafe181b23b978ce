package app

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/dddictionary/cars/internal/preset"
	"github.com/dddictionary/cars/pkg/engine"
	"github.com/dddictionary/cars/pkg/rules"
	"github.com/dddictionary/cars/pkg/stats"
)

// SweepConfig describes a batch of rules run against the same random start.
type SweepConfig struct {
	Rules   []string
	Width   int
	Height  int
	Steps   int
	Seed    int64
	Density float64
	Workers int
}

// SweepResult is the final state reached by one rule.
type SweepResult struct {
	Rule  string
	Final stats.Record
}

// Sweep runs every rule on its own automaton. Each automaton is advanced on a
// single goroutine; up to Workers automata run at once. All rules are parsed
// before any simulation starts. Results keep the input order.
func Sweep(ctx context.Context, cfg SweepConfig) ([]SweepResult, error) {
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("density %v must be within [0, 1]", cfg.Density)
	}
	parsed := make([]rules.RuleSet, len(cfg.Rules))
	for i, s := range cfg.Rules {
		r, err := rules.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", s, err)
		}
		parsed[i] = r
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]SweepResult, len(parsed))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rule := range parsed {
		g.Go(func() error {
			a := engine.New(cfg.Width, cfg.Height, rule)
			preset.Scatter(a, cfg.Seed, cfg.Density)
			for step := 0; step < cfg.Steps; step++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				a.Tick()
			}
			results[i] = SweepResult{
				Rule:  rule.String(),
				Final: stats.Compute(a.Generation(), a.LiveCells(), a.TotalCells()),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteSweep prints results as an aligned table.
func WriteSweep(w io.Writer, results []SweepResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tGENERATIONS\tLIVE\tENTROPY")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\n", r.Rule, r.Final.Generation, humanize.Comma(int64(r.Final.LiveCells)), r.Final.Entropy)
	}
	return tw.Flush()
}
