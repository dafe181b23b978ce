// Package app drives automata from the command line: configuration, the plain
// and terminal UI run loops, rule sweeps and websocket streaming.
package app

import (
	"fmt"

	"github.com/dddictionary/cars/internal/preset"
	"github.com/dddictionary/cars/pkg/engine"
	"github.com/dddictionary/cars/pkg/rules"
	"github.com/dddictionary/cars/pkg/stats"
)

// Session couples an automaton with the stats log recorded while driving it.
type Session struct {
	cfg       Config
	automaton *engine.Automaton
	log       *stats.Log
}

// NewSession parses the rule, builds the automaton and seeds it. Any error is
// returned before a single generation runs.
func NewSession(cfg Config) (*Session, error) {
	rule, err := rules.Parse(cfg.Rule)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", cfg.Rule, err)
	}
	s := &Session{
		cfg:       cfg,
		automaton: engine.New(cfg.Width, cfg.Height, rule),
		log:       &stats.Log{},
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) seed() error {
	return preset.Seed(s.automaton, s.cfg.Preset, s.cfg.Seed, s.cfg.Density)
}

// Automaton exposes the simulated automaton.
func (s *Session) Automaton() *engine.Automaton { return s.automaton }

// Stats exposes the recorded per-generation log.
func (s *Session) Stats() *stats.Log { return s.log }

// Step advances one generation and records its stats.
func (s *Session) Step() stats.Record {
	a := s.automaton
	a.Tick()
	r := stats.Compute(a.Generation(), a.LiveCells(), a.TotalCells())
	s.log.Append(r)
	return r
}

// Done reports whether the configured step budget is exhausted. A zero budget
// never finishes.
func (s *Session) Done() bool {
	return s.cfg.Steps > 0 && s.automaton.Generation() >= s.cfg.Steps
}

// Reset restores the starting pattern and begins a fresh stats log.
func (s *Session) Reset() error {
	s.automaton.Clear()
	s.log = &stats.Log{}
	return s.seed()
}

// SaveStats writes the stats log when an output path is configured.
func (s *Session) SaveStats() error {
	if s.cfg.StatsOut == "" {
		return nil
	}
	if err := s.log.SaveFile(s.cfg.StatsOut); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
