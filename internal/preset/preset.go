// Package preset seeds an automaton with named starting patterns.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dddictionary/cars/pkg/core"
	"github.com/dddictionary/cars/pkg/engine"
)

// Random is the pseudo-preset that scatters cells using a seed and density.
const Random = "random"

// ErrUnknownPreset is returned when no pattern is registered under a name.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Pattern is a set of live-cell offsets relative to the pattern's top-left corner.
type Pattern [][2]int

// Size returns the bounding box of the pattern.
func (p Pattern) Size() (w, h int) {
	if len(p) == 0 {
		return 0, 0
	}
	for _, c := range p {
		w = max(w, c[0])
		h = max(h, c[1])
	}
	return w + 1, h + 1
}

var patterns = map[string]Pattern{}

// Register adds a pattern under the provided name. Names are case-insensitive.
func Register(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[strings.ToLower(name)] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names lists registered presets in sorted order.
func Names() []string {
	out := make([]string, 0, len(patterns))
	for name := range patterns {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Apply seeds the named pattern centered on the grid. Cells that fall outside
// the grid are dropped.
func Apply(name string, a *engine.Automaton) error {
	p, err := Lookup(name)
	if err != nil {
		return err
	}
	Place(p, a)
	return nil
}

// Place seeds p with its bounding box centered on the grid. When the pattern
// is larger than the grid the offset is clamped at zero.
func Place(p Pattern, a *engine.Automaton) {
	pw, ph := p.Size()
	ox := max(0, a.Width()/2-pw/2)
	oy := max(0, a.Height()/2-ph/2)
	for _, c := range p {
		a.SetAlive(ox+c[0], oy+c[1])
	}
}

// Scatter marks each cell alive with probability density using a
// deterministic RNG seeded with seed.
func Scatter(a *engine.Automaton, seed int64, density float64) {
	core.NewRNG(seed).Scatter(a.Width(), a.Height(), density, a.SetAlive)
}

// Seed applies either a named pattern or, for Random, a scatter.
func Seed(a *engine.Automaton, name string, seed int64, density float64) error {
	if strings.EqualFold(name, Random) {
		Scatter(a, seed, density)
		return nil
	}
	return Apply(name, a)
}

func init() {
	Register("glider", Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
	Register("blinker", Pattern{{1, 0}, {1, 1}, {1, 2}})
	Register("block", Pattern{{1, 1}, {1, 2}, {2, 1}, {2, 2}})
	Register("toad", Pattern{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}})
	Register("beacon", Pattern{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}})
	Register("lwss", Pattern{{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}})
	Register("rpentomino", Pattern{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}})
}
