// Package engine implements a binary-state cellular automaton on a toroidal
// grid driven by a birth/survival rule.
package engine

import (
	"strings"

	"github.com/dddictionary/cars/pkg/rules"
)

// MooreNeighbors is the size of the neighborhood every cell samples. Rule
// digits above this value never match.
const MooreNeighbors = 8

// AliveGlyph is written for live cells in the text snapshot.
const AliveGlyph = '█'

var mooreOffsets = [MooreNeighbors][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Automaton advances a grid one generation at a time using a RuleSet.
type Automaton struct {
	rule rules.RuleSet
	cur  *Grid
	nxt  *Grid

	generation int
	liveCells  int
}

// New returns an automaton with an all-dead grid of the given size.
// Zero dimensions are accepted and yield an empty grid on which Tick is a
// no-op apart from advancing the generation counter.
func New(w, h int, rule rules.RuleSet) *Automaton {
	return &Automaton{
		rule: rule,
		cur:  NewGrid(w, h),
		nxt:  NewGrid(w, h),
	}
}

// Width returns the number of columns.
func (a *Automaton) Width() int { return a.cur.W }

// Height returns the number of rows.
func (a *Automaton) Height() int { return a.cur.H }

// Rule returns the rule driving the automaton.
func (a *Automaton) Rule() rules.RuleSet { return a.rule }

// Generation returns the number of completed ticks.
func (a *Automaton) Generation() int { return a.generation }

// LiveCells returns the live count recorded by the last Tick. Cells marked
// with SetAlive are not reflected until the next Tick.
func (a *Automaton) LiveCells() int { return a.liveCells }

// TotalCells returns width*height.
func (a *Automaton) TotalCells() int { return a.cur.Len() }

// SetAlive marks (x, y) alive. Out-of-bounds coordinates are ignored.
func (a *Automaton) SetAlive(x, y int) {
	if !a.cur.InBounds(x, y) {
		return
	}
	a.cur.cells[a.cur.Index(x, y)] = Alive
}

// Clear kills every cell and resets the counters.
func (a *Automaton) Clear() {
	a.cur.Clear()
	a.generation = 0
	a.liveCells = 0
}

// At returns the state of (x, y). Out-of-bounds coordinates read as Dead.
func (a *Automaton) At(x, y int) Cell {
	if !a.cur.InBounds(x, y) {
		return Dead
	}
	return a.cur.cells[a.cur.Index(x, y)]
}

// Cells returns a copy of the current grid in row-major order.
func (a *Automaton) Cells() []Cell {
	return append([]Cell(nil), a.cur.Cells()...)
}

// Count scans the current grid and returns the number of live cells.
func (a *Automaton) Count() int {
	n := 0
	for _, c := range a.cur.Cells() {
		if c == Alive {
			n++
		}
	}
	return n
}

// NeighborCount returns the number of live cells in the Moore neighborhood of
// (x, y), wrapping across the grid edges. An empty grid has no neighbors.
func (a *Automaton) NeighborCount(x, y int) int {
	g := a.cur
	if g.Len() == 0 {
		return 0
	}
	n := 0
	for _, off := range mooreOffsets {
		nx, ny := g.Wrap(x+off[0], y+off[1])
		if g.cells[g.Index(nx, ny)] == Alive {
			n++
		}
	}
	return n
}

// Tick advances the simulation by one generation. The next state is computed
// entirely from the current grid into the spare buffer, then the buffers are
// swapped.
func (a *Automaton) Tick() {
	w, h := a.cur.W, a.cur.H
	live := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := a.cur.Index(x, y)
			neighbors := a.NeighborCount(x, y)
			next := Dead
			if a.cur.cells[idx] == Alive {
				if a.rule.Survives(neighbors) {
					next = Alive
				}
			} else if a.rule.Born(neighbors) {
				next = Alive
			}
			a.nxt.cells[idx] = next
			if next == Alive {
				live++
			}
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
	a.generation++
	a.liveCells = live
}

// String renders the grid top row first, one glyph per cell and a newline
// after every row.
func (a *Automaton) String() string {
	var b strings.Builder
	b.Grow((a.cur.W + 1) * a.cur.H)
	for y := 0; y < a.cur.H; y++ {
		for x := 0; x < a.cur.W; x++ {
			if a.cur.cells[a.cur.Index(x, y)] == Alive {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
