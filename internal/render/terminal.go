// Package render paints automaton grids onto a terminal screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dddictionary/cars/pkg/engine"
)

// CellWidth is the number of terminal columns used per grid cell, which keeps
// cells roughly square in most fonts.
const CellWidth = 2

// Painter converts binary cell data into styled terminal runes.
type Painter struct {
	On  tcell.Style
	Off tcell.Style
}

// NewPainter returns a painter with green live cells on the default background.
func NewPainter() Painter {
	return Painter{
		On:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Off: tcell.StyleDefault,
	}
}

// Paint draws cells (row-major, w columns) with the top-left cell at the
// screen origin. Cells beyond the screen bounds are skipped.
func (p Painter) Paint(s tcell.Screen, cells []engine.Cell, w int) {
	if w <= 0 {
		return
	}
	sw, sh := s.Size()
	for i, c := range cells {
		x, y := (i%w)*CellWidth, i/w
		if y >= sh {
			return
		}
		if x >= sw {
			continue
		}
		r, style := ' ', p.Off
		if c == engine.Alive {
			r, style = engine.AliveGlyph, p.On
		}
		for dx := 0; dx < CellWidth; dx++ {
			s.SetContent(x+dx, y, r, nil, style)
		}
	}
}

// Text writes s on row y starting at column x, clipping at the screen edge.
func Text(s tcell.Screen, x, y int, style tcell.Style, text string) {
	sw, _ := s.Size()
	for _, r := range text {
		if x >= sw {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
