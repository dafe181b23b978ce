package app

import (
	"context"
	"fmt"
	"io"
)

const clearScreen = "\x1b[H\x1b[2J"

// RunPlain prints the grid, advances a generation and waits, until the step
// budget is spent or ctx is cancelled. Cancellation is checked once per
// iteration, so at most one further generation completes after it.
func RunPlain(ctx context.Context, out io.Writer, s *Session, clear bool) error {
	pacer := NewFixedStep(s.cfg.Delay)
	a := s.Automaton()
	for {
		if clear {
			if _, err := io.WriteString(out, clearScreen); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, a.String()); err != nil {
			return err
		}
		var err error
		if r, ok := s.Stats().Last(); ok {
			_, err = fmt.Fprintf(out, "generation %d  live %d  entropy %.4f\n", r.Generation, r.LiveCells, r.Entropy)
		} else {
			_, err = fmt.Fprintf(out, "generation %d\n", a.Generation())
		}
		if err != nil {
			return err
		}
		if s.Done() || ctx.Err() != nil {
			return nil
		}
		s.Step()
		if err := pacer.Wait(ctx); err != nil {
			return nil
		}
	}
}
