package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dddictionary/cars/internal/render"
)

const frameInterval = 16 * time.Millisecond

// Game adapts a Session to an interactive terminal screen.
type Game struct {
	session *Session
	screen  tcell.Screen
	painter render.Painter
	pacer   *FixedStep

	paused   bool
	tickOnce bool
}

// NewGame constructs a Game drawing session onto screen.
func NewGame(session *Session, screen tcell.Screen) *Game {
	return &Game{
		session: session,
		screen:  screen,
		painter: render.NewPainter(),
		pacer:   NewFixedStep(session.cfg.Delay),
	}
}

// Paused reports whether automatic stepping is suspended.
func (g *Game) Paused() bool { return g.paused }

// HandleEvent applies a terminal event and reports whether the game should quit.
func (g *Game) HandleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyEnter:
			g.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true, nil
			case ' ':
				g.paused = !g.paused
			case 'n', 'N':
				g.tickOnce = true
			case 'r', 'R':
				g.tickOnce = false
				if err := g.session.Reset(); err != nil {
					return true, err
				}
			}
		}
	}
	return false, nil
}

// Update advances the simulation when the pacer allows it or a single step
// was requested. Nothing advances once the step budget is spent.
func (g *Game) Update() {
	if g.session.Done() {
		g.tickOnce = false
		return
	}
	due := g.pacer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.session.Step()
		g.tickOnce = false
	}
}

// Draw renders the grid followed by a status and a help line.
func (g *Game) Draw() {
	a := g.session.Automaton()
	g.screen.Clear()
	g.painter.Paint(g.screen, a.Cells(), a.Width())

	status := fmt.Sprintf("gen %d  live %d  rule %s", a.Generation(), a.LiveCells(), a.Rule())
	if r, ok := g.session.Stats().Last(); ok {
		status += fmt.Sprintf("  entropy %.4f", r.Entropy)
	}
	if g.paused {
		status += "  [paused]"
	}
	if g.session.Done() {
		status += "  [done]"
	}
	bold := tcell.StyleDefault.Bold(true)
	render.Text(g.screen, 0, a.Height(), bold, status)
	render.Text(g.screen, 0, a.Height()+1, tcell.StyleDefault.Dim(true), "space pause  n step  r reset  q quit")
	g.screen.Show()
}

// Run processes input and redraws until the user quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			done, err := g.HandleEvent(ev)
			if err != nil || done {
				return err
			}
			g.Draw()
		case <-frames.C:
			g.Update()
			g.Draw()
		}
	}
}

// RunTUI opens the terminal, runs the game and restores the terminal on exit.
func RunTUI(ctx context.Context, s *Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return NewGame(s, screen).Run(ctx)
}
