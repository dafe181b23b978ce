package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dddictionary/cars/internal/stream"
)

// Serve advances s and broadcasts every generation to websocket clients on
// /ws until the step budget is spent or ctx is cancelled. Frames are built
// between ticks, so clients only ever see complete generations.
func Serve(ctx context.Context, s *Session, lis net.Listener) error {
	hub := stream.NewHub()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return hub.Run(ctx) })
	g.Go(func() error {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		defer cancel()
		pacer := NewFixedStep(s.cfg.Delay)
		for !s.Done() {
			if err := pacer.Wait(ctx); err != nil {
				return nil
			}
			r := s.Step()
			if !hub.Broadcast(ctx, stream.NewFrame(s.Automaton(), r)) {
				return nil
			}
		}
		log.Printf("simulation finished after %d generations", s.Automaton().Generation())
		return nil
	})
	return g.Wait()
}
