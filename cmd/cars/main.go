// Command cars simulates Game-of-Life-family cellular automata.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/dddictionary/cars/internal/app"
)

func main() {
	log.SetPrefix("[cars] ")
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: load .env: %v", err)
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := app.NewCommand(cfg, app.Options{
		Out:      os.Stdout,
		Terminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}
