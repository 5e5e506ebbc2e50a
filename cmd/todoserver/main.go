package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoview/internal/server"
	"todoview/internal/telemetry"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("TODOSERVER_ADDR", server.DefaultAddr), "listen address (env TODOSERVER_ADDR)")
	seed := flag.Int("seed", server.DefaultSeedCount, "number of todos to seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: todoserver [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serves an in-memory todos API (GET /todos, GET|DELETE /todos/{id}).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *seed < 0 {
		fmt.Fprintln(os.Stderr, "error: --seed must not be negative")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "todoserver")
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
		shutdownTracing = func(context.Context) error { return nil }
	}

	srv := server.New(*addr, server.NewStore(server.Seed(*seed)))
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("todoserver: %v", err)
		}
	case <-ctx.Done():
		log.Printf("todoserver: shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("todoserver: shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("todoserver: telemetry shutdown: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
