package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"todoview/internal/api"
	"todoview/internal/telemetry"
	"todoview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

const (
	envBaseURL = "TODOVIEW_BASE_URL"
	envLogFile = "TODOVIEW_LOG"
)

// config holds the parsed CLI configuration.
type config struct {
	baseURL string
	logFile string
	timeout time.Duration
}

func parseFlags(args []string, getenv func(string) string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("todoview", flag.ContinueOnError)
	fs.StringVar(&cfg.baseURL, "base-url", envOr(getenv, envBaseURL, api.DefaultBaseURL), "todos API base URL (env "+envBaseURL+")")
	fs.StringVar(&cfg.logFile, "log-file", envOr(getenv, envLogFile, "todoview.log"), "diagnostic log file (env "+envLogFile+")")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "per-request HTTP timeout (0 = none)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: todoview [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Browse todos from a REST endpoint, 7 per page; enter shows details, d deletes.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.baseURL == "" {
		return config{}, fmt.Errorf("--base-url must not be empty")
	}
	return cfg, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(cfg config) error {
	logFile, err := tea.LogToFile(cfg.logFile, "todoview")
	if err != nil {
		return fmt.Errorf("open log file %q: %w", cfg.logFile, err)
	}
	defer logFile.Close()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "todoview")
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
	}

	client := api.NewClient(cfg.baseURL, api.WithTimeout(cfg.timeout))
	log.Printf("config: base-url=%s timeout=%s", client.BaseURL, cfg.timeout)

	model := ui.NewAppModel(client).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	// A missing .env is fine; real env vars take precedence.
	_ = godotenv.Load()

	cfg, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "todoview: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "todoview: %v\n", err)
		os.Exit(1)
	}
}
