package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/cli"
	"github.com/aklein/lobbyscribe/internal/config"
	"github.com/aklein/lobbyscribe/internal/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))

	// Color handling: explicit config wins, otherwise follow the terminal.
	switch cfg.Display.Color {
	case "never":
		os.Setenv("NO_COLOR", "1")
	case "auto":
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			os.Setenv("NO_COLOR", "1")
		}
	}

	eng := engine.New(catalog.Definitions(), engine.WithLogger(logger))
	if cfg.Display.DefaultRegion != "" {
		eng.ApplyRaw(catalog.Region, cfg.Display.DefaultRegion)
	}

	app := &cli.App{
		Engine: eng,
		Config: cfg,
		Logger: logger,
	}
	return cli.NewRootCmd(app).Execute()
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
