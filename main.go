package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"loot-grid/internal/config"
	"loot-grid/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (built-in loot and limits if empty)")
	logPath := flag.String("log", "", "Append debug logs to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	// The terminal belongs to the UI, so logs only go to a file.
	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	opts := cfg.Options()
	opts.Logger = logger
	s, err := ui.New(screen, cat, opts)
	if err != nil {
		screen.Fini()
		return err
	}
	s.Run()
	return nil
}
