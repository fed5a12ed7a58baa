package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/term"
	"gridsnake/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("config",
		"width", cfg.Width,
		"height", cfg.Height,
		"tick", cfg.Tick,
		"boundary", cfg.Boundary,
		"avoid_body", cfg.AvoidBody,
		"frontend", cfg.Frontend)

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	session, err := game.NewSession(settings, logger)
	if err != nil {
		logger.Error("failed to start game", "err", err)
		return err
	}

	switch cfg.Frontend {
	case config.FrontendTerm:
		screen, err := term.Open()
		if err != nil {
			logger.Error("failed to open terminal", "err", err)
			return err
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = term.New(screen, session, cfg.Tick, logger).Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("terminal front end stopped", "err", err)
			return err
		}
	default:
		ui.Run(session, cfg.Tick, logger)
	}
	return nil
}

// newLogger writes to stderr unless the terminal front end owns it, in which
// case logs go to the -log file or nowhere.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	case cfg.Frontend == config.FrontendTerm:
		out = io.Discard
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeLog, nil
}
