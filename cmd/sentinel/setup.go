package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/f47-sentinel/internal/config"
	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/platform/tui"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

// loadConfig resolves the config file and applies the command-line overrides.
func loadConfig() (config.SentinelConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// newLogger builds the command logger. stderrOK is false for commands that
// own the terminal; they log only when --log-file is given.
func newLogger(stderrOK bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	case stderrOK:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sentinel",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openScores opens the configured backend. A backend that cannot be opened
// degrades to a store that keeps nothing.
func openScores(cfg config.SentinelConfig, logger *log.Logger) (*storage.Scores, func()) {
	kv, err := storage.OpenBackend(cfg.Storage)
	if err != nil {
		logger.Warn("could not open score storage", "backend", cfg.Storage.Backend, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		kv = nil
	}

	scores := storage.NewScores(kv,
		storage.WithLimit(cfg.Storage.LeaderboardSize),
		storage.WithLogger(logger),
	)
	closeFn := func() {
		if kv == nil {
			return
		}
		if err := kv.Close(); err != nil {
			logger.Warn("closing score storage", "error", err)
		}
	}
	return scores, closeFn
}

// engineFactory returns a constructor for fresh engines. A fixed --seed gives
// every run the same seed.
func engineFactory(cfg config.SentinelConfig, scores *storage.Scores, logger *log.Logger) tui.EngineFactory {
	return func() *sentinel.Engine {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return sentinel.New(
			sentinel.WithConfig(cfg),
			sentinel.WithSeed(seed),
			sentinel.WithScores(scores),
			sentinel.WithLogger(logger),
		)
	}
}

// runtimeConfig sizes the field to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
