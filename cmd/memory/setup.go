package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// loadGameConfig loads, adjusts and installs the game configuration.
// It returns the preset so callers can pick its default board.
func loadGameConfig() (config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", err
	}

	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return "", err
	}
	config.ApplyMemoryPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	memory.SetConfig(cfg)
	logger.Debug("config loaded",
		"difficulty", preset,
		"reveal_ms", cfg.Timing.RevealDelayMS,
		"match_ms", cfg.Timing.MatchDelayMS,
	)
	return preset, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database; games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
