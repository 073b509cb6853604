package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the built-in memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Boards: BoardsConfig{
			Small:  6,
			Medium: 8,
			Large:  12,
		},
		Timing: TimingConfig{
			RevealDelayMS: 1000,
			MatchDelayMS:  300,
		},
		Scoring: ScoringConfig{
			Base:          1000,
			MovePenalty:   10,
			SecondPenalty: 2,
		},
		Palette: defaultPalette(),
	}
}

// defaultPalette copies the engine's card faces.
func defaultPalette() []string {
	palette := make([]string, len(memory.DefaultPalette))
	for i, sym := range memory.DefaultPalette {
		palette[i] = string(sym)
	}
	return palette
}
