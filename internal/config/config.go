// Package config provides YAML-based game configuration loading and
// difficulty presets for the memory game.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Boards  BoardsConfig  `yaml:"boards"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Palette []string      `yaml:"palette"` // Card faces, one terminal cell each; at least as many as the largest board
}

// BoardsConfig sets the number of pairs for each board size.
type BoardsConfig struct {
	Small  int `yaml:"small"`
	Medium int `yaml:"medium"`
	Large  int `yaml:"large"`
}

// TimingConfig controls how long a revealed pair stays visible before it settles.
type TimingConfig struct {
	RevealDelayMS int `yaml:"reveal_delay_ms"` // Mismatched pair stays face up this long
	MatchDelayMS  int `yaml:"match_delay_ms"`  // Matched pair highlight before input unlocks
}

// ScoringConfig defines the points awarded on a win.
// Score = base - moves*move_penalty - seconds*second_penalty, floored at zero.
type ScoringConfig struct {
	Base          int `yaml:"base"`
	MovePenalty   int `yaml:"move_penalty"`
	SecondPenalty int `yaml:"second_penalty"`
}

// BoardSize names one of the configured boards.
type BoardSize string

const (
	BoardSmall  BoardSize = "small"
	BoardMedium BoardSize = "medium"
	BoardLarge  BoardSize = "large"
)

// Pairs returns the configured pair count for a board size, or 0 if unknown.
func (b BoardsConfig) Pairs(size BoardSize) int {
	switch size {
	case BoardSmall:
		return b.Small
	case BoardMedium:
		return b.Medium
	case BoardLarge:
		return b.Large
	default:
		return 0
	}
}

// Score computes the points for a finished game.
func (s ScoringConfig) Score(moves, seconds int) int {
	score := s.Base - moves*s.MovePenalty - seconds*s.SecondPenalty
	if score < 0 {
		return 0
	}
	return score
}

// Validate reports every problem that would make the game unplayable.
func (c MemoryConfig) Validate() error {
	var errs []error

	for _, size := range []BoardSize{BoardSmall, BoardMedium, BoardLarge} {
		pairs := c.Boards.Pairs(size)
		if pairs < 2 {
			errs = append(errs, fmt.Errorf("boards.%s: need at least 2 pairs, got %d", size, pairs))
		}
		if pairs > len(c.Palette) {
			errs = append(errs, fmt.Errorf("boards.%s: %d pairs but palette has %d symbols", size, pairs, len(c.Palette)))
		}
	}

	seen := make(map[string]bool, len(c.Palette))
	for i, sym := range c.Palette {
		// Cards are drawn in a fixed-width box
		if lipgloss.Width(sym) != 1 || len([]rune(sym)) != 1 {
			errs = append(errs, fmt.Errorf("palette[%d]: %q must be a single one-cell character", i, sym))
		}
		if seen[sym] {
			errs = append(errs, fmt.Errorf("palette[%d]: duplicate symbol %q", i, sym))
		}
		seen[sym] = true
	}

	if c.Timing.RevealDelayMS < 0 || c.Timing.MatchDelayMS < 0 {
		errs = append(errs, errors.New("timing: delays must not be negative"))
	}
	if c.Scoring.MovePenalty < 0 || c.Scoring.SecondPenalty < 0 {
		errs = append(errs, errors.New("scoring: penalties must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
