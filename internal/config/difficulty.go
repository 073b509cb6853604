package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// BoardForPreset returns the board a preset plays on by default.
func BoardForPreset(preset DifficultyPreset) BoardSize {
	switch preset {
	case DifficultyEasy:
		return BoardSmall
	case DifficultyHard:
		return BoardLarge
	default:
		return BoardMedium
	}
}

// ApplyMemoryPreset adjusts timing for a difficulty preset.
// Easy leaves mismatches visible longer; hard gives the player less time to memorize.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.RevealDelayMS = cfg.Timing.RevealDelayMS * 3 / 2
	case DifficultyHard:
		cfg.Timing.RevealDelayMS = cfg.Timing.RevealDelayMS / 2
		cfg.Timing.MatchDelayMS = cfg.Timing.MatchDelayMS / 2
	}
}
