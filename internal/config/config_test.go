package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

func TestDefaultMemoryConfigValid(t *testing.T) {
	if err := DefaultMemoryConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseMemory(defaultMemoryYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := DefaultMemoryConfig()
	if cfg.Boards != def.Boards || cfg.Timing != def.Timing || cfg.Scoring != def.Scoring {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, def)
	}
	if strings.Join(cfg.Palette, "") != strings.Join(def.Palette, "") {
		t.Errorf("embedded palette %v differs from hardcoded %v", cfg.Palette, def.Palette)
	}
}

func TestDefaultPaletteFollowsEngine(t *testing.T) {
	p := DefaultMemoryConfig().Palette
	if len(p) != len(memory.DefaultPalette) {
		t.Fatalf("palette has %d symbols, engine has %d", len(p), len(memory.DefaultPalette))
	}
	for i, sym := range memory.DefaultPalette {
		if p[i] != string(sym) {
			t.Errorf("palette[%d] = %q, want %q", i, p[i], sym)
		}
	}

	p[0] = "X"
	if memory.DefaultPalette[0] == "X" || DefaultMemoryConfig().Palette[0] == "X" {
		t.Error("DefaultMemoryConfig should hand out a fresh palette")
	}
}

func TestLoadMemoryCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	data := []byte("boards:\n  small: 3\ntiming:\n  reveal_delay_ms: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMemory(path)
	if err != nil {
		t.Fatalf("LoadMemory failed: %v", err)
	}

	if cfg.Boards.Small != 3 {
		t.Errorf("Boards.Small = %d, expected 3", cfg.Boards.Small)
	}
	if cfg.Timing.RevealDelayMS != 250 {
		t.Errorf("RevealDelayMS = %d, expected 250", cfg.Timing.RevealDelayMS)
	}
	// Unset keys keep their defaults
	if cfg.Boards.Large != DefaultMemoryConfig().Boards.Large {
		t.Errorf("Boards.Large = %d, expected default", cfg.Boards.Large)
	}
	if cfg.Timing.MatchDelayMS != DefaultMemoryConfig().Timing.MatchDelayMS {
		t.Errorf("MatchDelayMS = %d, expected default", cfg.Timing.MatchDelayMS)
	}
}

func TestLoadMemoryErrors(t *testing.T) {
	if _, err := LoadMemory(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("boards: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMemory(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*MemoryConfig)
		want   string
	}{
		{"too few pairs", func(c *MemoryConfig) { c.Boards.Small = 1 }, "boards.small"},
		{"palette too short", func(c *MemoryConfig) { c.Palette = c.Palette[:4] }, "palette has 4"},
		{"duplicate symbol", func(c *MemoryConfig) { c.Palette[1] = c.Palette[0] }, "duplicate"},
		{"two characters", func(c *MemoryConfig) { c.Palette[0] = "ab" }, "single one-cell character"},
		{"double-width emoji", func(c *MemoryConfig) { c.Palette[0] = "🌟" }, "single one-cell character"},
		{"double-width CJK", func(c *MemoryConfig) { c.Palette[0] = "猫" }, "single one-cell character"},
		{"empty symbol", func(c *MemoryConfig) { c.Palette[0] = "" }, "single one-cell character"},
		{"negative delay", func(c *MemoryConfig) { c.Timing.RevealDelayMS = -1 }, "timing"},
		{"negative penalty", func(c *MemoryConfig) { c.Scoring.MovePenalty = -1 }, "scoring"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMemoryConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	s := ScoringConfig{Base: 1000, MovePenalty: 10, SecondPenalty: 2}

	if got := s.Score(12, 30); got != 1000-120-60 {
		t.Errorf("Score(12, 30) = %d, expected %d", got, 1000-120-60)
	}
	if got := s.Score(500, 500); got != 0 {
		t.Errorf("Score should floor at zero, got %d", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		want  DifficultyPreset
		board BoardSize
	}{
		{"", DifficultyNormal, BoardMedium},
		{"easy", DifficultyEasy, BoardSmall},
		{"normal", DifficultyNormal, BoardMedium},
		{"hard", DifficultyHard, BoardLarge},
	}

	for _, tc := range tests {
		p, err := ParsePreset(tc.name)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", tc.name, err)
		}
		if p != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.name, p, tc.want)
		}
		if b := BoardForPreset(p); b != tc.board {
			t.Errorf("BoardForPreset(%q) = %q, expected %q", p, b, tc.board)
		}
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyMemoryPreset(t *testing.T) {
	easy := DefaultMemoryConfig()
	ApplyMemoryPreset(&easy, DifficultyEasy)
	if easy.Timing.RevealDelayMS != 1500 {
		t.Errorf("easy RevealDelayMS = %d, expected 1500", easy.Timing.RevealDelayMS)
	}

	hard := DefaultMemoryConfig()
	ApplyMemoryPreset(&hard, DifficultyHard)
	if hard.Timing.RevealDelayMS != 500 || hard.Timing.MatchDelayMS != 150 {
		t.Errorf("hard timing = %+v, expected 500/150", hard.Timing)
	}

	normal := DefaultMemoryConfig()
	ApplyMemoryPreset(&normal, DifficultyNormal)
	if normal.Timing != DefaultMemoryConfig().Timing {
		t.Errorf("normal preset changed timing: %+v", normal.Timing)
	}
}
