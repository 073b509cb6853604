package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Deal a board and start playing.

Without a board argument the --difficulty preset picks one:
easy plays memory_small, normal plays memory, hard plays memory_large.

Controls:
  Arrows/WASD   - Move the cursor
  Enter/Space   - Flip the card under the cursor
  P             - Pause
  R             - Deal a new board (any time)
  Esc/B         - Back (when paused or finished)
  ?             - Toggle key help
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Small board, mismatches stay visible longer
  normal - Medium board, default timing
  hard   - Large board, half the time to memorize

Examples:
  memory play
  memory play memory_large
  memory play --difficulty hard
  memory play --seed 42
  memory play --config ./my-memory.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	preset, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	gameID := memory.IDForSize(config.BoardForPreset(preset))
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fatal("unknown board %q\nRun 'memory list' to see available boards.", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore()
	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)

	_, runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
