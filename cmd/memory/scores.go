package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show best games for a board",
	Long: `Display the best finished games for a board, fewest moves first and
fastest time breaking ties. Without a board argument every board is summarized.

Examples:
  memory scores
  memory scores memory_large
  memory scores memory --limit 25
  memory scores memory_small --clear
  memory scores --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the board")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show recent games by one player")
}

func runScores(_ *cobra.Command, args []string) {
	if _, err := loadGameConfig(); err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening results database: %v", err)
	}
	defer store.Close()

	if flagScoresPlayer != "" {
		if len(args) > 0 {
			fatal("--player lists every board; drop the board argument")
		}
		results, err := store.PlayerResults(flagScoresPlayer, flagScoresLimit)
		if err != nil {
			fatal("retrieving results: %v", err)
		}
		printPlayerResults(os.Stdout, flagScoresPlayer, results)
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		fatal("unknown board %q\nRun 'memory list' to see available boards.", gameID)
	}

	if flagScoresClear {
		if err := store.ClearResults(gameID); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared results for %s.\n", info.Title)
		return
	}

	results, err := store.TopResults(gameID, flagScoresLimit)
	if err != nil {
		fatal("retrieving results: %v", err)
	}

	fmt.Printf("Best Games - %s (%d pairs)\n", info.Title, info.Pairs)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games finished yet.")
		fmt.Println()
		fmt.Printf("Play 'memory play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-12s  %s\n", "Rank", "Moves", "Time", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-6s  %-5d  %-12s  %s\n",
			i+1, r.Moves, clock(r.Seconds), r.Score, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d   Average moves: %.1f   Perfect game: %d moves\n",
			stats.Played, stats.AvgMoves, info.Pairs)
	}
}

// printSummary shows the best result on every board.
func printSummary(store *storage.Store) {
	fmt.Println("Best Games")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-5s  %-6s  %s\n", "Board", "Played", "Moves", "Time", "Player")
	fmt.Printf("  %-16s  %-6s  %-5s  %-6s  %s\n", "-----", "------", "-----", "----", "------")

	for _, g := range registry.List() {
		stats, err := store.GameStats(g.ID)
		if err != nil {
			fatal("%v", err)
		}
		best, ok, err := store.BestResult(g.ID)
		if err != nil {
			fatal("%v", err)
		}
		if !ok {
			fmt.Printf("  %-16s  %-6d  %-5s  %-6s  %s\n", g.Title, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-5d  %-6s  %s\n", g.Title, stats.Played, best.Moves, clock(best.Seconds), best.Player)
	}
}

// printPlayerResults lists a player's games, newest first.
func printPlayerResults(w io.Writer, player string, results []storage.Result) {
	fmt.Fprintf(w, "Recent Games - %s\n\n", player)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games finished yet.")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-6s  %-5s  %s\n", "Board", "Pairs", "Moves", "Time", "Score", "Date")
	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-6s  %-5s  %s\n", "-----", "-----", "-----", "----", "-----", "----")

	for _, r := range results {
		board := r.GameID
		if info, ok := registry.Info(r.GameID); ok {
			board = info.Title
		}
		fmt.Fprintf(w, "  %-16s  %-5d  %-5d  %-6s  %-5d  %s\n",
			board, r.Pairs, r.Moves, clock(r.Seconds), r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// clock renders seconds as m:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
