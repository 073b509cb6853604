package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every board size with its number of pairs.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	if _, err := loadGameConfig(); err != nil {
		fatal("%v", err)
	}

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Pairs", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, g.ID, g.Pairs, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'memory play <id>' to play a board.")
}
