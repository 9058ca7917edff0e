package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available modes",
	Long: `Display all game modes with your best score in each.

Examples:
  snakeneo modes`,
	Run: runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	store := openStore(newLogger())
	if store != nil {
		defer store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Find max ID length for alignment
	maxLen := 0
	for _, m := range modes {
		if len(m.ID) > maxLen {
			maxLen = len(m.ID)
		}
	}

	for _, m := range modes {
		best := "-"
		if store != nil {
			if score, err := store.BestScore(m.ID); err == nil && score > 0 {
				best = fmt.Sprintf("%d", score)
			}
		}
		fmt.Printf("  %-*s  best: %-6s  %s\n", maxLen, m.ID, best, m.Title)
	}

	if store != nil {
		if overall, err := store.BestOverall(); err == nil && overall > 0 {
			fmt.Println()
			fmt.Printf("Overall best: %d\n", overall)
		}
	}

	fmt.Println()
	fmt.Println("Play with: snakeneo play <mode>")
}
