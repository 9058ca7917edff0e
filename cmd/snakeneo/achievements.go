package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements",
	Long: `List every achievement and when it was unlocked.

Examples:
  snakeneo achievements`,
	Args: cobra.NoArgs,
	Run:  runAchievements,
}

func runAchievements(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	unlocked, err := store.Achievements()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving achievements: %v\n", err)
		os.Exit(1)
	}
	when := make(map[string]string, len(unlocked))
	for _, a := range unlocked {
		when[a.ID] = a.UnlockedAt.Format("2006-01-02")
	}

	catalogue := snake.Achievements()
	fmt.Printf("Achievements (%d/%d)\n", len(when), len(catalogue))
	fmt.Println()
	for _, a := range catalogue {
		mark, date := "[ ]", ""
		if d, ok := when[a.ID]; ok {
			mark, date = "[x]", d
		}
		fmt.Printf("  %s %-16s %-32s %s\n", mark, a.Name, a.Description, date)
	}
}
