package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the leaderboard",
	Long: `Display the top scores for a mode, or across all modes when no mode
is given. Cheated runs are marked with *.

Examples:
  snakeneo scores
  snakeneo scores timed --limit 5
  snakeneo scores daily --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the leaderboard entries instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	title := "All modes"
	if len(args) == 1 {
		m, err := snake.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'snakeneo modes' to see available modes.")
			os.Exit(1)
		}
		mode = string(m)
		title = m.Title()
	}

	store := mustOpenStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared leaderboard: %s\n", title)
		return
	}

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakeneo play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-8s  %-7s  %s\n", "Rank", "Name", "Mode", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-7s  %s\n", "----", "----", "----", "-----", "----")

	for i, entry := range scores {
		score := fmt.Sprintf("%d", entry.Score)
		if entry.Cheated {
			score += "*"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-8s  %-7s  %s\n", i+1, entry.Name, entry.Mode, score, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(mode); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if mode != "" {
		if stats, err := store.ModeStats(mode); err == nil && stats.GamesCount > 0 {
			fmt.Printf("Games: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
		}
	}
}
