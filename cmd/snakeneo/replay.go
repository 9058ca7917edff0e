package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/platform/tui"
	"github.com/tggbb/SnakeNeo/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Inspect and verify recorded runs",
	Long: `Every finished run is recorded to ~/.snakeneo/replays/last.snr.
A recording holds the seed, settings and steering inputs of the run,
so it can be re-simulated to confirm its score.

Examples:
  snakeneo replay show
  snakeneo replay verify ./run.snr`,
}

var flagInputs bool

var replayShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the contents of a recording",
	Args:  cobra.MaximumNArgs(1),
	Run:   runReplayShow,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Re-simulate a recording and check its score",
	Args:  cobra.MaximumNArgs(1),
	Run:   runReplayVerify,
}

func init() {
	replayShowCmd.Flags().BoolVar(&flagInputs, "inputs", false, "Also list every recorded turn")
	replayCmd.AddCommand(replayShowCmd)
	replayCmd.AddCommand(replayVerifyCmd)
}

// replayPath returns the file argument or the last recording.
func replayPath(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return filepath.Join(expandHome(dataDir), "replays", tui.LastReplayFile)
}

func loadReplay(args []string) replay.Recording {
	path := replayPath(args)
	rec, err := replay.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return rec
}

func runReplayShow(_ *cobra.Command, args []string) {
	rec := loadReplay(args)

	seed := fmt.Sprintf("%d", rec.Seed)
	if rec.DailySeed != 0 {
		seed = fmt.Sprintf("daily %d", rec.DailySeed)
	}

	fmt.Printf("Mode:      %s\n", rec.Mode.Title())
	fmt.Printf("Recorded:  %s\n", rec.RecordedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Seed:      %s\n", seed)
	fmt.Printf("Grid:      %dx%d wrap=%t obstacles=%t\n",
		rec.Settings.GridWidth, rec.Settings.GridHeight, rec.Settings.Wrap, rec.Settings.Obstacles)
	fmt.Printf("Speed:     %d tps x%.2f\n", rec.Settings.BaseSpeed, rec.SpeedMul)
	fmt.Printf("Ticks:     %d\n", rec.Ticks)
	fmt.Printf("Inputs:    %d\n", len(rec.Inputs))
	fmt.Printf("Score:     %d\n", rec.FinalScore)
	if rec.Cheated {
		fmt.Println("Cheated:   yes")
	}

	if flagInputs && len(rec.Inputs) > 0 {
		fmt.Println()
		fmt.Printf("  %-8s  %s\n", "Tick", "Turn")
		for _, in := range rec.Inputs {
			fmt.Printf("  %-8d  %s\n", in.Tick, in.Dir)
		}
	}
}

func runReplayVerify(_ *cobra.Command, args []string) {
	rec := loadReplay(args)

	err := replay.Verify(rec)
	switch {
	case err == nil:
		fmt.Printf("OK: %s run scored %d in %d ticks\n", rec.Mode.Title(), rec.FinalScore, rec.Ticks)
	case errors.Is(err, replay.ErrCheated):
		fmt.Println("Rejected: the run used cheats")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}
