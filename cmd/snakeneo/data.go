package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/storage"
)

var (
	flagClipboard bool
	flagReplace   bool
	flagYes       bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export settings, bests, leaderboard and achievements",
	Long: `Write all saved progress as YAML to a file, the clipboard or stdout.

Examples:
  snakeneo export > progress.yaml
  snakeneo export progress.yaml
  snakeneo export --clipboard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import progress exported with 'snakeneo export'",
	Long: `Read exported progress from a file, the clipboard or stdin.

By default the import is merged: bests keep the higher score, leaderboard
entries and achievements are added. With --replace all saved data is
wiped first.

Examples:
  snakeneo import progress.yaml
  snakeneo import --clipboard --replace`,
	Args: cobra.MaximumNArgs(1),
	Run:  runImport,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress",
	Long: `Factory reset: removes scores, bests, achievements and saved settings.

Examples:
  snakeneo reset --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	exportCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "Copy to the clipboard")
	importCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "Read from the clipboard")
	importCmd.Flags().BoolVar(&flagReplace, "replace", false, "Wipe saved data before importing")
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Do not ask for confirmation")
}

func runExport(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	dump, err := store.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := storage.EncodeDump(dump)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagClipboard:
		if err := clipboard.WriteAll(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Progress copied to clipboard.")
	case len(args) == 1:
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Progress written to %s\n", args[0])
	default:
		os.Stdout.Write(data)
	}
}

func runImport(_ *cobra.Command, args []string) {
	data, err := readImport(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dump, err := storage.DecodeDump(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	if err := store.Import(dump, flagReplace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d scores and %d achievements.\n", len(dump.Leaderboard), len(dump.Achievements))
}

func readImport(args []string) ([]byte, error) {
	switch {
	case flagClipboard:
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read clipboard: %w", err)
		}
		return []byte(text), nil
	case len(args) == 1:
		return os.ReadFile(args[0])
	default:
		return io.ReadAll(os.Stdin)
	}
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Print("Delete all scores, bests, achievements and settings? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	store := mustOpenStore()
	defer store.Close()

	if err := store.FactoryReset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All progress deleted.")
}
