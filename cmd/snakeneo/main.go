// snakeneo is a terminal snake game with timed and daily modes, specials,
// achievements, replays and a shared SSH leaderboard.
//
// Usage:
//
//	snakeneo                    - Start the menu to pick a mode interactively
//	snakeneo play [mode]        - Play a mode directly
//	snakeneo modes              - List modes with best scores
//	snakeneo scores [mode]      - Show the leaderboard
//	snakeneo achievements       - Show unlocked achievements
//	snakeneo replay <cmd> file  - Inspect or verify a replay
//	snakeneo export / import    - Move progress between machines
//	snakeneo config <cmd>       - Manage the config file
//	snakeneo serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.snakeneo/snakeneo.db)
//	--config <path>   - Use a specific config file
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/config"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

const dataDir = "~/.snakeneo"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagTheme    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakeneo",
	Short: "SnakeNeo - a neon snake in your terminal",
	Long: `SnakeNeo is a terminal snake game with classic, timed and daily modes,
golden and portal specials, achievements and replays.

Running snakeneo without a command opens the mode menu.

Examples:
  snakeneo
  snakeneo play timed
  snakeneo play daily --name ada
  snakeneo scores classic
  snakeneo serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dataDir+"/snakeneo.db", "Path to the SnakeNeo database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: neo, retro, sunset")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger at the --log-level level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakeneo",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the config file and layers saved settings and flags over it.
func loadConfig(store *storage.Store, logger *log.Logger) config.SnakeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		settings, ok, err := store.LoadSettings(cfg.Settings)
		switch {
		case err != nil:
			logger.Warn("could not load saved settings", "error", err)
		case ok:
			cfg.Settings = settings
		}
	}
	if flagTheme != "" {
		cfg.Settings.Theme = flagTheme
		cfg.Settings.Clamp()
	}
	return cfg
}

// openStore opens the database, warning and returning nil on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
