package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tggbb/SnakeNeo/internal/audio"
	"github.com/tggbb/SnakeNeo/internal/config"
	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/platform/tui"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

var (
	flagAdmin     bool
	flagName      string
	flagPreset    string
	flagNoSound   bool
	flagWidth     int
	flagHeight    int
	flagSpeed     int
	flagWrap      string
	flagObstacles string
	flagSave      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (classic, timed or daily).
Without a mode the configured default is used.

Controls:
  WASD/Arrows  - Steer
  Space/P      - Pause
  R            - Restart
  Shift+R      - Soft restart (keep grid and speed)
  M            - Next mode
  Ctrl+S       - Screenshot
  Esc/B        - Back to menu (when paused or over)
  Q/Ctrl+C     - Quit

Speed presets:
  easy    - 4 ticks per second
  normal  - 6 ticks per second
  hard    - 9 ticks per second

Examples:
  snakeneo play
  snakeneo play timed --preset hard
  snakeneo play classic --width 40 --height 30 --wrap=false --save
  snakeneo play daily --name ada`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAdmin, "admin", false, "Enable cheat keys (runs are flagged as cheated)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Default leaderboard name")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Speed preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Base speed in ticks per second (1-10)")
	playCmd.Flags().StringVar(&flagWrap, "wrap", "", "Wrap around edges: true or false")
	playCmd.Flags().StringVar(&flagObstacles, "obstacles", "", "Place obstacles: true or false")
	playCmd.Flags().BoolVar(&flagSave, "save", false, "Remember these settings for later sessions")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)
	cfg := loadConfig(store, logger)

	if len(args) == 1 {
		mode, err := snake.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'snakeneo modes' to see available modes.")
			os.Exit(1)
		}
		cfg.Settings.Mode = string(mode)
	}

	if err := applyPlayFlags(&cfg.Settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSave {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Warning: database unavailable, settings not saved")
		} else if err := store.SaveSettings(cfg.Settings); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save settings: %v\n", err)
		}
	}

	width, height := terminalSize()
	session := newSession(store, logger, cfg)

	// Run the game
	_, runErr := tui.Run(newGame(cfg), session, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyPlayFlags layers the play flags over the settings and clamps them.
func applyPlayFlags(s *config.Settings) error {
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		config.ApplyPreset(s, preset)
	}
	if flagSpeed > 0 {
		s.BaseSpeed = flagSpeed
	}
	if flagWidth > 0 {
		s.GridWidth = flagWidth
	}
	if flagHeight > 0 {
		s.GridHeight = flagHeight
	}
	if err := parseBoolFlag("wrap", flagWrap, &s.Wrap); err != nil {
		return err
	}
	if err := parseBoolFlag("obstacles", flagObstacles, &s.Obstacles); err != nil {
		return err
	}
	if flagNoSound {
		s.Sound = false
	}
	s.Clamp()
	return nil
}

func parseBoolFlag(name, value string, dst *bool) error {
	switch value {
	case "":
	case "true", "on", "yes", "1":
		*dst = true
	case "false", "off", "no", "0":
		*dst = false
	default:
		return fmt.Errorf("--%s must be true or false, got %q", name, value)
	}
	return nil
}

// newGame builds a game from the loaded configuration and --seed.
func newGame(cfg config.SnakeConfig) *snake.Game {
	opts := snake.OptionsFromConfig(cfg)
	opts.Seed = flagSeed
	return snake.New(opts)
}

// newSession wires the collaborators of a local play session.
func newSession(store *storage.Store, logger *log.Logger, cfg config.SnakeConfig) tui.Session {
	player := audio.New(cfg.Settings.Sound, logger)
	// Init logs its own failure and leaves the player silent
	_ = player.Init()

	name := flagName
	if name == "" {
		name = os.Getenv("USER")
	}

	return tui.Session{
		Store:      store,
		Audio:      player,
		Logger:     logger,
		ReplayDir:  expandHome(dataDir + "/replays"),
		DataDir:    expandHome(dataDir),
		PlayerName: name,
		Theme:      cfg.Settings.Theme,
		Admin:      flagAdmin,
		FPS:        flagFPS,
	}
}

// terminalSize returns the terminal dimensions, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
