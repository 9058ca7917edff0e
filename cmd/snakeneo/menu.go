package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/platform/tui"
)

// runMenu is the root command: pick a mode, play, return to the menu.
func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	store := openStore(logger)
	cfg := loadConfig(store, logger)
	theme := tui.ThemeByName(cfg.Settings.Theme)
	session := newSession(store, logger, cfg)

	width, height := terminalSize()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, theme, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, theme, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		cfg.Settings.Mode = string(menuResult.Mode)
		goBack, runErr := tui.Run(newGame(cfg), session, width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !goBack {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
