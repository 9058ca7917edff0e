package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tggbb/SnakeNeo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the SnakeNeo config file",
	Long: `The config file holds settings and rule constants. It is searched at
--config, then ~/.snakeneo/configs/snake.yaml, then ./configs/snake.yaml.
Settings saved with 'snakeneo play --save' override the file.

Examples:
  snakeneo config init
  snakeneo config show
  snakeneo config path`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to the user config path",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "Error: cannot determine home directory, pass --config")
			os.Exit(1)
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user config path",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.UserConfigPath())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		store := openStore(logger)
		cfg := loadConfig(store, logger)
		if store != nil {
			store.Close()
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
