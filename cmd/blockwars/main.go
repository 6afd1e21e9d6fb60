// blockwars is a real-time arcade shooter: a square avatar fights waves of
// homing enemies in a full-screen window or in the terminal.
//
// Usage:
//
//	blockwars                 - Play (same as "blockwars play")
//	blockwars play            - Play in the configured front end
//	blockwars serve           - Start SSH server for remote play
//	blockwars config          - Print the configuration
//
// Global flags:
//
//	--config <path>  - Configuration file (default: search order)
//	--fps <rate>     - Override the tick rate
//	--seed <value>   - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockwars/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockwars",
	Short: "Block Wars - shoot the blocks before they reach you",
	Long: `Block Wars is an arcade shooter. Move your blue square, fire at the red
blocks homing in on you and survive as many waves as you can.

Available commands:
  play     - Play (default when no command is given)
  serve    - Start SSH server for remote play
  config   - Print the configuration

Examples:
  blockwars
  blockwars play --backend terminal
  blockwars serve --ssh :2222
  blockwars config --resolved`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	registerPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}
