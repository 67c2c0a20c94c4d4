// blockfall is a guideline falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                  - Same as 'blockfall menu'
//	blockfall menu             - Pick a mode and difficulty interactively
//	blockfall list             - List available modes
//	blockfall play [mode]      - Play locally (default: tetris)
//	blockfall serve            - Start SSH server for remote play
//	blockfall config           - Print the effective configuration
//	blockfall gravity          - Print the gravity table
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Assist preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log file for play and menu
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/blockfall/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game in your terminal",
	Long: `Blockfall is a guideline falling-block puzzle game with SRS rotation,
hold, ghost piece, T-spins and back-to-back scoring.

Run without a command to open the mode picker.

Available commands:
  menu     - Pick a mode and difficulty interactively
  list     - Show all available modes
  play     - Play a mode directly
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  gravity  - Print the gravity table

Examples:
  blockfall
  blockfall play
  blockfall play tetris_sprint --difficulty easy
  blockfall serve --ssh :2222
  blockfall config --config ./my-rules.yaml`,
	Args:         cobra.NoArgs,
	RunE:         runMenu,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Assist preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play and menu)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(gravityCmd)
}

// loadGameConfig reads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.TetrisConfig, error) {
	cfg, preset, err := loadBaseConfig()
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}

// loadBaseConfig reads the YAML config and parses --difficulty without
// applying it, for callers that let the player change the preset.
func loadBaseConfig() (config.TetrisConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	return cfg, preset, nil
}

// runtimeConfig builds the platform config from global flags.
func runtimeConfig(game config.TetrisConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Game:     game,
	}
}
