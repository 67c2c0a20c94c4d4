package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tetris).

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Space             - Hard drop
  Up, X             - Rotate clockwise
  Z                 - Rotate counterclockwise
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart (after game over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five previews, ghost piece, slower auto-shift
  normal - Three previews, ghost piece
  hard   - One preview, no ghost, faster auto-shift

The terminal owns the screen while playing, so logs only go to --log-file.

Examples:
  blockfall play
  blockfall play tetris_sprint
  blockfall play --difficulty hard --seed 42
  blockfall play --log-file ./blockfall.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'blockfall list' to see available modes", gameID)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closer, err := playLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(gameCfg, width, height), logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// playLogger opens --log-file, or discards logs when it is unset.
func playLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		if _, err := logging.ParseLevel(flagLogLevel); err != nil {
			return nil, nil, err
		}
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.OpenFile(flagLogFile, "blockfall", flagLogLevel)
}
