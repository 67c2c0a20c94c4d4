package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start blockfall in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change the difficulty
and Enter to play. After a game ends or while paused, press B to return
to the menu.

Controls:
  Up/Down/j/k     - Navigate modes
  Left/Right      - Change difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  blockfall menu
  blockfall menu --difficulty hard
  blockfall menu --log-file ./blockfall.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadBaseConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closer, err := playLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := tui.RunSession(runtimeConfig(gameCfg, width, height), preset, logger); err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}
