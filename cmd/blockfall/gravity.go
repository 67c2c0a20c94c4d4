package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

var flagMaxLevel int

var gravityCmd = &cobra.Command{
	Use:   "gravity",
	Short: "Print the gravity table",
	Long: `Print how long a piece takes to fall one row at each level.

Examples:
  blockfall gravity
  blockfall gravity --levels 30`,
	Args: cobra.NoArgs,
	RunE: runGravity,
}

func init() {
	gravityCmd.Flags().IntVar(&flagMaxLevel, "levels", 20, "Number of levels to print")
}

func runGravity(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-5s  %-8s  %s\n", "Level", "Interval", "Rows/s")
	fmt.Fprintf(out, "  %-5s  %-8s  %s\n", "-----", "--------", "------")
	for level := 1; level <= flagMaxLevel; level++ {
		d := tetris.Speed(level)
		fmt.Fprintf(out, "  %-5d  %-8s  %.2f\n", level, d, 1/d.Seconds())
	}
	return nil
}
