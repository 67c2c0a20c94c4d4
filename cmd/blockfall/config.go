package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The result merges the embedded defaults, the first config file found
(--config, ~/.blockfall/configs/tetris.yaml, ./configs/tetris.yaml) and
the --difficulty preset. Redirect it to a file to start a custom config.

Examples:
  blockfall config
  blockfall config --difficulty easy > ~/.blockfall/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
