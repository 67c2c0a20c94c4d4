package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Rules: RulesConfig{
			BoardWidth:     10,
			BoardHeight:    22,
			HiddenRows:     2,
			Preview:        5,
			LockDelayMs:    500,
			MaxLockResets:  15,
			SoftDropFactor: 20,
			SoftDropMaxMs:  50,
			SprintLines:    40,
		},
		Handling: HandlingConfig{
			DASMs:     170,
			ARRMs:     50,
			ReleaseMs: 120,
		},
		Display: DisplayConfig{
			Ghost:    true,
			ShowHelp: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
