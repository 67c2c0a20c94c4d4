package config

import "fmt"

// DifficultyPreset represents a named assist level.
// Presets never touch the guideline rules (gravity, lock delay, scoring);
// they only change how much help the player gets.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value into a preset.
// An empty string yields an empty preset, which leaves the config unchanged.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Preview = 5
		cfg.Display.Ghost = true
		cfg.Handling.DASMs = 200
	case DifficultyNormal:
		cfg.Rules.Preview = 3
		cfg.Display.Ghost = true
	case DifficultyHard:
		cfg.Rules.Preview = 1
		cfg.Display.Ghost = false
		cfg.Handling.DASMs = 120
		cfg.Handling.ARRMs = 33
	}
}
