// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Rules    RulesConfig    `yaml:"rules"`
	Handling HandlingConfig `yaml:"handling"`
	Display  DisplayConfig  `yaml:"display"`
}

// RulesConfig defines the playfield and timing rules of the engine.
type RulesConfig struct {
	BoardWidth     int `yaml:"board_width"`
	BoardHeight    int `yaml:"board_height"` // Including hidden rows
	HiddenRows     int `yaml:"hidden_rows"`
	Preview        int `yaml:"preview"`          // Next pieces exposed to the renderer
	LockDelayMs    int `yaml:"lock_delay_ms"`    // Grace period after grounding
	MaxLockResets  int `yaml:"max_lock_resets"`  // Moves/rotations that restart lock delay
	SoftDropFactor int `yaml:"soft_drop_factor"` // Gravity divisor while soft dropping
	SoftDropMaxMs  int `yaml:"soft_drop_max_ms"` // Upper bound of the soft drop interval
	SprintLines    int `yaml:"sprint_lines"`     // Line goal of sprint mode
}

// HandlingConfig defines how held keys turn into repeated actions.
type HandlingConfig struct {
	DASMs     int `yaml:"das_ms"`     // Delayed auto shift
	ARRMs     int `yaml:"arr_ms"`     // Auto repeat rate
	ReleaseMs int `yaml:"release_ms"` // Silence after which a key counts as released
}

// DisplayConfig defines renderer options.
type DisplayConfig struct {
	Ghost    bool `yaml:"ghost"`
	ShowHelp bool `yaml:"show_help"`
}

// LockDelay returns the lock delay as a duration.
func (r RulesConfig) LockDelay() time.Duration {
	return time.Duration(r.LockDelayMs) * time.Millisecond
}

// SoftDropMax returns the soft drop interval cap as a duration.
func (r RulesConfig) SoftDropMax() time.Duration {
	return time.Duration(r.SoftDropMaxMs) * time.Millisecond
}

// DAS returns the delayed auto shift as a duration.
func (h HandlingConfig) DAS() time.Duration {
	return time.Duration(h.DASMs) * time.Millisecond
}

// ARR returns the auto repeat rate as a duration.
func (h HandlingConfig) ARR() time.Duration {
	return time.Duration(h.ARRMs) * time.Millisecond
}

// Release returns the key release inference window as a duration.
func (h HandlingConfig) Release() time.Duration {
	return time.Duration(h.ReleaseMs) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports settings the engine cannot run with.
func (c TetrisConfig) Validate() error {
	r := c.Rules
	switch {
	case r.BoardWidth < 4:
		return fmt.Errorf("%w: board_width %d is narrower than a piece", ErrInvalidConfig, r.BoardWidth)
	case r.HiddenRows < 2:
		return fmt.Errorf("%w: hidden_rows must be at least 2, got %d", ErrInvalidConfig, r.HiddenRows)
	case r.BoardHeight < r.HiddenRows+4:
		return fmt.Errorf("%w: board_height %d leaves fewer than 4 visible rows", ErrInvalidConfig, r.BoardHeight)
	case r.Preview < 0 || r.Preview > 7:
		return fmt.Errorf("%w: preview must be within 0..7, got %d", ErrInvalidConfig, r.Preview)
	case r.LockDelayMs <= 0:
		return fmt.Errorf("%w: lock_delay_ms must be positive", ErrInvalidConfig)
	case r.MaxLockResets < 0:
		return fmt.Errorf("%w: max_lock_resets must not be negative", ErrInvalidConfig)
	case r.SoftDropFactor <= 0 || r.SoftDropMaxMs <= 0:
		return fmt.Errorf("%w: soft drop factor and cap must be positive", ErrInvalidConfig)
	case r.SprintLines <= 0:
		return fmt.Errorf("%w: sprint_lines must be positive", ErrInvalidConfig)
	}

	h := c.Handling
	if h.DASMs < 0 || h.ARRMs < 0 || h.ReleaseMs <= 0 {
		return fmt.Errorf("%w: handling timings must be non-negative and release_ms positive", ErrInvalidConfig)
	}
	return nil
}
