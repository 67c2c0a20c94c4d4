package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
)

func TestLoadGameConfigAppliesPreset(t *testing.T) {
	flagConfig = ""
	flagDifficulty = "hard"
	t.Cleanup(func() { flagDifficulty = "" })
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadGameConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Rules.Preview)
	assert.False(t, cfg.Display.Ghost)
}

func TestLoadGameConfigRejectsUnknownPreset(t *testing.T) {
	flagDifficulty = "nightmare"
	t.Cleanup(func() { flagDifficulty = "" })

	_, err := loadGameConfig()
	assert.Error(t, err)
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	flagConfig = ""
	flagDifficulty = ""
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	configCmd.SetOut(&out)
	require.NoError(t, runConfig(configCmd, nil))

	cfg, err := config.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTetrisConfig(), cfg)
}

func TestGravityCommand(t *testing.T) {
	flagMaxLevel = 2
	var out bytes.Buffer
	gravityCmd.SetOut(&out)
	require.NoError(t, runGravity(gravityCmd, nil))

	assert.Contains(t, out.String(), "1s")
	assert.Contains(t, out.String(), "793ms")
}

func TestPort(t *testing.T) {
	assert.Equal(t, "23234", port(":23234"))
	assert.Equal(t, "2222", port("0.0.0.0:2222"))
}

func TestLoadBaseConfigLeavesPresetToCaller(t *testing.T) {
	flagConfig = ""
	flagDifficulty = "hard"
	t.Cleanup(func() { flagDifficulty = "" })
	t.Setenv("HOME", t.TempDir())

	cfg, preset, err := loadBaseConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, preset)
	assert.Equal(t, config.DefaultTetrisConfig(), cfg)
}
