package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  preview: 2\nhandling:\n  das_ms: 100\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Rules.Preview)
	assert.Equal(t, 100, cfg.Handling.DASMs)
	// Untouched keys keep their defaults
	assert.Equal(t, 10, cfg.Rules.BoardWidth)
	assert.Equal(t, 500, cfg.Rules.LockDelayMs)
	assert.True(t, cfg.Display.Ghost)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"narrow board", "rules:\n  board_width: 3\n"},
		{"no hidden rows", "rules:\n  hidden_rows: 1\n"},
		{"short board", "rules:\n  board_height: 5\n"},
		{"too many previews", "rules:\n  preview: 8\n"},
		{"zero lock delay", "rules:\n  lock_delay_ms: 0\n"},
		{"zero release", "handling:\n  release_ms: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("rules: [unclosed"))
	assert.Error(t, err)
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  sprint_lines: 20\n"), 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Rules.SprintLines)
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Rules.Preview = 4

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)

	assert.Equal(t, 1, cfg.Rules.Preview)
	assert.False(t, cfg.Display.Ghost)
	assert.Equal(t, 500, cfg.Rules.LockDelayMs, "presets must not touch guideline timings")
	assert.NoError(t, cfg.Validate())
}

func TestParseDifficultyPreset(t *testing.T) {
	p, err := ParseDifficultyPreset("normal")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficultyPreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParseDifficultyPreset("insane")
	assert.Error(t, err)
}

func TestDurations(t *testing.T) {
	cfg := DefaultTetrisConfig()
	assert.Equal(t, int64(500), cfg.Rules.LockDelay().Milliseconds())
	assert.Equal(t, int64(50), cfg.Rules.SoftDropMax().Milliseconds())
	assert.Equal(t, int64(170), cfg.Handling.DAS().Milliseconds())
}
