package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionMoveLeft},
		{"a", core.ActionMoveLeft},
		{"d", core.ActionMoveRight},
		{"s", core.ActionSoftDrop},
		{" ", core.ActionHardDrop},
		{"x", core.ActionRotateCW},
		{"z", core.ActionRotateCCW},
		{"c", core.ActionHold},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"m", core.ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, km.Action(keyMsg(tt.key)), "key %q", tt.key)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
		}
	}
}
