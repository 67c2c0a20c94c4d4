package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "score")
	s.DrawText(2, 1, "42")

	assert.Equal(t, "score\n  42", RenderScreen(s))
}

func TestRenderScreenKeepsColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetColored(1, 0, '█', core.ColorCyan)
	s.SetColored(2, 0, '█', core.ColorCyan)
	s.SetColored(3, 0, '░', core.ColorDarkGray)

	out := RenderScreen(s)
	assert.Equal(t, 2, strings.Count(out, "█"))
	assert.Contains(t, out, "░")
	assert.Len(t, strings.Split(out, "\n"), 1)
}
