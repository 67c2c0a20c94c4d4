package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

const frame = 10 * time.Millisecond

// handling: DAS 170ms, ARR 50ms, release 120ms.
func newTestRepeater() *Repeater {
	return NewRepeater(config.DefaultTetrisConfig().Handling)
}

func count(actions []core.Action, a core.Action) int {
	n := 0
	for _, x := range actions {
		if x == a {
			n++
		}
	}
	return n
}

func TestRepeaterTapFiresOnce(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionMoveLeft)

	assert.Equal(t, []core.Action{core.ActionMoveLeft}, r.Tick(frame))

	total := 0
	for rangeN := 50; rangeN > 0; rangeN-- {
		total += count(r.Tick(frame), core.ActionMoveLeft)
	}
	assert.Zero(t, total, "a tap must not auto-shift")
	assert.False(t, r.Held(core.ActionMoveLeft), "tap should be released")
}

func TestRepeaterAutoShiftAtARR(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionMoveRight)
	assert.Equal(t, 1, count(r.Tick(frame), core.ActionMoveRight))

	// Terminal auto-repeat starts after 250ms.
	for rangeN := 24; rangeN > 0; rangeN-- {
		assert.Empty(t, r.Tick(frame))
	}

	total := 0
	for rangeN := 10; rangeN > 0; rangeN-- {
		r.Press(core.ActionMoveRight)
		total += count(r.Tick(frame), core.ActionMoveRight)
	}
	assert.Equal(t, 2, total, "100ms past DAS at 50ms ARR")
	assert.True(t, r.Held(core.ActionMoveRight))

	// Releasing stops the shift within the release window.
	for rangeN := 20; rangeN > 0; rangeN-- {
		r.Tick(frame)
	}
	assert.False(t, r.Held(core.ActionMoveRight))
}

func TestRepeaterInstantARR(t *testing.T) {
	h := config.DefaultTetrisConfig().Handling
	h.ARRMs = 0
	r := NewRepeater(h)

	r.Press(core.ActionMoveLeft)
	r.Tick(frame)
	for rangeN := 20; rangeN > 0; rangeN-- {
		r.Press(core.ActionMoveLeft)
		r.Tick(frame)
	}
	assert.Equal(t, instantShift, count(r.Tick(frame), core.ActionMoveLeft))
}

func TestRepeaterOppositeCancels(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionMoveLeft)
	r.Press(core.ActionMoveRight)

	assert.False(t, r.Held(core.ActionMoveLeft))
	assert.Equal(t, []core.Action{core.ActionMoveRight}, r.Tick(frame))
}

func TestRepeaterSoftDropWhileHeld(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionSoftDrop)

	for rangeN := 30; rangeN > 0; rangeN-- {
		r.Press(core.ActionSoftDrop)
		assert.Equal(t, []core.Action{core.ActionSoftDrop}, r.Tick(frame))
	}

	for rangeN := 20; rangeN > 0; rangeN-- {
		r.Tick(frame)
	}
	assert.False(t, r.Held(core.ActionSoftDrop))
	assert.Empty(t, r.Tick(frame))
}

func TestRepeaterSoftDropHeldThroughRepeatDelay(t *testing.T) {
	const tick = 16 * time.Millisecond
	r := newTestRepeater()
	r.Press(core.ActionSoftDrop)

	// The terminal's first auto-repeat arrives after 288ms, then every 32ms.
	for i, rangeN := 0, 30; i < rangeN; i++ {
		if i >= 18 && i%2 == 0 {
			r.Press(core.ActionSoftDrop)
		}
		assert.Equal(t, 1, count(r.Tick(tick), core.ActionSoftDrop), "tick %d", i)
	}
	assert.True(t, r.Held(core.ActionSoftDrop))
}

func TestRepeaterSoftDropTapReleases(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionSoftDrop)

	// No repeat ever comes: held for DAS plus the release window.
	for rangeN := 29; rangeN > 0; rangeN-- {
		assert.Equal(t, []core.Action{core.ActionSoftDrop}, r.Tick(frame))
	}
	r.Tick(frame)
	assert.False(t, r.Held(core.ActionSoftDrop))
	assert.Empty(t, r.Tick(frame))
}

func TestRepeaterOneShots(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionRotateCW)
	r.Press(core.ActionHardDrop)
	r.Press(core.ActionNone)

	assert.Equal(t, []core.Action{core.ActionRotateCW, core.ActionHardDrop}, r.Tick(frame))
	assert.Empty(t, r.Tick(frame))
}

func TestRepeaterReset(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionMoveLeft)
	r.Press(core.ActionHold)
	r.Reset()
	assert.Empty(t, r.Tick(frame))
}
