package tui

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// instantShift is how many moves ARR 0 emits per tick; enough to cross any board.
const instantShift = 16

// heldKey tracks a key that terminals only report as repeated presses.
type heldKey struct {
	age     time.Duration // Since the first press
	quiet   time.Duration // Since the latest press
	shift   time.Duration // Auto-repeat accumulator
	repeats int           // Presses seen after the first
	pending int           // Presses not yet emitted
}

// Repeater turns key press events into per-tick actions. Terminals send
// no release events, so a key counts as held until no press arrived for
// the release window.
//
// Horizontal moves fire once per press, then auto-shift every ARR once the
// key has been held for DAS. Soft drop is asserted on every tick while
// held. Everything else fires once per press.
type Repeater struct {
	das     time.Duration
	arr     time.Duration
	release time.Duration
	held    map[core.Action]*heldKey
	once    []core.Action
}

// NewRepeater creates a repeater with the given handling settings.
func NewRepeater(h config.HandlingConfig) *Repeater {
	return &Repeater{
		das:     h.DAS(),
		arr:     h.ARR(),
		release: h.Release(),
		held:    make(map[core.Action]*heldKey),
	}
}

// Press records a key press (or a terminal auto-repeat of one).
func (r *Repeater) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionMoveLeft, core.ActionMoveRight:
		delete(r.held, opposite(a))
		h, ok := r.held[a]
		if !ok {
			r.held[a] = &heldKey{pending: 1}
			return
		}
		h.quiet = 0
		h.repeats++
		// Before DAS a repeat is indistinguishable from a quick second tap.
		if h.age < r.das {
			h.pending++
		}
	case core.ActionSoftDrop:
		if h, ok := r.held[a]; ok {
			h.quiet = 0
			h.repeats++
			return
		}
		r.held[a] = &heldKey{}
	default:
		r.once = append(r.once, a)
	}
}

// Tick advances held keys by dt and returns the actions for this frame.
func (r *Repeater) Tick(dt time.Duration) []core.Action {
	out := r.once
	r.once = nil

	for _, a := range [...]core.Action{core.ActionMoveLeft, core.ActionMoveRight} {
		h, ok := r.held[a]
		if !ok {
			continue
		}
		for ; h.pending > 0; h.pending-- {
			out = append(out, a)
		}

		prev := h.age
		h.age += dt
		h.quiet += dt

		if h.quiet > r.window(h) {
			delete(r.held, a)
			continue
		}
		if h.repeats == 0 || h.age < r.das {
			continue
		}

		if r.arr <= 0 {
			for n := instantShift; n > 0; n-- {
				out = append(out, a)
			}
			continue
		}
		if prev < r.das {
			h.shift = h.age - r.das
		} else {
			h.shift += dt
		}
		for h.shift >= r.arr {
			out = append(out, a)
			h.shift -= r.arr
		}
	}

	if h, ok := r.held[core.ActionSoftDrop]; ok {
		out = append(out, core.ActionSoftDrop)
		h.quiet += dt
		if h.quiet > r.window(h) {
			delete(r.held, core.ActionSoftDrop)
		}
	}

	return out
}

// window is how long a key may stay silent before it counts as released.
// Terminals wait longer before their first auto-repeat than between
// repeats, so a key with no repeat yet gets DAS on top.
func (r *Repeater) window(h *heldKey) time.Duration {
	if h.repeats == 0 {
		return r.release + r.das
	}
	return r.release
}

// Held reports whether the repeater still considers a key held.
func (r *Repeater) Held(a core.Action) bool {
	_, ok := r.held[a]
	return ok
}

// Reset forgets every held key and queued press.
func (r *Repeater) Reset() {
	clear(r.held)
	r.once = nil
}

func opposite(a core.Action) core.Action {
	if a == core.ActionMoveLeft {
		return core.ActionMoveRight
	}
	return core.ActionMoveLeft
}
