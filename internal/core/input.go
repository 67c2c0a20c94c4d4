package core

// Action represents a semantic game action, abstracted from physical key presses.
// The input collaborator translates raw key events into a stream of these;
// the engine never observes key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, H - shift piece left
	ActionMoveRight        // Right, L - shift piece right
	ActionSoftDrop         // Down, J - re-asserted every tick while held
	ActionHardDrop         // Space - drop and lock immediately
	ActionRotateCW         // Up, X, K - rotate clockwise
	ActionRotateCCW        // Z, Ctrl - rotate counter-clockwise
	ActionHold             // C, Shift - stash the active piece
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// frameOrder is the order in which InputFrame.Actions reports set actions.
// Pause comes first so a resume in the same frame unblocks the rest.
var frameOrder = []Action{
	ActionPause,
	ActionHold,
	ActionMoveLeft,
	ActionMoveRight,
	ActionRotateCW,
	ActionRotateCCW,
	ActionSoftDrop,
	ActionHardDrop,
	ActionRestart,
	ActionQuit,
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to how many times they fired this frame.
	// Auto-repeat can fire a move more than once per tick.
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set marks an action as triggered for this frame. Setting twice is a no-op.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	if f.Actions[a] == 0 {
		f.Actions[a] = 1
	}
}

// Add records one more occurrence of an action.
func (f *InputFrame) Add(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a] > 0
}

// Count returns how many times the action fired this frame.
func (f InputFrame) Count(a Action) int {
	return f.Actions[a]
}

// Ordered returns the triggered actions in a fixed, deterministic order,
// repeating each as many times as it fired.
func (f InputFrame) Ordered() []Action {
	if len(f.Actions) == 0 {
		return nil
	}
	out := make([]Action, 0, len(f.Actions))
	for _, a := range frameOrder {
		for n := f.Actions[a]; n > 0; n-- {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
