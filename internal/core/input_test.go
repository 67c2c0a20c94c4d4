package core

import (
	"reflect"
	"testing"
)

func TestInputFrameOrdered(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	f.Set(ActionMoveLeft)
	f.Set(ActionPause)
	f.Set(ActionRotateCW)

	want := []Action{ActionPause, ActionMoveLeft, ActionRotateCW, ActionHardDrop}
	if got := f.Ordered(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ordered() = %v, want %v", got, want)
	}
}

func TestInputFrameRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Add(ActionMoveRight)
	f.Add(ActionMoveRight)
	f.Set(ActionMoveRight)
	f.Set(ActionHold)

	if f.Count(ActionMoveRight) != 2 {
		t.Errorf("Count = %d, want 2", f.Count(ActionMoveRight))
	}
	want := []Action{ActionHold, ActionMoveRight, ActionMoveRight}
	if got := f.Ordered(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ordered() = %v, want %v", got, want)
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHold)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionHold) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionHold) {
		t.Error("Clone should be independent of the original")
	}
	if len(f.Ordered()) != 0 {
		t.Error("cleared frame should report no actions")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("String() = %q", ActionRotateCCW.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
