package core

import "testing"

func TestInputFrameMove(t *testing.T) {
	f := FrameOf(ActionPause, ActionLeft, ActionRight)

	a, ok := f.Move()
	if !ok || a != ActionLeft {
		t.Errorf("Move() = %v, %v; expected Left, true", a, ok)
	}

	f.Clear()
	if _, ok := f.Move(); ok {
		t.Error("cleared frame should carry no move")
	}
	if f.Has(ActionPause) {
		t.Error("cleared frame should not have Pause")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionPause: "Pause",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
	if !ActionRight.IsMove() || ActionConfirm.IsMove() {
		t.Error("IsMove should hold for directions only")
	}
}
