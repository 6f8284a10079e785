package entity

import "testing"

func TestAnimationFor(t *testing.T) {
	tests := []struct {
		state State
		dir   Direction
		want  Animation
	}{
		{Idle, Left, AnimIdle},
		{Idle, Right, AnimIdle},
		{Sleep, Left, AnimSleep},
		{Sleep, Right, AnimSleep},
		{Walk, Left, AnimWalkLeft},
		{Walk, Right, AnimWalkRight},
	}

	for _, tt := range tests {
		if got := AnimationFor(tt.state, tt.dir); got != tt.want {
			t.Errorf("AnimationFor(%s, %s) = %s, want %s", tt.state, tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	if Left.Opposite() != Right {
		t.Errorf("Expected Left.Opposite()=Right")
	}
	if Right.Opposite() != Left {
		t.Errorf("Expected Right.Opposite()=Left")
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Sleep.String() != "sleep" || Walk.String() != "walk" {
		t.Errorf("Unexpected state names: %s %s %s", Idle, Sleep, Walk)
	}
	if State(42).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range state, got %s", State(42))
	}
}
