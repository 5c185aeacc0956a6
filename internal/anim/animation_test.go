package anim

import "testing"

func TestAnimationFrames(t *testing.T) {
	frames := []string{"A", "B", "C", "B"}

	tests := []struct {
		at       float64
		expected string
	}{
		{0.0, "A"},
		{0.19, "A"},
		{0.21, "B"},
		{0.41, "C"},
		{0.61, "B"},
		{0.81, "A"}, // floor(4.05) mod 4 wraps to the first frame
		{1.01, "B"},
		{1.21, "C"},
	}

	for _, tc := range tests {
		a := New(5, frames)
		a.Update(tc.at)
		if got := a.Frame(); got != tc.expected {
			t.Errorf("Frame() at t=%.2f = %q, expected %q", tc.at, got, tc.expected)
		}
	}
}

func TestAnimationAccumulates(t *testing.T) {
	a := New(5, []string{"A", "B", "C", "B"})
	for i := 0; i < 3; i++ {
		a.Update(0.1)
	}
	// 0.3s at 5fps -> index 1
	if a.Index() != 1 {
		t.Errorf("Index() after 0.3s = %d, expected 1", a.Index())
	}
}

func TestAnimationCycleDuration(t *testing.T) {
	a := New(5, []string{"A", "B", "C", "B"})
	if got := a.CycleDuration(); got != 0.8 {
		t.Errorf("CycleDuration() = %v, expected 0.8", got)
	}

	// One full cycle later the frame is the same again.
	a.Update(0.3)
	before := a.Frame()
	a.Update(a.CycleDuration())
	if a.Frame() != before {
		t.Errorf("frame after one cycle = %q, expected %q", a.Frame(), before)
	}
}

func TestAnimationDegenerate(t *testing.T) {
	empty := New(5, nil)
	empty.Update(10)
	if empty.Frame() != "" {
		t.Errorf("empty animation should return empty frame, got %q", empty.Frame())
	}

	still := New(0, []string{"A", "B"})
	still.Update(10)
	if still.Frame() != "A" {
		t.Errorf("zero fps should stay on first frame, got %q", still.Frame())
	}
}

func TestNewCopiesFrames(t *testing.T) {
	frames := []string{"A", "B"}
	a := New(1, frames)
	frames[0] = "Z"
	if a.Frames[0] != "A" {
		t.Error("New should copy the frame list")
	}
}
