package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHard)
	f.Set(ActionNone)
	f.Set(ActionJump)

	if len(f.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionHard || f.Actions[1] != ActionJump {
		t.Errorf("actions out of order: %v", f.Actions)
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear() should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickSeconds(); got != 1.0/60.0 {
		t.Errorf("TickSeconds() = %v, expected 1/60", got)
	}
	cfg.TickRate = 0
	if got := cfg.TickSeconds(); got != 1.0/60.0 {
		t.Errorf("TickSeconds() with zero rate = %v, expected 1/60 fallback", got)
	}
}
