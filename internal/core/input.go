package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionJump          // Space, Up, W - flap
	ActionEasy          // 1
	ActionMedium        // 2
	ActionHard          // 3
	ActionSave          // S - save the whole game state
	ActionLoad          // L - restore the saved game state
	ActionTheme         // T - cycle presentation theme
	ActionDebug         // D - toggle hit-box overlay
	ActionMusic         // M - toggle background music
	ActionQuit          // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionTheme:
		return "Theme"
	case ActionDebug:
		return "Debug"
	case ActionMusic:
		return "Music"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks,
// in the order they arrived.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Set records an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
