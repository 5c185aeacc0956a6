package game

import "fmt"

// EventKind identifies something the presentation layer may react to.
type EventKind int

const (
	EventJumped    EventKind = iota // Player flapped
	EventScored                     // Player passed an obstacle; Score holds the new score
	EventDied                       // Player collided; Score holds the final score
	EventRestarted                  // Restart countdown elapsed and a fresh game began
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "Jumped"
	case EventScored:
		return "Scored"
	case EventDied:
		return "Died"
	case EventRestarted:
		return "Restarted"
	default:
		return "Unknown"
	}
}

// Event is reported by Engine calls, in the order things happened.
type Event struct {
	Kind  EventKind
	Score int
}

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e.Kind {
	case EventScored, EventDied:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Score)
	default:
		return e.Kind.String()
	}
}
