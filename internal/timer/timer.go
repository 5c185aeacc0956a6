// Package timer provides time-driven event triggers for a fixed-step simulation.
package timer

// MinInterval is the smallest interval a Looping timer accepts.
// Shorter (or non-positive) intervals are clamped to it.
const MinInterval = 0.001

// Looping fires every Interval seconds. A single Update may fire several
// times when the elapsed time spans more than one interval.
type Looping struct {
	Interval  float64 // Seconds between fires
	Remaining float64 // Seconds until the next fire
}

// NewLooping creates a looping timer whose first fire is one interval away.
func NewLooping(interval float64) Looping {
	interval = clampInterval(interval)
	return Looping{Interval: interval, Remaining: interval}
}

// SetInterval changes the interval for future fires.
// The countdown to the next fire is left untouched.
func (t *Looping) SetInterval(interval float64) {
	t.Interval = clampInterval(interval)
}

// Update advances the countdown by elapsed seconds, calling fire once for
// each interval consumed. It returns the number of fires. fire may be nil.
func (t *Looping) Update(elapsed float64, fire func()) int {
	interval := clampInterval(t.Interval)
	t.Remaining -= elapsed

	fired := 0
	for t.Remaining <= 0 {
		if fire != nil {
			fire()
		}
		t.Remaining += interval
		fired++
	}
	return fired
}

// OneShot fires once after its delay has elapsed and is inert afterwards.
type OneShot struct {
	Remaining float64 // Seconds until the fire
	Fired     bool    // Set once the timer has fired
}

// NewOneShot creates a one-shot timer that fires after delay seconds.
func NewOneShot(delay float64) OneShot {
	return OneShot{Remaining: delay}
}

// Update advances the countdown and calls fire if it crosses zero.
// It returns true on the call that fires. fire may be nil.
func (t *OneShot) Update(elapsed float64, fire func()) bool {
	if t.Fired || t.Remaining < 0 {
		return false
	}

	t.Remaining -= elapsed
	if t.Remaining > 0 {
		return false
	}

	t.Fired = true
	if fire != nil {
		fire()
	}
	return true
}

func clampInterval(interval float64) float64 {
	if interval < MinInterval {
		return MinInterval
	}
	return interval
}
