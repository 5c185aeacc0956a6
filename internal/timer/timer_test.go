package timer

import (
	"math"
	"testing"
)

func TestLoopingCatchUp(t *testing.T) {
	const interval = 1.3
	lt := NewLooping(interval)

	calls := 0
	n := lt.Update(2.5*interval, func() { calls++ })

	if calls != 2 || n != 2 {
		t.Fatalf("expected 2 fires, got calls=%d n=%d", calls, n)
	}
	if lt.Remaining < 0 || lt.Remaining >= interval {
		t.Errorf("remaining %v should be in [0, %v)", lt.Remaining, interval)
	}
	if math.Abs(lt.Remaining-0.5*interval) > 1e-9 {
		t.Errorf("remaining = %v, expected %v", lt.Remaining, 0.5*interval)
	}
}

func TestLoopingSmallSteps(t *testing.T) {
	lt := NewLooping(1.0)

	fires := 0
	for i := 0; i < 30; i++ {
		fires += lt.Update(0.1, nil)
	}

	// 30 * 0.1 accumulates to just under 3.0 in floating point, so the
	// third fire may land on the last step or not; never more than three.
	if fires < 2 || fires > 3 {
		t.Errorf("expected 2-3 fires over ~3s, got %d", fires)
	}
}

func TestLoopingExactBoundaryFires(t *testing.T) {
	lt := NewLooping(0.5)
	if n := lt.Update(0.5, nil); n != 1 {
		t.Errorf("remaining reaching exactly zero should fire once, got %d", n)
	}
	if lt.Remaining != 0.5 {
		t.Errorf("remaining = %v, expected 0.5", lt.Remaining)
	}
}

func TestLoopingSetIntervalKeepsCountdown(t *testing.T) {
	lt := NewLooping(2.0)
	lt.Update(0.5, nil)

	lt.SetInterval(1.0)
	if lt.Interval != 1.0 {
		t.Errorf("interval = %v, expected 1.0", lt.Interval)
	}
	if lt.Remaining != 1.5 {
		t.Errorf("remaining = %v, expected 1.5 (countdown must be kept)", lt.Remaining)
	}

	// Next fire after the old countdown, the one after that uses the new interval.
	if n := lt.Update(1.5, nil); n != 1 {
		t.Fatalf("expected fire after remaining countdown, got %d", n)
	}
	if lt.Remaining != 1.0 {
		t.Errorf("remaining = %v, expected new interval 1.0", lt.Remaining)
	}
}

func TestLoopingClampsDegenerateInterval(t *testing.T) {
	tests := []float64{0, -1, 1e-9}
	for _, interval := range tests {
		lt := NewLooping(interval)
		if lt.Interval != MinInterval {
			t.Errorf("NewLooping(%v).Interval = %v, expected %v", interval, lt.Interval, MinInterval)
		}
		// Must terminate and fire a bounded number of times.
		n := lt.Update(0.01, nil)
		if n < 9 || n > 11 {
			t.Errorf("expected ~10 fires for 10ms at 1ms interval, got %d", n)
		}
	}
}

func TestOneShotFiresOnce(t *testing.T) {
	ot := NewOneShot(3)

	fires := 0
	fire := func() { fires++ }

	steps := []float64{1, 1, 0.5, 0.6, 1, 5, 0.1}
	for _, s := range steps {
		ot.Update(s, fire)
	}

	if fires != 1 {
		t.Errorf("one-shot fired %d times, expected exactly 1", fires)
	}
	if !ot.Fired {
		t.Error("Fired should be set after firing")
	}
}

func TestOneShotExactZeroDoesNotRefire(t *testing.T) {
	ot := NewOneShot(1)

	if !ot.Update(1, nil) {
		t.Fatal("countdown landing on exactly zero should fire")
	}
	if ot.Update(1, nil) {
		t.Error("timer must not fire again after landing on zero")
	}
}

func TestOneShotNotYet(t *testing.T) {
	ot := NewOneShot(3)
	if ot.Update(2.9, nil) {
		t.Error("should not fire before delay elapsed")
	}
	if ot.Fired {
		t.Error("Fired should be false before firing")
	}
	if !ot.Update(0.2, nil) {
		t.Error("should fire once cumulative time exceeds delay")
	}
}
