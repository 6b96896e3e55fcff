package session

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func TestTapIsVisibleImmediately(t *testing.T) {
	c := New("a", 40, 0, t0)

	c.Tap(t0)
	c.Tap(t0.Add(time.Second))

	if c.Count() != 42 {
		t.Errorf("count = %d, want 42", c.Count())
	}
	if c.SessionCount() != 2 {
		t.Errorf("session count = %d, want 2", c.SessionCount())
	}
}

func TestFlushDueOnlyAfterInterval(t *testing.T) {
	c := New("a", 0, 0, t0)
	c.Tap(t0)

	if c.FlushDue(t0.Add(time.Second)) {
		t.Error("flush due after 1s, want not due before the 2s interval")
	}
	if !c.FlushDue(t0.Add(2 * time.Second)) {
		t.Error("flush not due after the 2s interval")
	}
}

func TestFlushNeverDueWithoutPendingTaps(t *testing.T) {
	c := New("a", 0, 0, t0)

	if c.FlushDue(t0.Add(time.Minute)) {
		t.Error("flush due with nothing pending")
	}
}

func TestDrainAppliesBatchExactlyOnce(t *testing.T) {
	c := New("a", 0, 0, t0)
	c.Tap(t0)
	c.Tap(t0)
	c.Tap(t0)

	now := t0.Add(2 * time.Second)
	if got := c.Drain(now); got != 3 {
		t.Errorf("drained %d, want 3", got)
	}
	if got := c.Drain(now); got != 0 {
		t.Errorf("second drain returned %d, want 0", got)
	}
	// Taps stay in the live count after draining.
	if c.Count() != 3 {
		t.Errorf("count = %d, want 3", c.Count())
	}
}

func TestDrainResetsFlushInterval(t *testing.T) {
	c := New("a", 0, 0, t0)
	c.Tap(t0)
	c.Drain(t0.Add(2 * time.Second))

	c.Tap(t0.Add(3 * time.Second))
	if c.FlushDue(t0.Add(3 * time.Second)) {
		t.Error("flush due immediately after a drain")
	}
	if !c.FlushDue(t0.Add(4 * time.Second)) {
		t.Error("flush not due 2s after the last drain")
	}
}

func TestIdlePauseAndResume(t *testing.T) {
	c := New("a", 0, 0, t0)
	c.Tap(t0)

	// Active seconds tick while taps keep coming.
	for i := 1; i <= 4; i++ {
		c.TickSecond(t0.Add(time.Duration(i) * time.Second))
	}
	if c.Paused() {
		t.Fatal("paused within the idle timeout")
	}
	if c.Seconds() != 4 {
		t.Errorf("seconds = %d, want 4", c.Seconds())
	}

	// The fifth idle second suspends the timer.
	c.TickSecond(t0.Add(5 * time.Second))
	if !c.Paused() {
		t.Fatal("not paused after 5 idle seconds")
	}
	c.TickSecond(t0.Add(6 * time.Second))
	if c.Seconds() != 4 {
		t.Errorf("seconds advanced while paused: %d", c.Seconds())
	}

	// A tap resumes the timer.
	c.Tap(t0.Add(7 * time.Second))
	c.TickSecond(t0.Add(8 * time.Second))
	if c.Paused() || c.Seconds() != 5 {
		t.Errorf("after resume: paused=%v seconds=%d, want running with 5", c.Paused(), c.Seconds())
	}
}

func TestTodayTimeBuildsOnBaseline(t *testing.T) {
	c := New("a", 0, 120, t0)
	c.Tap(t0)
	c.TickSecond(t0.Add(time.Second))
	c.TickSecond(t0.Add(2 * time.Second))

	if c.TodayTime() != 122 {
		t.Errorf("today time = %d, want 122", c.TodayTime())
	}
}
