// Package session holds the in-memory accumulator behind a focus-mode
// counting session. Taps land here instantly; the persisted ledger is only
// touched when the pending batch is drained, so the store never sees one
// write per tap.
package session

import (
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
)

// Counter is the batched-write state machine for one counting session. It is
// purely passive: the caller feeds it taps and one-second ticks and asks it
// when a flush is due. That keeps it fully testable without timers.
type Counter struct {
	TasbihID string

	baseCount int
	baseTime  int

	pending int
	taps    int
	seconds int
	paused  bool

	lastTap   time.Time
	lastFlush time.Time
}

// New starts a session over a tasbih whose persisted today-count and
// today-time are the given baselines.
func New(tasbihID string, baseCount, baseTimeSeconds int, now time.Time) *Counter {
	return &Counter{
		TasbihID:  tasbihID,
		baseCount: baseCount,
		baseTime:  baseTimeSeconds,
		lastTap:   now,
		lastFlush: now,
	}
}

// Tap records one repetition. The tap is visible in Count immediately and
// resumes a paused timer.
func (c *Counter) Tap(now time.Time) {
	c.pending++
	c.taps++
	c.lastTap = now
	c.paused = false
}

// TickSecond advances the session by one wall-clock second. The timer
// auto-pauses once no tap has landed within the idle timeout; paused seconds
// do not count as devotion time.
func (c *Counter) TickSecond(now time.Time) {
	if now.Sub(c.lastTap) >= constants.IdleTimeout {
		c.paused = true
	}
	if !c.paused {
		c.seconds++
	}
}

// FlushDue reports whether a batch write should happen now. A flush is due
// only when there is something pending and the flush interval has elapsed.
func (c *Counter) FlushDue(now time.Time) bool {
	return c.pending > 0 && now.Sub(c.lastFlush) >= constants.FlushInterval
}

// Drain hands back the pending repetition delta and resets the batch. The
// caller applies the delta to the ledger exactly once. Ending a session must
// always drain, interval elapsed or not.
func (c *Counter) Drain(now time.Time) int {
	d := c.pending
	c.pending = 0
	c.lastFlush = now
	return d
}

// Count is the live display count: persisted baseline plus every tap of this
// session, flushed or not.
func (c *Counter) Count() int {
	return c.baseCount + c.taps
}

// SessionCount is the number of taps in this session alone.
func (c *Counter) SessionCount() int {
	return c.taps
}

// Seconds is the active time of this session, excluding paused stretches.
func (c *Counter) Seconds() int {
	return c.seconds
}

// TodayTime is the absolute today-time to persist: the baseline the session
// started from plus this session's active seconds.
func (c *Counter) TodayTime() int {
	return c.baseTime + c.seconds
}

// Paused reports whether the idle timeout has suspended the timer.
func (c *Counter) Paused() bool {
	return c.paused
}
