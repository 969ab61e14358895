// Package sched implements the adaptive redraw scheduler.
package sched

import "time"

// Scheduler decides how long the event loop may wait for input before the
// next heartbeat is due. The rate is fast while the stopwatch runs, so the
// tenths readout stays visually live, and slow while idle, so an idle
// program does not burn CPU redrawing static panels. The rate is owned
// here but driven exclusively by stopwatch transitions.
type Scheduler struct {
	fast     time.Duration
	slow     time.Duration
	rate     time.Duration
	lastTick time.Time
}

// New returns a Scheduler in the idle (slow) state.
func New(fast, slow time.Duration, now time.Time) *Scheduler {
	return &Scheduler{
		fast:     fast,
		slow:     slow,
		rate:     slow,
		lastTick: now,
	}
}

// SetRunning swaps the tick rate to match the stopwatch state.
func (s *Scheduler) SetRunning(running bool) {
	if running {
		s.rate = s.fast
		return
	}
	s.rate = s.slow
}

// Rate returns the current heartbeat interval.
func (s *Scheduler) Rate() time.Duration {
	return s.rate
}

// PollTimeout returns how long the loop may block for input before the
// next heartbeat: rate minus the time already elapsed since the last tick,
// floored at zero so a poll primitive never sees a negative timeout.
func (s *Scheduler) PollTimeout(now time.Time) time.Duration {
	remaining := s.rate - now.Sub(s.lastTick)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Due reports whether a full rate interval has elapsed since the last
// heartbeat.
func (s *Scheduler) Due(now time.Time) bool {
	return now.Sub(s.lastTick) >= s.rate
}

// MarkTick records that the heartbeat fired.
func (s *Scheduler) MarkTick(now time.Time) {
	s.lastTick = now
}
