// Package timer implements the solve stopwatch.
package timer

import (
	"fmt"
	"time"
)

// Stopwatch measures one solve attempt at a time. A zero start instant
// means the watch is stopped, so "start present iff running" holds
// structurally rather than as a checked side condition. Elapsed time is
// always derived by comparing the stored start instant against the clock;
// there is no ticking counter to drift.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
	last  time.Duration
}

// New returns a stopped Stopwatch reading time.Now.
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock returns a stopped Stopwatch using the given time source.
func NewWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Running reports whether an attempt is in progress.
func (s *Stopwatch) Running() bool {
	return !s.start.IsZero()
}

// Toggle flips the stopwatch. It returns the finished duration and true
// when the call stopped a running attempt, or (0, false) when it started
// one. The bool is the caller's signal that a new solve record is due.
func (s *Stopwatch) Toggle() (time.Duration, bool) {
	if !s.Running() {
		s.start = s.now()
		return 0, false
	}
	elapsed := s.now().Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	s.last = elapsed
	s.start = time.Time{}
	return elapsed, true
}

// Elapsed returns the live duration of the current attempt, or the most
// recently finished duration when stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.Running() {
		return s.last
	}
	elapsed := s.now().Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// DisplayText formats the timer readout. While running only tenths are
// shown; redrawing full precision every poll adds jitter without useful
// information. The finalized result is shown with millisecond precision.
func (s *Stopwatch) DisplayText() string {
	if s.Running() {
		return fmt.Sprintf("%.1f", s.Elapsed().Seconds())
	}
	return fmt.Sprintf("%.3f", s.last.Seconds())
}
