// Package session owns the state of one timing session.
package session

import (
	"time"

	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/stats"
	"github.com/verte-zerg/cubetui/internal/timer"
)

// Session bundles the stopwatch and the append-only solve history for one
// run of the program. It is the single owned context threaded through the
// event loop; there are no package-level globals.
type Session struct {
	watch  *timer.Stopwatch
	solves []model.Solve
}

// New returns an empty session around the given stopwatch.
func New(watch *timer.Stopwatch) *Session {
	return &Session{watch: watch}
}

// Toggle flips the stopwatch. When the call finishes an attempt it derives
// the record's averages against the history as it existed before the
// append, appends the record, and returns (record, true). Otherwise the
// stopwatch just started and (zero, false) is returned.
func (s *Session) Toggle() (model.Solve, bool) {
	elapsed, finished := s.watch.Toggle()
	if !finished {
		return model.Solve{}, false
	}
	ao5, ao12 := stats.Compute(stats.Times(s.solves), elapsed)
	solve := model.Solve{Time: elapsed, AO5: ao5, AO12: ao12}
	s.solves = append(s.solves, solve)
	return solve, true
}

// Running reports whether an attempt is in progress.
func (s *Session) Running() bool {
	return s.watch.Running()
}

// DisplayText returns the current timer readout.
func (s *Session) DisplayText() string {
	return s.watch.DisplayText()
}

// History returns the ordered solve records, oldest first. Callers must
// treat the slice as read-only.
func (s *Session) History() []model.Solve {
	return s.solves
}

// Len returns the number of recorded solves.
func (s *Session) Len() int {
	return len(s.solves)
}

// Summary recomputes the derived statistics over the full history.
func (s *Session) Summary() stats.Summary {
	return stats.Summarize(s.solves)
}

// LastTime returns the duration of the most recent solve, zero when none.
func (s *Session) LastTime() time.Duration {
	if len(s.solves) == 0 {
		return 0
	}
	return s.solves[len(s.solves)-1].Time
}
