// Package model defines shared data structures.
package model

import "time"

// Config defines timer session settings.
type Config struct {
	FastTick    time.Duration
	SlowTick    time.Duration
	ScrambleLen int
}

// Solve captures one completed timing attempt. AO5 and AO12 are the trimmed
// means over the most recent solves at the moment the record was appended;
// nil until the window is fully populated. A Solve is never updated after
// it has been appended to the session history.
type Solve struct {
	Time time.Duration
	AO5  *time.Duration
	AO12 *time.Duration
}

// StoredSolve is a solve row loaded from the database.
type StoredSolve struct {
	ID         int64
	FinishedAt time.Time
	Time       time.Duration
	AO5        *time.Duration
	AO12       *time.Duration
	Scramble   string
}

// StatsConfig defines filters for historical stats output.
type StatsConfig struct {
	Since *time.Time
	Last  int
}
