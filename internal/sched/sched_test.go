package sched

import (
	"testing"
	"time"
)

const (
	fastRate = 100 * time.Millisecond
	slowRate = time.Second
)

func TestPollTimeoutCountsDown(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(fastRate, slowRate, start)

	if got := s.PollTimeout(start); got != slowRate {
		t.Fatalf("expected full slow timeout, got %v", got)
	}
	if got := s.PollTimeout(start.Add(400 * time.Millisecond)); got != 600*time.Millisecond {
		t.Fatalf("expected 600ms, got %v", got)
	}
}

func TestPollTimeoutFloorsAtZero(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(fastRate, slowRate, start)

	if got := s.PollTimeout(start.Add(5 * time.Second)); got != 0 {
		t.Fatalf("expected zero timeout when overdue, got %v", got)
	}
}

func TestRateFollowsStopwatchState(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(fastRate, slowRate, start)

	if s.Rate() != slowRate {
		t.Fatalf("scheduler should start idle, rate %v", s.Rate())
	}
	s.SetRunning(true)
	if s.Rate() != fastRate {
		t.Fatalf("expected fast rate while running, got %v", s.Rate())
	}
	// Responsiveness: the very next computed timeout is bounded by the
	// fast rate, not the slow one.
	if got := s.PollTimeout(start); got > fastRate {
		t.Fatalf("timeout %v exceeds fast rate", got)
	}
	s.SetRunning(false)
	if s.Rate() != slowRate {
		t.Fatalf("expected slow rate when idle, got %v", s.Rate())
	}
}

func TestDueAndMarkTick(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(fastRate, slowRate, start)

	if s.Due(start.Add(999 * time.Millisecond)) {
		t.Fatalf("heartbeat should not be due before a full interval")
	}
	at := start.Add(time.Second)
	if !s.Due(at) {
		t.Fatalf("heartbeat should be due after a full interval")
	}
	s.MarkTick(at)
	if s.Due(at.Add(500 * time.Millisecond)) {
		t.Fatalf("heartbeat fired twice inside one interval")
	}
	if got := s.PollTimeout(at.Add(200 * time.Millisecond)); got != 800*time.Millisecond {
		t.Fatalf("expected 800ms after mark, got %v", got)
	}
}
