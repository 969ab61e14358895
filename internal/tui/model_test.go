package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/scramble"
	"github.com/verte-zerg/cubetui/internal/sched"
	"github.com/verte-zerg/cubetui/internal/session"
	"github.com/verte-zerg/cubetui/internal/timer"
)

const (
	testFastTick = 100 * time.Millisecond
	testSlowTick = time.Second
)

func newTestModel() *Model {
	cfg := model.Config{
		FastTick:    testFastTick,
		SlowTick:    testSlowTick,
		ScrambleLen: 20,
	}
	sess := session.New(timer.New())
	sc := sched.New(cfg.FastTick, cfg.SlowTick, time.Now())
	return NewModel(cfg, sess, sc, nil, scramble.New())
}

func spaceMsg() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
}

func TestToggleDrivesSchedulerRate(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(spaceMsg())
	if cmd == nil {
		t.Fatalf("toggle should reschedule the tick")
	}
	if !m.session.Running() {
		t.Fatalf("session should be running after first space")
	}
	if m.sched.Rate() != testFastTick {
		t.Fatalf("expected fast rate while running, got %v", m.sched.Rate())
	}
	if timeout := m.sched.PollTimeout(time.Now()); timeout > testFastTick {
		t.Fatalf("poll timeout %v exceeds fast rate right after start", timeout)
	}

	_, cmd = m.Update(spaceMsg())
	if cmd == nil {
		t.Fatalf("toggle should reschedule the tick")
	}
	if m.session.Running() {
		t.Fatalf("session should be stopped after second space")
	}
	if m.sched.Rate() != testSlowTick {
		t.Fatalf("expected slow rate when idle, got %v", m.sched.Rate())
	}
	if m.session.Len() != 1 {
		t.Fatalf("expected one recorded solve, got %d", m.session.Len())
	}
}

func TestToggleRegeneratesScramble(t *testing.T) {
	m := newTestModel()
	before := m.scramble
	if before == "" {
		t.Fatalf("model should start with a scramble")
	}

	m.Update(spaceMsg())
	if m.scramble != before {
		t.Fatalf("scramble must stay fixed while solving")
	}
	m.Update(spaceMsg())
	if m.scramble == before {
		t.Fatalf("expected a fresh scramble after the solve")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel()

	stale := tickMsg{seq: m.tickSeq, at: time.Now()}
	m.Update(spaceMsg()) // bumps the sequence
	_, cmd := m.Update(stale)
	if cmd != nil {
		t.Fatalf("stale tick must not reschedule")
	}
}

func TestHeartbeatBlinksWhenDue(t *testing.T) {
	m := newTestModel()
	now := time.Now()
	m.sched.MarkTick(now)

	_, cmd := m.Update(tickMsg{seq: m.tickSeq, at: now.Add(10 * time.Millisecond)})
	if cmd == nil {
		t.Fatalf("tick should always reschedule")
	}
	if m.blink {
		t.Fatalf("heartbeat must not fire before a full interval")
	}

	m.Update(tickMsg{seq: m.tickSeq, at: now.Add(2 * time.Second)})
	if !m.blink {
		t.Fatalf("heartbeat should fire once the interval elapsed")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel()
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
	}
}

func TestViewShowsTimerAndBests(t *testing.T) {
	m := newTestModel()
	m.width = 120
	m.height = 30

	out := m.View()
	for _, want := range []string{"0.000", "PB Single", "ao100", "Scramble", "Times"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestFocusCycles(t *testing.T) {
	m := newTestModel()
	if m.focus != blockTimer {
		t.Fatalf("focus should start on the timer")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.focus == blockTimer {
		t.Fatalf("focus should move on j")
	}
	for i := 0; i < int(blockCount)-1; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	if m.focus != blockTimer {
		t.Fatalf("focus should wrap around, got %v", blockNames[m.focus])
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != blockTimer {
		t.Fatalf("esc should return focus to the timer")
	}
}
