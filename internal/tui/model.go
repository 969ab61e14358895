// Package tui provides the Bubble Tea timer interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/scramble"
	"github.com/verte-zerg/cubetui/internal/sched"
	"github.com/verte-zerg/cubetui/internal/session"
	"github.com/verte-zerg/cubetui/internal/store"
)

// tickMsg is the scheduler heartbeat. The sequence number invalidates
// ticks that were pending when a toggle changed the rate.
type tickMsg struct {
	seq int
	at  time.Time
}

type block int

const (
	blockTimer block = iota
	blockTimes
	blockScramble
	blockBests
	blockHelp
	blockMain
	blockCount
)

var blockNames = map[block]string{
	blockTimer:    "Timer",
	blockTimes:    "Times",
	blockScramble: "Scramble",
	blockBests:    "Bests",
	blockHelp:     "Help",
	blockMain:     "Main",
}

// Model implements the Bubble Tea timer UI. Every message ends in a View,
// so one message handled is one iteration of redraw, input, heartbeat.
type Model struct {
	cfg     model.Config
	session *session.Session
	sched   *sched.Scheduler
	store   *store.Store // nil disables persistence
	gen     *scramble.Generator

	scramble string
	focus    block
	blink    bool
	tickSeq  int

	width  int
	height int
}

// NewModel constructs the timer TUI model.
func NewModel(cfg model.Config, sess *session.Session, sc *sched.Scheduler, st *store.Store, gen *scramble.Generator) *Model {
	return &Model{
		cfg:      cfg,
		session:  sess,
		sched:    sc,
		store:    st,
		gen:      gen,
		scramble: gen.Generate(cfg.ScrambleLen),
		focus:    blockTimer,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if msg.seq != m.tickSeq {
			return m, nil
		}
		if m.sched.Due(msg.at) {
			m.heartbeat()
			m.sched.MarkTick(msg.at)
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ":
			return m, m.handleToggle()
		case "h", "k":
			m.moveFocus(-1)
			return m, nil
		case "l", "j":
			m.moveFocus(1)
			return m, nil
		case "esc":
			m.focus = blockTimer
			return m, nil
		case "enter":
			if m.focus == blockScramble {
				m.scramble = m.gen.Generate(m.cfg.ScrambleLen)
			}
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// tickCmd schedules the next heartbeat poll. The wait is the scheduler's
// remaining timeout, so it is bounded by the fast rate whenever the
// stopwatch runs.
func (m *Model) tickCmd() tea.Cmd {
	seq := m.tickSeq
	timeout := m.sched.PollTimeout(time.Now())
	return tea.Tick(timeout, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, at: t}
	})
}

// handleToggle flips the stopwatch and retunes the scheduler. Input
// handling owns the rate change; the pending tick is invalidated and a new
// one scheduled against the new rate within this iteration.
func (m *Model) handleToggle() tea.Cmd {
	solve, finished := m.session.Toggle()
	m.sched.SetRunning(m.session.Running())
	m.tickSeq++
	if finished {
		m.persist(solve)
		m.scramble = m.gen.Generate(m.cfg.ScrambleLen)
		m.blink = false
	}
	return m.tickCmd()
}

// heartbeat drives time-based presentation state: the running indicator
// blink phase.
func (m *Model) heartbeat() {
	m.blink = !m.blink
}

func (m *Model) moveFocus(delta int) {
	next := (int(m.focus) + delta + int(blockCount)) % int(blockCount)
	m.focus = block(next)
}

// persist writes a finished solve to the store. Persistence failures never
// interrupt the session; they are logged and the record stays in memory.
func (m *Model) persist(solve model.Solve) {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := m.store.InsertSolve(ctx, time.Now(), solve, m.scramble); err != nil {
		logErrf("failed to save solve: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
