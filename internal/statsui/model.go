// Package statsui provides the Bubble Tea stats browser.
package statsui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/stats"
	"github.com/verte-zerg/cubetui/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report stats.Report
	errMsg string

	solveTable table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
	}
	m.initTable()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.solveTable, cmd = m.solveTable.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if len(m.report.Solves) == 0 {
		return headerStyle.Render("No solves recorded yet.")
	}
	header := headerStyle.Render(fmt.Sprintf("%d solves · q to quit", len(m.report.Solves)))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderCards(),
		m.solveTable.View(),
	)
}

func (m *Model) initTable() {
	columns := []table.Column{
		{Title: "i", Width: 5},
		{Title: "finished", Width: 17},
		{Title: "time", Width: 8},
		{Title: "ao5", Width: 8},
		{Title: "ao12", Width: 8},
	}
	m.solveTable = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load stats: %v", err)
		return
	}
	m.report = report
	rows := make([]table.Row, 0, len(report.Solves))
	for i, s := range report.Solves {
		t := s.Time
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i),
			s.FinishedAt.Local().Format("2006-01-02 15:04"),
			stats.FormatSeconds(&t),
			stats.FormatSeconds(s.AO5),
			stats.FormatSeconds(s.AO12),
		})
	}
	m.solveTable.SetRows(rows)
	if len(rows) > 0 {
		m.solveTable.GotoBottom()
	}
}

func (m *Model) updateLayout() {
	height := m.height - 7
	if height < 3 {
		height = 3
	}
	m.solveTable.SetHeight(height)
}

func (m *Model) renderCards() string {
	summary := m.report.Summary
	cards := []struct {
		title string
		value string
	}{
		{"PB Single", stats.FormatSeconds(summary.PBSingle)},
		{"PB ao5", stats.FormatSeconds(summary.PBAO5)},
		{"PB ao12", stats.FormatSeconds(summary.PBAO12)},
		{"ao100", stats.FormatSeconds(summary.AO100)},
		{"Rolling", stats.FormatSeconds(summary.Rolling)},
	}
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render(card.title),
			cardValueStyle.Render(card.value))
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
