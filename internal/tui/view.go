package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/cubetui/internal/stats"
)

const (
	leftColumnWidth = 36
	minRightWidth   = 24
)

var (
	borderColor        = lipgloss.Color("#4A4A4A")
	focusedBorderColor = lipgloss.Color("#C89A3A")
	titleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	timerStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	runningStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	textStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model. Everything shown here is queried fresh from
// the session; nothing is cached between redraws.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.session.DisplayText()
	}
	rightWidth := m.width - leftColumnWidth - 4
	if rightWidth < minRightWidth {
		rightWidth = minRightWidth
	}

	helpPanel := m.panel(blockHelp, m.helpContent(), leftColumnWidth, 2)
	timerPanel := m.panel(blockTimer, m.timerContent(leftColumnWidth), leftColumnWidth, 4)
	timesHeight := m.height - 14
	if timesHeight < 3 {
		timesHeight = 3
	}
	timesPanel := m.panel(blockTimes, m.timesContent(timesHeight-1), leftColumnWidth, timesHeight)
	left := lipgloss.JoinVertical(lipgloss.Left, helpPanel, timerPanel, timesPanel)

	scramblePanel := m.panel(blockScramble, textStyle.Render(m.scramble), rightWidth, 2)
	bestsRow := m.bestsRow(rightWidth)
	mainHeight := m.height - 12
	if mainHeight < 3 {
		mainHeight = 3
	}
	mainPanel := m.panel(blockMain, m.mainContent(), rightWidth, mainHeight)
	right := lipgloss.JoinVertical(lipgloss.Left, scramblePanel, bestsRow, mainPanel)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) panel(b block, content string, width, height int) string {
	border := borderColor
	if m.focus == b {
		border = focusedBorderColor
	}
	body := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(blockNames[b]), content)
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Width(width).
		Height(height).
		Render(body)
}

func (m *Model) helpContent() string {
	return mutedStyle.Render("space start/stop · q quit")
}

func (m *Model) timerContent(width int) string {
	text := timerStyle.Render(m.session.DisplayText())
	if m.session.Running() && m.blink {
		text += runningStyle.Render(" ●")
	}
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

func (m *Model) timesContent(maxRows int) string {
	rows := formatSolveRows(m.session.History(), maxRows)
	return textStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) bestsRow(totalWidth int) string {
	summary := m.session.Summary()
	cards := []struct {
		title string
		value string
	}{
		{"PB Single", stats.FormatSeconds(summary.PBSingle)},
		{"PB ao5", stats.FormatSeconds(summary.PBAO5)},
		{"PB ao12", stats.FormatSeconds(summary.PBAO12)},
		{"ao100", stats.FormatSeconds(summary.AO100)},
		{"ao1k", stats.FormatSeconds(summary.AO1K)},
		{"rolling", stats.FormatSeconds(summary.Rolling)},
	}
	border := borderColor
	if m.focus == blockBests {
		border = focusedBorderColor
	}
	cardWidth := totalWidth/len(cards) - 2
	if cardWidth < 7 {
		cardWidth = 7
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Width(cardWidth)
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(card.title),
			textStyle.Render(card.value))
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) mainContent() string {
	lines := []string{
		fmt.Sprintf("%d solves this session", m.session.Len()),
		"",
		mutedStyle.Render(fmt.Sprintf("focus: %s", blockNames[m.focus])),
		mutedStyle.Render("hjkl move focus · enter rescramble · esc timer"),
	}
	return strings.Join(lines, "\n")
}
