package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/stats"
)

var timesColumns = []struct {
	name  string
	width int
}{
	{"i", 4},
	{"time", 8},
	{"ao5", 8},
	{"ao12", 8},
}

// formatSolveRows renders the times table: a header row followed by the
// most recent solves that fit in maxRows lines, newest last.
func formatSolveRows(solves []model.Solve, maxRows int) []string {
	rows := []string{timesHeader()}
	if maxRows <= 1 {
		return rows
	}
	visible := maxRows - 1
	start := 0
	if len(solves) > visible {
		start = len(solves) - visible
	}
	for i := start; i < len(solves); i++ {
		s := solves[i]
		t := s.Time
		rows = append(rows, formatTimesRow(
			fmt.Sprintf("%d", i),
			stats.FormatSeconds(&t),
			stats.FormatSeconds(s.AO5),
			stats.FormatSeconds(s.AO12),
		))
	}
	return rows
}

func timesHeader() string {
	cells := make([]string, len(timesColumns))
	for i, col := range timesColumns {
		cells[i] = col.name
	}
	return formatTimesRow(cells...)
}

func formatTimesRow(cells ...string) string {
	var b strings.Builder
	for i, col := range timesColumns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(padRight(cell, col.width))
	}
	return strings.TrimRight(b.String(), " ")
}

func padRight(value string, width int) string {
	w := runewidth.StringWidth(value)
	if w >= width {
		return value
	}
	return value + strings.Repeat(" ", width-w)
}
