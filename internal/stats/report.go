// Package stats contains solve statistics calculations and reporting.
package stats

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/store"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Solves  []model.StoredSolve
	Summary Summary
}

// BuildReport loads stored solves and derives their summary statistics.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	stored, err := st.ListSolves(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(stored) > cfg.Last {
		stored = stored[len(stored)-cfg.Last:]
	}
	solves := make([]model.Solve, len(stored))
	for i, row := range stored {
		solves[i] = model.Solve{Time: row.Time, AO5: row.AO5, AO12: row.AO12}
	}
	return Report{Solves: stored, Summary: Summarize(solves)}, nil
}

// RenderSummary prints a plain-text report: totals, bests, recent solves,
// and a sparkline of the solve times sized to the terminal.
func RenderSummary(w io.Writer, report Report) error {
	if len(report.Solves) == 0 {
		_, err := fmt.Fprintln(w, "No solves found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Solves: %d\n", len(report.Solves)); err != nil {
		return err
	}
	summary := report.Summary
	lines := []struct {
		label string
		value *time.Duration
	}{
		{"PB single", summary.PBSingle},
		{"PB ao5", summary.PBAO5},
		{"PB ao12", summary.PBAO12},
		{"ao100", summary.AO100},
		{"ao1k", summary.AO1K},
		{"Rolling avg", summary.Rolling},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", line.label, FormatSeconds(line.value)); err != nil {
			return err
		}
	}

	values := make([]float64, len(report.Solves))
	for i, s := range report.Solves {
		values[i] = s.Time.Seconds()
	}
	sparkWidth := terminalWidth() - 8
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	spark := Sparkline(resample(values, sparkWidth))
	if _, err := fmt.Fprintf(w, "\nTimes: %s\n\n", spark); err != nil {
		return err
	}

	return renderSolveTable(w, report.Solves)
}

func renderSolveTable(w io.Writer, solves []model.StoredSolve) error {
	headers := []string{"i", "finished", "time", "ao5", "ao12"}
	rows := make([][]string, 0, len(solves))
	for i, s := range solves {
		t := s.Time
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			s.FinishedAt.Local().Format("2006-01-02 15:04"),
			FormatSeconds(&t),
			FormatSeconds(s.AO5),
			FormatSeconds(s.AO12),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// resample shrinks values to at most width samples by picking evenly
// spaced entries. Values shorter than the width pass through unchanged.
func resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	if width == 1 {
		return values[:1]
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * (len(values) - 1) / (width - 1)
		out[i] = values[idx]
	}
	return out
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
