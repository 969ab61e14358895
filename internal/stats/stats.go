// Package stats contains solve statistics calculations and reporting.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/verte-zerg/cubetui/internal/model"
)

// Window sizes for the standard trimmed-mean averages.
const (
	WindowAO5   = 5
	WindowAO12  = 12
	WindowAO100 = 100
	WindowAO1K  = 1000
)

// AverageOfN computes the speedcubing "average of n": the trimmed mean of
// the n most recent times, dropping exactly one occurrence of the best and
// one of the worst. Nil until n times are available.
func AverageOfN(times []time.Duration, n int) *time.Duration {
	if n < 3 || len(times) < n {
		return nil
	}
	window := make([]time.Duration, n)
	copy(window, times[len(times)-n:])
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
	var sum time.Duration
	for _, t := range window[1 : n-1] {
		sum += t
	}
	avg := sum / time.Duration(n-2)
	return &avg
}

// Compute derives the ao5/ao12 pair for a solve that just finished, against
// the history as it existed before the solve is appended. The window is the
// most recent n-1 prior times plus the new one.
func Compute(prior []time.Duration, newTime time.Duration) (ao5, ao12 *time.Duration) {
	times := make([]time.Duration, 0, len(prior)+1)
	times = append(times, prior...)
	times = append(times, newTime)
	return AverageOfN(times, WindowAO5), AverageOfN(times, WindowAO12)
}

// Mean returns the unbounded rolling average over all times, nil when empty.
func Mean(times []time.Duration) *time.Duration {
	if len(times) == 0 {
		return nil
	}
	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	avg := sum / time.Duration(len(times))
	return &avg
}

// Summary aggregates the on-demand reductions shown in the bests row.
type Summary struct {
	PBSingle *time.Duration
	PBAO5    *time.Duration
	PBAO12   *time.Duration
	AO100    *time.Duration
	AO1K     *time.Duration
	Rolling  *time.Duration
}

// Summarize recomputes every derived statistic from the full history. No
// accumulators are kept between calls; each query re-derives from scratch.
func Summarize(solves []model.Solve) Summary {
	times := Times(solves)
	return Summary{
		PBSingle: minDuration(times),
		PBAO5:    minOptional(solves, func(s model.Solve) *time.Duration { return s.AO5 }),
		PBAO12:   minOptional(solves, func(s model.Solve) *time.Duration { return s.AO12 }),
		AO100:    AverageOfN(times, WindowAO100),
		AO1K:     AverageOfN(times, WindowAO1K),
		Rolling:  Mean(times),
	}
}

// Times extracts the raw times from a solve history, oldest first.
func Times(solves []model.Solve) []time.Duration {
	times := make([]time.Duration, len(solves))
	for i, s := range solves {
		times[i] = s.Time
	}
	return times
}

// FormatSeconds renders an optional duration in seconds with two decimals,
// or "-" when absent.
func FormatSeconds(d *time.Duration) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", d.Seconds())
}

func minDuration(times []time.Duration) *time.Duration {
	var best *time.Duration
	for _, t := range times {
		if best == nil || t < *best {
			v := t
			best = &v
		}
	}
	return best
}

func minOptional(solves []model.Solve, field func(model.Solve) *time.Duration) *time.Duration {
	var best *time.Duration
	for _, s := range solves {
		v := field(s)
		if v == nil {
			continue
		}
		if best == nil || *v < *best {
			d := *v
			best = &d
		}
	}
	return best
}
