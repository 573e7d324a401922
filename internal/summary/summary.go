// Package summary derives the per-period task counts shown under the grid.
// The counts are always recomputed from a project snapshot; nothing is cached.
package summary

import "github.com/thenoetrevino/tramo/internal/models"

// Compute returns one count per period, index 0 being period 1.
// Only tasks with both edges set contribute.
func Compute(p *models.Project) []int {
	if p == nil || p.Duration < 1 {
		return []int{}
	}
	counts := make([]int, p.Duration)
	for _, t := range p.Tasks {
		if !t.HasSpan() {
			continue
		}
		start := max(t.Start, 1)
		end := min(t.End, p.Duration)
		for period := start; period <= end; period++ {
			counts[period-1]++
		}
	}
	return counts
}

// Peak returns the highest count, i.e. the maximum number of concurrent tasks
func Peak(counts []int) int {
	peak := 0
	for _, c := range counts {
		peak = max(peak, c)
	}
	return peak
}
