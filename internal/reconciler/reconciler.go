// Package reconciler combines multiple candidate dates for one event into
// the single best-consensus date. Each field is reconciled independently
// using the scoring package's distance functions, so a cluster of
// near-miss values can beat an exact duplicate pair.
package reconciler

import (
	"errors"

	"flexdate/internal/date"
	"flexdate/internal/scoring"
)

// ErrNoCandidates is returned when Combine is given an empty sequence.
var ErrNoCandidates = errors.New("reconciler: no candidate dates")

// Reconciler reconciles candidate dates under a fixed scorer.
type Reconciler struct {
	scorer *scoring.Scorer
}

// New returns a Reconciler that adjudicates disagreements with the given
// scorer's field distances.
func New(s *scoring.Scorer) *Reconciler {
	return &Reconciler{scorer: s}
}

// Combine reconciles candidates under the default scoring parameters.
func Combine(dates []date.PartialDate) (date.PartialDate, error) {
	return New(scoring.Default()).Combine(dates)
}

// Combine selects, per field, the present value with the smallest total
// distance to every other present value for that field. Ties go to the
// value occurring most often verbatim, then to the earliest occurrence.
// Fields absent everywhere stay absent. The output is not checked for
// cross-field calendar validity.
func (r *Reconciler) Combine(dates []date.PartialDate) (date.PartialDate, error) {
	if len(dates) == 0 {
		return date.PartialDate{}, ErrNoCandidates
	}

	var days, months, years []int
	for _, d := range dates {
		if v, ok := d.Day(); ok {
			days = append(days, v)
		}
		if v, ok := d.Month(); ok {
			months = append(months, v)
		}
		if v, ok := d.Year(); ok {
			years = append(years, v)
		}
	}

	day := consensus(days, r.scorer.DayDistance)
	month := consensus(months, r.scorer.MonthDistance)
	year := consensus(years, r.scorer.YearDistance)

	combined, err := date.New(day, month, year)
	if err != nil {
		// Inputs were validated at construction, so per-field ranges
		// already hold.
		return date.PartialDate{}, err
	}
	return combined, nil
}

// consensus picks the winner among the present values of one field, or nil
// when the field is absent everywhere.
func consensus(values []int, dist func(a, b int) float64) *int {
	if len(values) == 0 {
		return nil
	}
	if len(values) == 1 {
		return &values[0]
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := -1
	bestTotal := 0.0
	seen := make(map[int]bool, len(values))
	for i, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true

		total := 0.0
		for j, w := range values {
			if j == i {
				continue
			}
			total += dist(v, w)
		}

		if best < 0 || total < bestTotal ||
			(total == bestTotal && counts[v] > counts[values[best]]) {
			best = i
			bestTotal = total
		}
	}
	return &values[best]
}
