// Package scoring computes a signed similarity score between two partial
// dates. The per-field distance functions defined here are also the tie
// adjudication logic used by the reconciler, so the year decay policy is
// defined exactly once.
package scoring

import (
	"math"

	"flexdate/internal/date"
)

// EraWeight maps a historical era to a year-penalty multiplier. Older eras
// get smaller weights: record keeping gets less reliable the further back
// the pair sits, so equal year gaps should cost less there.
type EraWeight struct {
	From   float64 `yaml:"from"`
	Weight float64 `yaml:"weight"`
}

// Params holds the tunable scoring constants. All of them can be
// overridden through the config file; DefaultParams is calibrated so that
// two dates sharing a month, two years apart around 1900, score exactly 20.
type Params struct {
	DayMatch    float64     `yaml:"day_match"`
	DaySlope    float64     `yaml:"day_slope"`
	MonthMatch  float64     `yaml:"month_match"`
	MonthSlope  float64     `yaml:"month_slope"`
	YearMatch   float64     `yaml:"year_match"`
	YearScale   float64     `yaml:"year_scale"`
	YearLogBase float64     `yaml:"year_log_base"`
	EraWeights  []EraWeight `yaml:"era_weights"`
}

// DefaultParams returns the calibrated defaults.
func DefaultParams() Params {
	return Params{
		DayMatch:    5,
		DaySlope:    1.5,
		MonthMatch:  5,
		MonthSlope:  2,
		YearMatch:   20,
		YearScale:   2,
		YearLogBase: 3,
		EraWeights: []EraWeight{
			{From: 1980, Weight: 10},
			{From: 1970, Weight: 8},
			{From: 1960, Weight: 6.5},
			{From: 1950, Weight: 5},
			{From: 1940, Weight: 4.5},
			{From: 1930, Weight: 4},
			{From: 1920, Weight: 3.5},
			{From: 1910, Weight: 3},
			{From: 1900, Weight: 2.5},
			{From: 1890, Weight: 1},
			{From: 1850, Weight: 0.6},
			{From: 1800, Weight: 0.5},
			{From: 1700, Weight: 0.45},
			{From: 1600, Weight: 0.4},
			{From: 1500, Weight: 0.35},
			{From: 1400, Weight: 0.3},
			{From: 1300, Weight: 0.25},
			{From: 1200, Weight: 0.2},
			{From: 1100, Weight: 0.15},
			{From: math.Inf(-1), Weight: 0.1},
		},
	}
}

// Scorer evaluates partial-date similarity under a fixed set of Params.
// It is stateless beyond the parameters and safe for concurrent use.
type Scorer struct {
	p Params
}

// New returns a Scorer using the given parameters.
func New(p Params) *Scorer {
	return &Scorer{p: p}
}

var defaultScorer = New(DefaultParams())

// Score compares two partial dates under the default parameters.
func Score(a, b date.PartialDate) float64 {
	return defaultScorer.Score(a, b)
}

// Default returns the scorer built from DefaultParams.
func Default() *Scorer {
	return defaultScorer
}

// Score returns a signed similarity score, higher meaning more similar.
// It is symmetric. A field absent on either side contributes zero: unknown
// is not disagreement. Full agreement on all present fields yields the
// maximum score; day and month penalties are linear and unbounded below,
// the year penalty grows only logarithmically with the gap.
func (s *Scorer) Score(a, b date.PartialDate) float64 {
	score := 0.0

	if ay, aok := a.Year(); aok {
		if by, bok := b.Year(); bok {
			score += s.p.YearMatch - s.YearDistance(ay, by)
		}
	}
	if am, aok := a.Month(); aok {
		if bm, bok := b.Month(); bok {
			score += s.p.MonthMatch - s.MonthDistance(am, bm)
		}
	}
	if ad, aok := a.Day(); aok {
		if bd, bok := b.Day(); bok {
			score += s.p.DayMatch - s.DayDistance(ad, bd)
		}
	}

	return score
}

// DayDistance is the penalty for two present day values: linear in the
// absolute gap.
func (s *Scorer) DayDistance(a, b int) float64 {
	return s.p.DaySlope * absFloat(a-b)
}

// MonthDistance is the penalty for two present month values: linear in the
// absolute gap, with no December-January wrap-around.
func (s *Scorer) MonthDistance(a, b int) float64 {
	return s.p.MonthSlope * absFloat(a-b)
}

// YearDistance is the penalty for two present year values. It grows with
// log(1+gap) rather than the gap itself, and is attenuated by the era
// weight of the pair's midpoint, so old near-misses cost less than recent
// ones.
func (s *Scorer) YearDistance(a, b int) float64 {
	delta := absFloat(a - b)
	mid := (float64(a) + float64(b)) / 2
	logDelta := math.Log(1+delta) / math.Log(s.p.YearLogBase)
	return s.eraWeight(mid) * s.p.YearScale * logDelta
}

func (s *Scorer) eraWeight(year float64) float64 {
	for _, era := range s.p.EraWeights {
		if year >= era.From {
			return era.Weight
		}
	}
	return 0
}

func absFloat(v int) float64 {
	if v < 0 {
		v = -v
	}
	return float64(v)
}
