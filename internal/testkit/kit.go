// Package testkit generates deterministic synthetic series for tests and
// demos. Generation is seeded, so fixtures are reproducible run to run.
package testkit

import (
	"math"
	"math/rand"

	"waypoint/domain/core"
	"waypoint/domain/series"
)

// Generator produces synthetic daily score series
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// FlatSeries generates days consecutive measurements around a base score
// with uniform noise of the given amplitude, clamped to [0,100].
func (g *Generator) FlatSeries(start core.Day, days int, base, noise float64) series.Series {
	s := make(series.Series, 0, days)
	for i := 0; i < days; i++ {
		score := clampScore(base + (g.rng.Float64()*2-1)*noise)
		s = append(s, series.Measurement{Date: start.AddDays(i), Score: score})
	}
	return s
}

// StepSeries generates a series whose base level jumps from beforeBase to
// afterBase at the step day. Useful for exercising waypoint comparisons
// with a known effect.
func (g *Generator) StepSeries(start core.Day, days int, stepAt core.Day, beforeBase, afterBase, noise float64) series.Series {
	s := make(series.Series, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDays(i)
		base := beforeBase
		if !day.Before(stepAt) {
			base = afterBase
		}
		score := clampScore(base + (g.rng.Float64()*2-1)*noise)
		s = append(s, series.Measurement{Date: day, Score: score})
	}
	return s
}

// TrendSeries generates a series rising (or falling) by slope points per day
// from a base score, with uniform noise, clamped to [0,100].
func (g *Generator) TrendSeries(start core.Day, days int, base, slope, noise float64) series.Series {
	s := make(series.Series, 0, days)
	for i := 0; i < days; i++ {
		score := clampScore(base + slope*float64(i) + (g.rng.Float64()*2-1)*noise)
		s = append(s, series.Measurement{Date: start.AddDays(i), Score: score})
	}
	return s
}

// Waypoint creates a waypoint with a fresh ID
func (g *Generator) Waypoint(date core.Day, label string) series.Waypoint {
	return series.Waypoint{
		ID:    core.WaypointID(core.NewID()),
		Date:  date,
		Label: label,
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
