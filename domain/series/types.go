package series

import (
	"sort"

	"waypoint/domain/core"
)

// Measurement is a single daily observation with a bounded score.
// Scores are validated to [0,100] by ingestion before they reach this package.
type Measurement struct {
	Date  core.Day `json:"date"`
	Score float64  `json:"score"`
}

// Series is an ordered sequence of measurements, ascending by date with
// unique dates. Construction of a valid Series is the ingestion layer's job;
// everything here treats it as immutable.
type Series []Measurement

// Scores returns the score values in series order
func (s Series) Scores() []float64 {
	out := make([]float64, len(s))
	for i, m := range s {
		out[i] = m.Score
	}
	return out
}

// First returns the earliest measurement; ok is false when the series is empty
func (s Series) First() (Measurement, bool) {
	if len(s) == 0 {
		return Measurement{}, false
	}
	return s[0], true
}

// Last returns the latest measurement; ok is false when the series is empty
func (s Series) Last() (Measurement, bool) {
	if len(s) == 0 {
		return Measurement{}, false
	}
	return s[len(s)-1], true
}

// SplitAt partitions the series around a day: before holds measurements
// strictly earlier than day, after holds measurements on or after it.
// The returned slices share backing storage with s and must not be mutated.
func (s Series) SplitAt(day core.Day) (before, after Series) {
	idx := sort.Search(len(s), func(i int) bool {
		return !s[i].Date.Before(day)
	})
	return s[:idx], s[idx:]
}

// Normalize builds a valid Series from arbitrary measurements: duplicates by
// date collapse to the last occurrence (last write wins) and the result is
// sorted ascending by date. Ingestion adapters call this after validation.
func Normalize(ms []Measurement) Series {
	byDate := make(map[string]int, len(ms))
	out := make(Series, 0, len(ms))
	for _, m := range ms {
		key := m.Date.String()
		if idx, seen := byDate[key]; seen {
			out[idx] = m
			continue
		}
		byDate[key] = len(out)
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Waypoint is a user-placed date annotation used to split a series into
// before/after or multi-segment ranges. Its date need not correspond to an
// existing measurement.
type Waypoint struct {
	ID    core.WaypointID `json:"id"`
	Date  core.Day        `json:"date"`
	Label string          `json:"label"`
	Color string          `json:"color,omitempty"`
}

// SortWaypoints returns a copy of the waypoints sorted ascending by date.
// The sort is stable: same-date waypoints keep their input order.
func SortWaypoints(waypoints []Waypoint) []Waypoint {
	sorted := make([]Waypoint, len(waypoints))
	copy(sorted, waypoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
