package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waypoint/domain/core"
)

func mkSeries(t *testing.T, days []string, scores []float64) Series {
	t.Helper()
	require.Equal(t, len(days), len(scores))
	s := make(Series, len(days))
	for i := range days {
		s[i] = Measurement{Date: core.MustDay(days[i]), Score: scores[i]}
	}
	return s
}

func mkWaypoint(day, label string) Waypoint {
	return Waypoint{
		ID:    core.WaypointID(core.NewID()),
		Date:  core.MustDay(day),
		Label: label,
	}
}

func TestBuildSegments_EmptySeries(t *testing.T) {
	segments := BuildSegments(nil, []Waypoint{mkWaypoint("2024-01-01", "Start")})
	assert.Empty(t, segments)
}

func TestBuildSegments_NoWaypoints(t *testing.T) {
	s := mkSeries(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, []float64{10, 20, 30})

	segments := BuildSegments(s, nil)

	require.Len(t, segments, 1)
	assert.Equal(t, AllDataLabel, segments[0].Label)
	assert.Equal(t, 3, segments[0].Count())
	assert.Equal(t, "2024-01-01", segments[0].StartDate.String())
	assert.Equal(t, "2024-01-03", segments[0].EndDate.String())
}

func TestBuildSegments_SingleWaypoint(t *testing.T) {
	s := mkSeries(t,
		[]string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		[]float64{40, 50, 90, 90})
	w := mkWaypoint("2024-01-03", "Change")

	segments := BuildSegments(s, []Waypoint{w})

	require.Len(t, segments, 2)
	assert.Equal(t, "Before Change", segments[0].Label)
	assert.Equal(t, []float64{40, 50}, segments[0].Measurements.Scores())
	assert.Equal(t, "After Change", segments[1].Label)
	assert.Equal(t, []float64{90, 90}, segments[1].Measurements.Scores())
}

// A measurement dated exactly on a waypoint's date joins the segment that
// starts at that waypoint, never the one that ends there.
func TestBuildSegments_MeasurementOnWaypointDate(t *testing.T) {
	s := mkSeries(t,
		[]string{"2024-01-01", "2024-01-02", "2024-01-03"},
		[]float64{1, 2, 3})
	w := mkWaypoint("2024-01-02", "Cut")

	segments := BuildSegments(s, []Waypoint{w})

	require.Len(t, segments, 2)
	assert.Equal(t, []float64{1}, segments[0].Measurements.Scores())
	assert.Equal(t, []float64{2, 3}, segments[1].Measurements.Scores())
	assert.Equal(t, "2024-01-02", segments[1].StartDate.String())
}

func TestBuildSegments_InteriorLabels(t *testing.T) {
	s := mkSeries(t,
		[]string{"2024-01-01", "2024-01-05", "2024-01-10", "2024-01-15"},
		[]float64{10, 20, 30, 40})
	ws := []Waypoint{
		mkWaypoint("2024-01-04", "Diet"),
		mkWaypoint("2024-01-09", "Exercise"),
		mkWaypoint("2024-01-14", "Sleep"),
	}

	segments := BuildSegments(s, ws)

	require.Len(t, segments, 4)
	assert.Equal(t, "Before Diet", segments[0].Label)
	assert.Equal(t, "Diet to Exercise", segments[1].Label)
	assert.Equal(t, "Exercise to Sleep", segments[2].Label)
	assert.Equal(t, "After Sleep", segments[3].Label)
}

func TestBuildSegments_EmptySegmentsDropped(t *testing.T) {
	s := mkSeries(t, []string{"2024-01-01", "2024-01-10"}, []float64{10, 20})
	// Two adjacent waypoints with no data between them collapse silently.
	ws := []Waypoint{
		mkWaypoint("2024-01-05", "A"),
		mkWaypoint("2024-01-06", "B"),
	}

	segments := BuildSegments(s, ws)

	require.Len(t, segments, 2)
	assert.Equal(t, "Before A", segments[0].Label)
	assert.Equal(t, "After B", segments[1].Label)
}

func TestBuildSegments_WaypointOutsideSeriesRange(t *testing.T) {
	s := mkSeries(t, []string{"2024-01-05", "2024-01-06"}, []float64{10, 20})
	ws := []Waypoint{
		mkWaypoint("2024-01-01", "Early"),
		mkWaypoint("2024-02-01", "Late"),
	}

	segments := BuildSegments(s, ws)

	// Everything lands between the two waypoints; the extremes are empty.
	require.Len(t, segments, 1)
	assert.Equal(t, "Early to Late", segments[0].Label)
	assert.Equal(t, 2, segments[0].Count())
}

// Partition property: every input measurement appears in exactly one segment,
// and segments are chronologically ordered.
func TestBuildSegments_PartitionProperty(t *testing.T) {
	days := []string{
		"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-05", "2024-03-08",
		"2024-03-09", "2024-03-12", "2024-03-15", "2024-03-16", "2024-03-20",
	}
	scores := []float64{12, 55, 43, 70, 61, 58, 80, 75, 90, 66}
	s := mkSeries(t, days, scores)
	ws := []Waypoint{
		mkWaypoint("2024-03-09", "Mid"),
		mkWaypoint("2024-03-03", "First"),
		mkWaypoint("2024-03-16", "Last"),
	}

	segments := BuildSegments(s, ws)

	var rebuilt Series
	for _, seg := range segments {
		rebuilt = append(rebuilt, seg.Measurements...)
	}
	require.Len(t, rebuilt, len(s))
	for i, m := range rebuilt {
		assert.True(t, m.Date.Equal(s[i].Date), "measurement %d out of order", i)
		assert.Equal(t, s[i].Score, m.Score)
	}
	for i := 1; i < len(segments); i++ {
		assert.True(t, segments[i-1].EndDate.Before(segments[i].StartDate))
	}
}

// Same-date waypoints keep their input order (stable sort tie-break).
func TestSortWaypoints_StableOnTies(t *testing.T) {
	ws := []Waypoint{
		mkWaypoint("2024-01-02", "Second"),
		mkWaypoint("2024-01-01", "A"),
		mkWaypoint("2024-01-01", "B"),
	}

	sorted := SortWaypoints(ws)

	require.Len(t, sorted, 3)
	assert.Equal(t, "A", sorted[0].Label)
	assert.Equal(t, "B", sorted[1].Label)
	assert.Equal(t, "Second", sorted[2].Label)

	// Input slice is untouched.
	assert.Equal(t, "Second", ws[0].Label)
}

func TestSplitAt(t *testing.T) {
	s := mkSeries(t,
		[]string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		[]float64{1, 2, 3, 4})

	before, after := s.SplitAt(core.MustDay("2024-01-03"))

	assert.Equal(t, []float64{1, 2}, before.Scores())
	assert.Equal(t, []float64{3, 4}, after.Scores())

	before, after = s.SplitAt(core.MustDay("2023-12-31"))
	assert.Empty(t, before)
	assert.Len(t, after, 4)
}

func TestMovingAverage(t *testing.T) {
	s := mkSeries(t,
		[]string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		[]float64{10, 20, 30, 40})

	got := MovingAverage(s, 3)

	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 20, got[2], 1e-12)
	assert.InDelta(t, 30, got[3], 1e-12)
}

func TestMovingAverage_DegenerateWindows(t *testing.T) {
	s := mkSeries(t, []string{"2024-01-01", "2024-01-02"}, []float64{10, 20})

	for _, window := range []int{0, -1, 3} {
		got := MovingAverage(s, window)
		require.Len(t, got, 2)
		for i, v := range got {
			assert.True(t, math.IsNaN(v), "window %d entry %d should be NaN", window, i)
		}
	}

	got := MovingAverage(s, 1)
	assert.Equal(t, []float64{10, 20}, got)
}
