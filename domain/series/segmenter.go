package series

import (
	"waypoint/domain/core"
)

// Segment is a contiguous, date-bounded subsequence of a series induced by
// waypoints. Segments are derived on every call and never persisted.
type Segment struct {
	Label        string   `json:"label"`
	StartDate    core.Day `json:"start_date"`
	EndDate      core.Day `json:"end_date"`
	Measurements Series   `json:"measurements"`
}

// Count returns the number of measurements in the segment
func (seg Segment) Count() int {
	return len(seg.Measurements)
}

// AllDataLabel is the label of the single segment produced when no waypoints exist.
const AllDataLabel = "All Data"

// BuildSegments partitions a series into chronologically ordered segments
// delimited by the waypoints' dates.
//
// The interior intervals are half-open: a measurement dated exactly on a
// waypoint's date belongs to the segment that starts at that waypoint, not
// the one that ends there. Together with the inclusive extremes this assigns
// every measurement to exactly one segment. Segments that would contain zero
// measurements are dropped silently.
func BuildSegments(s Series, waypoints []Waypoint) []Segment {
	if len(s) == 0 {
		return nil
	}

	if len(waypoints) == 0 {
		return []Segment{newSegment(AllDataLabel, s)}
	}

	sorted := SortWaypoints(waypoints)
	n := len(sorted)

	// n waypoints induce n+1 nominal intervals:
	//   [start, w0) [w0, w1) ... [w(n-1), end]
	segments := make([]Segment, 0, n+1)
	for i := 0; i <= n; i++ {
		var members Series
		for _, m := range s {
			if belongsTo(m.Date, sorted, i) {
				members = append(members, m)
			}
		}
		if len(members) == 0 {
			continue
		}
		segments = append(segments, newSegment(segmentLabel(sorted, i), members))
	}
	return segments
}

// belongsTo reports whether a measurement day falls in interval i of the
// partition induced by the sorted waypoints.
func belongsTo(day core.Day, sorted []Waypoint, i int) bool {
	n := len(sorted)
	switch {
	case i == 0:
		return day.Before(sorted[0].Date)
	case i == n:
		return !day.Before(sorted[n-1].Date)
	default:
		return !day.Before(sorted[i-1].Date) && day.Before(sorted[i].Date)
	}
}

// segmentLabel derives the display label for interval i
func segmentLabel(sorted []Waypoint, i int) string {
	n := len(sorted)
	switch {
	case i == 0:
		return "Before " + sorted[0].Label
	case i == n:
		return "After " + sorted[n-1].Label
	default:
		right := "end"
		if i < n {
			right = sorted[i].Label
		}
		return sorted[i-1].Label + " to " + right
	}
}

// newSegment builds a segment whose displayed range is data-backed: start and
// end come from the actual first/last measurement, not the nominal boundaries.
func newSegment(label string, members Series) Segment {
	return Segment{
		Label:        label,
		StartDate:    members[0].Date,
		EndDate:      members[len(members)-1].Date,
		Measurements: members,
	}
}
