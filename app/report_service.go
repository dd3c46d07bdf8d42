package app

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/domain/stats"
)

// Trend directions for a segment's OLS slope
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendFlat    = "flat"
)

// flatSlopeThreshold is the |slope| below which a trend counts as flat,
// in score points per day.
const flatSlopeThreshold = 0.01

// SegmentStatistics is the read-only statistic bundle for one segment
type SegmentStatistics struct {
	Label                  string   `json:"label"`
	StartDate              core.Day `json:"start_date"`
	EndDate                core.Day `json:"end_date"`
	Count                  int      `json:"count"`
	Mean                   float64  `json:"mean"`
	Median                 float64  `json:"median"`
	StdDev                 float64  `json:"std_dev"`
	Min                    float64  `json:"min"`
	Max                    float64  `json:"max"`
	CoefficientOfVariation float64  `json:"coefficient_of_variation"`
	P25                    float64  `json:"p25"`
	P75                    float64  `json:"p75"`
	TrendSlope             float64  `json:"trend_slope"`
	TrendDirection         string   `json:"trend_direction"`
}

// ComparisonResult is the before/after inference bundle for one waypoint.
// It exists only transiently for a single comparison call.
type ComparisonResult struct {
	Waypoint        series.Waypoint   `json:"waypoint"`
	Before          SegmentStatistics `json:"before"`
	After           SegmentStatistics `json:"after"`
	DeltaMean       float64           `json:"delta_mean"`
	PercentChange   float64           `json:"percent_change"`
	PValue          float64           `json:"p_value"`
	CohensD         float64           `json:"cohens_d"`
	Significance    string            `json:"significance"`
	EffectSizeLabel string            `json:"effect_size_label"`
}

// ReportService composes segmentation, descriptive statistics and two-sample
// inference into per-segment reports and waypoint comparisons. It holds no
// state: every method is a pure function of its arguments, so one instance
// may be shared by concurrent callers.
type ReportService struct{}

// NewReportService creates a report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// ComputeSegmentStats assembles the statistic bundle for a single segment
func (s *ReportService) ComputeSegmentStats(segment series.Segment) SegmentStatistics {
	scores := segment.Measurements.Scores()
	slope := stats.Slope(scores)

	return SegmentStatistics{
		Label:                  segment.Label,
		StartDate:              segment.StartDate,
		EndDate:                segment.EndDate,
		Count:                  len(scores),
		Mean:                   stats.Mean(scores),
		Median:                 stats.Median(scores),
		StdDev:                 stats.StdDev(scores),
		Min:                    stats.Min(scores),
		Max:                    stats.Max(scores),
		CoefficientOfVariation: stats.CoefficientOfVariation(scores),
		P25:                    stats.Percentile(scores, 25),
		P75:                    stats.Percentile(scores, 75),
		TrendSlope:             slope,
		TrendDirection:         trendDirection(slope),
	}
}

// SegmentReport segments the series at the waypoints and computes the
// statistic bundle for every resulting segment, preserving segment order.
// Per-segment computation fans out across goroutines; the work is pure, so
// the only coordination needed is the join.
func (s *ReportService) SegmentReport(ctx context.Context, ser series.Series, waypoints []series.Waypoint) ([]SegmentStatistics, error) {
	segments := series.BuildSegments(ser, waypoints)
	if len(segments) == 0 {
		return nil, nil
	}

	results := make([]SegmentStatistics, len(segments))
	g, _ := errgroup.WithContext(ctx)
	for i, segment := range segments {
		g.Go(func() error {
			results[i] = s.ComputeSegmentStats(segment)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CompareAcrossWaypoint splits the whole series at the waypoint's date
// (before: strictly earlier, after: on or later) and runs two-sample
// inference on the raw scores of the two halves.
//
// Returns nil when either side has fewer than 2 measurements. That is the
// expected "insufficient data" outcome, not an error; callers must branch
// on it.
func (s *ReportService) CompareAcrossWaypoint(ser series.Series, w series.Waypoint) *ComparisonResult {
	before, after := ser.SplitAt(w.Date)
	if len(before) < 2 || len(after) < 2 {
		return nil
	}

	beforeStats := s.ComputeSegmentStats(series.Segment{
		Label:        "Before " + w.Label,
		StartDate:    before[0].Date,
		EndDate:      before[len(before)-1].Date,
		Measurements: before,
	})
	afterStats := s.ComputeSegmentStats(series.Segment{
		Label:        "After " + w.Label,
		StartDate:    after[0].Date,
		EndDate:      after[len(after)-1].Date,
		Measurements: after,
	})

	deltaMean := afterStats.Mean - beforeStats.Mean
	percentChange := 0.0
	if beforeStats.Mean != 0 {
		percentChange = deltaMean / beforeStats.Mean * 100
	}

	p := stats.WelchTTest(before.Scores(), after.Scores())
	d := stats.CohensD(after.Scores(), before.Scores())

	return &ComparisonResult{
		Waypoint:        w,
		Before:          beforeStats,
		After:           afterStats,
		DeltaMean:       deltaMean,
		PercentChange:   percentChange,
		PValue:          p,
		CohensD:         d,
		Significance:    stats.SignificanceLabel(p),
		EffectSizeLabel: stats.EffectSizeLabel(d),
	}
}

func trendDirection(slope float64) string {
	switch {
	case math.Abs(slope) < flatSlopeThreshold:
		return TrendFlat
	case slope > 0:
		return TrendRising
	default:
		return TrendFalling
	}
}
