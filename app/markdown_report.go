package app

import (
	"fmt"
	"strings"
)

// MarkdownReport renders segment statistics and an optional comparison as a
// markdown document. The UI layer converts this to HTML; the CLI prints it
// as-is.
func MarkdownReport(segments []SegmentStatistics, comparison *ComparisonResult) string {
	var b strings.Builder

	b.WriteString("# Segment Report\n\n")
	if len(segments) == 0 {
		b.WriteString("No data.\n")
		return b.String()
	}

	b.WriteString("| Segment | Range | N | Mean | Median | SD | CV% | Trend |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, seg := range segments {
		fmt.Fprintf(&b, "| %s | %s to %s | %d | %.2f | %.2f | %.2f | %.1f | %s (%.3f/day) |\n",
			seg.Label, seg.StartDate, seg.EndDate, seg.Count,
			seg.Mean, seg.Median, seg.StdDev, seg.CoefficientOfVariation,
			seg.TrendDirection, seg.TrendSlope)
	}

	if comparison != nil {
		b.WriteString("\n## Comparison: " + comparison.Waypoint.Label + "\n\n")
		fmt.Fprintf(&b, "- Mean %s -> %s: delta %+.2f (%+.1f%%)\n",
			comparison.Before.Label, comparison.After.Label,
			comparison.DeltaMean, comparison.PercentChange)
		fmt.Fprintf(&b, "- Welch's t-test: p = %.4f (%s)\n",
			comparison.PValue, comparison.Significance)
		fmt.Fprintf(&b, "- Cohen's d: %.2f (%s)\n",
			comparison.CohensD, comparison.EffectSizeLabel)
	}

	return b.String()
}
