package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"waypoint/adapters/csvdata"
	"waypoint/adapters/excel"
	"waypoint/app"
	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/testkit"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waypoint-cli",
		Short: "Waypoint CLI for segment reports and before/after comparisons",
	}

	rootCmd.AddCommand(
		newReportCmd(),
		newCompareCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newReportCmd() *cobra.Command {
	var waypointSpecs []string

	cmd := &cobra.Command{
		Use:   "report [data-file]",
		Short: "Print a markdown segment report for a CSV or Excel file",
		Long: `Segment a daily score series at the given waypoints and print
per-segment statistics as a markdown table.

Example: waypoint-cli report scores.csv --waypoint "2024-01-15:Started Running"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ser, err := loadSeries(args[0])
			if err != nil {
				return err
			}
			waypoints, err := parseWaypointSpecs(waypointSpecs)
			if err != nil {
				return err
			}

			svc := app.NewReportService()
			segments, err := svc.SegmentReport(cmd.Context(), ser, waypoints)
			if err != nil {
				return err
			}

			var comparison *app.ComparisonResult
			if len(waypoints) > 0 {
				sorted := series.SortWaypoints(waypoints)
				comparison = svc.CompareAcrossWaypoint(ser, sorted[len(sorted)-1])
			}

			fmt.Print(app.MarkdownReport(segments, comparison))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&waypointSpecs, "waypoint", nil, `Waypoint as "YYYY-MM-DD:Label" (repeatable)`)

	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [data-file] [waypoint-date]",
		Short: "Compare the series before and after a single date",
		Long: `Run a Welch's t-test and effect size estimate on the measurements
before and after the given date and print the result as JSON.

Example: waypoint-cli compare scores.csv 2024-01-15`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ser, err := loadSeries(args[0])
			if err != nil {
				return err
			}
			date, err := core.ParseDay(args[1])
			if err != nil {
				return fmt.Errorf("invalid waypoint date (use YYYY-MM-DD): %w", err)
			}

			w := series.Waypoint{
				ID:    core.WaypointID(core.NewID()),
				Date:  date,
				Label: args[1],
			}

			result := app.NewReportService().CompareAcrossWaypoint(ser, w)
			if result == nil {
				return fmt.Errorf("not enough data: need at least 2 measurements on each side of %s", args[1])
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	return cmd
}

func newDemoCmd() *cobra.Command {
	var seed int64
	var days int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a synthetic step-change series and report on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), seed, days)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for the synthetic series")
	cmd.Flags().IntVar(&days, "days", 60, "Number of days to generate")

	return cmd
}

func runDemo(ctx context.Context, seed int64, days int) error {
	gen := testkit.NewGenerator(seed)
	start := core.MustDay("2024-01-01")
	stepAt := start.AddDays(days / 2)

	ser := gen.StepSeries(start, days, stepAt, 45, 75, 5)
	w := gen.Waypoint(stepAt, "Intervention")

	svc := app.NewReportService()
	segments, err := svc.SegmentReport(ctx, ser, []series.Waypoint{w})
	if err != nil {
		return err
	}
	comparison := svc.CompareAcrossWaypoint(ser, w)

	fmt.Print(app.MarkdownReport(segments, comparison))
	return nil
}

func loadSeries(path string) (series.Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return excel.NewReader(path).Read()
	default:
		return csvdata.LoadFile(path, nil)
	}
}

func parseWaypointSpecs(specs []string) ([]series.Waypoint, error) {
	waypoints := make([]series.Waypoint, 0, len(specs))
	for _, spec := range specs {
		dateStr, label, found := strings.Cut(spec, ":")
		if !found || label == "" {
			return nil, fmt.Errorf("invalid waypoint %q (use \"YYYY-MM-DD:Label\")", spec)
		}
		date, err := core.ParseDay(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid waypoint date in %q: %w", spec, err)
		}
		waypoints = append(waypoints, series.Waypoint{
			ID:    core.WaypointID(core.NewID()),
			Date:  date,
			Label: label,
		})
	}
	return waypoints, nil
}
