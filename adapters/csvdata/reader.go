// Package csvdata ingests delimited date,score text into a validated Series.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/errors"
)

// Options holds CSV parsing options
type Options struct {
	DateColumn  string // Column name for dates (default: "date")
	ScoreColumn string // Column name for scores (default: "score")
	Delimiter   rune   // Field delimiter (default: ',')
	HasHeader   bool   // Whether the input has a header row (default: true)
}

// DefaultOptions returns the default CSV parsing options
func DefaultOptions() *Options {
	return &Options{
		DateColumn:  "date",
		ScoreColumn: "score",
		Delimiter:   ',',
		HasHeader:   true,
	}
}

// LoadFile reads a CSV file into a validated series
func LoadFile(path string, opts *Options) (series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", path)
	}
	defer f.Close()
	return Read(f, opts)
}

// Read parses delimited text into a validated Series: ISO dates, scores in
// [0,100], duplicate dates collapsed last-write-wins, ascending order.
// Malformed rows produce an error naming the offending line.
func Read(r io.Reader, opts *Options) (series.Series, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV input")
	}
	if len(records) == 0 {
		return nil, nil
	}

	dateIdx, scoreIdx := 0, 1
	start := 0
	if opts.HasHeader {
		dateIdx, scoreIdx, err = resolveColumns(records[0], opts)
		if err != nil {
			return nil, err
		}
		start = 1
	}

	measurements := make([]series.Measurement, 0, len(records)-start)
	for i, record := range records[start:] {
		line := start + i + 1
		m, err := parseRow(record, dateIdx, scoreIdx, line)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return series.Normalize(measurements), nil
}

// resolveColumns maps the configured column names to header positions
func resolveColumns(header []string, opts *Options) (dateIdx, scoreIdx int, err error) {
	dateIdx, scoreIdx = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(opts.DateColumn):
			dateIdx = i
		case strings.ToLower(opts.ScoreColumn):
			scoreIdx = i
		}
	}
	if dateIdx < 0 {
		return 0, 0, errors.IngestInvalid(fmt.Sprintf("column %q not found in header", opts.DateColumn))
	}
	if scoreIdx < 0 {
		return 0, 0, errors.IngestInvalid(fmt.Sprintf("column %q not found in header", opts.ScoreColumn))
	}
	return dateIdx, scoreIdx, nil
}

func parseRow(record []string, dateIdx, scoreIdx, line int) (series.Measurement, error) {
	if len(record) <= dateIdx || len(record) <= scoreIdx {
		return series.Measurement{}, errors.IngestInvalid(fmt.Sprintf("line %d: too few columns", line))
	}

	day, err := core.ParseDay(strings.TrimSpace(record[dateIdx]))
	if err != nil {
		return series.Measurement{}, errors.Wrapf(err, "line %d: bad date", line)
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(record[scoreIdx]), 64)
	if err != nil {
		return series.Measurement{}, errors.Wrapf(err, "line %d: bad score", line)
	}
	if score < 0 || score > 100 {
		return series.Measurement{}, errors.IngestInvalid(fmt.Sprintf("line %d: score %v outside [0,100]", line, score))
	}

	return series.Measurement{Date: day, Score: score}, nil
}
