// Package excel ingests .xlsx score logs into a validated Series.
package excel

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/errors"
)

// Reader handles reading Excel score logs
type Reader struct {
	filePath string
	sheet    string
}

// NewReader creates a reader for the given file, using Sheet1
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath, sheet: "Sheet1"}
}

// NewReaderForSheet creates a reader for a specific sheet
func NewReaderForSheet(filePath, sheet string) *Reader {
	return &Reader{filePath: filePath, sheet: sheet}
}

// Read parses the sheet into a validated Series. The first row must be a
// header containing "date" and "score" columns (case-insensitive); remaining
// rows hold ISO dates and scores in [0,100]. Duplicate dates collapse
// last-write-wins and the result is sorted ascending.
func (r *Reader) Read() (series.Series, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("Excel file %s", r.filePath))
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", r.sheet)
	}
	if len(rows) < 2 {
		return nil, errors.IngestInvalid("sheet must have a header row and at least one data row")
	}

	dateIdx, scoreIdx := -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateIdx = i
		case "score":
			scoreIdx = i
		}
	}
	if dateIdx < 0 || scoreIdx < 0 {
		return nil, errors.IngestInvalid("header must contain date and score columns")
	}

	measurements := make([]series.Measurement, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) <= dateIdx || len(row) <= scoreIdx {
			continue // trailing blank cells produce short rows
		}
		dateCell := strings.TrimSpace(row[dateIdx])
		scoreCell := strings.TrimSpace(row[scoreIdx])
		if dateCell == "" && scoreCell == "" {
			continue
		}

		day, err := core.ParseDay(dateCell)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad date", line)
		}
		score, err := strconv.ParseFloat(scoreCell, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad score", line)
		}
		if score < 0 || score > 100 {
			return nil, errors.IngestInvalid(fmt.Sprintf("row %d: score %v outside [0,100]", line, score))
		}
		measurements = append(measurements, series.Measurement{Date: day, Score: score})
	}

	return series.Normalize(measurements), nil
}
