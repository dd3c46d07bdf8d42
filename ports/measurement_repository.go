package ports

import (
	"context"

	"waypoint/domain/series"
)

// MeasurementRepository persists and retrieves the measurement series.
// Implementations must return the series ascending by date with unique dates;
// saving a measurement for an existing date overwrites it (last write wins).
type MeasurementRepository interface {
	// SaveMeasurement upserts a single measurement by date
	SaveMeasurement(ctx context.Context, m series.Measurement) error

	// SaveSeries upserts a whole series in one call
	SaveSeries(ctx context.Context, s series.Series) error

	// GetSeries returns the full series ascending by date
	GetSeries(ctx context.Context) (series.Series, error)

	// DeleteMeasurement removes the measurement for a date, if present
	DeleteMeasurement(ctx context.Context, date string) error
}
