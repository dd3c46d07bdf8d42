// Package postgres implements the repository ports over PostgreSQL.
package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/errors"
	"waypoint/ports"
)

// MeasurementRepositoryImpl implements MeasurementRepository for PostgreSQL
type MeasurementRepositoryImpl struct {
	db *sqlx.DB
}

// NewMeasurementRepository creates a new PostgreSQL measurement repository
func NewMeasurementRepository(db *sqlx.DB) ports.MeasurementRepository {
	return &MeasurementRepositoryImpl{db: db}
}

// SaveMeasurement upserts a single measurement by date (last write wins)
func (r *MeasurementRepositoryImpl) SaveMeasurement(ctx context.Context, m series.Measurement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO measurements (date, score)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET score = EXCLUDED.score`,
		m.Date.String(), m.Score)
	return errors.Wrap(err, "failed to save measurement")
}

// SaveSeries upserts a whole series inside one transaction
func (r *MeasurementRepositoryImpl) SaveSeries(ctx context.Context, s series.Series) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	for _, m := range s {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO measurements (date, score)
			VALUES ($1, $2)
			ON CONFLICT (date) DO UPDATE SET score = EXCLUDED.score`,
			m.Date.String(), m.Score); err != nil {
			return errors.Wrapf(err, "failed to save measurement for %s", m.Date)
		}
	}
	return errors.Wrap(tx.Commit(), "failed to commit series")
}

// GetSeries returns the full series ascending by date
func (r *MeasurementRepositoryImpl) GetSeries(ctx context.Context) (series.Series, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), score
		FROM measurements
		ORDER BY date ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query measurements")
	}
	defer rows.Close()

	var s series.Series
	for rows.Next() {
		var dateStr string
		var score float64
		if err := rows.Scan(&dateStr, &score); err != nil {
			return nil, errors.Wrap(err, "failed to scan measurement")
		}
		day, err := core.ParseDay(dateStr)
		if err != nil {
			return nil, errors.Wrap(err, "invalid date in measurements table")
		}
		s = append(s, series.Measurement{Date: day, Score: score})
	}
	return s, errors.Wrap(rows.Err(), "failed to iterate measurements")
}

// DeleteMeasurement removes the measurement for a date, if present
func (r *MeasurementRepositoryImpl) DeleteMeasurement(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM measurements WHERE date = $1`, date)
	return errors.Wrap(err, "failed to delete measurement")
}
