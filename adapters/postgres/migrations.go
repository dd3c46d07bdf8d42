package postgres

import (
	"github.com/jmoiron/sqlx"

	"waypoint/internal/errors"
)

// Migrate creates the measurement and waypoint tables if they do not exist
func Migrate(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS measurements (
			date DATE PRIMARY KEY,
			score DOUBLE PRECISION NOT NULL CHECK (score >= 0 AND score <= 100)
		)`,
		`CREATE TABLE IF NOT EXISTS waypoints (
			id TEXT PRIMARY KEY,
			date DATE NOT NULL,
			label TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_waypoints_date ON waypoints (date)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "failed to run schema migration")
		}
	}
	return nil
}
