package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/errors"
	"waypoint/ports"
)

// WaypointRepositoryImpl implements WaypointRepository for PostgreSQL
type WaypointRepositoryImpl struct {
	db *sqlx.DB
}

// NewWaypointRepository creates a new PostgreSQL waypoint repository
func NewWaypointRepository(db *sqlx.DB) ports.WaypointRepository {
	return &WaypointRepositoryImpl{db: db}
}

// SaveWaypoint upserts a waypoint by ID
func (r *WaypointRepositoryImpl) SaveWaypoint(ctx context.Context, w series.Waypoint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO waypoints (id, date, label, color)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			label = EXCLUDED.label,
			color = EXCLUDED.color`,
		w.ID.String(), w.Date.String(), w.Label, w.Color)
	return errors.Wrap(err, "failed to save waypoint")
}

// GetWaypoint returns the waypoint with the given ID
func (r *WaypointRepositoryImpl) GetWaypoint(ctx context.Context, id core.WaypointID) (series.Waypoint, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, to_char(date, 'YYYY-MM-DD'), label, color
		FROM waypoints
		WHERE id = $1`, id.String())

	w, err := scanWaypoint(row.Scan)
	if err == sql.ErrNoRows {
		return series.Waypoint{}, errors.NotFound("waypoint")
	}
	if err != nil {
		return series.Waypoint{}, errors.Wrap(err, "failed to load waypoint")
	}
	return w, nil
}

// ListWaypoints returns all waypoints ascending by date
func (r *WaypointRepositoryImpl) ListWaypoints(ctx context.Context) ([]series.Waypoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, to_char(date, 'YYYY-MM-DD'), label, color
		FROM waypoints
		ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query waypoints")
	}
	defer rows.Close()

	var waypoints []series.Waypoint
	for rows.Next() {
		w, err := scanWaypoint(rows.Scan)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan waypoint")
		}
		waypoints = append(waypoints, w)
	}
	return waypoints, errors.Wrap(rows.Err(), "failed to iterate waypoints")
}

// DeleteWaypoint removes a waypoint by ID
func (r *WaypointRepositoryImpl) DeleteWaypoint(ctx context.Context, id core.WaypointID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM waypoints WHERE id = $1`, id.String())
	return errors.Wrap(err, "failed to delete waypoint")
}

func scanWaypoint(scan func(dest ...interface{}) error) (series.Waypoint, error) {
	var id, dateStr, label, color string
	if err := scan(&id, &dateStr, &label, &color); err != nil {
		return series.Waypoint{}, err
	}
	day, err := core.ParseDay(dateStr)
	if err != nil {
		return series.Waypoint{}, err
	}
	return series.Waypoint{
		ID:    core.WaypointID(id),
		Date:  day,
		Label: label,
		Color: color,
	}, nil
}
