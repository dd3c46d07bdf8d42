package ports

import (
	"context"

	"waypoint/domain/core"
	"waypoint/domain/series"
)

// WaypointRepository persists user-placed waypoints. Waypoints are
// independent of the measurement series; a waypoint's date need not match
// any measurement.
type WaypointRepository interface {
	// SaveWaypoint upserts a waypoint by ID
	SaveWaypoint(ctx context.Context, w series.Waypoint) error

	// GetWaypoint returns the waypoint with the given ID
	GetWaypoint(ctx context.Context, id core.WaypointID) (series.Waypoint, error)

	// ListWaypoints returns all waypoints ascending by date
	ListWaypoints(ctx context.Context) ([]series.Waypoint, error)

	// DeleteWaypoint removes a waypoint by ID
	DeleteWaypoint(ctx context.Context, id core.WaypointID) error
}
