// Package memory provides in-memory repository implementations for tests,
// demos and CSV-backed CLI runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/errors"
	"waypoint/ports"
)

// MeasurementRepository is a thread-safe in-memory measurement store
type MeasurementRepository struct {
	mu     sync.RWMutex
	byDate map[string]series.Measurement
}

// NewMeasurementRepository creates an empty in-memory measurement repository
func NewMeasurementRepository() *MeasurementRepository {
	return &MeasurementRepository{byDate: make(map[string]series.Measurement)}
}

// SaveMeasurement upserts a single measurement by date
func (r *MeasurementRepository) SaveMeasurement(ctx context.Context, m series.Measurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDate[m.Date.String()] = m
	return nil
}

// SaveSeries upserts a whole series
func (r *MeasurementRepository) SaveSeries(ctx context.Context, s series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range s {
		r.byDate[m.Date.String()] = m
	}
	return nil
}

// GetSeries returns the stored series ascending by date
func (r *MeasurementRepository) GetSeries(ctx context.Context) (series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := make(series.Series, 0, len(r.byDate))
	for _, m := range r.byDate {
		s = append(s, m)
	}
	sort.Slice(s, func(i, j int) bool {
		return s[i].Date.Before(s[j].Date)
	})
	return s, nil
}

// DeleteMeasurement removes the measurement for a date
func (r *MeasurementRepository) DeleteMeasurement(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byDate, date)
	return nil
}

// WaypointRepository is a thread-safe in-memory waypoint store
type WaypointRepository struct {
	mu   sync.RWMutex
	byID map[core.WaypointID]series.Waypoint
}

// NewWaypointRepository creates an empty in-memory waypoint repository
func NewWaypointRepository() *WaypointRepository {
	return &WaypointRepository{byID: make(map[core.WaypointID]series.Waypoint)}
}

// SaveWaypoint upserts a waypoint by ID
func (r *WaypointRepository) SaveWaypoint(ctx context.Context, w series.Waypoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[w.ID] = w
	return nil
}

// GetWaypoint returns the waypoint with the given ID
func (r *WaypointRepository) GetWaypoint(ctx context.Context, id core.WaypointID) (series.Waypoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byID[id]
	if !ok {
		return series.Waypoint{}, errors.NotFound("waypoint")
	}
	return w, nil
}

// ListWaypoints returns all waypoints ascending by date
func (r *WaypointRepository) ListWaypoints(ctx context.Context) ([]series.Waypoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	waypoints := make([]series.Waypoint, 0, len(r.byID))
	for _, w := range r.byID {
		waypoints = append(waypoints, w)
	}
	sort.SliceStable(waypoints, func(i, j int) bool {
		if !waypoints[i].Date.Equal(waypoints[j].Date) {
			return waypoints[i].Date.Before(waypoints[j].Date)
		}
		return waypoints[i].ID < waypoints[j].ID
	})
	return waypoints, nil
}

// DeleteWaypoint removes a waypoint by ID
func (r *WaypointRepository) DeleteWaypoint(ctx context.Context, id core.WaypointID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

// Compile-time checks that the in-memory stores satisfy the ports.
var (
	_ ports.MeasurementRepository = (*MeasurementRepository)(nil)
	_ ports.WaypointRepository    = (*WaypointRepository)(nil)
)
