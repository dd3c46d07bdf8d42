package ui

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"

	"waypoint/app"
	"waypoint/domain/core"
	"waypoint/domain/series"
	"waypoint/internal/errors"
	"waypoint/internal/profiling"
)

// handleSegments returns the per-segment statistic bundles for the stored
// series split at the stored waypoints.
func (a *App) handleSegments(w http.ResponseWriter, r *http.Request) {
	ser, waypoints, ok := a.loadSnapshot(w, r)
	if !ok {
		return
	}

	report, err := a.reports.SegmentReport(r.Context(), ser, waypoints)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleCompare runs the before/after comparison across one waypoint.
// Insufficient data on either side yields 422 with an explanatory body.
func (a *App) handleCompare(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseWaypointID(chi.URLParam(r, "waypointID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	waypoint, err := a.waypoints.GetWaypoint(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	ser, err := a.measurements.GetSeries(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	result := a.reports.CompareAcrossWaypoint(ser, waypoint)
	if result == nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "insufficient data: need at least 2 measurements on each side of the waypoint",
		})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// movingAveragePoint pairs a date with its trailing mean; Value is null for
// the first window-1 entries.
type movingAveragePoint struct {
	Date  core.Day `json:"date"`
	Value *float64 `json:"value"`
}

func (a *App) handleMovingAverage(w http.ResponseWriter, r *http.Request) {
	window := a.maWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "window must be a positive integer", http.StatusBadRequest)
			return
		}
		window = parsed
	}

	ser, err := a.measurements.GetSeries(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	values := series.MovingAverage(ser, window)
	points := make([]movingAveragePoint, len(ser))
	for i, m := range ser {
		points[i] = movingAveragePoint{Date: m.Date}
		if !math.IsNaN(values[i]) {
			v := values[i]
			points[i].Value = &v
		}
	}
	writeJSON(w, http.StatusOK, points)
}

// handleProfile returns the distribution-shape profile of the whole series
func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	ser, err := a.measurements.GetSeries(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	profile, ok := profiling.Analyze(ser.Scores())
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "insufficient data: need at least 2 measurements",
		})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleReport renders the markdown segment report as HTML
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	ser, waypoints, ok := a.loadSnapshot(w, r)
	if !ok {
		return
	}

	report, err := a.reports.SegmentReport(r.Context(), ser, waypoints)
	if err != nil {
		a.writeError(w, err)
		return
	}

	var comparison *app.ComparisonResult
	if len(waypoints) > 0 {
		// The report page shows the comparison across the latest waypoint.
		latest := waypoints[0]
		for _, wp := range waypoints[1:] {
			if wp.Date.After(latest.Date) {
				latest = wp
			}
		}
		comparison = a.reports.CompareAcrossWaypoint(ser, latest)
	}

	md := app.MarkdownReport(report, comparison)
	html := markdown.ToHTML([]byte(md), nil, nil)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

func (a *App) handleListWaypoints(w http.ResponseWriter, r *http.Request) {
	waypoints, err := a.waypoints.ListWaypoints(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, waypoints)
}

// createWaypointRequest is the POST body for a new waypoint
type createWaypointRequest struct {
	Date  core.Day `json:"date"`
	Label string   `json:"label"`
	Color string   `json:"color,omitempty"`
}

func (a *App) handleCreateWaypoint(w http.ResponseWriter, r *http.Request) {
	var req createWaypointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Label == "" {
		http.Error(w, "label is required", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	waypoint := series.Waypoint{
		ID:    core.WaypointID(core.NewID()),
		Date:  req.Date,
		Label: req.Label,
		Color: req.Color,
	}
	if err := a.waypoints.SaveWaypoint(r.Context(), waypoint); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, waypoint)
}

func (a *App) handleDeleteWaypoint(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseWaypointID(chi.URLParam(r, "waypointID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := a.waypoints.DeleteWaypoint(r.Context(), id); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadSnapshot fetches the series and waypoints for one request. Both reads
// come from the same repositories back to back, which is the snapshot
// consistency the engine asks of its callers.
func (a *App) loadSnapshot(w http.ResponseWriter, r *http.Request) (series.Series, []series.Waypoint, bool) {
	ser, err := a.measurements.GetSeries(r.Context())
	if err != nil {
		a.writeError(w, err)
		return nil, nil, false
	}
	waypoints, err := a.waypoints.ListWaypoints(r.Context())
	if err != nil {
		a.writeError(w, err)
		return nil, nil, false
	}
	return ser, waypoints, true
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.GetCode(err) == errors.CodeNotFound {
		status = http.StatusNotFound
	}
	a.logger.Error("request failed: %v", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
