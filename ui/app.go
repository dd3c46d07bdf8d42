// Package ui exposes the engine over HTTP: JSON endpoints for segments,
// comparisons, moving averages and distribution profiles, plus an HTML
// report page. Handlers read engine outputs only; nothing here mutates a
// series or a statistic bundle.
package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"waypoint/app"
	"waypoint/internal"
	"waypoint/ports"
)

// Config holds UI application configuration
type Config struct {
	Port                string
	MovingAverageWindow int
}

// App represents the HTTP application
type App struct {
	router       *chi.Mux
	logger       *internal.Logger
	reports      *app.ReportService
	measurements ports.MeasurementRepository
	waypoints    ports.WaypointRepository
	maWindow     int
}

// NewApp creates the HTTP application over the given repositories
func NewApp(cfg Config, measurements ports.MeasurementRepository, waypoints ports.WaypointRepository) *App {
	a := &App{
		router:       chi.NewRouter(),
		logger:       internal.NewDefaultLogger(),
		reports:      app.NewReportService(),
		measurements: measurements,
		waypoints:    waypoints,
		maWindow:     cfg.MovingAverageWindow,
	}
	a.setupRoutes()
	return a
}

func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Timeout(30 * time.Second))

	a.router.Get("/healthz", a.handleHealth)
	a.router.Get("/report", a.handleReport)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/segments", a.handleSegments)
		r.Get("/compare/{waypointID}", a.handleCompare)
		r.Get("/moving-average", a.handleMovingAverage)
		r.Get("/profile", a.handleProfile)

		r.Get("/waypoints", a.handleListWaypoints)
		r.Post("/waypoints", a.handleCreateWaypoint)
		r.Delete("/waypoints/{waypointID}", a.handleDeleteWaypoint)
	})
}

// Router returns the HTTP handler for mounting or testing
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the given port
func (a *App) Start(port string) error {
	a.logger.Info("starting server on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
