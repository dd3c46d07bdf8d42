package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"waypoint/adapters/csvdata"
	"waypoint/adapters/excel"
	"waypoint/adapters/memory"
	"waypoint/adapters/postgres"
	"waypoint/internal/config"
	"waypoint/ports"
	"waypoint/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	measurements, waypoints, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	server := ui.NewApp(ui.Config{
		Port:                cfg.Server.Port,
		MovingAverageWindow: cfg.Data.MovingAverageWindow,
	}, measurements, waypoints)

	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildRepositories wires PostgreSQL storage when DATABASE_URL is set,
// otherwise an in-memory store seeded from the configured data file.
func buildRepositories(cfg *config.Config) (ports.MeasurementRepository, ports.WaypointRepository, error) {
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, nil, err
		}
		return postgres.NewMeasurementRepository(db), postgres.NewWaypointRepository(db), nil
	}

	measurements := memory.NewMeasurementRepository()
	waypoints := memory.NewWaypointRepository()

	switch {
	case cfg.Data.CSVFile != "":
		s, err := csvdata.LoadFile(cfg.Data.CSVFile, nil)
		if err != nil {
			return nil, nil, err
		}
		if err := measurements.SaveSeries(context.Background(), s); err != nil {
			return nil, nil, err
		}
		log.Printf("Loaded %d measurements from %s", len(s), cfg.Data.CSVFile)
	case cfg.Data.ExcelFile != "":
		s, err := excel.NewReader(cfg.Data.ExcelFile).Read()
		if err != nil {
			return nil, nil, err
		}
		if err := measurements.SaveSeries(context.Background(), s); err != nil {
			return nil, nil, err
		}
		log.Printf("Loaded %d measurements from %s", len(s), cfg.Data.ExcelFile)
	}

	return measurements, waypoints, nil
}
