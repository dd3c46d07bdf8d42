package main

import (
	"context"
	"log"
	"os"

	"waypoint/adapters/csvdata"
	"waypoint/adapters/postgres"
	"waypoint/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies the database schema to DATABASE_URL. An optional CSV file
// argument seeds the measurements table after migration.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.LoadWithDatabase()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Schema migration complete")

	if len(os.Args) > 1 {
		seedFile := os.Args[1]
		ser, err := csvdata.LoadFile(seedFile, nil)
		if err != nil {
			log.Fatalf("Failed to load seed data from %s: %v", seedFile, err)
		}

		repo := postgres.NewMeasurementRepository(db)
		if err := repo.SaveSeries(context.Background(), ser); err != nil {
			log.Fatalf("Failed to seed measurements: %v", err)
		}
		log.Printf("Seeded %d measurements from %s", len(ser), seedFile)
	}
}
