package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"heritage-route-service/internal/adapters/catalog"
	"heritage-route-service/internal/config"
	"heritage-route-service/internal/platform/db"
)

// dbtool initializes the Postgres catalog schema and loads the location seed.
// Run it once before pointing the server at a fresh DATABASE_URL.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
	if err := initAndSeed(context.Background(), pg, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, pg *sqlx.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := catalog.InitPostgresSchema(ctx, pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := catalog.SeedPostgresFromJSON(ctx, pg, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
