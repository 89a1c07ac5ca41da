package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"heritage-route-service/internal/adapters/cache"
	"heritage-route-service/internal/adapters/catalog"
	"heritage-route-service/internal/adapters/distance"
	"heritage-route-service/internal/api"
	"heritage-route-service/internal/config"
	"heritage-route-service/internal/platform/db"
	"heritage-route-service/internal/ports"
	"heritage-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres catalog, curated or ORS
// distances) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
	port := config.Get("PORT", "8080")

	ctx := context.Background()

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	locationCatalog, cleanup, err := buildCatalog(ctx, sqliteDB, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	provider, err := buildDistanceProvider(ctx, sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(locationCatalog, provider, services.NewCostModel())

	// Timeouts allow for cold-cache matrix lookups against the remote provider.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}

// buildCatalog prefers a shared Postgres catalog when DATABASE_URL is set and
// falls back to the embedded SQLite catalog, seeded on startup for local runs.
func buildCatalog(ctx context.Context, sqliteDB *sql.DB, seedPath string) (ports.LocationCatalog, func(), error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("build catalog: %w", err)
		}
		log.Println("Using Postgres location catalog")
		return catalog.NewPostgresLocationCatalog(pg), func() { pg.Close() }, nil
	}

	if err := catalog.InitSchema(ctx, sqliteDB); err != nil {
		return nil, nil, fmt.Errorf("build catalog: %w", err)
	}
	if err := catalog.SeedFromJSON(ctx, sqliteDB, seedPath); err != nil {
		return nil, nil, fmt.Errorf("build catalog: %w", err)
	}

	return catalog.NewSqliteLocationCatalog(sqliteDB), func() {}, nil
}

// buildDistanceProvider wires the distance resolution chain. Without an ORS
// key the curated table plus haversine fallback serves alone; with one, the
// remote matrix provider runs in front with the static resolver covering
// timeouts and outages.
func buildDistanceProvider(ctx context.Context, sqliteDB *sql.DB) (ports.DistanceProvider, error) {
	static := distance.NewStaticResolver()

	orsKey := strings.TrimSpace(os.Getenv("ORS_API_KEY"))
	if orsKey == "" {
		log.Println("ORS_API_KEY not set, using curated distance table")
		return static, nil
	}

	distanceCache, err := buildDistanceCache(ctx, sqliteDB)
	if err != nil {
		return nil, err
	}

	remote, err := distance.NewORSDistanceProvider(orsKey, distanceCache)
	if err != nil {
		return nil, fmt.Errorf("build distance provider: %w", err)
	}

	return distance.NewFallbackProvider(remote, static, 5*time.Second), nil
}

// buildDistanceCache prefers Redis when REDIS_ADDR is set, otherwise the
// distance cache shares the catalog's SQLite database.
func buildDistanceCache(ctx context.Context, sqliteDB *sql.DB) (ports.DistanceCache, error) {
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("build distance cache: ping redis at %q: %w", addr, err)
		}
		log.Println("Using Redis distance cache")
		return cache.NewRedisDistanceCache(client), nil
	}

	sqliteCache := cache.NewSqliteDistanceCache(sqliteDB)
	if err := sqliteCache.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("build distance cache: %w", err)
	}
	return sqliteCache, nil
}
