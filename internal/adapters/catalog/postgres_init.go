package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Initialize the Postgres catalog schema.
func InitPostgresSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS locations (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		period TEXT NOT NULL DEFAULT '',
		dynasty TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng DOUBLE PRECISION NOT NULL DEFAULT 0,
		tags TEXT NOT NULL DEFAULT '[]'
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init postgres schema: create locations table: %w", err)
	}
	return nil
}

// Populate the Postgres catalog from a JSON seed file.
func SeedPostgresFromJSON(ctx context.Context, db *sqlx.DB, jsonPath string) error {
	data, err := ReadSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO locations (
		id, position, name, description, category, period, dynasty, lat, lng, tags
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE SET
		position = EXCLUDED.position,
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		category = EXCLUDED.category,
		period = EXCLUDED.period,
		dynasty = EXCLUDED.dynasty,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		tags = EXCLUDED.tags;
	`
	for i, loc := range data {
		tags, err := json.Marshal(loc.Tags)
		if err != nil {
			return fmt.Errorf("seed locations: marshal tags for %q: %w", loc.ID, err)
		}

		_, err = tx.ExecContext(ctx, query,
			loc.ID,
			i,
			loc.Name,
			loc.Description,
			loc.Category,
			loc.Period,
			loc.Dynasty,
			loc.Coordinates.Lat,
			loc.Coordinates.Lng,
			string(tags),
		)
		if err != nil {
			return fmt.Errorf("seed locations: insert %q: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}
	return nil
}
