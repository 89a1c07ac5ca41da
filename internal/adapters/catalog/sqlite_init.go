package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite catalog schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
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
		lat REAL NOT NULL DEFAULT 0,
		lng REAL NOT NULL DEFAULT 0,
		tags TEXT NOT NULL DEFAULT '[]'
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init schema: create locations table: %w", err)
	}

	return nil
}

// Shape of one catalog seed entry. Coordinates use the keyed pair form; the
// engine normalizes to the single internal coordinate type here at the
// data-model boundary.
type LocationSeed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Period      string `json:"period"`
	Dynasty     string `json:"dynasty"`
	Coordinates struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"coordinates"`
	Tags []string `json:"tags"`
}

// ReadSeedFile loads and validates the catalog seed JSON.
func ReadSeedFile(jsonPath string) ([]LocationSeed, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("seed locations: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("seed locations: entry %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("seed locations: entry %d (%s): name cannot be empty", i+1, item.ID)
		}
	}
	return data, nil
}

// Populate the SQLite catalog from a JSON seed file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	data, err := ReadSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO locations (
		id,
		position,
		name,
		description,
		category,
		period,
		dynasty,
		lat,
		lng,
		tags
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, loc := range data {
		tags, err := json.Marshal(loc.Tags)
		if err != nil {
			return fmt.Errorf("seed locations: marshal tags for %q: %w", loc.ID, err)
		}

		_, err = stmt.ExecContext(ctx,
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
