package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"heritage-route-service/internal/domain"
)

// SQLite-backed implementation of the LocationCatalog port, used for local
// runs where the catalog is seeded from a JSON file at startup.
type SqliteLocationCatalog struct{ DB *sql.DB }

func NewSqliteLocationCatalog(db *sql.DB) *SqliteLocationCatalog {
	return &SqliteLocationCatalog{DB: db}
}

// Return all locations in catalog (seed) order. Catalog order matters: the
// interest filter's popular-sites default is a prefix of this list.
func (s *SqliteLocationCatalog) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location catalog: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		description,
		category,
		period,
		dynasty,
		lat,
		lng,
		tags
	FROM locations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 32)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

// Look up a single location by identifier.
func (s *SqliteLocationCatalog) GetLocation(ctx context.Context, id string) (domain.Location, bool, error) {
	if s.DB == nil {
		return domain.Location{}, false, errors.New("sqlite location catalog: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		description,
		category,
		period,
		dynasty,
		lat,
		lng,
		tags
	FROM locations
	WHERE id = ?;
	`
	row := s.DB.QueryRowContext(ctx, query, id)

	loc, err := scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get location %q: %w", id, err)
	}
	return loc, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (domain.Location, error) {
	var loc domain.Location
	var tagsJSON string

	err := row.Scan(
		&loc.ID,
		&loc.Name,
		&loc.Description,
		&loc.Category,
		&loc.Period,
		&loc.Dynasty,
		&loc.Coordinates.Lat,
		&loc.Coordinates.Lng,
		&tagsJSON,
	)
	if err != nil {
		return domain.Location{}, err
	}

	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &loc.Tags); err != nil {
			return domain.Location{}, fmt.Errorf("parse tags for %q: %w", loc.ID, err)
		}
	}
	return loc, nil
}
