package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"heritage-route-service/internal/domain"
)

// Postgres-backed implementation of the LocationCatalog port, for
// deployments sharing one catalog across engine instances.
type PostgresLocationCatalog struct{ DB *sqlx.DB }

func NewPostgresLocationCatalog(db *sqlx.DB) *PostgresLocationCatalog {
	return &PostgresLocationCatalog{DB: db}
}

type locationRow struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	Period      string  `db:"period"`
	Dynasty     string  `db:"dynasty"`
	Lat         float64 `db:"lat"`
	Lng         float64 `db:"lng"`
	Tags        string  `db:"tags"`
}

func (r locationRow) toDomain() (domain.Location, error) {
	loc := domain.Location{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Period:      r.Period,
		Dynasty:     r.Dynasty,
		Coordinates: domain.Coordinates{Lat: r.Lat, Lng: r.Lng},
	}
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &loc.Tags); err != nil {
			return domain.Location{}, fmt.Errorf("parse tags for %q: %w", r.ID, err)
		}
	}
	return loc, nil
}

func (p *PostgresLocationCatalog) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if p.DB == nil {
		return nil, errors.New("postgres location catalog: DB is nil")
	}

	query := `
	SELECT id, name, description, category, period, dynasty, lat, lng, tags
	FROM locations
	ORDER BY position;
	`
	var rows []locationRow
	if err := p.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list locations: select locations: %w", err)
	}

	locations := make([]domain.Location, 0, len(rows))
	for _, r := range rows {
		loc, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func (p *PostgresLocationCatalog) GetLocation(ctx context.Context, id string) (domain.Location, bool, error) {
	if p.DB == nil {
		return domain.Location{}, false, errors.New("postgres location catalog: DB is nil")
	}

	query := `
	SELECT id, name, description, category, period, dynasty, lat, lng, tags
	FROM locations
	WHERE id = $1;
	`
	var row locationRow
	err := p.DB.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get location %q: %w", id, err)
	}

	loc, err := row.toDomain()
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get location %q: %w", id, err)
	}
	return loc, true, nil
}
