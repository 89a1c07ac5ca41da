package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const testSeed = `[
  {
    "id": "delhi",
    "name": "Delhi",
    "description": "Capital region",
    "category": "historical",
    "period": "6th century BCE - Present",
    "dynasty": "Mughal Empire",
    "coordinates": { "lat": 28.6139, "lng": 77.2090 },
    "tags": ["Red Fort", "Capital"]
  },
  {
    "id": "jaipur",
    "name": "Jaipur",
    "description": "The Pink City",
    "category": "historical",
    "period": "1727 CE - Present",
    "dynasty": "Kachwaha Rajputs",
    "coordinates": { "lat": 26.9124, "lng": 75.7873 },
    "tags": ["Pink City"]
  }
]`

func newSeededCatalog(t *testing.T) *SqliteLocationCatalog {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	seedPath := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(seedPath, []byte(testSeed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedFromJSON(ctx, db, seedPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return NewSqliteLocationCatalog(db)
}

func TestSqliteCatalogListPreservesSeedOrder(t *testing.T) {
	c := newSeededCatalog(t)

	locations, err := c.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0].ID != "delhi" || locations[1].ID != "jaipur" {
		t.Fatalf("seed order not preserved: %v", locations)
	}

	delhi := locations[0]
	if delhi.Name != "Delhi" || delhi.Category != "historical" || delhi.Dynasty != "Mughal Empire" {
		t.Fatalf("fields wrong: %+v", delhi)
	}
	if delhi.Coordinates.Lat != 28.6139 || delhi.Coordinates.Lng != 77.2090 {
		t.Fatalf("coordinates wrong: %+v", delhi.Coordinates)
	}
	if len(delhi.Tags) != 2 || delhi.Tags[0] != "Red Fort" {
		t.Fatalf("tags wrong: %v", delhi.Tags)
	}
}

func TestSqliteCatalogGetLocation(t *testing.T) {
	c := newSeededCatalog(t)
	ctx := context.Background()

	loc, ok, err := c.GetLocation(ctx, "jaipur")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || loc.Name != "Jaipur" {
		t.Fatalf("expected jaipur, got ok=%v %+v", ok, loc)
	}

	_, ok, err = c.GetLocation(ctx, "atlantis")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestSeedValidation(t *testing.T) {
	dir := t.TempDir()

	badSeed := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badSeed, []byte(`[{"id": "", "name": "X"}]`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := ReadSeedFile(badSeed); err == nil {
		t.Fatal("expected error for empty id")
	}

	noName := filepath.Join(dir, "noname.json")
	if err := os.WriteFile(noName, []byte(`[{"id": "x", "name": ""}]`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := ReadSeedFile(noName); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestSeedFromJSONIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	seedPath := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(seedPath, []byte(testSeed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := SeedFromJSON(ctx, db, seedPath); err != nil {
			t.Fatalf("seed pass %d: %v", i, err)
		}
	}

	locations, err := NewSqliteLocationCatalog(db).ListLocations(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("reseed must not duplicate rows, got %d", len(locations))
	}
}
