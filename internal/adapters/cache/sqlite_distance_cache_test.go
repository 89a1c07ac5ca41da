package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestSqliteCache(t *testing.T) *SqliteDistanceCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	c := NewSqliteDistanceCache(db)
	if err := c.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return c
}

func TestSqliteDistanceCachePutAndGet(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	puts := map[string]int{"jaipur": 280, "taj-mahal": 233}
	if err := c.PutMany(ctx, "delhi", puts); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := c.GetMany(ctx, "delhi", []string{"jaipur", "taj-mahal", "hampi"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 || got["jaipur"] != 280 || got["taj-mahal"] != 233 {
		t.Fatalf("cached values wrong: %v", got)
	}
}

func TestSqliteDistanceCacheReplaceOnConflict(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	if err := c.PutMany(ctx, "delhi", map[string]int{"jaipur": 100}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.PutMany(ctx, "delhi", map[string]int{"jaipur": 280}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := c.GetMany(ctx, "delhi", []string{"jaipur"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["jaipur"] != 280 {
		t.Fatalf("expected replaced value 280, got %d", got["jaipur"])
	}
}

func TestSqliteDistanceCacheDuplicateAndBlankDestinations(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	if err := c.PutMany(ctx, "delhi", map[string]int{"jaipur": 280}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := c.GetMany(ctx, "delhi", []string{"jaipur", "jaipur", "", "  "})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got["jaipur"] != 280 {
		t.Fatalf("got %v", got)
	}
}

func TestSqliteDistanceCacheValidation(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	if _, err := c.GetMany(ctx, "", []string{"jaipur"}); err == nil {
		t.Fatal("expected error for empty origin")
	}
	if err := c.PutMany(ctx, "delhi", map[string]int{" ": 280}); err == nil {
		t.Fatal("expected error for blank destination")
	}
}
