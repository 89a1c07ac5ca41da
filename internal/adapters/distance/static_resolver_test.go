package distance

import (
	"context"
	"testing"

	"heritage-route-service/internal/domain"
)

func TestStaticResolverCuratedLookup(t *testing.T) {
	r := NewStaticResolver()
	delhi := domain.Location{ID: "delhi", Coordinates: domain.Coordinates{Lat: 28.6139, Lng: 77.2090}}
	jaipur := domain.Location{ID: "jaipur", Coordinates: domain.Coordinates{Lat: 26.9124, Lng: 75.7873}}

	km, err := r.Distance(context.Background(), delhi, jaipur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 280 {
		t.Fatalf("delhi-jaipur = %d, want curated 280", km)
	}

	// Reverse ordering resolves through the same table entry.
	km, err = r.Distance(context.Background(), jaipur, delhi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 280 {
		t.Fatalf("jaipur-delhi = %d, want curated 280", km)
	}
}

func TestStaticResolverSameLocation(t *testing.T) {
	r := NewStaticResolver()
	loc := domain.Location{ID: "hampi"}

	km, err := r.Distance(context.Background(), loc, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 0 {
		t.Fatalf("same location = %d, want 0", km)
	}
}

func TestStaticResolverHaversineFallback(t *testing.T) {
	r := NewStaticResolver()
	delhi := domain.Location{ID: "delhi", Coordinates: domain.Coordinates{Lat: 28.6139, Lng: 77.2090}}
	madurai := domain.Location{ID: "madurai", Coordinates: domain.Coordinates{Lat: 9.9252, Lng: 78.1198}}

	// No curated entry for this pair in either ordering.
	km, err := r.Distance(context.Background(), delhi, madurai)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 2080 {
		t.Fatalf("delhi-madurai haversine = %d, want 2080", km)
	}
}

func TestStaticResolverMissingCoordinatesUseDefault(t *testing.T) {
	r := NewStaticResolver()
	unknown := domain.Location{ID: "mystery-site"}
	jaipur := domain.Location{ID: "jaipur", Coordinates: domain.Coordinates{Lat: 26.9124, Lng: 75.7873}}

	// Zero coordinates substitute the default city, so the estimate equals
	// the default-city-to-jaipur great-circle distance.
	km, err := r.Distance(context.Background(), unknown, jaipur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 235 {
		t.Fatalf("default-coordinate fallback = %d, want 235", km)
	}
}

func TestStaticResolverDistancesBatch(t *testing.T) {
	r := NewStaticResolver()
	delhi := domain.Location{ID: "delhi", Coordinates: domain.Coordinates{Lat: 28.6139, Lng: 77.2090}}
	to := []domain.Location{
		{ID: "jaipur", Coordinates: domain.Coordinates{Lat: 26.9124, Lng: 75.7873}},
		{ID: "varanasi", Coordinates: domain.Coordinates{Lat: 25.3176, Lng: 82.9739}},
	}

	out, err := r.Distances(context.Background(), delhi, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["jaipur"] != 280 || out["varanasi"] != 821 {
		t.Fatalf("batch = %v", out)
	}
}
