package domain

import "math"

// Location categories form a small closed set. The catalog may still carry
// other values; the engine treats the category as an opaque matching string.
const (
	CategoryHistorical    = "historical"
	CategoryReligious     = "religious"
	CategoryCultural      = "cultural"
	CategoryArchitectural = "architectural"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// IsZero reports whether the coordinate is entirely missing.
// Catalog records without coordinates serialize to the zero value.
func (c Coordinates) IsZero() bool { return c.Lat == 0 && c.Lng == 0 }

// Return coordinates as [lat, lng] for external API compatibility.
func (c Coordinates) ToPair() []float64 { return []float64{c.Lat, c.Lng} }

const earthRadiusKm = 6371

// DistanceKm returns the great-circle (haversine) distance to another
// coordinate, rounded to the nearest kilometer.
func (c Coordinates) DistanceKm(other Coordinates) int {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLng := (other.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	cc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusKm * cc))
}

// Represents a heritage site from the location catalog.
// Locations are owned by the catalog and treated as immutable input:
// the planner never mutates them and constructs all derived data fresh
// per planning request.
type Location struct {
	ID          string
	Name        string
	Description string
	Category    string
	Period      string
	Dynasty     string
	Coordinates Coordinates
	Tags        []string
}

// CulturalThemes returns the location's theme values (dynasty, category,
// tags), skipping empties. Order is stable for deterministic aggregation.
func (l Location) CulturalThemes() []string {
	themes := make([]string, 0, 2+len(l.Tags))
	if l.Dynasty != "" {
		themes = append(themes, l.Dynasty)
	}
	if l.Category != "" {
		themes = append(themes, l.Category)
	}
	themes = append(themes, l.Tags...)
	return themes
}
