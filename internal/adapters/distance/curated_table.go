package distance

import "heritage-route-service/internal/domain"

// Curated road distances in kilometers between major heritage destinations.
// The table is sparse and not guaranteed symmetric in storage; lookups check
// both orderings. Pairs absent here fall back to the haversine estimate.
var curatedDistancesKm = map[string]map[string]int{
	"delhi": {
		"jaipur":    280,
		"taj-mahal": 233,
		"varanasi":  821,
		"amritsar":  460,
		"hampi":     1483,
		"udaipur":   421,
		"khajuraho": 620,
		"bodh-gaya": 1105,
		"konark":    1108,
	},
	"jaipur": {
		"udaipur":   393,
		"taj-mahal": 240,
		"ajanta":    739,
	},
	"taj-mahal": {
		"khajuraho": 295,
		"varanasi":  605,
	},
	"varanasi": {
		"bodh-gaya": 250,
		"khajuraho": 298,
	},
	"hampi": {
		"madurai": 440,
	},
	"udaipur": {
		"ajanta": 451,
	},
	"ajanta": {
		"ellora": 95,
	},
}

// Substituted when a location has no coordinates at all: the planner degrades
// to distances measured from the default city instead of failing.
var defaultCoordinate = domain.Coordinates{Lat: 28.6139, Lng: 77.2090} // Delhi
