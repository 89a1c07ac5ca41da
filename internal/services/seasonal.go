package services

import (
	"sort"

	"heritage-route-service/internal/domain"
)

type seasonalPreference struct {
	preferred map[string]struct{}
	avoid     map[string]struct{}
}

// Seasonal suitability per destination. Preferred sites float to the front of
// the candidate list and less suitable ones sink to the back; no site is ever
// excluded by season alone.
var seasonalPreferences = map[domain.Season]seasonalPreference{
	domain.SeasonWinter: {
		preferred: idSet("delhi", "jaipur", "udaipur", "taj-mahal", "khajuraho", "konark"),
		avoid:     idSet(),
	},
	domain.SeasonSummer: {
		preferred: idSet("amritsar", "delhi"),
		avoid:     idSet("jaipur", "udaipur"),
	},
	domain.SeasonMonsoon: {
		preferred: idSet("ajanta", "ellora", "mahabalipuram"),
		avoid:     idSet("amritsar"),
	},
}

func idSet(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// OrderBySeason reorders candidates by seasonal suitability. The sort is
// stable, so input order is preserved within each suitability band; this
// matters because the optimizer breaks distance ties by input order.
func OrderBySeason(candidates []domain.Location, season domain.Season) []domain.Location {
	pref, ok := seasonalPreferences[season]
	if !ok {
		return candidates
	}

	ordered := append([]domain.Location(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return seasonalBoost(ordered[i], pref) > seasonalBoost(ordered[j], pref)
	})
	return ordered
}

func seasonalBoost(loc domain.Location, pref seasonalPreference) float64 {
	if _, ok := pref.preferred[loc.ID]; ok {
		return 1.5
	}
	if _, ok := pref.avoid[loc.ID]; ok {
		return 0.5
	}
	return 1.0
}
