package services

import (
	"strings"

	"heritage-route-service/internal/domain"
)

const (
	// Number of catalog-order locations returned when no interests are given.
	defaultPopularCount = 8
	// Minimum candidate count; smaller results are widened with well-known
	// defaults so downstream optimization can still build a multi-stop trip.
	minCandidateCount = 3
	// Cap on candidates handed to the optimizer.
	maxCandidateCount = 10
)

// interestSynonyms widens each declared interest with related matching terms.
var interestSynonyms = map[string][]string{
	"spiritual":     {"religious", "temple", "buddhist", "hindu", "sikh", "pilgrimage"},
	"religious":     {"spiritual", "temple", "buddhist", "hindu", "sikh", "pilgrimage"},
	"heritage":      {"unesco", "historical"},
	"historical":    {"unesco", "heritage"},
	"architecture":  {"architectural", "palace", "fort", "mughal"},
	"architectural": {"architecture", "palace", "fort", "mughal"},
	"royal":         {"palace", "rajput", "fort"},
}

// fallbackDestinationIDs are unioned into under-sized filter results, in this
// order, until the minimum candidate count is reached.
var fallbackDestinationIDs = []string{"delhi", "taj-mahal", "jaipur", "varanasi"}

// FilterByInterests narrows the catalog to locations matching the requested
// interests.
//
// Empty interests return a fixed-size prefix of the catalog (the default
// popular sites) by policy, never an empty set. Matches are case-insensitive
// substring checks against tags, category, and description, widened through
// the synonym table. Results below the minimum count are topped up with
// well-known default destinations; output is capped to bound optimization.
func FilterByInterests(catalog []domain.Location, interests []string) []domain.Location {
	if len(interests) == 0 {
		n := min(defaultPopularCount, len(catalog))
		return append([]domain.Location(nil), catalog[:n]...)
	}

	matched := make([]domain.Location, 0, len(catalog))
	for _, loc := range catalog {
		if matchesAnyInterest(loc, interests) {
			matched = append(matched, loc)
		}
	}

	if len(matched) < minCandidateCount {
		matched = widenWithDefaults(matched, catalog)
	}

	if len(matched) > maxCandidateCount {
		matched = matched[:maxCandidateCount]
	}
	return matched
}

func matchesAnyInterest(loc domain.Location, interests []string) bool {
	for _, interest := range interests {
		term := strings.ToLower(strings.TrimSpace(interest))
		if term == "" {
			continue
		}

		terms := append([]string{term}, interestSynonyms[term]...)
		for _, t := range terms {
			if locationContains(loc, t) {
				return true
			}
		}
	}
	return false
}

func locationContains(loc domain.Location, term string) bool {
	if strings.Contains(strings.ToLower(loc.Category), term) {
		return true
	}
	for _, tag := range loc.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(loc.Description), term)
}

// widenWithDefaults unions fixed well-known destinations into an under-sized
// match set, preserving the order of existing matches.
func widenWithDefaults(matched []domain.Location, catalog []domain.Location) []domain.Location {
	present := make(map[string]struct{}, len(matched))
	for _, loc := range matched {
		present[loc.ID] = struct{}{}
	}

	byID := make(map[string]domain.Location, len(catalog))
	for _, loc := range catalog {
		byID[loc.ID] = loc
	}

	for _, id := range fallbackDestinationIDs {
		if len(matched) >= minCandidateCount {
			break
		}
		if _, ok := present[id]; ok {
			continue
		}
		loc, ok := byID[id]
		if !ok {
			continue
		}
		matched = append(matched, loc)
		present[id] = struct{}{}
	}
	return matched
}
