package services

import (
	"context"
	"fmt"

	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/ports"
)

const diversityPerTheme = 10

// Fixed thresholds on total cost per visited location.
const (
	costEfficiencyHighBelow   = 5000
	costEfficiencyMediumBelow = 8000
)

// AssembleRoute packages the path, the expanded itinerary, and the derived
// metrics into the externally consumed result shape.
func AssembleRoute(
	ctx context.Context,
	path []domain.Location,
	days []domain.ItineraryDay,
	totalCost int,
	totalDays int,
	provider ports.DistanceProvider,
) (*domain.Itinerary, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("assemble route: %w", ErrEmptyPath)
	}

	totalDistance := 0
	for i := 0; i+1 < len(path); i++ {
		d, err := provider.Distance(ctx, path[i], path[i+1])
		if err != nil {
			return nil, fmt.Errorf("assemble route: distance %q -> %q: %w", path[i].ID, path[i+1].ID, err)
		}
		totalDistance += d
	}

	themes := collectCulturalThemes(path)

	diversity := diversityPerTheme * len(themes)
	if diversity > 100 {
		diversity = 100
	}

	return &domain.Itinerary{
		Path:           path,
		Days:           days,
		TotalCost:      totalCost,
		TotalDays:      totalDays,
		CulturalThemes: themes,
		Metrics: domain.OptimizationMetrics{
			TotalDistanceKm:   totalDistance,
			CulturalDiversity: diversity,
			CostEfficiency:    costEfficiency(totalCost, len(path)),
		},
	}, nil
}

// collectCulturalThemes unions dynasty, category, and tag values across the
// path, preserving first-seen order.
func collectCulturalThemes(path []domain.Location) []string {
	seen := make(map[string]struct{})
	themes := make([]string, 0, 4*len(path))
	for _, loc := range path {
		for _, theme := range loc.CulturalThemes() {
			if _, ok := seen[theme]; ok {
				continue
			}
			seen[theme] = struct{}{}
			themes = append(themes, theme)
		}
	}
	return themes
}

func costEfficiency(totalCost, stops int) string {
	perLocation := totalCost / stops
	switch {
	case perLocation < costEfficiencyHighBelow:
		return "High"
	case perLocation < costEfficiencyMediumBelow:
		return "Medium"
	default:
		return "Low"
	}
}
