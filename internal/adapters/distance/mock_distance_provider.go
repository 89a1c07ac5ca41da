package distance

import (
	"context"
	"fmt"

	"heritage-route-service/internal/domain"
)

type MockPair struct {
	From, To string
	Km       int
}

// MockDistanceProvider serves fixed pairwise distances for tests.
type MockDistanceProvider struct {
	m map[string]int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]int, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(_ context.Context, from, to domain.Location) (int, error) {
	if from.ID == to.ID {
		return 0, nil
	}
	km, ok := p.m[from.ID+"|"+to.ID]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", from.ID, to.ID)
	}
	return km, nil
}
