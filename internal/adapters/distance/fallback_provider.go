package distance

import (
	"context"
	"log"
	"time"

	"heritage-route-service/internal/domain"
	"heritage-route-service/internal/ports"
)

// FallbackProvider consults an optional remote routing collaborator with a
// bounded per-call timeout and falls back to the static curated/haversine
// resolver on any failure. Planning therefore never blocks indefinitely and
// never fails because the collaborator is down; fallbacks are logged as
// degraded-mode events, not surfaced as errors.
type FallbackProvider struct {
	remote  ports.DistanceProvider
	static  *StaticResolver
	timeout time.Duration
}

func NewFallbackProvider(remote ports.DistanceProvider, static *StaticResolver, timeout time.Duration) *FallbackProvider {
	return &FallbackProvider{
		remote:  remote,
		static:  static,
		timeout: timeout,
	}
}

func (p *FallbackProvider) Distance(ctx context.Context, from, to domain.Location) (int, error) {
	if p.remote == nil {
		return p.static.Distance(ctx, from, to)
	}

	rctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	km, err := p.remote.Distance(rctx, from, to)
	if err != nil {
		log.Printf("degraded=distance pair=%s|%s err=%v", from.ID, to.ID, err)
		return p.static.Distance(ctx, from, to)
	}
	return km, nil
}

func (p *FallbackProvider) Distances(
	ctx context.Context,
	from domain.Location,
	to []domain.Location,
) (map[string]int, error) {
	remote, ok := p.remote.(ports.DistanceMatrixProvider)
	if p.remote == nil || !ok {
		return p.static.Distances(ctx, from, to)
	}

	rctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	results, err := remote.Distances(rctx, from, to)
	if err != nil {
		log.Printf("degraded=distances origin=%s n=%d err=%v", from.ID, len(to), err)
		return p.static.Distances(ctx, from, to)
	}

	// Remote matrices may omit pairs; fill the holes from the static path so
	// callers always see a complete result.
	for _, loc := range to {
		if _, ok := results[loc.ID]; ok {
			continue
		}
		km, err := p.static.Distance(ctx, from, loc)
		if err != nil {
			return nil, err
		}
		results[loc.ID] = km
	}
	return results, nil
}
