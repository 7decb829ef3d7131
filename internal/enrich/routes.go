package enrich

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/planwise/orchestrator/internal/domain"
)

// LegFetcher fetches one travel leg between two addresses.
type LegFetcher interface {
	FetchLeg(ctx context.Context, origin, destination string) (domain.RouteLeg, error)
}

// RouteEnricher decorates an accepted itinerary with travel legs between
// consecutive venues. Decoration is additive: failed legs are dropped,
// never surfaced as errors, and an itinerary is complete without any legs.
type RouteEnricher struct {
	fetcher       LegFetcher
	timeout       time.Duration
	maxConcurrent int
}

// NewRouteEnricher creates a route enricher. A nil fetcher disables route
// decoration entirely.
func NewRouteEnricher(fetcher LegFetcher, timeout time.Duration, maxConcurrent int) *RouteEnricher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &RouteEnricher{
		fetcher:       fetcher,
		timeout:       timeout,
		maxConcurrent: maxConcurrent,
	}
}

// Legs fetches travel legs between consecutive distinct venues of the
// itinerary, in visit order. Leg fetches run concurrently but the result
// preserves itinerary order, with failed legs omitted.
func (r *RouteEnricher) Legs(ctx context.Context, itinerary domain.GroundedItinerary, city, country string) []domain.RouteLeg {
	if r.fetcher == nil {
		return nil
	}

	names := itinerary.VenueNames()
	if len(names) < 2 {
		return nil
	}

	addresses := make([]string, len(names))
	for i, name := range names {
		addresses[i] = fmt.Sprintf("%s, %s, %s", name, city, country)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	results := make([]*domain.RouteLeg, len(addresses)-1)
	sem := make(chan struct{}, r.maxConcurrent)
	var wg sync.WaitGroup

	for i := 0; i < len(addresses)-1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			leg, err := r.fetcher.FetchLeg(ctx, addresses[i], addresses[i+1])
			if err != nil {
				log.Printf("WARN: route leg %d (%s -> %s) failed: %v", i+1, names[i], names[i+1], err)
				return
			}
			leg.Leg = i + 1
			leg.Origin = names[i]
			leg.Destination = names[i+1]
			results[i] = &leg
		}(i)
	}
	wg.Wait()

	var legs []domain.RouteLeg
	for _, leg := range results {
		if leg != nil {
			legs = append(legs, *leg)
		}
	}
	return legs
}
