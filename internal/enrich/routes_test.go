package enrich

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/orchestrator/internal/domain"
)

type stubFetcher struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]bool
}

func (s *stubFetcher) FetchLeg(ctx context.Context, origin, destination string) (domain.RouteLeg, error) {
	s.mu.Lock()
	s.calls = append(s.calls, origin+" -> "+destination)
	s.mu.Unlock()
	if s.failOn[origin] {
		return domain.RouteLeg{}, fmt.Errorf("no route")
	}
	return domain.RouteLeg{
		Origin:      origin,
		Destination: destination,
		Duration:    "15 mins",
		Distance:    "2 km",
		Mode:        "transit",
	}, nil
}

func twoDayItinerary() domain.GroundedItinerary {
	return domain.GroundedItinerary{
		Days: []domain.DayPlan{
			{
				Day: 1,
				Activities: []domain.Activity{
					{Slot: "Morning", VenueName: "CN Tower"},
					{Slot: "Afternoon", VenueName: "Royal Ontario Museum"},
				},
				Meals: []domain.Meal{
					{Type: domain.MealLunch, VenueName: "St. Lawrence Market"},
				},
			},
		},
	}
}

func TestLegsBetweenConsecutiveVenues(t *testing.T) {
	fetcher := &stubFetcher{}
	r := NewRouteEnricher(fetcher, time.Second, 2)

	legs := r.Legs(context.Background(), twoDayItinerary(), "Toronto", "Canada")
	require.Len(t, legs, 2)

	assert.Equal(t, 1, legs[0].Leg)
	assert.Equal(t, "CN Tower", legs[0].Origin)
	assert.Equal(t, "Royal Ontario Museum", legs[0].Destination)
	assert.Equal(t, 2, legs[1].Leg)
	assert.Equal(t, "St. Lawrence Market", legs[1].Destination)
}

func TestLegsOmitFailedLeg(t *testing.T) {
	fetcher := &stubFetcher{failOn: map[string]bool{"CN Tower, Toronto, Canada": true}}
	r := NewRouteEnricher(fetcher, time.Second, 2)

	legs := r.Legs(context.Background(), twoDayItinerary(), "Toronto", "Canada")
	require.Len(t, legs, 1)
	assert.Equal(t, "Royal Ontario Museum", legs[0].Origin)
}

func TestLegsEmptyOnTotalFailure(t *testing.T) {
	fetcher := &stubFetcher{failOn: map[string]bool{
		"CN Tower, Toronto, Canada":              true,
		"Royal Ontario Museum, Toronto, Canada":  true,
	}}
	r := NewRouteEnricher(fetcher, time.Second, 2)

	legs := r.Legs(context.Background(), twoDayItinerary(), "Toronto", "Canada")
	assert.Empty(t, legs)
}

func TestLegsNilFetcher(t *testing.T) {
	r := NewRouteEnricher(nil, time.Second, 2)
	assert.Nil(t, r.Legs(context.Background(), twoDayItinerary(), "Toronto", "Canada"))
}

func TestLegsSingleVenue(t *testing.T) {
	fetcher := &stubFetcher{}
	r := NewRouteEnricher(fetcher, time.Second, 2)

	itinerary := domain.GroundedItinerary{
		Days: []domain.DayPlan{
			{Day: 1, Activities: []domain.Activity{{VenueName: "CN Tower"}}},
		},
	}
	assert.Nil(t, r.Legs(context.Background(), itinerary, "Toronto", "Canada"))
	assert.Empty(t, fetcher.calls)
}
