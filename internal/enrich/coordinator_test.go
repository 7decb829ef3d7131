package enrich

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/orchestrator/internal/domain"
)

type stubWeather struct {
	forecasts []domain.DailyForecast
	err       error
	delay     time.Duration
}

func (s *stubWeather) Forecast(ctx context.Context, city, start, end string) ([]domain.DailyForecast, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.forecasts, s.err
}

type stubBudget struct {
	estimate *domain.BudgetEstimate
	err      error
}

func (s *stubBudget) Estimate(ti domain.TripIntent) (*domain.BudgetEstimate, error) {
	return s.estimate, s.err
}

type stubVenues struct {
	venues []domain.VenueCatalogEntry
	err    error
}

func (s *stubVenues) VenuesForInterests(ctx context.Context, city string, interests []string, limit int) ([]domain.VenueCatalogEntry, error) {
	return s.venues, s.err
}

func testIntent() domain.TripIntent {
	return domain.TripIntent{
		City:      "Toronto",
		Country:   "Canada",
		StartDate: "2026-03-15",
		EndDate:   "2026-03-17",
		Pace:      domain.PaceModerate,
	}
}

func fastTimeouts() Timeouts {
	return Timeouts{
		Weather: 100 * time.Millisecond,
		Budget:  100 * time.Millisecond,
		Venues:  100 * time.Millisecond,
	}
}

func TestEnrichAllBranchesSucceed(t *testing.T) {
	weather := &stubWeather{forecasts: []domain.DailyForecast{{Date: "2026-03-15", Condition: "Clear sky"}}}
	budget := &stubBudget{estimate: &domain.BudgetEstimate{Currency: "CAD", EstimatedTotal: 700}}
	venueStub := &stubVenues{venues: []domain.VenueCatalogEntry{{ID: "rom", Name: "Royal Ontario Museum", SourceURL: "https://www.rom.on.ca"}}}

	c := NewCoordinator(weather, budget, venueStub, fastTimeouts(), 50)
	bundle := c.Enrich(context.Background(), testIntent())

	require.Len(t, bundle.Weather, 1)
	require.NotNil(t, bundle.Budget)
	require.Len(t, bundle.Venues, 1)
}

func TestEnrichWeatherFailureIsIsolated(t *testing.T) {
	weather := &stubWeather{err: fmt.Errorf("geocoding down")}
	budget := &stubBudget{estimate: &domain.BudgetEstimate{Currency: "CAD"}}
	venueStub := &stubVenues{venues: []domain.VenueCatalogEntry{{ID: "rom"}}}

	c := NewCoordinator(weather, budget, venueStub, fastTimeouts(), 50)
	bundle := c.Enrich(context.Background(), testIntent())

	assert.Nil(t, bundle.Weather)
	assert.NotNil(t, bundle.Budget, "weather failure must not affect budget")
	assert.NotEmpty(t, bundle.Venues, "weather failure must not affect venues")
}

func TestEnrichBudgetFailureIsIsolated(t *testing.T) {
	weather := &stubWeather{forecasts: []domain.DailyForecast{{Date: "2026-03-15"}}}
	budget := &stubBudget{err: fmt.Errorf("no dates")}
	venueStub := &stubVenues{venues: []domain.VenueCatalogEntry{{ID: "rom"}}}

	c := NewCoordinator(weather, budget, venueStub, fastTimeouts(), 50)
	bundle := c.Enrich(context.Background(), testIntent())

	assert.Nil(t, bundle.Budget)
	assert.NotEmpty(t, bundle.Weather)
	assert.NotEmpty(t, bundle.Venues)
}

func TestEnrichVenueFailureUsesFallback(t *testing.T) {
	venueStub := &stubVenues{err: fmt.Errorf("catalog unreachable")}

	c := NewCoordinator(nil, nil, venueStub, fastTimeouts(), 50)
	bundle := c.Enrich(context.Background(), testIntent())

	require.Len(t, bundle.Venues, 15, "fallback venue set expected")
	assert.Equal(t, "cn_tower", bundle.Venues[0].ID)
}

func TestEnrichWeatherTimeoutIsIsolated(t *testing.T) {
	weather := &stubWeather{
		forecasts: []domain.DailyForecast{{Date: "2026-03-15"}},
		delay:     time.Second,
	}
	venueStub := &stubVenues{venues: []domain.VenueCatalogEntry{{ID: "rom"}}}

	c := NewCoordinator(weather, nil, venueStub, fastTimeouts(), 50)

	start := time.Now()
	bundle := c.Enrich(context.Background(), testIntent())

	assert.Nil(t, bundle.Weather, "slow weather branch should time out")
	assert.NotEmpty(t, bundle.Venues)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestEnrichSkipsWeatherWithoutDates(t *testing.T) {
	weather := &stubWeather{forecasts: []domain.DailyForecast{{Date: "2026-03-15"}}}
	venueStub := &stubVenues{venues: []domain.VenueCatalogEntry{{ID: "rom"}}}

	c := NewCoordinator(weather, nil, venueStub, fastTimeouts(), 50)
	bundle := c.Enrich(context.Background(), domain.TripIntent{City: "Toronto"})

	assert.Nil(t, bundle.Weather)
}
