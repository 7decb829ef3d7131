// Package enrich runs the concurrent enrichment stage ahead of itinerary
// generation and the route decoration pass after it. Weather and budget are
// fail-soft: either branch may come back empty without affecting the turn.
// The venue branch always yields a catalog, substituting the built-in
// fallback set when the lookup fails.
package enrich

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/planwise/orchestrator/internal/adapter/venues"
	"github.com/planwise/orchestrator/internal/domain"
)

// WeatherProvider fetches daily forecasts for a city and date range.
type WeatherProvider interface {
	Forecast(ctx context.Context, city, startDate, endDate string) ([]domain.DailyForecast, error)
}

// BudgetProvider estimates trip cost from the accumulated intent.
type BudgetProvider interface {
	Estimate(ti domain.TripIntent) (*domain.BudgetEstimate, error)
}

// VenueProvider returns catalog venues for a city, optionally filtered by
// interest.
type VenueProvider interface {
	VenuesForInterests(ctx context.Context, city string, interests []string, limit int) ([]domain.VenueCatalogEntry, error)
}

// Timeouts caps each enrichment branch independently. A slow branch times
// out alone; the others are unaffected.
type Timeouts struct {
	Weather time.Duration
	Budget  time.Duration
	Venues  time.Duration
}

// DefaultTimeouts returns the per-branch timeout defaults.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Weather: 10 * time.Second,
		Budget:  5 * time.Second,
		Venues:  10 * time.Second,
	}
}

// Coordinator fans out the three enrichment branches and joins them.
type Coordinator struct {
	weather    WeatherProvider
	budget     BudgetProvider
	venues     VenueProvider
	timeouts   Timeouts
	venueLimit int
}

// NewCoordinator creates an enrichment coordinator. Weather and budget
// providers may be nil; their branches are then skipped entirely.
func NewCoordinator(weather WeatherProvider, budget BudgetProvider, venueProvider VenueProvider, timeouts Timeouts, venueLimit int) *Coordinator {
	if venueLimit <= 0 {
		venueLimit = 50
	}
	return &Coordinator{
		weather:    weather,
		budget:     budget,
		venues:     venueProvider,
		timeouts:   timeouts,
		venueLimit: venueLimit,
	}
}

// Enrich runs all three branches concurrently and returns once every branch
// has finished or timed out. The returned bundle always has a non-empty
// venue catalog.
func (c *Coordinator) Enrich(ctx context.Context, ti domain.TripIntent) domain.EnrichmentBundle {
	var bundle domain.EnrichmentBundle
	var wg sync.WaitGroup

	wg.Add(3)

	go func() {
		defer wg.Done()
		bundle.Weather = c.fetchWeather(ctx, ti)
	}()
	go func() {
		defer wg.Done()
		bundle.Budget = c.fetchBudget(ctx, ti)
	}()
	go func() {
		defer wg.Done()
		bundle.Venues = c.fetchVenues(ctx, ti)
	}()

	wg.Wait()
	return bundle
}

func (c *Coordinator) fetchWeather(ctx context.Context, ti domain.TripIntent) []domain.DailyForecast {
	if c.weather == nil || !ti.HasDates() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Weather)
	defer cancel()

	forecasts, err := c.weather.Forecast(ctx, ti.City, ti.StartDate, ti.EndDate)
	if err != nil {
		log.Printf("WARN: weather enrichment failed, continuing without it: %v", err)
		return nil
	}
	return forecasts
}

func (c *Coordinator) fetchBudget(ctx context.Context, ti domain.TripIntent) *domain.BudgetEstimate {
	if c.budget == nil {
		return nil
	}
	done := make(chan *domain.BudgetEstimate, 1)
	go func() {
		est, err := c.budget.Estimate(ti)
		if err != nil {
			log.Printf("WARN: budget enrichment failed, continuing without it: %v", err)
			done <- nil
			return
		}
		done <- est
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeouts.Budget)
	defer cancel()

	select {
	case est := <-done:
		return est
	case <-timeoutCtx.Done():
		log.Printf("WARN: budget enrichment timed out, continuing without it")
		return nil
	}
}

func (c *Coordinator) fetchVenues(ctx context.Context, ti domain.TripIntent) []domain.VenueCatalogEntry {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Venues)
	defer cancel()

	if c.venues != nil {
		found, err := c.venues.VenuesForInterests(ctx, ti.City, ti.Interests, c.venueLimit)
		if err == nil && len(found) > 0 {
			return found
		}
		if err != nil {
			log.Printf("WARN: venue lookup failed, using fallback venues: %v", err)
		}
	}

	fallback, err := venues.FallbackVenues()
	if err != nil {
		log.Printf("ERROR: fallback venue catalog unavailable: %v", err)
		return nil
	}
	return fallback
}
