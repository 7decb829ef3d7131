package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/orchestrator/internal/domain"
)

func TestEstimateBasicTrip(t *testing.T) {
	e := NewEstimator()
	est, err := e.Estimate(domain.TripIntent{
		City:      "Toronto",
		StartDate: "2026-03-15",
		EndDate:   "2026-03-17",
		Pace:      domain.PaceModerate,
	})
	require.NoError(t, err)

	assert.Equal(t, "CAD", est.Currency)
	assert.Equal(t, 2, est.Nights)
	assert.Equal(t, 300.0, est.AccommodationTotal)
	// 3 activities x 3 days x $25
	assert.Equal(t, 225.0, est.ActivitiesTotal)
	// ($25 lunch + $45 dinner) x 3 days
	assert.Equal(t, 210.0, est.MealsTotal)
	assert.Equal(t, 0.0, est.TransportationTotal)
	assert.Equal(t, 735.0, est.EstimatedTotal)
	assert.Nil(t, est.WithinBudget, "no stated budget means no within-budget verdict")
}

func TestEstimateWithFlights(t *testing.T) {
	e := NewEstimator()
	est, err := e.Estimate(domain.TripIntent{
		City:           "Toronto",
		StartDate:      "2026-03-15",
		EndDate:        "2026-03-17",
		Pace:           domain.PaceRelaxed,
		BookingIntent:  domain.BookingTransportation,
		OriginLocation: "Montreal",
	})
	require.NoError(t, err)

	// Montreal-Toronto route estimate: midpoint of 150-300
	assert.Equal(t, 225.0, est.TransportationTotal)
}

func TestEstimateRouteTiers(t *testing.T) {
	tests := []struct {
		origin  string
		city    string
		lowWant float64
	}{
		{"Winnipeg", "Halifax", 350},  // domestic pair not in the route table
		{"Boston", "Toronto", 250},    // cross-border
		{"Paris", "Toronto", 700},     // international
	}
	for _, tt := range tests {
		low, _ := flightPrices(tt.origin, tt.city)
		assert.Equal(t, tt.lowWant, low, "%s to %s", tt.origin, tt.city)
	}
}

func TestEstimateWithinBudget(t *testing.T) {
	e := NewEstimator()

	est, err := e.Estimate(domain.TripIntent{
		City:      "Toronto",
		StartDate: "2026-03-15",
		EndDate:   "2026-03-17",
		Pace:      domain.PaceModerate,
		Budget:    1000,
	})
	require.NoError(t, err)
	require.NotNil(t, est.WithinBudget)
	assert.True(t, *est.WithinBudget)

	est, err = e.Estimate(domain.TripIntent{
		City:      "Toronto",
		StartDate: "2026-03-15",
		EndDate:   "2026-03-17",
		Pace:      domain.PaceModerate,
		Budget:    500,
	})
	require.NoError(t, err)
	require.NotNil(t, est.WithinBudget)
	assert.False(t, *est.WithinBudget)
}

func TestEstimateGroupSizeScalesPerPersonCosts(t *testing.T) {
	e := NewEstimator()
	est, err := e.Estimate(domain.TripIntent{
		City:      "Toronto",
		StartDate: "2026-03-15",
		EndDate:   "2026-03-17",
		Pace:      domain.PaceModerate,
		GroupSize: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 450.0, est.ActivitiesTotal)
	assert.Equal(t, 420.0, est.MealsTotal)
	// Accommodation is per stay, not per person.
	assert.Equal(t, 300.0, est.AccommodationTotal)
}

func TestEstimateRequiresDates(t *testing.T) {
	e := NewEstimator()
	_, err := e.Estimate(domain.TripIntent{City: "Toronto"})
	require.Error(t, err)
}
