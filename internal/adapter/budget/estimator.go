// Package budget estimates trip costs from the accumulated trip intent.
// Prices are market-based estimates in CAD; accommodation uses a nightly
// rate, flights use a route table with tier fallbacks.
package budget

import (
	"fmt"
	"strings"

	"github.com/planwise/orchestrator/internal/domain"
)

// Per-person daily rates (CAD).
const (
	nightlyRate  = 150.0
	activityRate = 25.0
	lunchRate    = 25.0
	dinnerRate   = 45.0
)

// flightRoutePrices holds round-trip per-person estimates for known city
// pairs, keyed by the sorted pair.
var flightRoutePrices = map[[2]string][2]float64{
	{"kingston", "montreal"}: {120, 250},
	{"kingston", "ottawa"}:   {110, 220},
	{"kingston", "toronto"}:  {110, 220},
	{"montreal", "ottawa"}:   {110, 200},
	{"montreal", "toronto"}:  {150, 300},
	{"ottawa", "toronto"}:    {140, 280},
	{"calgary", "vancouver"}: {180, 350},
	{"calgary", "edmonton"}:  {120, 220},
	{"toronto", "vancouver"}: {350, 650},
	{"halifax", "toronto"}:   {300, 550},
	{"montreal", "vancouver"}: {350, 650},
}

var flightTierPrices = map[string][2]float64{
	"domestic_short": {130, 270},
	"domestic_long":  {350, 650},
	"us_short":       {250, 500},
	"international":  {700, 1400},
}

var canadianCities = map[string]bool{
	"toronto": true, "montreal": true, "ottawa": true, "kingston": true,
	"vancouver": true, "calgary": true, "edmonton": true, "winnipeg": true,
	"hamilton": true, "quebec city": true, "london": true, "halifax": true,
	"niagara falls": true,
}

var usCities = map[string]bool{
	"new york": true, "new york city": true, "boston": true,
	"chicago": true, "miami": true,
}

var domesticShortPairs = map[[2]string]bool{
	{"montreal", "toronto"}:      true,
	{"ottawa", "toronto"}:        true,
	{"kingston", "toronto"}:      true,
	{"hamilton", "toronto"}:      true,
	{"london", "toronto"}:        true,
	{"niagara falls", "toronto"}: true,
	{"montreal", "ottawa"}:       true,
	{"montreal", "quebec city"}:  true,
	{"kingston", "ottawa"}:       true,
	{"calgary", "edmonton"}:      true,
}

// Estimator computes trip cost estimates.
type Estimator struct{}

// NewEstimator creates a budget estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate builds a cost breakdown for the trip. It fails when the intent
// has no usable dates; everything else is optional.
func (e *Estimator) Estimate(ti domain.TripIntent) (*domain.BudgetEstimate, error) {
	days := ti.Days()
	if days <= 0 {
		return nil, fmt.Errorf("cannot estimate budget without trip dates")
	}
	nights := days - 1
	if nights < 1 {
		nights = 1
	}

	travellers := ti.GroupSize
	if travellers < 1 {
		travellers = 1
	}

	profile := domain.ProfileFor(ti.Pace)

	est := &domain.BudgetEstimate{
		Currency:           "CAD",
		Nights:             nights,
		AccommodationTotal: nightlyRate * float64(nights),
		ActivitiesTotal:    activityRate * float64(profile.ActivitiesPerDay*days*travellers),
		MealsTotal:         (lunchRate + dinnerRate) * float64(days*travellers),
	}

	if ti.BookingIntent.NeedsOrigin() && ti.OriginLocation != "" {
		low, high := flightPrices(ti.OriginLocation, ti.City)
		est.TransportationTotal = (low + high) / 2 * float64(travellers)
	}

	est.EstimatedTotal = est.AccommodationTotal + est.ActivitiesTotal +
		est.MealsTotal + est.TransportationTotal

	if ti.Budget > 0 {
		within := est.EstimatedTotal <= ti.Budget
		est.WithinBudget = &within
	}

	return est, nil
}

func flightPrices(origin, destination string) (low, high float64) {
	o := normalizeCity(origin)
	d := normalizeCity(destination)
	key := pairKey(o, d)
	if prices, ok := flightRoutePrices[key]; ok {
		return prices[0], prices[1]
	}
	prices := flightTierPrices[classifyRoute(o, d)]
	return prices[0], prices[1]
}

func classifyRoute(origin, destination string) string {
	switch {
	case canadianCities[origin] && canadianCities[destination]:
		if domesticShortPairs[pairKey(origin, destination)] {
			return "domestic_short"
		}
		return "domestic_long"
	case (canadianCities[origin] && usCities[destination]) ||
		(usCities[origin] && canadianCities[destination]):
		return "us_short"
	default:
		return "international"
	}
}

func normalizeCity(city string) string {
	name, _, _ := strings.Cut(city, ",")
	return strings.ToLower(strings.TrimSpace(name))
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
