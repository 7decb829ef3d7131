package domain

// DailyForecast is one day of weather for the destination.
type DailyForecast struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Condition     string  `json:"condition"`
	TempMinC      float64 `json:"temp_min_c"`
	TempMaxC      float64 `json:"temp_max_c"`
	PrecipMM      float64 `json:"precipitation_mm"`
	PrecipChance  int     `json:"precipitation_chance"`
	WindSpeedKMH  float64 `json:"wind_speed_kmh"`
	Sunrise       string  `json:"sunrise,omitempty"`
	Sunset        string  `json:"sunset,omitempty"`
}

// BudgetEstimate is the cost breakdown produced by the budget estimator.
type BudgetEstimate struct {
	Currency           string  `json:"currency"`
	Nights             int     `json:"nights"`
	AccommodationTotal float64 `json:"accommodation_total"`
	ActivitiesTotal    float64 `json:"activities_total"`
	MealsTotal         float64 `json:"meals_total"`
	TransportationTotal float64 `json:"transportation_total,omitempty"`
	EstimatedTotal     float64 `json:"estimated_total"`
	WithinBudget       *bool   `json:"within_budget,omitempty"` // nil when no budget was stated
}

// EnrichmentBundle is the joined result of the concurrent enrichment stage.
// Weather and Budget are independently optional; Venues is always set (the
// coordinator substitutes the fallback catalog when the lookup fails).
type EnrichmentBundle struct {
	Weather []DailyForecast `json:"weather,omitempty"`
	Budget  *BudgetEstimate `json:"budget,omitempty"`
	Venues  []VenueCatalogEntry `json:"venues"`
}
