package service

import (
	"fmt"
	"strings"

	"github.com/planwise/orchestrator/internal/domain"
)

// assemble combines the accepted itinerary text with the enrichment
// results into the outward turn payload. Pure function: no I/O, no
// failure modes.
func assemble(transcript domain.Transcript, itineraryText string, bundle domain.EnrichmentBundle, legs []domain.RouteLeg) domain.TurnResult {
	return domain.TurnResult{
		Transcript:       transcript.Append(domain.Turn{Role: domain.RoleAssistant, Content: itineraryText}),
		AssistantMessage: itineraryText,
		Phase:            domain.PhaseGenerating,
		WeatherSummary:   weatherSummary(bundle.Weather),
		BudgetSummary:    bundle.Budget,
		RouteLegs:        legs,
	}
}

// weatherSummary renders the forecast as one compact line per day, or an
// empty string when the weather branch came back absent.
func weatherSummary(forecasts []domain.DailyForecast) string {
	if len(forecasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(forecasts))
	for _, f := range forecasts {
		lines = append(lines, fmt.Sprintf("%s: %s, %.0f-%.0f C, %d%% precip",
			f.Date, f.Condition, f.TempMinC, f.TempMaxC, f.PrecipChance))
	}
	return strings.Join(lines, "\n")
}
