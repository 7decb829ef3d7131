package domain

// TurnResult is the outward payload for one orchestration turn.
//
// StillNeed is populated only in the greeting/intake/awaiting_confirmation
// phases. WeatherSummary, BudgetSummary and RouteLegs are populated only
// when the phase is generating and grounding validation accepted the
// itinerary; each is independently nullable.
type TurnResult struct {
	Transcript       Transcript      `json:"transcript"`
	AssistantMessage string          `json:"assistant_message"`
	Phase            Phase           `json:"phase"`
	StillNeed        []string        `json:"still_need,omitempty"`
	WeatherSummary   string          `json:"weather_summary,omitempty"`
	BudgetSummary    *BudgetEstimate `json:"budget_summary,omitempty"`
	RouteLegs        []RouteLeg      `json:"route_legs,omitempty"`
	Error            string          `json:"error,omitempty"`
}
