// Package domain defines the core domain models for the trip-planning orchestrator.
package domain

// Phase represents the dialogue phase reported for a turn.
type Phase string

const (
	PhaseGreeting             Phase = "greeting"
	PhaseIntake               Phase = "intake"
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation"
	PhaseGenerating           Phase = "generating"
)

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Pace is the traveller's schedule density preference.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PacePacked   Pace = "packed"
)

// ValidPace reports whether p is one of the three canonical pace values.
func ValidPace(p Pace) bool {
	switch p {
	case PaceRelaxed, PaceModerate, PacePacked:
		return true
	}
	return false
}

// BookingIntent captures whether the traveller wants booking assistance.
type BookingIntent string

const (
	BookingNone           BookingIntent = "none"
	BookingAccommodation  BookingIntent = "accommodation"
	BookingTransportation BookingIntent = "transportation"
	BookingBoth           BookingIntent = "both"
)

// NeedsOrigin reports whether the booking intent requires an origin location.
func (b BookingIntent) NeedsOrigin() bool {
	return b == BookingTransportation || b == BookingBoth
}

// MealType distinguishes the two required meals per itinerary day.
type MealType string

const (
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)
