package domain

import "time"

// Required intake fields, in the order they are reported back to the caller.
const (
	FieldDates  = "dates"
	FieldPace   = "pace"
	FieldOrigin = "origin"
)

// TripIntent holds the structured trip constraints accumulated over the
// conversation. It is re-derived from the transcript on every turn and never
// persisted.
type TripIntent struct {
	City    string `json:"city"`
	Country string `json:"country"`

	StartDate    string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      string `json:"end_date,omitempty"`   // YYYY-MM-DD
	DurationDays int    `json:"duration_days,omitempty"`

	Pace      Pace     `json:"pace,omitempty"`
	Interests []string `json:"interests,omitempty"`
	StayArea  string   `json:"stay_area,omitempty"`

	Budget float64 `json:"budget,omitempty"`

	BookingIntent  BookingIntent `json:"booking_intent,omitempty"`
	OriginLocation string        `json:"origin_location,omitempty"`

	GroupSize int `json:"group_size,omitempty"`
}

// HasDates reports whether both travel dates were collected.
func (ti TripIntent) HasDates() bool {
	return ti.StartDate != "" && ti.EndDate != ""
}

// MissingFields returns the ordered list of required fields that are still
// unset. Interests and stay area are optional. The origin location is
// required only when the booking intent covers transportation.
func (ti TripIntent) MissingFields() []string {
	var missing []string
	if !ti.HasDates() {
		missing = append(missing, FieldDates)
	}
	if !ValidPace(ti.Pace) {
		missing = append(missing, FieldPace)
	}
	if ti.BookingIntent.NeedsOrigin() && ti.OriginLocation == "" {
		missing = append(missing, FieldOrigin)
	}
	return missing
}

// Complete reports whether every required field has been collected.
func (ti TripIntent) Complete() bool {
	return len(ti.MissingFields()) == 0
}

// Dates returns the parsed date range. The zero times are returned for
// fields that are missing or malformed.
func (ti TripIntent) Dates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", ti.StartDate)
	end, _ = time.Parse("2006-01-02", ti.EndDate)
	return start, end
}

// Days returns the inclusive trip length in days, falling back to
// DurationDays when the dates do not parse.
func (ti TripIntent) Days() int {
	start, end := ti.Dates()
	if !start.IsZero() && !end.IsZero() && !end.Before(start) {
		return int(end.Sub(start).Hours()/24) + 1
	}
	return ti.DurationDays
}

// PaceProfile is the fixed scheduling profile for one pace category.
type PaceProfile struct {
	ActivitiesPerDay int
	ActivityMinutes  int
	BufferMinutes    int
	LunchMinutes     int
	DinnerMinutes    int
}

// paceProfiles maps each pace to its fixed activities-per-day and timing
// targets. The activity counts are exact, not ranges: the grounding
// validator rejects any day that deviates.
var paceProfiles = map[Pace]PaceProfile{
	PaceRelaxed:  {ActivitiesPerDay: 2, ActivityMinutes: 105, BufferMinutes: 20, LunchMinutes: 90, DinnerMinutes: 120},
	PaceModerate: {ActivitiesPerDay: 3, ActivityMinutes: 75, BufferMinutes: 15, LunchMinutes: 60, DinnerMinutes: 90},
	PacePacked:   {ActivitiesPerDay: 4, ActivityMinutes: 45, BufferMinutes: 5, LunchMinutes: 45, DinnerMinutes: 60},
}

// ProfileFor returns the pace profile for p, defaulting to moderate for
// unknown values.
func ProfileFor(p Pace) PaceProfile {
	if prof, ok := paceProfiles[p]; ok {
		return prof
	}
	return paceProfiles[PaceModerate]
}
