package grounding

import (
	"fmt"

	"github.com/planwise/orchestrator/internal/domain"
)

// Meal time windows, inclusive, HH:MM 24-hour. Times normalize to two
// digits so plain string comparison is chronological.
const (
	lunchEarliest  = "11:30"
	lunchLatest    = "13:30"
	dinnerEarliest = "17:30"
	dinnerLatest   = "20:00"
)

// ValidationError describes why an itinerary was rejected. The first
// violation found is reported; the itinerary is rejected as a whole either
// way.
type ValidationError struct {
	Day    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Day > 0 {
		return fmt.Sprintf("itinerary rejected (day %d): %s", e.Day, e.Reason)
	}
	return "itinerary rejected: " + e.Reason
}

// Validate checks the parsed itinerary against the closed-world constraint
// and the per-day structural invariants. A nil return means ACCEPTED;
// any violation rejects the whole itinerary.
func Validate(itinerary domain.GroundedItinerary, catalog domain.VenueIndex, pace domain.Pace) error {
	if len(itinerary.Days) == 0 {
		return &ValidationError{Reason: "no days"}
	}

	profile := domain.ProfileFor(pace)

	for _, day := range itinerary.Days {
		if len(day.Activities) != profile.ActivitiesPerDay {
			return &ValidationError{
				Day: day.Day,
				Reason: fmt.Sprintf("expected %d activities for %s pace, found %d",
					profile.ActivitiesPerDay, pace, len(day.Activities)),
			}
		}

		var lunches, dinners int
		for _, meal := range day.Meals {
			switch meal.Type {
			case domain.MealLunch:
				lunches++
				if meal.Time < lunchEarliest || meal.Time > lunchLatest {
					return &ValidationError{
						Day:    day.Day,
						Reason: fmt.Sprintf("lunch at %s outside %s-%s window", meal.Time, lunchEarliest, lunchLatest),
					}
				}
			case domain.MealDinner:
				dinners++
				if meal.Time < dinnerEarliest || meal.Time > dinnerLatest {
					return &ValidationError{
						Day:    day.Day,
						Reason: fmt.Sprintf("dinner at %s outside %s-%s window", meal.Time, dinnerEarliest, dinnerLatest),
					}
				}
			}
		}
		if lunches != 1 || dinners != 1 {
			return &ValidationError{
				Day:    day.Day,
				Reason: fmt.Sprintf("expected exactly one lunch and one dinner, found %d lunch and %d dinner", lunches, dinners),
			}
		}

		if err := checkChronology(day); err != nil {
			return err
		}

		for _, a := range day.Activities {
			if err := checkCitation(day.Day, a.VenueID, a.SourceURL, catalog); err != nil {
				return err
			}
		}
		for _, m := range day.Meals {
			if err := checkCitation(day.Day, m.VenueID, m.SourceURL, catalog); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkChronology verifies activities appear in strictly increasing time
// order and that no two entries of the day, meals included, share a time.
func checkChronology(day domain.DayPlan) error {
	for i := 1; i < len(day.Activities); i++ {
		prev, cur := day.Activities[i-1], day.Activities[i]
		if cur.Time <= prev.Time {
			return &ValidationError{
				Day: day.Day,
				Reason: fmt.Sprintf("%s at %s is not after %s at %s",
					cur.Slot, cur.Time, prev.Slot, prev.Time),
			}
		}
	}

	seen := make(map[string]string, len(day.Activities)+len(day.Meals))
	record := func(t, what string) error {
		if other, ok := seen[t]; ok {
			return &ValidationError{
				Day:    day.Day,
				Reason: fmt.Sprintf("%s and %s share the same time %s", other, what, t),
			}
		}
		seen[t] = what
		return nil
	}
	for _, a := range day.Activities {
		if err := record(a.Time, a.Slot); err != nil {
			return err
		}
	}
	for _, m := range day.Meals {
		if err := record(m.Time, string(m.Type)); err != nil {
			return err
		}
	}
	return nil
}

func checkCitation(dayNum int, venueID, sourceURL string, catalog domain.VenueIndex) error {
	entry, ok := catalog[venueID]
	if !ok {
		return &ValidationError{
			Day:    dayNum,
			Reason: fmt.Sprintf("cited venue %q is not in the catalog", venueID),
		}
	}
	if sourceURL != entry.SourceURL {
		return &ValidationError{
			Day:    dayNum,
			Reason: fmt.Sprintf("cited URL for %q does not match the catalog entry", venueID),
		}
	}
	return nil
}
