// Package grounding parses generated itinerary text and validates it
// against the request's venue catalog. Validation is all-or-nothing: a
// single bad citation or malformed day rejects the whole itinerary.
package grounding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/planwise/orchestrator/internal/domain"
)

var (
	dayHeaderPattern = regexp.MustCompile(`^Day\s+(\d+)(?:\s*[—–-]+\s*(\d{4}-\d{2}-\d{2}))?\s*$`)

	// "Morning (09:00): Visit the tower — CN Tower (Source: cn_tower, https://www.cntower.ca)"
	slotLinePattern = regexp.MustCompile(
		`^(Early Morning|Morning|Midday|Afternoon|Evening|Lunch|Dinner)\s*\((\d{1,2}:\d{2})\):\s*(.+?)\s*[—–-]+\s*(.+?)\s*\(Source:\s*([^,]+?)\s*,\s*(.+?)\s*\)\s*$`)
)

// Parse converts generated itinerary text into a GroundedItinerary. It
// fails on any line that looks like a time slot but does not carry a
// well-formed citation, and on slot lines appearing before a day header.
func Parse(text string) (domain.GroundedItinerary, error) {
	var itinerary domain.GroundedItinerary
	var current *domain.DayPlan

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := dayHeaderPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				itinerary.Days = append(itinerary.Days, *current)
			}
			dayNum, _ := strconv.Atoi(m[1])
			current = &domain.DayPlan{Day: dayNum, Date: m[2]}
			continue
		}

		m := slotLinePattern.FindStringSubmatch(line)
		if m == nil {
			// Prose around the schedule (intro, budget footer) is ignored,
			// but a slot keyword without a parsable citation is an error.
			if looksLikeSlotLine(line) {
				return domain.GroundedItinerary{}, fmt.Errorf("malformed itinerary line: %q", line)
			}
			continue
		}
		if current == nil {
			return domain.GroundedItinerary{}, fmt.Errorf("time slot before any day header: %q", line)
		}

		slot, timeOfDay, title, venueName, venueID, sourceURL :=
			m[1], normalizeTime(m[2]), m[3], m[4], m[5], m[6]

		switch slot {
		case "Lunch", "Dinner":
			mealType := domain.MealLunch
			if slot == "Dinner" {
				mealType = domain.MealDinner
			}
			current.Meals = append(current.Meals, domain.Meal{
				Type:      mealType,
				Time:      timeOfDay,
				Title:     title,
				VenueID:   venueID,
				VenueName: venueName,
				SourceURL: sourceURL,
			})
		default:
			current.Activities = append(current.Activities, domain.Activity{
				Time:      timeOfDay,
				Slot:      slot,
				Title:     title,
				VenueID:   venueID,
				VenueName: venueName,
				SourceURL: sourceURL,
			})
		}
	}

	if current != nil {
		itinerary.Days = append(itinerary.Days, *current)
	}
	if len(itinerary.Days) == 0 {
		return domain.GroundedItinerary{}, fmt.Errorf("no itinerary days found in generated text")
	}
	return itinerary, nil
}

var slotPrefixes = []string{
	"Early Morning", "Morning", "Midday", "Afternoon", "Evening", "Lunch", "Dinner",
}

func looksLikeSlotLine(line string) bool {
	for _, prefix := range slotPrefixes {
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, "(") || strings.HasPrefix(rest, ":") {
			return true
		}
	}
	return false
}

// normalizeTime pads "9:30" to "09:30" so times compare lexically.
func normalizeTime(t string) string {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}
