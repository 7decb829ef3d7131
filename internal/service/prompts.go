package service

import (
	"fmt"
	"strings"

	"github.com/planwise/orchestrator/internal/adapter/venues"
	"github.com/planwise/orchestrator/internal/domain"
)

// confirmationMarker is the machine-checkable phrase the controller places
// in the confirmation question. A user "yes" only triggers generation when
// the preceding assistant turn contains this marker.
const confirmationMarker = "generate your itinerary"

// affirmativePattern matches user replies that confirm itinerary generation.
const affirmativePattern = `^\s*(yes\s*,?\s*please|yes|yeah|yep|yup|sure|go\s*ahead|please\s*do|` +
	`let'?s?\s*do\s*it|let'?s?\s*go|absolutely|ok|okay|sounds\s*good|` +
	`generate\s*it|generate|do\s*it|for\s*sure|definitely|of\s*course|` +
	`yes\s*,?\s*generate\s*it|please)` +
	`[.!]?\s*$`

const greetingMessage = "Hey there! Welcome to the Trip Planner! " +
	"I'd love to help you put together a great travel itinerary. " +
	"To get started, could you tell me a bit about your trip? " +
	"Things like when you're traveling, what kinds of activities you enjoy, " +
	"and whether you'd like a relaxed, moderate, or packed schedule?"

const intakeSystemPrompt = `You are a friendly, human-like travel assistant. Your job is to collect the traveller's trip details through a natural multi-turn conversation.

Rules you MUST follow:
1. After each user message, acknowledge what you understood in ONE natural sentence, then ask ONLY for the next missing piece.
2. NEVER mention internal mechanics.
3. Keep responses concise: 1-3 short paragraphs, conversational tone.
4. Do NOT repeat the same template sentence across turns.

Required fields (collect ALL before confirming):
- Travel dates (start date + end date, OR start date + number of days)
- Pace (relaxed, moderate, or packed)

Optional fields (nice to have, but not required):
- Interests (e.g. museums, food, nature, sports, nightlife, culture)
- Location preference (where to stay: downtown, waterfront, etc.)
- Booking assistance (flights, accommodation, or both)
  If the user wants flight booking help, ask where they're traveling from.

Budget is OPTIONAL. Do not ask about it unless the user brings it up.

Do NOT offer to generate the itinerary yourself; once everything is collected the system asks for confirmation.`

// confirmationQuestion is emitted directly by the controller, never by the
// model, so the marker phrase is always present and byte-stable.
func confirmationQuestion(city string) string {
	return fmt.Sprintf(
		"Great! I have everything I need. Want me to generate your itinerary for %s?",
		city)
}

const itineraryPromptTemplate = `You are a travel itinerary generator. ONLY use venues from the list below.

VENUE LIST — START
%s
VENUE LIST — END
%s
STRICT OUTPUT RULES:
1. Each day MUST have EXACTLY 2 meals: Lunch between 11:30 and 13:30, Dinner between 17:30 and 20:00 (use food/restaurant venues from the list where possible).
2. Each day MUST have EXACTLY %d activity lines (non-meal slots), using these slot names in order: %s.
3. Every line carries a start time in 24-hour HH:MM form, and all times within a day must be strictly increasing top to bottom.
4. Every single line MUST include a Source citation in this exact format:
   (Source: <venue_id>, <url>)
   where venue_id and url come verbatim from the venue list above.
5. Use this exact format per day:

Day 1 — %s
%s

Day 2
...

6. CLOSED-WORLD RULE: Never invent venues. If the user asked for something not in the list, pick the closest venues that ARE in the list.
7. Do NOT add facts not present in the venue record (prices, hours, events).
8. 100%% SOURCE COVERAGE: every activity and meal line must have a Source. No exceptions.
9. Respect the user's stated dates, interests, and pace when choosing venues.
10. Plan exactly %d day(s).`

// paceSlots lists the activity slot names per pace, in chronological order.
var paceSlots = map[domain.Pace][]string{
	domain.PaceRelaxed:  {"Morning", "Afternoon"},
	domain.PaceModerate: {"Morning", "Afternoon", "Evening"},
	domain.PacePacked:   {"Early Morning", "Morning", "Afternoon", "Evening"},
}

// slotTimes gives each slot a representative start time used in the format
// example shown to the model.
var slotTimes = map[string]string{
	"Early Morning": "08:00",
	"Morning":       "09:30",
	"Afternoon":     "14:00",
	"Evening":       "16:30",
}

// buildItineraryPrompt renders the generation system prompt: the venue
// catalog block, optional weather context, and the per-pace day template.
func buildItineraryPrompt(catalog []domain.VenueCatalogEntry, weather []domain.DailyForecast, ti domain.TripIntent) string {
	profile := domain.ProfileFor(ti.Pace)
	slots := paceSlots[ti.Pace]
	if len(slots) == 0 {
		slots = paceSlots[domain.PaceModerate]
	}

	var example strings.Builder
	wroteLunch := false
	for i, slot := range slots {
		if i > 0 {
			example.WriteByte('\n')
		}
		t := slotTimes[slot]
		fmt.Fprintf(&example, "%s (%s): <activity> — <venue_name> (Source: <venue_id>, <url>)", slot, t)
		if !wroteLunch && t >= "09:30" {
			example.WriteString("\nLunch (12:30): <meal> — <venue_name> (Source: <venue_id>, <url>)")
			wroteLunch = true
		}
	}
	example.WriteString("\nDinner (18:30): <meal> — <venue_name> (Source: <venue_id>, <url>)")

	exampleDate := ti.StartDate
	if exampleDate == "" {
		exampleDate = "<date>"
	}

	days := ti.Days()
	if days <= 0 {
		days = 1
	}

	return fmt.Sprintf(itineraryPromptTemplate,
		venues.FormatCatalogue(catalog),
		weatherContext(weather),
		profile.ActivitiesPerDay,
		strings.Join(slots, ", "),
		exampleDate,
		example.String(),
		days,
	)
}

// weatherContext renders the forecast block injected into the generation
// prompt, or an empty string when no forecast is available.
func weatherContext(forecasts []domain.DailyForecast) string {
	if len(forecasts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\nWEATHER FORECAST (plan indoor venues on wet or cold days):\n")
	for _, f := range forecasts {
		fmt.Fprintf(&sb, "  %s: %s, %.0f-%.0f C, %d%% chance of precipitation\n",
			f.Date, f.Condition, f.TempMinC, f.TempMaxC, f.PrecipChance)
	}
	return sb.String()
}
