package domain

import "sort"

// Activity is one non-meal time slot in a day plan. Every activity carries a
// citation pair (venue ID + source URL) pointing into the venue catalog.
type Activity struct {
	Time      string `json:"time"` // HH:MM, 24-hour
	Slot      string `json:"slot"` // e.g. "Morning", "Afternoon"
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	VenueID   string `json:"cited_venue_id"`
	VenueName string `json:"venue_name"`
	SourceURL string `json:"cited_url"`
}

// Meal is a lunch or dinner entry, also citation-bearing.
type Meal struct {
	Type      MealType `json:"type"`
	Time      string   `json:"time"` // HH:MM, 24-hour
	Title     string   `json:"title"`
	VenueID   string   `json:"cited_venue_id"`
	VenueName string   `json:"venue_name"`
	SourceURL string   `json:"cited_url"`
}

// DayPlan is one day of the itinerary: a fixed number of activities for the
// pace plus exactly one lunch and one dinner.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"` // YYYY-MM-DD when stated
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
}

// GroundedItinerary is the parsed, citation-checked day-by-day plan.
type GroundedItinerary struct {
	Days []DayPlan `json:"days"`
}

// VenueNames returns the distinct venue names used across the itinerary in
// visit order (each day's entries merged chronologically). This drives
// route enrichment between consecutive stops.
func (gi GroundedItinerary) VenueNames() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, day := range gi.Days {
		type stop struct {
			time string
			name string
		}
		stops := make([]stop, 0, len(day.Activities)+len(day.Meals))
		for _, a := range day.Activities {
			stops = append(stops, stop{a.Time, a.VenueName})
		}
		for _, m := range day.Meals {
			stops = append(stops, stop{m.Time, m.VenueName})
		}
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].time < stops[j].time })
		for _, s := range stops {
			add(s.name)
		}
	}
	return names
}

// RouteLeg is one travel segment between consecutive itinerary venues.
// Legs are additive decoration; an itinerary is valid without them.
type RouteLeg struct {
	Leg         int    `json:"leg"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Duration    string `json:"duration,omitempty"`
	Distance    string `json:"distance,omitempty"`
	Mode        string `json:"mode"`
	MapsLink    string `json:"maps_link,omitempty"`
}
