// Package intent derives structured trip constraints from a conversation
// transcript. The extractor is a narrow collaborator of the conversation
// service: it reads the full transcript on every turn and returns a fresh
// TripIntent, so later user corrections naturally overwrite earlier values.
package intent

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/planwise/orchestrator/internal/domain"
)

var (
	// "2026-03-15 to 2026-03-17"
	dateRangeISO = regexp.MustCompile(
		`(\d{4})-(\d{2})-(\d{2})\s*(?:to|-|–)\s*(\d{4})-(\d{2})-(\d{2})`)

	// "March 15 to April 2, 2026"
	dateRangeTwoMonths = regexp.MustCompile(
		`(?i)([A-Za-z]+)\s+(\d{1,2})(?:\s*,?\s*(\d{4}))?\s*(?:to|through|–|-)\s*([A-Za-z]+)\s+(\d{1,2})(?:\s*,?\s*(\d{4}))?`)

	// "March 15-17, 2026"
	dateRangeOneMonth = regexp.MustCompile(
		`(?i)([A-Za-z]+)\s+(\d{1,2})\s*(?:to|–|-)\s*(\d{1,2})(?:\s*,?\s*(\d{4}))?`)

	// "5 days", "4 nights"
	durationPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(days?|nights?)\b`)

	// "$300", "300 CAD", "$1,200.50"
	budgetPattern = regexp.MustCompile(
		`(?i)\$\s*([\d,]+(?:\.\d{1,2})?)|([\d,]+(?:\.\d{1,2})?)\s*(?:CAD|dollars?|bucks)`)

	pacePattern = regexp.MustCompile(
		`(?i)\b(relaxed|relaxing|relax|chill|easy|leisurely|laid.?back|moderate|medium|balanced|normal|steady|packed|fast|rushed|rush|busy|intense|active|hectic|jam.?packed|non.?stop)\b`)

	// "4 people", "2 of us", "3 travellers"
	groupSizePattern = regexp.MustCompile(
		`(?i)\b(\d{1,2})\s*(?:people|persons?|adults?|travellers?|travelers?|of us)\b`)

	originPattern = regexp.MustCompile(
		`(?:flying|traveling|travelling|departing|coming)\s+from\s+([A-Z][a-zA-Z]+(?:\s[A-Z][a-zA-Z]+)?)`)

	stayAreaPattern = regexp.MustCompile(
		`(?i)\b(?:stay(?:ing)?|based)\s+(?:in|near|at|around)\s+(?:the\s+)?([A-Za-z][A-Za-z ]{1,40}?)(?:[,.!?;]|$)`)

	cityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:visit|visiting|trip to|traveling to|travelling to|travel to|going to|go to|head to|headed to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:trip|itinerary)`),
	}
)

// cityStopWords are capitalized words the city patterns match but that are
// never destination cities.
var cityStopWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"relaxed": true, "moderate": true, "packed": true, "weekend": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Extractor parses trip preferences out of free-form user text.
type Extractor struct {
	defaultCity    string
	defaultCountry string
	now            func() time.Time
}

// NewExtractor creates an extractor. The default city and country are used
// when the transcript never names a destination.
func NewExtractor(defaultCity, defaultCountry string) *Extractor {
	return &Extractor{
		defaultCity:    defaultCity,
		defaultCountry: defaultCountry,
		now:            time.Now,
	}
}

// Extract derives a TripIntent from all user turns in the transcript. Every
// field is re-derived from scratch; when the same field appears in several
// turns the last occurrence wins.
func (e *Extractor) Extract(transcript domain.Transcript) domain.TripIntent {
	texts := transcript.UserTexts()
	combined := strings.Join(texts, " ")

	ti := domain.TripIntent{
		City:          e.defaultCity,
		Country:       e.defaultCountry,
		BookingIntent: domain.BookingNone,
	}

	e.extractDates(combined, &ti)
	e.extractDestination(combined, &ti)
	e.extractBudget(combined, &ti)
	e.extractPace(combined, &ti)
	e.extractInterests(combined, &ti)
	e.extractBooking(combined, &ti)
	e.extractStayArea(combined, &ti)
	e.extractGroupSize(combined, &ti)

	if ti.HasDates() {
		start, end := ti.Dates()
		if !start.IsZero() && !end.IsZero() && !end.Before(start) {
			ti.DurationDays = int(end.Sub(start).Hours()/24) + 1
		}
	}

	return ti
}

func (e *Extractor) extractDates(combined string, ti *domain.TripIntent) {
	if m := lastMatch(dateRangeISO, combined); m != nil {
		ti.StartDate = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		ti.EndDate = fmt.Sprintf("%s-%s-%s", m[4], m[5], m[6])
		return
	}

	if m := lastMatch(dateRangeTwoMonths, combined); m != nil {
		mo1, ok1 := monthNumbers[strings.ToLower(m[1])]
		mo2, ok2 := monthNumbers[strings.ToLower(m[4])]
		if ok1 && ok2 {
			year := firstNonEmpty(m[6], m[3], strconv.Itoa(e.now().Year()))
			ti.StartDate = fmt.Sprintf("%s-%02d-%02d", year, mo1, atoi(m[2]))
			ti.EndDate = fmt.Sprintf("%s-%02d-%02d", year, mo2, atoi(m[5]))
			return
		}
	}

	if m := lastMatch(dateRangeOneMonth, combined); m != nil {
		if mo, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			year := firstNonEmpty(m[4], strconv.Itoa(e.now().Year()))
			ti.StartDate = fmt.Sprintf("%s-%02d-%02d", year, mo, atoi(m[2]))
			ti.EndDate = fmt.Sprintf("%s-%02d-%02d", year, mo, atoi(m[3]))
			return
		}
	}

	// A bare duration without explicit dates still pins the trip length.
	if m := lastMatch(durationPattern, combined); m != nil {
		n := atoi(m[1])
		if strings.HasPrefix(strings.ToLower(m[2]), "night") {
			n++
		}
		ti.DurationDays = n
	}
}

func (e *Extractor) extractDestination(combined string, ti *domain.TripIntent) {
	for _, pattern := range cityPatterns {
		m := lastMatch(pattern, combined)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if cityStopWords[strings.ToLower(candidate)] {
			continue
		}
		ti.City = candidate

		// "Paris, France" style country mention after the city
		countryPattern := regexp.MustCompile(
			regexp.QuoteMeta(candidate) + `(?:,\s*|\s+in\s+)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
		if cm := lastMatch(countryPattern, combined); cm != nil {
			ti.Country = strings.TrimSpace(cm[1])
		}
		return
	}
}

func (e *Extractor) extractBudget(combined string, ti *domain.TripIntent) {
	m := lastMatch(budgetPattern, combined)
	if m == nil {
		return
	}
	raw := strings.ReplaceAll(firstNonEmpty(m[1], m[2]), ",", "")
	if amount, err := strconv.ParseFloat(raw, 64); err == nil {
		ti.Budget = amount
	}
}

func (e *Extractor) extractPace(combined string, ti *domain.TripIntent) {
	m := lastMatch(pacePattern, combined)
	if m == nil {
		return
	}
	raw := strings.ToLower(m[1])
	raw = strings.ReplaceAll(raw, "-", "")
	raw = strings.ReplaceAll(raw, " ", "")
	if pace, ok := paceSynonyms[raw]; ok {
		ti.Pace = pace
	}
}

func (e *Extractor) extractInterests(combined string, ti *domain.TripIntent) {
	lower := strings.ToLower(combined)
	var categories []string
	for keyword, category := range interestKeywords {
		if strings.Contains(lower, keyword) {
			categories = append(categories, category)
		}
	}
	categories = lo.Uniq(categories)
	sort.Strings(categories)
	ti.Interests = categories
}

func (e *Extractor) extractBooking(combined string, ti *domain.TripIntent) {
	lower := strings.ToLower(combined)
	wantsTransport := strings.Contains(lower, "flight") ||
		strings.Contains(lower, "flights") ||
		strings.Contains(lower, "book a train") ||
		strings.Contains(lower, "transportation")
	wantsStay := strings.Contains(lower, "accommodation") ||
		strings.Contains(lower, "hotel") ||
		strings.Contains(lower, "airbnb") ||
		strings.Contains(lower, "place to stay")

	switch {
	case wantsTransport && wantsStay:
		ti.BookingIntent = domain.BookingBoth
	case wantsTransport:
		ti.BookingIntent = domain.BookingTransportation
	case wantsStay:
		ti.BookingIntent = domain.BookingAccommodation
	default:
		ti.BookingIntent = domain.BookingNone
	}

	if ti.BookingIntent.NeedsOrigin() {
		if m := lastMatch(originPattern, combined); m != nil {
			ti.OriginLocation = strings.TrimSpace(m[1])
		}
	}
}

func (e *Extractor) extractStayArea(combined string, ti *domain.TripIntent) {
	m := lastMatch(stayAreaPattern, combined)
	if m == nil {
		return
	}
	area := strings.TrimSpace(m[1])
	// "staying in Toronto" names the destination, not a neighbourhood.
	if strings.EqualFold(area, ti.City) || strings.EqualFold(area, ti.Country) {
		return
	}
	ti.StayArea = area
}

func (e *Extractor) extractGroupSize(combined string, ti *domain.TripIntent) {
	if m := lastMatch(groupSizePattern, combined); m != nil {
		ti.GroupSize = atoi(m[1])
	}
}

// lastMatch returns the submatches of the final occurrence of pattern in
// text, or nil when there is none. Taking the last occurrence is what lets
// a later correction win over an earlier statement.
func lastMatch(pattern *regexp.Regexp, text string) []string {
	all := pattern.FindAllStringSubmatch(text, -1)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
