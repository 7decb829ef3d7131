package venues

import (
	"strings"

	"github.com/planwise/orchestrator/internal/domain"
)

// FormatCatalogue renders venues as the catalog block injected into the
// itinerary prompt. Each line carries the venue ID and source URL so the
// model can produce "Source: <venue_id>, <url>" citations.
func FormatCatalogue(venues []domain.VenueCatalogEntry) string {
	if len(venues) == 0 {
		return "(No venues available.)"
	}

	var sb strings.Builder
	for i, v := range venues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[venue_id: ")
		sb.WriteString(v.ID)
		sb.WriteString("] ")
		sb.WriteString(v.Name)
		sb.WriteString(" [")
		sb.WriteString(v.Category)
		sb.WriteString("] - ")
		sb.WriteString(v.Address)
		if v.SourceURL != "" {
			sb.WriteString(" | URL: ")
			sb.WriteString(v.SourceURL)
		}
		if v.Description != "" {
			sb.WriteString(" | ")
			sb.WriteString(truncate(v.Description, 200))
		}
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
