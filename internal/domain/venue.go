package domain

// VenueCatalogEntry is one known venue from the catalog. Entries are
// immutable; the orchestrator indexes them by ID for citation checking and
// never invents or modifies them.
type VenueCatalogEntry struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Address     string `json:"address" yaml:"address"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	SourceURL   string `json:"source_url" yaml:"source_url"`
}

// VenueIndex maps venue IDs to catalog entries for citation lookups.
type VenueIndex map[string]VenueCatalogEntry

// IndexVenues builds a VenueIndex from a venue slice. Later duplicates win,
// matching catalog freshness ordering.
func IndexVenues(venues []VenueCatalogEntry) VenueIndex {
	idx := make(VenueIndex, len(venues))
	for _, v := range venues {
		idx[v.ID] = v
	}
	return idx
}
