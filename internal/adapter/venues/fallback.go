package venues

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/planwise/orchestrator/internal/domain"
)

//go:embed fallback.yaml
var fallbackYAML []byte

var (
	fallbackOnce   sync.Once
	fallbackVenues []domain.VenueCatalogEntry
	fallbackErr    error
)

type fallbackFile struct {
	Venues []domain.VenueCatalogEntry `yaml:"venues"`
}

// FallbackVenues returns the built-in Toronto venue set used when the
// catalog database is unreachable or empty. Callers get a fresh copy.
func FallbackVenues() ([]domain.VenueCatalogEntry, error) {
	fallbackOnce.Do(func() {
		var f fallbackFile
		if err := yaml.Unmarshal(fallbackYAML, &f); err != nil {
			fallbackErr = fmt.Errorf("parsing embedded venue catalog: %w", err)
			return
		}
		fallbackVenues = f.Venues
	})
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	out := make([]domain.VenueCatalogEntry, len(fallbackVenues))
	copy(out, fallbackVenues)
	return out, nil
}
