// Package venues provides read-only access to the venue catalog. The
// catalog database is populated by a separate crawler; this package only
// ever reads from it, and falls back to a built-in venue set when the
// database is unreachable or empty.
package venues

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/patrickmn/go-cache"

	"github.com/planwise/orchestrator/internal/domain"
)

// interestCategories maps the canonical interest names produced by intent
// extraction to the free-form category values stored on the places table.
var interestCategories = map[string][]string{
	"Food and Beverage":   {"restaurant", "cafe", "bakery", "brewery", "food", "bar"},
	"Entertainment":       {"entertainment", "shopping", "nightlife", "casino", "spa"},
	"Culture and History": {"museum", "gallery", "church", "historic", "tourism", "culture"},
	"Sport":               {"sport", "stadium", "golf", "recreation"},
	"Natural Place":       {"park", "garden", "nature", "beach", "trail", "island"},
}

// Store reads venue rows from the catalog database. Query results are
// cached briefly so repeated itinerary generations within the TTL do not
// hit the database again.
type Store struct {
	db    *sql.DB
	cache *cache.Cache
}

// NewStore opens the catalog database at the given DSN.
func NewStore(dsn string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open venue catalog: %w", err)
	}
	// In-memory SQLite gives each connection its own database. Keep a
	// single connection so seeded data stays visible across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{
		db:    db,
		cache: cache.New(ttl, 2*ttl),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// VenuesForCity returns up to limit venues for the city, newest first.
// Falls back to the built-in venue set when the query fails or matches
// nothing, so the itinerary pipeline always has a catalog to ground on.
func (s *Store) VenuesForCity(ctx context.Context, city string, limit int) ([]domain.VenueCatalogEntry, error) {
	cacheKey := fmt.Sprintf("city:%s:%d", strings.ToLower(city), limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]domain.VenueCatalogEntry), nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT place_key, name, category, address, description, source_url
		FROM places
		WHERE LOWER(city) LIKE ?
		ORDER BY last_updated_at DESC
		LIMIT ?`,
		"%"+strings.ToLower(city)+"%", limit)
	if err != nil {
		log.Printf("WARN: venue catalog query failed, using fallback venues: %v", err)
		return FallbackVenues()
	}
	defer rows.Close()

	venues, err := scanVenues(rows)
	if err != nil {
		log.Printf("WARN: venue catalog scan failed, using fallback venues: %v", err)
		return FallbackVenues()
	}
	if len(venues) == 0 {
		log.Printf("WARN: venue catalog empty for city %q, using fallback venues", city)
		return FallbackVenues()
	}

	s.cache.SetDefault(cacheKey, venues)
	return venues, nil
}

// VenuesForInterests returns venues for the city whose category matches one
// of the traveller's interests. With no interests it behaves like
// VenuesForCity.
func (s *Store) VenuesForInterests(ctx context.Context, city string, interests []string, limit int) ([]domain.VenueCatalogEntry, error) {
	categories := expandInterests(interests)
	if len(categories) == 0 {
		return s.VenuesForCity(ctx, city, limit)
	}

	cacheKey := fmt.Sprintf("interests:%s:%s:%d", strings.ToLower(city), strings.Join(categories, ","), limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]domain.VenueCatalogEntry), nil
	}

	placeholders := strings.Repeat("?,", len(categories))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(categories)+2)
	args = append(args, "%"+strings.ToLower(city)+"%")
	for _, c := range categories {
		args = append(args, c)
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT place_key, name, category, address, description, source_url
		FROM places
		WHERE LOWER(city) LIKE ?
		  AND LOWER(category) IN (%s)
		ORDER BY last_updated_at DESC
		LIMIT ?`, placeholders), args...)
	if err != nil {
		log.Printf("WARN: venue catalog query failed, using fallback venues: %v", err)
		return FallbackVenues()
	}
	defer rows.Close()

	venues, err := scanVenues(rows)
	if err != nil {
		log.Printf("WARN: venue catalog scan failed, using fallback venues: %v", err)
		return FallbackVenues()
	}
	if len(venues) == 0 {
		// Interest filter too narrow; widen to the whole city before
		// giving up and using the fallback set.
		return s.VenuesForCity(ctx, city, limit)
	}

	s.cache.SetDefault(cacheKey, venues)
	return venues, nil
}

func scanVenues(rows *sql.Rows) ([]domain.VenueCatalogEntry, error) {
	var venues []domain.VenueCatalogEntry
	for rows.Next() {
		var v domain.VenueCatalogEntry
		var description sql.NullString
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Address, &description, &v.SourceURL); err != nil {
			return nil, err
		}
		v.Description = description.String
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func expandInterests(interests []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, interest := range interests {
		mapped, ok := interestCategories[interest]
		if !ok {
			mapped = []string{strings.ToLower(interest)}
		}
		for _, c := range mapped {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
