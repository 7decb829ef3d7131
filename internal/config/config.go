// Package config provides configuration for the trip-planning orchestrator.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrNoProvider is returned by Validate when no language-model provider is
// configured. The service refuses to start in that state.
var ErrNoProvider = errors.New("no language model provider configured: set GROQ_API_KEY or GEMINI_API_KEY")

// Config holds the orchestrator configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Fixed deployment destination
	DestinationCity    string
	DestinationCountry string

	// Venue catalog (read-only, maintained by the crawler)
	CatalogDSN   string
	VenueLimit   int
	CatalogTTL   time.Duration

	// Language model providers
	GroqAPIKey   string
	GroqModel    string
	GroqBaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	GeminiBaseURL string
	LLMTimeout   time.Duration

	// Routing
	MapsAPIKey  string
	MapsBaseURL string
	RouteMode   string

	// Enrichment branch timeouts
	WeatherTimeout time.Duration
	BudgetTimeout  time.Duration
	VenueTimeout   time.Duration
	RouteTimeout   time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:           getEnvInt("HTTP_PORT", 8080),
		DestinationCity:    getEnv("DESTINATION_CITY", "Toronto"),
		DestinationCountry: getEnv("DESTINATION_COUNTRY", "Canada"),
		CatalogDSN:         getEnv("CATALOG_DSN", "file:venues.db?mode=ro"),
		VenueLimit:         getEnvInt("VENUE_LIMIT", 50),
		CatalogTTL:         getEnvDuration("CATALOG_TTL_MS", 5*time.Minute),
		GroqAPIKey:         getEnv("GROQ_API_KEY", ""),
		GroqModel:          getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		LLMTimeout:         getEnvDuration("LLM_TIMEOUT_MS", 60*time.Second),
		MapsAPIKey:         getEnv("MAPS_API_KEY", ""),
		MapsBaseURL:        getEnv("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		RouteMode:          getEnv("ROUTE_MODE", "transit"),
		WeatherTimeout:     getEnvDuration("WEATHER_TIMEOUT_MS", 15*time.Second),
		BudgetTimeout:      getEnvDuration("BUDGET_TIMEOUT_MS", 10*time.Second),
		VenueTimeout:       getEnvDuration("VENUE_TIMEOUT_MS", 10*time.Second),
		RouteTimeout:       getEnvDuration("ROUTE_TIMEOUT_MS", 15*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks startup-fatal conditions. Missing enrichment keys are
// fine (those services degrade at call time); a deployment with no
// language-model provider at all cannot serve any turn.
func (c *Config) Validate() error {
	if c.GroqAPIKey == "" && c.GeminiAPIKey == "" {
		return ErrNoProvider
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if ms, err := strconv.Atoi(val); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultVal
}
