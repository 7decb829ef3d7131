// Package weather fetches daily forecasts from the Open-Meteo API. The API
// is keyless; the client geocodes the destination city once and caches both
// coordinates and forecasts.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/planwise/orchestrator/internal/domain"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// wmoConditions maps WMO weather codes to human-readable descriptions.
var wmoConditions = map[int]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Foggy", 48: "Depositing rime fog",
	51: "Light drizzle", 53: "Moderate drizzle", 55: "Dense drizzle",
	56: "Light freezing drizzle", 57: "Dense freezing drizzle",
	61: "Slight rain", 63: "Moderate rain", 65: "Heavy rain",
	66: "Light freezing rain", 67: "Heavy freezing rain",
	71: "Slight snowfall", 73: "Moderate snowfall", 75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers", 81: "Moderate rain showers", 82: "Violent rain showers",
	85: "Slight snow showers", 86: "Heavy snow showers",
	95: "Thunderstorm", 96: "Thunderstorm with slight hail", 99: "Thunderstorm with heavy hail",
}

// Client fetches daily forecasts for a city and date range.
type Client struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
	cache        *cache.Cache
}

// ClientOption configures a weather Client.
type ClientOption func(*Client)

// WithBaseURLs overrides the geocoding and forecast endpoints. Used in tests.
func WithBaseURLs(geocodingURL, forecastURL string) ClientOption {
	return func(c *Client) {
		if geocodingURL != "" {
			c.geocodingURL = geocodingURL
		}
		if forecastURL != "" {
			c.forecastURL = forecastURL
		}
	}
}

// NewClient creates an Open-Meteo weather client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		geocodingURL: defaultGeocodingURL,
		forecastURL:  defaultForecastURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		cache:        cache.New(30*time.Minute, time.Hour),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

type forecastResponse struct {
	Daily struct {
		Time                     []string  `json:"time"`
		WeatherCode              []int     `json:"weather_code"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationSum         []float64 `json:"precipitation_sum"`
		PrecipitationProbability []int     `json:"precipitation_probability_max"`
		WindSpeedMax             []float64 `json:"wind_speed_10m_max"`
		Sunrise                  []string  `json:"sunrise"`
		Sunset                   []string  `json:"sunset"`
	} `json:"daily"`
}

// Forecast returns one DailyForecast per date in [startDate, endDate],
// both in YYYY-MM-DD form.
func (c *Client) Forecast(ctx context.Context, city, startDate, endDate string) ([]domain.DailyForecast, error) {
	cacheKey := fmt.Sprintf("%s:%s:%s", strings.ToLower(city), startDate, endDate)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]domain.DailyForecast), nil
	}

	lat, lon, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("daily", strings.Join([]string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"precipitation_probability_max",
		"wind_speed_10m_max",
		"sunrise",
		"sunset",
	}, ","))
	params.Set("timezone", "auto")
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)

	var forecast forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+params.Encode(), &forecast); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	daily := forecast.Daily
	out := make([]domain.DailyForecast, 0, len(daily.Time))
	for i, date := range daily.Time {
		condition, ok := wmoConditions[at(daily.WeatherCode, i)]
		if !ok {
			condition = fmt.Sprintf("Unknown (%d)", at(daily.WeatherCode, i))
		}
		out = append(out, domain.DailyForecast{
			Date:         date,
			Condition:    condition,
			TempMaxC:     at(daily.TemperatureMax, i),
			TempMinC:     at(daily.TemperatureMin, i),
			PrecipMM:     at(daily.PrecipitationSum, i),
			PrecipChance: at(daily.PrecipitationProbability, i),
			WindSpeedKMH: at(daily.WindSpeedMax, i),
			Sunrise:      at(daily.Sunrise, i),
			Sunset:       at(daily.Sunset, i),
		})
	}

	c.cache.SetDefault(cacheKey, out)
	return out, nil
}

// geocode resolves a city name to coordinates. Qualifiers after a comma
// ("Kingston, Ontario") narrow the match when the API returns several hits.
func (c *Client) geocode(ctx context.Context, city string) (lat, lon float64, err error) {
	parts := strings.Split(city, ",")
	searchName := strings.TrimSpace(parts[0])
	var qualifiers []string
	for _, p := range parts[1:] {
		qualifiers = append(qualifiers, strings.ToLower(strings.TrimSpace(p)))
	}

	params := url.Values{}
	params.Set("name", searchName)
	params.Set("count", "10")

	var geo geocodeResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+params.Encode(), &geo); err != nil {
		return 0, 0, fmt.Errorf("geocoding %q: %w", city, err)
	}
	if len(geo.Results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding results for %q", city)
	}

	for _, r := range geo.Results {
		if len(qualifiers) == 0 {
			break
		}
		haystack := strings.ToLower(r.Admin1 + " " + r.Country)
		matched := true
		for _, q := range qualifiers {
			if !strings.Contains(haystack, q) {
				matched = false
				break
			}
		}
		if matched {
			return r.Latitude, r.Longitude, nil
		}
	}

	// No qualifier matched (or none given); take the top hit.
	return geo.Results[0].Latitude, geo.Results[0].Longitude, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// at indexes one of the parallel daily arrays; Open-Meteo can return
// shorter arrays for some variables.
func at[T any](s []T, i int) T {
	var zero T
	if i < 0 || i >= len(s) {
		return zero
	}
	return s[i]
}
