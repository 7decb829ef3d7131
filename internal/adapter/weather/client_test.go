package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Toronto", r.URL.Query().Get("name"))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"name": "Toronto", "latitude": 43.65, "longitude": -79.38, "country": "Canada", "admin1": "Ontario"},
			},
		})
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2026-03-15", q.Get("start_date"))
		assert.Equal(t, "2026-03-16", q.Get("end_date"))
		json.NewEncoder(w).Encode(map[string]any{
			"daily": map[string]any{
				"time":                          []string{"2026-03-15", "2026-03-16"},
				"weather_code":                  []int{2, 61},
				"temperature_2m_max":            []float64{8.5, 6.0},
				"temperature_2m_min":            []float64{1.2, 0.4},
				"precipitation_sum":             []float64{0, 4.2},
				"precipitation_probability_max": []int{10, 80},
				"wind_speed_10m_max":            []float64{18.0, 25.5},
				"sunrise":                       []string{"2026-03-15T07:25", "2026-03-16T07:23"},
				"sunset":                        []string{"2026-03-15T19:20", "2026-03-16T19:21"},
			},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return NewClient(WithBaseURLs(server.URL+"/v1/search", server.URL+"/v1/forecast"))
}

func TestForecast(t *testing.T) {
	c := newTestClient(t)

	forecasts, err := c.Forecast(context.Background(), "Toronto", "2026-03-15", "2026-03-16")
	require.NoError(t, err)
	require.Len(t, forecasts, 2)

	assert.Equal(t, "2026-03-15", forecasts[0].Date)
	assert.Equal(t, "Partly cloudy", forecasts[0].Condition)
	assert.Equal(t, 8.5, forecasts[0].TempMaxC)

	assert.Equal(t, "Slight rain", forecasts[1].Condition)
	assert.Equal(t, 80, forecasts[1].PrecipChance)
	assert.Equal(t, 4.2, forecasts[1].PrecipMM)
}

func TestForecastCaches(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"name": "Toronto", "latitude": 43.65, "longitude": -79.38}},
		})
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"daily": map[string]any{
				"time":         []string{"2026-03-15"},
				"weather_code": []int{0},
			},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	c := NewClient(WithBaseURLs(server.URL+"/v1/search", server.URL+"/v1/forecast"))

	_, err := c.Forecast(context.Background(), "Toronto", "2026-03-15", "2026-03-15")
	require.NoError(t, err)
	_, err = c.Forecast(context.Background(), "Toronto", "2026-03-15", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestForecastGeocodeQualifiers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"name": "Kingston", "latitude": 17.99, "longitude": -76.79, "country": "Jamaica"},
				{"name": "Kingston", "latitude": 44.23, "longitude": -76.48, "country": "Canada", "admin1": "Ontario"},
			},
		})
	})
	forecastCalled := false
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		forecastCalled = true
		assert.Equal(t, "44.2300", r.URL.Query().Get("latitude"))
		json.NewEncoder(w).Encode(map[string]any{"daily": map[string]any{"time": []string{"2026-03-15"}, "weather_code": []int{0}}})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	c := NewClient(WithBaseURLs(server.URL+"/v1/search", server.URL+"/v1/forecast"))

	_, err := c.Forecast(context.Background(), "Kingston, Ontario", "2026-03-15", "2026-03-15")
	require.NoError(t, err)
	assert.True(t, forecastCalled)
}

func TestForecastNoGeocodeResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	c := NewClient(WithBaseURLs(server.URL+"/v1/search", server.URL+"/v1/forecast"))

	_, err := c.Forecast(context.Background(), "Nowhereville", "2026-03-15", "2026-03-15")
	require.Error(t, err)
}
