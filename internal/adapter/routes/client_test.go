package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLeg(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "CN Tower, Toronto", q.Get("origin"))
		assert.Equal(t, "transit", q.Get("mode"))
		assert.Equal(t, "test-key", q.Get("key"))

		json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"routes": []map[string]any{
				{"legs": []map[string]any{
					{
						"distance": map[string]any{"text": "2.1 km"},
						"duration": map[string]any{"text": "14 mins"},
					},
				}},
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", WithDirectionsURL(server.URL))
	leg, err := c.FetchLeg(context.Background(), "CN Tower, Toronto", "Royal Ontario Museum, Toronto")
	require.NoError(t, err)

	assert.Equal(t, "2.1 km", leg.Distance)
	assert.Equal(t, "14 mins", leg.Duration)
	assert.Equal(t, "transit", leg.Mode)
	assert.Contains(t, leg.MapsLink, "https://www.google.com/maps/dir/")
}

func TestFetchLegNoAPIKey(t *testing.T) {
	c := NewClient("")
	leg, err := c.FetchLeg(context.Background(), "CN Tower", "High Park")
	require.Error(t, err)

	// The leg still carries a usable share link.
	assert.Contains(t, leg.MapsLink, "travelmode=transit")
	assert.Empty(t, leg.Duration)
}

func TestFetchLegZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "routes": []any{}})
	}))
	defer server.Close()

	c := NewClient("test-key", WithDirectionsURL(server.URL))
	leg, err := c.FetchLeg(context.Background(), "Nowhere", "Elsewhere")
	require.Error(t, err)
	assert.NotEmpty(t, leg.MapsLink)
}

func TestShareLink(t *testing.T) {
	link := ShareLink("CN Tower, Toronto", "High Park, Toronto", "walking")
	assert.Contains(t, link, "origin=CN+Tower%2C+Toronto")
	assert.Contains(t, link, "travelmode=walking")
}
