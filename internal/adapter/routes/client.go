// Package routes fetches travel legs between itinerary venues from the
// Google Maps Directions API. Every failure degrades to a shareable maps
// link so a leg is never fully empty.
package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/planwise/orchestrator/internal/domain"
)

const defaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"

// Client calls the Directions API for one leg at a time.
type Client struct {
	apiKey        string
	directionsURL string
	mode          string
	httpClient    *http.Client
}

// ClientOption configures a routes Client.
type ClientOption func(*Client)

// WithDirectionsURL overrides the API endpoint. Used in tests.
func WithDirectionsURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.directionsURL = u
		}
	}
}

// WithMode sets the travel mode (driving, transit, or walking).
func WithMode(mode string) ClientOption {
	return func(c *Client) {
		if mode != "" {
			c.mode = mode
		}
	}
}

// NewClient creates a directions client. An empty API key is allowed; the
// client then only produces shareable link legs.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:        apiKey,
		directionsURL: defaultDirectionsURL,
		mode:          "transit",
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the configured travel mode.
func (c *Client) Mode() string {
	return c.mode
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
	ErrorMessage string `json:"error_message"`
}

// FetchLeg returns the travel leg between two venue addresses. Without an
// API key, or when the API rejects the request, the returned leg carries
// only the shareable link and no duration or distance, with a non-nil
// error for the caller to log.
func (c *Client) FetchLeg(ctx context.Context, origin, destination string) (domain.RouteLeg, error) {
	leg := domain.RouteLeg{
		Origin:      origin,
		Destination: destination,
		Mode:        c.mode,
		MapsLink:    ShareLink(origin, destination, c.mode),
	}

	if c.apiKey == "" {
		return leg, fmt.Errorf("directions API key not configured")
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", c.mode)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.directionsURL+"?"+params.Encode(), nil)
	if err != nil {
		return leg, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return leg, fmt.Errorf("calling directions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return leg, fmt.Errorf("directions API status %d", resp.StatusCode)
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return leg, fmt.Errorf("decoding directions response: %w", err)
	}
	if directions.Status != "OK" || len(directions.Routes) == 0 || len(directions.Routes[0].Legs) == 0 {
		return leg, fmt.Errorf("no route found (%s): %s", directions.Status, directions.ErrorMessage)
	}

	first := directions.Routes[0].Legs[0]
	leg.Distance = first.Distance.Text
	leg.Duration = first.Duration.Text
	return leg, nil
}

// ShareLink builds a Google Maps directions link that needs no API key.
func ShareLink(origin, destination, mode string) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("travelmode", mode)
	return "https://www.google.com/maps/dir/?" + params.Encode()
}
