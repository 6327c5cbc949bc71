// Package nominatim is a minimal client for the OpenStreetMap Nominatim
// geocoding API. The locker search uses it to turn a free-form location
// string into coordinates for the listing-site query.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripline/tripline-backend/logger"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// GeocoderInterface defines the geocoding operation the search depends on.
type GeocoderInterface interface {
	Geocode(ctx context.Context, query string) (*Location, error)
}

// Location is a resolved place.
type Location struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// ErrNoResult reports that the query matched no place at all.
type ErrNoResult struct {
	Query string
}

func (e *ErrNoResult) Error() string {
	return fmt.Sprintf("no geocoding result for %q", e.Query)
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a Nominatim client. The usage policy requires an
// identifying User-Agent, so userAgent must be non-empty.
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves query to the best-ranked place.
func (c *Client) Geocode(ctx context.Context, query string) (*Location, error) {
	log := logger.GetLogger()

	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("limit", "1")

	finalURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	log.Debugw("Geocoding location", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Geocoding request failed", "query", query, "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnw("Geocoder returned non-OK status", "statusCode", resp.StatusCode)
		return nil, fmt.Errorf("nominatim returned status: %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, &ErrNoResult{Query: query}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable longitude %q: %w", results[0].Lon, err)
	}

	return &Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}, nil
}
