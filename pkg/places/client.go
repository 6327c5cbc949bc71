// Package places proxies the Google Places autocomplete API so the
// frontend never sees the server-side API key.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tripline/tripline-backend/logger"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// ClientInterface defines the autocomplete operation handlers depend on.
type ClientInterface interface {
	Autocomplete(ctx context.Context, input, language, components string) (json.RawMessage, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Autocomplete returns Google's response body verbatim; the handler
// relays it to the caller untouched.
func (c *Client) Autocomplete(ctx context.Context, input, language, components string) (json.RawMessage, error) {
	log := logger.GetLogger()

	if language == "" {
		language = "zh-TW"
	}
	if components == "" {
		components = "country:tw"
	}

	params := url.Values{}
	params.Add("input", input)
	params.Add("language", language)
	params.Add("components", components)
	params.Add("key", c.apiKey)

	finalURL := fmt.Sprintf("%s/autocomplete/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Autocomplete request failed", "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return json.RawMessage(body), nil
}
