package nextrip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "http://svc.metrotransit.org/NexTrip/"

const jsonFormat = "?format=json"

var ErrInvalidResponse = errors.New("response is not valid JSON")

// Client performs GETs against the NexTrip API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL. A zero timeout keeps the transport default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the JSON body for endpoint, or nil if the request or decode failed.
func (c *Client) Fetch(ctx context.Context, endpoint string) json.RawMessage {
	body, err := c.FetchE(ctx, endpoint)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("Failed to GET from NexTrip")
		return nil
	}

	return body
}

// FetchE is Fetch with the failure reported to the caller.
func (c *Client) FetchE(ctx context.Context, endpoint string) (json.RawMessage, error) {
	requestURL := c.BaseURL + endpoint + jsonFormat
	log.Debug().Str("url", requestURL).Msg("GET")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "curl/7.54.1")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", requestURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, requestURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", requestURL, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", requestURL, ErrInvalidResponse)
	}

	return body, nil
}

func RoutesEndpoint() string {
	return "Routes"
}

func DirectionsEndpoint(route string) string {
	return fmt.Sprintf("Directions/%s", route)
}

func StopsEndpoint(route string, direction string) string {
	return fmt.Sprintf("Stops/%s/%s", route, direction)
}

func DeparturesEndpoint(route string, direction string, stop string) string {
	return fmt.Sprintf("%s/%s/%s", route, direction, stop)
}
