package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/paxbot/curator-agent/agent/contract"
)

const (
	defaultBaseURL       = "https://maps.googleapis.com/maps/api/place"
	maxResponseSizeBytes = 4 << 20
)

// detailFields is the fixed allow-list requested on every detail lookup.
var detailFields = []string{
	"name", "formatted_address", "website", "rating", "user_ratings_total",
	"editorial_summary", "price_level", "opening_hours", "place_id",
	"formatted_phone_number", "reservable", "serves_breakfast", "serves_dinner",
	"serves_lunch", "serves_vegetarian_food", "serves_wine", "takeout",
	"serves_brunch", "serves_beer", "business_status", "curbside_pickup",
	"wheelchair_accessible_entrance", "current_opening_hours", "geometry",
}

type Config struct {
	APIKey  string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	BaseURL string        `envconfig:"BASE_URL" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// ClientOption customizes Client.
type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// Client speaks the Places web service wire protocol: text search plus
// per-place detail lookup.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("places api key is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid places base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type textSearchResponse struct {
	Status       string        `json:"status"`
	Results      []PlaceRecord `json:"results"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type detailResponse struct {
	Status       string      `json:"status"`
	Result       PlaceRecord `json:"result"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

// TextSearch runs a free-text place search and returns the raw status along
// with the basic records.
func (c *Client) TextSearch(ctx context.Context, query string) (string, []PlaceRecord, string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)

	var parsed textSearchResponse
	if err := c.get(ctx, "/textsearch/json", params, &parsed); err != nil {
		return "", nil, "", fmt.Errorf("%w: text search: %v", contractx.ErrUpstreamLookup, err)
	}
	return parsed.Status, parsed.Results, parsed.ErrorMessage, nil
}

// Details fetches one place restricted to the detail field allow-list.
func (c *Client) Details(ctx context.Context, placeID string) (string, PlaceRecord, string, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(detailFields, ","))
	params.Set("key", c.apiKey)

	var parsed detailResponse
	if err := c.get(ctx, "/details/json", params, &parsed); err != nil {
		return "", PlaceRecord{}, "", fmt.Errorf("%w: details for %s: %v", contractx.ErrUpstreamLookup, placeID, err)
	}
	return parsed.Status, parsed.Result, parsed.ErrorMessage, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute places request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read places response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("places http status=%d body=%s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode places response: %w", err)
	}
	return nil
}
