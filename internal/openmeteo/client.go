package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrUpstream marks any transport-level failure against the Open-Meteo API:
// connection errors, non-2xx responses, timeouts, and malformed bodies all
// surface as this one kind. Callers do not need to tell them apart.
var ErrUpstream = errors.New("failed to fetch weather data")

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout = 30 * time.Second
)

// Params carries operation-specific query parameters merged on top of the base
// latitude/longitude/timezone set. Caller keys win on collision.
type Params map[string]string

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client issues forecast requests against the Open-Meteo API. One logical
// query maps to exactly one HTTP attempt; there are no retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

// NewClient creates an Open-Meteo client. Zero-valued config fields fall back
// to defaults.
func NewClient(cfg Config, log *zap.SugaredLogger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Fetch performs a single GET for the given coordinates. The base parameters
// {latitude, longitude, timezone=auto} are set first so that caller-supplied
// params may override them.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, params Params) (*ForecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("timezone", "auto")
	for k, v := range params {
		values.Set(k, v)
	}

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("open-meteo request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Errorw("open-meteo returned non-2xx status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstream, resp.StatusCode)
	}

	var payload ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Errorw("open-meteo response decode failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &payload, nil
}
