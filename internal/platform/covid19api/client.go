package covid19api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public COVID-19 statistics API.
const DefaultBaseURL = "https://api.covid19api.com"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

// Options tunes a Client. Zero values pick the defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS caps outbound requests per second; 0 means unlimited.
	RPS float64
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// WorldTotal matches /world/total
type WorldTotal struct {
	TotalConfirmed *int64 `json:"TotalConfirmed" validate:"required"`
	TotalDeaths    *int64 `json:"TotalDeaths" validate:"required"`
	TotalRecovered *int64 `json:"TotalRecovered" validate:"required"`
}

// StatusPoint is one element of /country/{country}/status/confirmed.
// Numbers are pointers so a missing field can be told apart from zero.
type StatusPoint struct {
	Country string `json:"Country" validate:"required"`
	Date    string `json:"Date" validate:"required"`
	Cases   *int64 `json:"Cases" validate:"required"`
}

// CountrySummary is one element of the Countries array of /summary.
type CountrySummary struct {
	Country        string `json:"Country" validate:"required"`
	CountryCode    string `json:"CountryCode"`
	Slug           string `json:"Slug"`
	NewConfirmed   *int64 `json:"NewConfirmed" validate:"required"`
	TotalConfirmed *int64 `json:"TotalConfirmed" validate:"required"`
	NewDeaths      *int64 `json:"NewDeaths" validate:"required"`
	TotalDeaths    *int64 `json:"TotalDeaths" validate:"required"`
	NewRecovered   *int64 `json:"NewRecovered" validate:"required"`
	TotalRecovered *int64 `json:"TotalRecovered" validate:"required"`
	Date           string `json:"Date" validate:"required"`
}

// SummaryResponse matches /summary
type SummaryResponse struct {
	Countries []CountrySummary `json:"Countries"`
}

func (c *Client) WorldTotal(ctx context.Context) (*WorldTotal, error) {
	var res WorldTotal
	if err := c.get(ctx, c.baseURL+"/world/total", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CountryStatus fetches confirmed cases for country between two calendar
// dates (YYYY-MM-DD), each expanded to midnight UTC.
func (c *Client) CountryStatus(ctx context.Context, country, from, to string) ([]StatusPoint, error) {
	var res []StatusPoint
	if err := c.get(ctx, c.CountryStatusURL(country, from, to), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) CountryStatusURL(country, from, to string) string {
	return fmt.Sprintf("%s/country/%s/status/confirmed?from=%sT00:00:00Z&to=%sT00:00:00Z",
		c.baseURL, url.PathEscape(country), url.QueryEscape(from), url.QueryEscape(to))
}

func (c *Client) Summary(ctx context.Context) (*SummaryResponse, error) {
	var res SummaryResponse
	if err := c.get(ctx, c.baseURL+"/summary", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
