package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL   = "https://jsearch.p.rapidapi.com"
	defaultAPIHost   = "jsearch.p.rapidapi.com"
	defaultUserAgent = "JobScoutAPI/1.0"
	resultsPerPage   = 10
)

// Config holds configuration for the provider client
type Config struct {
	APIKey    string
	APIHost   string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	MinPages  int
	MaxPages  int
}

// Client performs job searches against the JSearch API
type Client struct {
	http     *resty.Client
	baseURL  string
	apiKey   string
	apiHost  string
	minPages int
	maxPages int
}

// NewClient creates a new provider client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.APIHost == "" {
		cfg.APIHost = defaultAPIHost
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MinPages <= 0 {
		cfg.MinPages = 5
	}
	if cfg.MaxPages < cfg.MinPages {
		cfg.MaxPages = cfg.MinPages
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:     httpClient,
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		apiHost:  cfg.APIHost,
		minPages: cfg.MinPages,
		maxPages: cfg.MaxPages,
	}
}

// PageDepth derives the provider num_pages hint for a requested page size,
// clamped to the configured provider range.
func (c *Client) PageDepth(pageSize int) int {
	pages := (pageSize + resultsPerPage - 1) / resultsPerPage
	if pages < c.minPages {
		return c.minPages
	}
	if pages > c.maxPages {
		return c.maxPages
	}
	return pages
}

// Search runs one provider query. Every failure is returned as a *ProviderError.
func (c *Client) Search(ctx context.Context, q Query) ([]RawRecord, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, &ProviderError{Query: q.Text, Err: fmt.Errorf("query cannot be empty")}
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}

	params := map[string]string{
		"query":     q.Text,
		"page":      strconv.Itoa(page),
		"num_pages": strconv.Itoa(c.PageDepth(q.PageSize)),
	}
	if q.Country != "" {
		params["country"] = strings.ToLower(q.Country)
	}
	if q.Location != "" {
		params["location"] = q.Location
	}

	log.Debug().Str("query", q.Text).Str("location", q.Location).Str("num_pages", params["num_pages"]).Msg("calling jsearch")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-RapidAPI-Key", c.apiKey).
		SetHeader("X-RapidAPI-Host", c.apiHost).
		SetQueryParams(params).
		Get("/search")
	if err != nil {
		return nil, &ProviderError{Query: q.Text, Err: fmt.Errorf("executing request: %w", err)}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &ProviderError{
			Query:      q.Text,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("provider returned status %d", resp.StatusCode()),
		}
	}

	var payload SearchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, &ProviderError{
			Query:      q.Text,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("%w: %v", ErrMalformedResponse, err),
		}
	}

	if payload.Status != "" && !strings.EqualFold(payload.Status, "OK") {
		msg := payload.Status
		if payload.Error != nil && payload.Error.Message != "" {
			msg = payload.Error.Message
		}
		return nil, &ProviderError{
			Query:      q.Text,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("provider error: %s", msg),
		}
	}

	return payload.Data, nil
}
