// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/newslens-io/newslens/internal/config"
	"github.com/newslens-io/newslens/internal/metrics"
)

// maxErrorBodySize limits how much of an error response body is read
// for diagnostics.
const maxErrorBodySize = 64 * 1024

// Source identifies the outlet an article came from.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawArticle is one article as returned by the provider, before
// analysis and normalization.
type RawArticle struct {
	Source      Source    `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

// Response is the provider's envelope for article listings.
type Response struct {
	Status       string       `json:"status"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
}

// Provider is the subset of the news API the Refresher needs. It is
// implemented by Client, BreakerClient, and test fakes.
type Provider interface {
	TopHeadlines(ctx context.Context, country, category string, pageSize int) (*Response, error)
	Everything(ctx context.Context, query string, pageSize int) (*Response, error)
}

// Client talks to a NewsAPI-compatible provider.
//
// Requests are throttled with a token bucket and retried with
// exponential backoff on HTTP 429. All methods are safe for concurrent
// use.
type Client struct {
	baseURL        string
	apiKey         string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a provider client from the ingest configuration.
func NewClient(cfg config.IngestConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries:     3,
		retryBaseDelay: time.Second,
	}
}

// TopHeadlines fetches current headlines, optionally scoped by country
// and category.
func (c *Client) TopHeadlines(ctx context.Context, country, category string, pageSize int) (*Response, error) {
	params := url.Values{}
	if country != "" {
		params.Set("country", country)
	}
	if category != "" {
		params.Set("category", category)
	}
	if pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(pageSize))
	}
	return c.makeRequest(ctx, "top-headlines", params)
}

// Everything searches the provider's full article index.
func (c *Client) Everything(ctx context.Context, query string, pageSize int) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	if pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(pageSize))
	}
	return c.makeRequest(ctx, "everything", params)
}

// makeRequest performs one provider call with rate limiting, decodes
// the envelope, and validates the provider's status field.
func (c *Client) makeRequest(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params.Set("apiKey", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	start := time.Now()
	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	metrics.IngestFetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("%s returned HTTP %d: %s", endpoint, resp.StatusCode, body)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	if out.Status != "ok" {
		return nil, fmt.Errorf("%s rejected request: %s (%s)", endpoint, out.Message, out.Code)
	}
	return &out, nil
}

// doRequestWithRateLimit performs the HTTP request, retrying with
// exponential backoff on HTTP 429. Backoff waits respect the context.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()
		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// readBodyForError reads at most maxErrorBodySize bytes for error
// reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
