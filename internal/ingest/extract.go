// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxExtractedContentLen caps stored article bodies. Beyond this much
// text the analyzer gains nothing and the store just bloats.
const maxExtractedContentLen = 20000

// Extractor pulls readable article text out of web pages.
type Extractor struct {
	client *http.Client
}

// NewExtractor creates an Extractor with the given per-fetch timeout.
func NewExtractor(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Extractor{client: &http.Client{Timeout: timeout}}
}

// Extract fetches rawURL and returns its readable text content.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	// Some outlets reject requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NewsLens/1.0)")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	content := strings.TrimSpace(article.TextContent)
	if len(content) > maxExtractedContentLen {
		content = content[:maxExtractedContentLen]
	}
	return content, nil
}
