// Package wiki fetches rendered page HTML from MediaWiki-compatible APIs.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdhtml "html"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/x/wiki2md/internal/logger"
)

// Identify ourselves per MediaWiki API etiquette.
const defaultUserAgent = "wiki2md/1.0 (https://github.com/x/wiki2md)"

// Page is the rendered content of a single wiki page.
type Page struct {
	// Title is the display title reported by the API, entities decoded.
	Title string
	// HTML is the rendered page body as returned by action=parse.
	HTML string
}

// Config holds configuration for the API client.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// Client fetches pages through the MediaWiki action API.
type Client struct {
	config Config
}

// NewClient creates a new API client.
func NewClient(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{config: cfg}
}

// parseResponse is the envelope returned by action=parse.
type parseResponse struct {
	Error *apiError     `json:"error"`
	Parse *parsePayload `json:"parse"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type parsePayload struct {
	Title        string          `json:"title"`
	DisplayTitle string          `json:"displaytitle"`
	Text         json.RawMessage `json:"text"`
}

// FetchPage retrieves the rendered HTML for a page title via action=parse.
// lang, when non-empty, is passed through as uselang.
func (c *Client) FetchPage(ctx context.Context, endpoint, title, lang string) (Page, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("prop", "text|displaytitle")
	params.Set("format", "json")
	params.Set("redirects", "1")
	params.Set("page", title)
	if lang != "" {
		params.Set("uselang", lang)
	}
	requestURL := endpoint + "?" + params.Encode()

	logger.Debug("fetching page", "endpoint", endpoint, "title", title)

	// One collector per request
	collector := colly.NewCollector(
		colly.UserAgent(c.config.UserAgent),
	)
	collector.SetRequestTimeout(c.config.Timeout)

	var (
		body        []byte
		contentType string
		fetchErr    error
	)

	collector.OnResponse(func(r *colly.Response) {
		contentType = r.Headers.Get("Content-Type")
		body = r.Body
		logger.Debug("API response received",
			"status", r.StatusCode,
			"content_type", contentType,
			"body_size", len(body))
	})

	collector.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = fmt.Errorf("API request failed (status %d): %w", status, err)
	})

	if err := collector.Visit(requestURL); err != nil {
		return Page{}, fmt.Errorf("failed to reach API endpoint: %w", err)
	}
	if fetchErr != nil {
		return Page{}, fetchErr
	}

	// Sanity check before decoding: a wrong endpoint typically serves HTML.
	if !strings.Contains(strings.ToLower(contentType), "json") {
		return Page{}, fmt.Errorf("unexpected content type from API (%s); endpoint may be wrong: %s", contentType, endpoint)
	}

	var resp parseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Page{}, fmt.Errorf("failed to decode API response: %w", err)
	}
	if resp.Error != nil {
		return Page{}, fmt.Errorf("MediaWiki API error: %s", resp.Error.Info)
	}
	if resp.Parse == nil {
		return Page{}, errors.New("no parse result returned by the API")
	}

	html := decodeText(resp.Parse.Text)
	if html == "" {
		return Page{}, errors.New("no HTML content returned by the API")
	}

	display := resp.Parse.DisplayTitle
	if display == "" {
		display = title
	}

	return Page{
		Title: stdhtml.UnescapeString(display),
		HTML:  html,
	}, nil
}

// FetchAny tries each endpoint in order and returns the first success along
// with the endpoint that served it. If every endpoint fails, the last error
// is returned.
func (c *Client) FetchAny(ctx context.Context, endpoints []string, title, lang string) (string, Page, error) {
	var lastErr error
	for _, endpoint := range endpoints {
		page, err := c.FetchPage(ctx, endpoint, title, lang)
		if err != nil {
			logger.Debug("endpoint failed", "endpoint", endpoint, "error", err)
			lastErr = err
			continue
		}
		return endpoint, page, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no API endpoints to try")
	}
	return "", Page{}, lastErr
}

// decodeText unwraps parse.text, which is {"*": "<html>"} on formatversion 1
// and a plain string on formatversion 2.
func decodeText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var wrapped map[string]string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped["*"]
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
