// Package tcgio is a client for the pokemontcg.io v2 API.
package tcgio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.pokemontcg.io/v2"
	rateLimitDelay = 100 * time.Millisecond // 10 req/sec without an API key
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 16 * time.Second
	pageSize       = 250
)

// Client is a rate-limited pokemontcg.io API client.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithAPIKey sets the X-Api-Key header for higher rate limits.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent:   "ptcg-companion/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCard retrieves a card by its API ID, e.g. "sv3-125".
func (c *Client) GetCard(ctx context.Context, id string) (*Card, error) {
	reqURL := fmt.Sprintf("%s/cards/%s", c.baseURL, url.PathEscape(id))

	var envelope cardEnvelope
	if err := c.doRequest(ctx, reqURL, &envelope); err != nil {
		return nil, fmt.Errorf("get card %s: %w", id, err)
	}
	return envelope.Data, nil
}

// CardsBySet retrieves every card of a set by its printed PTCGO code,
// following pagination until the set is exhausted.
func (c *Client) CardsBySet(ctx context.Context, setCode string) ([]*Card, error) {
	var all []*Card
	query := fmt.Sprintf("set.ptcgoCode:%s", setCode)

	for page := 1; ; page++ {
		reqURL := fmt.Sprintf("%s/cards?q=%s&page=%d&pageSize=%d",
			c.baseURL, url.QueryEscape(query), page, pageSize)

		var list cardList
		if err := c.doRequest(ctx, reqURL, &list); err != nil {
			return nil, fmt.Errorf("get cards for set %s: %w", setCode, err)
		}

		all = append(all, list.Data...)
		if len(all) >= list.TotalCount || len(list.Data) == 0 {
			break
		}
	}
	return all, nil
}

// GetSet retrieves set information by its API ID, e.g. "sv3".
func (c *Client) GetSet(ctx context.Context, id string) (*Set, error) {
	reqURL := fmt.Sprintf("%s/sets/%s", c.baseURL, url.PathEscape(id))

	var envelope setEnvelope
	if err := c.doRequest(ctx, reqURL, &envelope); err != nil {
		return nil, fmt.Errorf("get set %s: %w", id, err)
	}
	return envelope.Data, nil
}

// GetSets retrieves the list of all sets.
func (c *Client) GetSets(ctx context.Context) ([]*Set, error) {
	reqURL := fmt.Sprintf("%s/sets", c.baseURL)

	var list setList
	if err := c.doRequest(ctx, reqURL, &list); err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	return list.Data, nil
}

// doRequest performs a GET with rate limiting and bounded retries.
func (c *Client) doRequest(ctx context.Context, reqURL string, result interface{}) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("X-Api-Key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			if attempt < maxRetries {
				time.Sleep(backoff)
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			if readErr != nil {
				return fmt.Errorf("read response body: %w", readErr)
			}
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("parse JSON response: %w", err)
			}
			return nil

		case http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited (HTTP 429)")
			if attempt < maxRetries {
				if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
					if d, err := time.ParseDuration(retryAfter + "s"); err == nil {
						time.Sleep(d)
					} else {
						time.Sleep(backoff)
					}
				} else {
					time.Sleep(backoff)
				}
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr

		case http.StatusNotFound:
			return &NotFoundError{URL: reqURL}

		default:
			var apiErr struct {
				Error APIError `json:"error"`
			}
			if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
				return &apiErr.Error
			}
			return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
