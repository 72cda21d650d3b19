// Package search implements the YouTube Data API v3 client used by the
// playlist generator.
//
// Every search is pinned to music-category videos of medium duration; the
// only variable parts of a request are the query text and the result cap.
// Authentication is an API key by default, or an OAuth2 token source when one
// is supplied.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultMaxResults = 15
	defaultRateLimit  = 8.0

	// YouTube's fixed category ID for music content.
	musicCategoryID = "10"
	// Medium filters to videos between 4 and 20 minutes.
	mediumDuration = "medium"
)

// Result is a single search hit. VideoID may be empty; the API occasionally
// returns items without one and callers are expected to skip those.
type Result struct {
	VideoID      string
	Title        string
	ChannelTitle string
}

// Client performs search requests against the YouTube Data API.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     oauth2.TokenSource
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL points the client at a different API host, used by tests and
// self-hosted proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying [http.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxResults caps the number of items per search.
func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n > 0 && n <= 50 {
			c.maxResults = n
		}
	}
}

// WithRateLimit sets the maximum requests per second issued by this client.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithTokenSource authenticates with OAuth2 bearer tokens instead of the API
// key.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// NewClient creates a search client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		maxResults: defaultMaxResults,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search runs one query and returns the raw hits. The music category, medium
// duration and video type filters are always applied.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	val := url.Values{}
	val.Set("part", "snippet")
	val.Set("type", "video")
	val.Set("videoCategoryId", musicCategoryID)
	val.Set("videoDuration", mediumDuration)
	val.Set("maxResults", fmt.Sprint(c.maxResults))
	val.Set("q", query)
	if c.tokens == nil {
		val.Set("key", c.apiKey)
	}

	reqURL := c.baseURL + "/search?" + val.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: token source: %v", shared.ErrAPIRequest, err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: youtube search status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", shared.ErrAPIRequest, err)
	}

	out := make([]Result, 0, len(body.Items))
	for _, it := range body.Items {
		out = append(out, Result{
			VideoID:      it.ID.VideoID,
			Title:        it.Snippet.Title,
			ChannelTitle: it.Snippet.ChannelTitle,
		})
	}

	return out, nil
}
