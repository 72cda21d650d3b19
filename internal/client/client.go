// Package client implements the playback side's HTTP client for the
// aggregator's generation endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
)

const generatePath = "/api/generate-playlist"

// Client calls the aggregator service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying [http.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the aggregator at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GeneratePlaylist validates participants the way the entry form does, then
// requests a generated playlist. An empty slice with a nil error means the
// server found no matches.
//
// Failures reaching the server wrap [shared.ErrTransport] so callers can
// offer a retry; rejected input wraps [shared.ErrInvalidInput].
func (c *Client) GeneratePlaylist(ctx context.Context, participants []models.Participant) ([]string, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", shared.ErrInvalidInput)
	}
	for _, p := range participants {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(models.GenerateRequest{Participants: participants})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode == http.StatusBadRequest:
		var errResp models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: %s", shared.ErrInvalidInput, errResp.Message)
		}
		return nil, fmt.Errorf("%w: request rejected", shared.ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: status %d", shared.ErrTransport, resp.StatusCode)
	}

	var genResp models.GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", shared.ErrTransport, err)
	}

	return genResp.Playlist, nil
}
