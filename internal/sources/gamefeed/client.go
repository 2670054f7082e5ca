package gamefeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ndanilov/scoreline/internal/pkg/config"
	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// ErrAccessDenied reports that the site refused the feed request (HTTP 403).
var ErrAccessDenied = errors.New("gamefeed: access denied by site")

// Client fetches the gamescores feed. It is the update source for
// reconciliation: scores and statuses it produces are the freshest
// available, team names are not to be trusted.
type Client struct {
	cfg    config.FeedConfig
	client *http.Client
}

func NewClient(cfg config.FeedConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchUpdates fetches and decodes the current update set. It implements
// interfaces.UpdateSource.
func (c *Client) FetchUpdates(ctx context.Context) ([]models.GameRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("gamefeed: new request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	for key, value := range c.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gamefeed: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, c.cfg.URL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gamefeed: status %d from %s", resp.StatusCode, c.cfg.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gamefeed: read body: %w", err)
	}

	entries, err := DecodePayload(body)
	if err != nil {
		return nil, err
	}

	records := make([]models.GameRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, ToRecord(e))
	}
	return records, nil
}
