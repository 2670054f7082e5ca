package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ndanilov/scoreline/internal/pkg/config"
	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// ErrAccessDenied reports that the site refused the request (HTTP 403).
// footballdb intermittently blocks non-browser clients; with the browser
// fallback enabled the client retries the fetch through headless Chrome.
var ErrAccessDenied = errors.New("scoreboard: access denied by site")

// Client fetches and parses the scoreboard page. It is the base source for
// reconciliation: team names it produces are authoritative.
type Client struct {
	cfg    config.ScoreboardConfig
	url    string
	client *http.Client
}

func NewClient(cfg config.ScoreboardConfig, q Query) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:    cfg,
		url:    BuildScoresURL(cfg.BaseURL, q),
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the scoreboard page URL this client targets.
func (c *Client) URL() string {
	return c.url
}

// FetchBase fetches the scoreboard page and extracts its game records in
// document order. It implements interfaces.BaseSource.
func (c *Client) FetchBase(ctx context.Context) ([]models.GameRecord, error) {
	page, err := c.fetchPage(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("scoreboard: parse page: %w", err)
	}
	return ParseDocument(doc)
}

func (c *Client) fetchPage(ctx context.Context) (string, error) {
	page, err := c.get(ctx)
	if errors.Is(err, ErrAccessDenied) && c.cfg.Browser.Enabled {
		slog.Warn("Scoreboard: plain fetch denied, retrying via headless browser", "url", c.url)
		return renderPage(ctx, c.url, c.cfg.Browser.Timeout, c.cfg.UserAgent)
	}
	return page, err
}

func (c *Client) get(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("scoreboard: new request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	for key, value := range c.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("scoreboard: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: %s", ErrAccessDenied, c.url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scoreboard: status %d from %s", resp.StatusCode, c.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("scoreboard: read body: %w", err)
	}
	return string(body), nil
}
