package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Fetcher is the read-only catalog surface the view state coordinator uses.
// It is implemented by *Client and can be faked in tests.
type Fetcher interface {
	FetchDiscoverList(ctx context.Context) ([]MovieSummary, error)
	FetchMovieDetail(ctx context.Context, id int64) (*MovieDetail, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ClientConfig carries the settings the client needs from config.Config.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	UserAgent string
}

// Client talks to the movie catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

const (
	defaultUserAgent = "marquee/dev"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 4 << 10
)

// NewClient builds a Client for the given base URL and API key.
func NewClient(cfg ClientConfig, logger zerolog.Logger) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, fmt.Errorf("catalog API key is required")
	}
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL: base,
		apiKey:  key,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: ua,
		logger:    logger.With().Str("component", "catalog").Logger(),
	}, nil
}

// FetchDiscoverList retrieves the discover listing in response order.
func (c *Client) FetchDiscoverList(ctx context.Context) ([]MovieSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload DiscoverResponse
	if err := c.get(ctx, "discover", &payload, "discover", "movie"); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FetchMovieDetail retrieves full metadata for one movie.
func (c *Client) FetchMovieDetail(ctx context.Context, id int64) (*MovieDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return nil, fmt.Errorf("movie id must be positive, got %d", id)
	}
	var payload MovieDetail
	if err := c.get(ctx, "detail", &payload, "movie", strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, op string, dest any, segments ...string) error {
	reqURL := c.baseURL.JoinPath(segments...)
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	reqURL.RawQuery = values.Encode()
	// Logged and reported without the query so the key never leaks.
	path := reqURL.Path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return &RemoteServiceError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteServiceError{Op: op, Err: fmt.Errorf("execute request: %w", stripURL(err))}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("catalog request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    readStatusMessage(resp.Body),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &RemoteServiceError{Op: op, StatusCode: 0, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// readStatusMessage extracts status_message from an error body, if any.
func readStatusMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.StatusMessage)
}

// stripURL drops the request URL (and with it the api_key) from transport errors.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}

// ImageURL joins an image base URL and a relative path fragment.
func ImageURL(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
