package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Post is one blog/CMS article
type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
}

var ErrInvalidSchema = errors.New("CMS response failed schema validation")

// Client fetches blog posts from the CMS with a mock fallback. Network-level
// failures and absent configuration fall back to local mock data; an HTTP
// error or invalid payload from a reachable CMS is surfaced instead.
type Client struct {
	baseURL    string
	mockMode   bool
	revalidate time.Duration
	httpClient *http.Client
	logger     *zap.Logger

	mu        sync.Mutex
	cached    []Post
	fetchedAt time.Time
}

// NewClient creates a CMS client. An empty baseURL or mockMode forces the
// local mock source.
func NewClient(baseURL string, mockMode bool, revalidate, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		mockMode:   mockMode,
		revalidate: revalidate,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Posts returns the published articles, serving the cache inside the
// revalidation window
func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	if c.mockMode || c.baseURL == "" {
		return MockPosts(), nil
	}

	c.mu.Lock()
	if c.cached != nil && time.Since(c.fetchedAt) < c.revalidate {
		cached := c.cached
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	posts, err := c.fetch(ctx)
	if err != nil {
		var netErr *fetchError
		if errors.As(err, &netErr) {
			// Unreachable CMS degrades to mock content
			c.logger.Warn("CMS unreachable, serving mock posts", zap.Error(err))
			return MockPosts(), nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.cached = posts
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return posts, nil
}

// fetchError marks transport-level failures eligible for mock fallback
type fetchError struct {
	err error
}

func (e *fetchError) Error() string { return e.err.Error() }
func (e *fetchError) Unwrap() error { return e.err }

func (c *Client) fetch(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CMS request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &fetchError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CMS returned status %d", resp.StatusCode)
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	for _, p := range posts {
		if p.Slug == "" || p.Title == "" {
			return nil, fmt.Errorf("%w: post missing slug or title", ErrInvalidSchema)
		}
	}

	return posts, nil
}
