package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(baseURL string, mockMode bool) *Client {
	return NewClient(baseURL, mockMode, time.Hour, time.Second, zap.NewNop())
}

func TestPostsMockMode(t *testing.T) {
	client := newTestClient("http://cms.example.com", true)

	posts, err := client.Posts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, MockPosts(), posts)
}

func TestPostsNoBaseURLFallsBackToMock(t *testing.T) {
	client := newTestClient("", false)

	posts, err := client.Posts(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, posts)
}

func TestPostsFetchesFromCMS(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"slug":"live-post","title":"Live Post","excerpt":"","body":"","published_at":"2024-05-01T00:00:00Z"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, false)

	posts, err := client.Posts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "live-post", posts[0].Slug)

	// Second call inside the revalidation window serves the cache
	_, err = client.Posts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPostsNetworkErrorFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable

	client := newTestClient(server.URL, false)

	posts, err := client.Posts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, MockPosts(), posts)
}

// A reachable CMS returning an HTTP error surfaces it instead of silently
// falling back
func TestPostsHTTPErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, false)

	_, err := client.Posts(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPostsSchemaValidationFailureSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"missing slug"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, false)

	_, err := client.Posts(context.Background())
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestPostsMalformedJSONSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, false)

	_, err := client.Posts(context.Background())
	assert.ErrorIs(t, err, ErrInvalidSchema)
}
