package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "secret-key"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{BaseURL: baseURL, APIKey: testKey, UserAgent: "marquee/test"}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr string
	}{
		{"missing url", ClientConfig{APIKey: "k"}, "base URL is required"},
		{"bad scheme", ClientConfig{BaseURL: "ftp://example.com", APIKey: "k"}, "must be http or https"},
		{"no host", ClientConfig{BaseURL: "http://", APIKey: "k"}, "has no host"},
		{"missing key", ClientConfig{BaseURL: "https://example.com/3", APIKey: "  "}, "API key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg, zerolog.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	c, err := NewClient(ClientConfig{BaseURL: "https://api.example.com/3/?x=1#f", APIKey: "k"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/3", c.baseURL.Path)
	assert.Empty(t, c.baseURL.RawQuery)
	assert.Equal(t, defaultUserAgent, c.userAgent)
}

func TestClient_FetchDiscoverList(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey, gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 3, "title": "C", "poster_path": "/c.jpg", "popularity": 9.1},
				{"id": 1, "title": "A", "poster_path": "/a.jpg"},
				{"id": 2, "title": "B", "poster_path": null}
			],
			"total_pages": 10
		}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL+"/3")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	movies, err := c.FetchDiscoverList(ctx)
	require.NoError(t, err)

	assert.Equal(t, "/3/discover/movie", gotPath)
	assert.Equal(t, testKey, gotKey)
	assert.Equal(t, "marquee/test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, []MovieSummary{
		{ID: 3, Title: "C", PosterPath: "/c.jpg"},
		{ID: 1, Title: "A", PosterPath: "/a.jpg"},
		{ID: 2, Title: "B"},
	}, movies)
}

func TestClient_FetchMovieDetail(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":             1,
			"original_title": "A!",
			"overview":       "plot",
			"backdrop_path":  "/b.jpg",
			"runtime":        101,
			"genres":         []map[string]any{{"id": 18, "name": "Drama"}},
		})
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	detail, err := c.FetchMovieDetail(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "/movie/1", gotPath)
	assert.Equal(t, int64(1), detail.ID)
	assert.Equal(t, "A!", detail.OriginalTitle)
	assert.Equal(t, "plot", detail.Overview)
	assert.Equal(t, "/b.jpg", detail.BackdropPath)
	assert.Equal(t, 101, detail.Runtime)
	assert.Equal(t, []string{"Drama"}, detail.GenreNames())
}

func TestClient_FetchMovieDetailRejectsInvalidID(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	_, err := c.FetchMovieDetail(context.Background(), 0)
	require.Error(t, err)
	assert.False(t, IsRemoteServiceError(err))
}

func TestClient_NonSuccessStatusIsRemoteServiceError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/discover/movie":
			w.WriteHeader(http.StatusInternalServerError)
		case "/movie/7":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)

	_, err := c.FetchDiscoverList(context.Background())
	var rse *RemoteServiceError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, http.StatusInternalServerError, rse.StatusCode)
	assert.Equal(t, "discover", rse.Op)
	assert.Contains(t, err.Error(), "status 500")

	_, err = c.FetchMovieDetail(context.Background(), 7)
	require.ErrorAs(t, err, &rse)
	assert.True(t, rse.IsUnauthorized())
	assert.Contains(t, rse.Message, "Invalid API key")

	_, err = c.FetchMovieDetail(context.Background(), 8)
	require.ErrorAs(t, err, &rse)
	assert.True(t, rse.IsNotFound())
}

func TestClient_DecodeErrorIsRemoteServiceError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	_, err := c.FetchDiscoverList(context.Background())
	require.Error(t, err)
	assert.True(t, IsRemoteServiceError(err))
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_TransportErrorDoesNotLeakKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := newTestClient(t, url)
	_, err := c.FetchDiscoverList(context.Background())
	require.Error(t, err)

	var rse *RemoteServiceError
	require.True(t, errors.As(err, &rse))
	assert.Zero(t, rse.StatusCode)
	assert.NotContains(t, err.Error(), testKey)
	assert.True(t, strings.HasPrefix(err.Error(), "catalog discover:"))
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://image.example.org/t/p/original", "/a.jpg", "https://image.example.org/t/p/original/a.jpg"},
		{"https://image.example.org/t/p/original/", "a.jpg", "https://image.example.org/t/p/original/a.jpg"},
		{"https://image.example.org", "", ""},
		{"https://image.example.org", "   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImageURL(tt.base, tt.path), "ImageURL(%q, %q)", tt.base, tt.path)
	}
}
