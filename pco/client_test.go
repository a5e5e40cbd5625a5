package pco

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c, err = NewClient("https://example.test/", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", c.BaseURL())

	_, err = NewClient("/relative", nil)
	require.Error(t, err)
}

func TestClient_Resolve(t *testing.T) {
	c, err := NewClient("https://api.example.test", nil)
	require.NoError(t, err)

	got, err := c.resolve("/people/v2/people", url.Values{"per_page": {"10"}})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/people/v2/people?per_page=10", got)

	got, err = c.resolve("https://api.example.test/people/v2/people?offset=10", url.Values{"offset": {"0"}, "order": {"x"}})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/people/v2/people?offset=10&order=x", got)

	_, err = c.resolve("https://elsewhere.test/people/v2/people", nil)
	require.ErrorIs(t, err, ErrForeignLink)

	_, err = c.resolve("http://api.example.test/people/v2/people?offset=25", nil)
	require.ErrorIs(t, err, ErrForeignLink)
	assert.Contains(t, err.Error(), "http://api.example.test")
}

func TestClient_BearerAuth(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, http.StatusOK, `{"data": []}`)
	})
	c, err := NewClient(api.URL, &BearerAuth{Token: "tok"}, WithUserAgent("test-agent"))
	require.NoError(t, err)

	_, err = c.Do(context.Background(), Request{App: "people", Path: "/people/v2/people"})
	require.NoError(t, err)

	req := api.Requests()[0]
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))
	assert.Empty(t, req.Header.Get("X-PCO-API-Version"))
}

func TestClient_RateLimited(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "20")
		writeRaw(w, http.StatusTooManyRequests, `{"errors": [{"status": "429", "title": "Too Many Requests"}]}`)
	})
	c := newTestClient(t, api)

	_, err := c.Do(context.Background(), Request{Path: "/services/v2"})
	require.ErrorIs(t, err, ErrRateLimited)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 20*time.Second, apiErr.RetryAfter)
	assert.False(t, errors.Is(err, ErrServer))
}

func TestClient_RawReturnsErrorBodies(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, http.StatusInternalServerError, `oops`)
	})
	c := newTestClient(t, api)

	body, status, err := c.Raw(context.Background(), Request{Method: "get", Path: "/services/v2"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "oops", string(body))

	_, err = c.Do(context.Background(), Request{Path: "/services/v2"})
	require.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "HTTP 500: oops")
}

func TestClient_CacheServesGetsAndClearsOnWrite(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, http.StatusOK, `{"data": {"type": "Widget", "id": "1"}}`)
	})
	cache, err := NewDiskCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	c := newTestClient(t, api, WithCache(cache))
	ctx := context.Background()
	get := Request{Path: "/services/v2/widgets/1"}

	for range 2 {
		_, err := c.Do(ctx, get)
		require.NoError(t, err)
	}
	assert.Len(t, api.Requests(), 1)

	_, err = c.Do(ctx, Request{Method: http.MethodPatch, Path: "/services/v2/widgets/1", Body: map[string]any{}})
	require.NoError(t, err)

	_, err = c.Do(ctx, get)
	require.NoError(t, err)
	assert.Len(t, api.Requests(), 3)
}

func TestClient_CacheIsScopedToCredentialsAndVersion(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, http.StatusOK, `{"data": {"type": "Widget", "id": "1"}}`)
	})
	dir := t.TempDir()
	newClient := func(auth AuthStrategy, version string) *Client {
		cache, err := NewDiskCache(dir, time.Hour)
		require.NoError(t, err)
		c, err := NewClient(api.URL, auth, WithCache(cache), WithAPIVersions(map[string]string{"services": version}))
		require.NoError(t, err)
		return c
	}
	ctx := context.Background()
	get := Request{App: "services", Path: "/services/v2/widgets/1"}

	clients := []*Client{
		newClient(&BasicAuth{ApplicationID: "app", Secret: "secret"}, "2018-11-01"),
		newClient(&BasicAuth{ApplicationID: "other", Secret: "secret"}, "2018-11-01"),
		newClient(&BearerAuth{Token: "token"}, "2018-11-01"),
		newClient(&BearerAuth{Token: "token"}, "2024-01-01"),
	}
	for _, c := range clients {
		_, err := c.Do(ctx, get)
		require.NoError(t, err)
	}
	assert.Len(t, api.Requests(), len(clients))

	_, err := newClient(&BasicAuth{ApplicationID: "app", Secret: "secret"}, "2018-11-01").Do(ctx, get)
	require.NoError(t, err)
	assert.Len(t, api.Requests(), len(clients))

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, files, len(clients))
}

func TestClient_LogsRequests(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, http.StatusOK, `{"data": []}`)
	})
	core, logs := observer.New(zap.DebugLevel)
	c := newTestClient(t, api, WithLogger(zap.New(core)))

	_, err := c.Do(context.Background(), Request{App: "services", Path: "/services/v2/teams"})
	require.NoError(t, err)

	entries := logs.FilterMessage("api request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, api.Requests()[0].Header.Get("X-Request-Id"), fields["request_id"])
}
