package pco

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the fake API.
type recorded struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// fakeAPI is an httptest server that records requests and answers with
// handler.
type fakeAPI struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recorded
}

func newFakeAPI(t *testing.T, handler http.HandlerFunc) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		api.mu.Lock()
		api.requests = append(api.requests, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		api.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) Requests() []recorded {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]recorded, len(a.requests))
	copy(out, a.requests)
	return out
}

func newTestClient(t *testing.T, api *fakeAPI, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithAPIVersions(map[string]string{"services": "2018-11-01"})}, opts...)
	c, err := NewClient(api.URL, &BasicAuth{ApplicationID: "app", Secret: "secret"}, opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

type widgetKind struct{}

func (widgetKind) Kind() string { return "Widget" }

type widgetAttributes struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty" validate:"omitempty,oneof=red blue"`
}

type widget struct {
	ID            ID               `json:"id"`
	Type          string           `json:"type"`
	Attributes    widgetAttributes `json:"attributes"`
	Relationships struct {
		Owner *Ref[widgetKind] `json:"owner"`
	} `json:"relationships"`
	Owner *widget `json:"owner,omitempty"`
}
