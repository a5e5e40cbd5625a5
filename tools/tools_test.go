package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/jakenesler/planningcenter/catalog"
	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

type fakePCO struct {
	mu       sync.Mutex
	requests []request
	routes   map[string]string
}

func (f *fakePCO) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: string(body)})
	f.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	if r.URL.Query().Get("offset") != "" {
		key += "?offset=" + r.URL.Query().Get("offset")
	}
	resp, ok := f.routes[key]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errors": [{"status": "404", "title": "Not Found"}]}`)
		return
	}
	if resp == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, strings.ReplaceAll(resp, "{{host}}", "http://"+r.Host))
}

func (f *fakePCO) last() request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakePCO) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, routes map[string]string) (*client.Client, *config.Config, *fakePCO) {
	t.Helper()
	fake := &fakePCO{routes: routes}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	cfg := &config.Config{
		BaseURL:           srv.URL,
		ApplicationID:     "app",
		Secret:            "secret",
		APIVersions:       config.DefaultAPIVersions,
		PerPage:           25,
		Concurrency:       2,
		MaxResponseSizeKB: 50,
	}
	pc, err := client.New(cfg)
	require.NoError(t, err)
	return pc, cfg, fake
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func decode(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), v))
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(client.Describe(), config.DefaultAPIVersions)
	require.NoError(t, err)
	return cat
}

func TestRegisterAll(t *testing.T) {
	pc, cfg, _ := newTestClient(t, nil)
	s := server.NewMCPServer("planningcenter", "test", server.WithToolCapabilities(true))
	assert.NotPanics(t, func() { RegisterAll(s, cfg, pc, newCatalog(t)) })
}

func TestHandleListApps(t *testing.T) {
	res, err := handleListApps(context.Background(), newCatalog(t), config.DefaultAPIVersions)
	require.NoError(t, err)

	var apps []struct {
		Name       string `json:"name"`
		APIVersion string `json:"api_version"`
		Endpoints  int    `json:"endpoints"`
	}
	decode(t, res, &apps)
	require.Len(t, apps, 3)
	assert.Equal(t, "groups", apps[0].Name)
	assert.Equal(t, "2023-07-10", apps[0].APIVersion)
	assert.Equal(t, 18, apps[0].Endpoints)
}

func TestHandleListEndpoints(t *testing.T) {
	cat := newCatalog(t)

	res, err := handleListEndpoints(context.Background(), cat, "services", "Team", "")
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Contains(t, text, "# services API Endpoints (2)")
	assert.Contains(t, text, "## Team\n- GET /services/v2/teams: List teams\n")

	res, err = handleListEndpoints(context.Background(), cat, "giving", "", "")
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = handleListEndpoints(context.Background(), cat, "", "Nothing", "")
	require.NoError(t, err)
	assert.Equal(t, "No endpoints match the given filters.", resultText(t, res))
}

func TestHandleSearchAndDetails(t *testing.T) {
	cat := newCatalog(t)

	res, err := handleSearchAPI(context.Background(), cat, "blockout", "")
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "**[services]** GET /services/v2/people/{id}/blockouts")

	res, err = handleSearchAPI(context.Background(), cat, "", "")
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = handleGetEndpointDetails(context.Background(), cat, "/groups/v2/groups/{group_id}/memberships", "GET")
	require.NoError(t, err)
	var detail catalog.EndpointDetail
	decode(t, res, &detail)
	assert.Equal(t, "groups.groups.memberships.list", detail.OperationID)

	res, err = handleGetEndpointDetails(context.Background(), cat, "/groups/v2/nope", "GET")
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

const teamsPage = `{
	"data": [
		{"type": "Team", "id": "1", "attributes": {"name": "Band", "sequence": 1},
		 "relationships": {"service_type": {"data": {"type": "ServiceType", "id": "9"}}}},
		{"type": "Team", "id": "2", "attributes": {"name": "Tech", "sequence": 3},
		 "relationships": {"service_type": {"data": {"type": "ServiceType", "id": "9"}}}}
	],
	"included": [{"type": "ServiceType", "id": "9", "attributes": {"name": "Sunday"}}],
	"links": {"next": "{{host}}/services/v2/teams?offset=2"}
}`

const teamsLastPage = `{"data": [{"type": "Team", "id": "3", "attributes": {"name": "Vocals", "sequence": 2}}], "links": {}}`

func TestHandleCallAPI_Get(t *testing.T) {
	pc, cfg, fake := newTestClient(t, map[string]string{
		"GET /services/v2/teams":          teamsPage,
		"GET /services/v2/teams?offset=2": teamsLastPage,
	})

	res, err := handleCallAPI(context.Background(), newRequest(map[string]any{
		"path":    "/services/v2/teams",
		"include": "service_type",
		"order":   "name",
		"where":   `{"name": "Band"}`,
		"fields":  "id,attributes.name,service_type.attributes.name",
	}), cfg, pc.API)
	require.NoError(t, err)

	var teams []map[string]any
	decode(t, res, &teams)
	require.Len(t, teams, 2)
	assert.Equal(t, map[string]any{
		"id":           "1",
		"attributes":   map[string]any{"name": "Band"},
		"service_type": map[string]any{"attributes": map[string]any{"name": "Sunday"}},
	}, teams[0])

	req := fake.last()
	assert.Equal(t, "service_type", req.Query.Get("include"))
	assert.Equal(t, "name", req.Query.Get("order"))
	assert.Equal(t, "Band", req.Query.Get("where[name]"))
	assert.Equal(t, 1, fake.count())
}

func TestHandleCallAPI_AllPages(t *testing.T) {
	pc, cfg, fake := newTestClient(t, map[string]string{
		"GET /services/v2/teams":          teamsPage,
		"GET /services/v2/teams?offset=2": teamsLastPage,
	})

	res, err := handleCallAPI(context.Background(), newRequest(map[string]any{
		"path":   "services/v2/teams",
		"all":    "true",
		"match":  "attributes.sequence:gt:1",
		"fields": "attributes.name",
	}), cfg, pc.API)
	require.NoError(t, err)

	var teams []map[string]any
	decode(t, res, &teams)
	assert.Equal(t, []map[string]any{
		{"attributes": map[string]any{"name": "Tech"}},
		{"attributes": map[string]any{"name": "Vocals"}},
	}, teams)
	assert.Equal(t, 2, fake.count())

	res, err = handleCallAPI(context.Background(), newRequest(map[string]any{
		"path":  "/services/v2/teams",
		"all":   "true",
		"limit": "1",
	}), cfg, pc.API)
	require.NoError(t, err)
	decode(t, res, &teams)
	assert.Len(t, teams, 1)
	assert.Equal(t, 3, fake.count())
}

func TestHandleCallAPI_Destructive(t *testing.T) {
	pc, cfg, fake := newTestClient(t, map[string]string{
		"POST /people/v2/people":     `{"data": {"type": "Person", "id": "7", "attributes": {"first_name": "Ann"}}}`,
		"DELETE /people/v2/people/7": "",
	})
	args := map[string]any{
		"method": "post",
		"path":   "/people/v2/people",
		"body":   `{"data": {"type": "Person", "attributes": {"first_name": "Ann"}}}`,
	}

	res, err := handleCallAPI(context.Background(), newRequest(args), cfg, pc.API)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "allow_destructive")
	assert.Equal(t, 0, fake.count())

	cfg.AllowDestructive = true
	res, err = handleCallAPI(context.Background(), newRequest(args), cfg, pc.API)
	require.NoError(t, err)
	var person map[string]any
	decode(t, res, &person)
	assert.Equal(t, "7", person["id"])
	assert.JSONEq(t, args["body"].(string), fake.last().Body)

	res, err = handleCallAPI(context.Background(), newRequest(map[string]any{
		"method": "DELETE",
		"path":   "/people/v2/people/7",
	}), cfg, pc.API)
	require.NoError(t, err)
	assert.Equal(t, "DELETE /people/v2/people/7 succeeded with no content", resultText(t, res))
}

func TestHandleCallAPI_Errors(t *testing.T) {
	pc, cfg, _ := newTestClient(t, map[string]string{"GET /services/v2/teams": teamsPage})

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing path", map[string]any{}, "path is required"},
		{"bad where", map[string]any{"path": "/services/v2/teams", "where": "{"}, "invalid where JSON"},
		{"bad query", map[string]any{"path": "/services/v2/teams", "query": "[]"}, "invalid query JSON"},
		{"bad body", map[string]any{"path": "/services/v2/teams", "body": "{"}, "invalid body JSON"},
		{"not found", map[string]any{"path": "/services/v2/nothing"}, "HTTP 404"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handleCallAPI(context.Background(), newRequest(tt.args), cfg, pc.API)
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestHandleCallAPI_SizeGuard(t *testing.T) {
	pc, cfg, _ := newTestClient(t, map[string]string{"GET /services/v2/teams": teamsPage})
	cfg.MaxResponseSizeKB = 0
	res, err := handleCallAPI(context.Background(), newRequest(map[string]any{"path": "/services/v2/teams"}), cfg, pc.API)
	require.NoError(t, err)
	assert.False(t, res.IsError)

	big := `{"data": [{"type": "Team", "id": "1", "attributes": {"name": "` + strings.Repeat("x", 2048) + `"}}]}`
	pc, cfg, _ = newTestClient(t, map[string]string{"GET /services/v2/teams": big})
	cfg.MaxResponseSizeKB = 1
	res, err = handleCallAPI(context.Background(), newRequest(map[string]any{"path": "/services/v2/teams"}), cfg, pc.API)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "over the 1 KB limit")
}

func TestProcessResponse(t *testing.T) {
	items := []any{
		map[string]any{"id": "1", "attributes": map[string]any{"name": "Band", "sequence": float64(1)}},
		map[string]any{"id": "2", "attributes": map[string]any{"name": "Tech", "sequence": float64(3)}},
		"stray",
	}

	got := processResponse(items, "id", "attributes.name:contains:BAN", "")
	assert.Equal(t, []any{map[string]any{"id": "1"}}, got)

	got = processResponse(items, "", "", "2")
	assert.Len(t, got, 2)

	got = processResponse(items, "", "attributes.sequence:lt:2", "")
	assert.Len(t, got, 1)

	got = processResponse(items, "", "attributes.name:ne:band", "")
	assert.Len(t, got, 1)

	got = processResponse(map[string]any{"id": "1", "type": "Team"}, "type", "", "")
	assert.Equal(t, map[string]any{"type": "Team"}, got)

	assert.Equal(t, items, processResponse(items, "", "bad-filter", ""))

	got = processResponse(items, "", "attributes.name:eq:vocals", "")
	assert.Equal(t, []any{}, got)
}

func TestHandleCallAPI_NoMatchesIsEmptyArray(t *testing.T) {
	pc, cfg, _ := newTestClient(t, map[string]string{"GET /services/v2/teams": teamsLastPage})

	res, err := handleCallAPI(context.Background(), newRequest(map[string]any{
		"path":  "/services/v2/teams",
		"match": "attributes.name:eq:Band",
	}), cfg, pc.API)
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Equal(t, "[]", resultText(t, res))
}

func TestHandleCallAPI_RejectsPerPageOutOfRange(t *testing.T) {
	pc, cfg, fake := newTestClient(t, map[string]string{"GET /services/v2/teams": teamsLastPage})

	res, err := handleCallAPI(context.Background(), newRequest(map[string]any{
		"path":  "/services/v2/teams",
		"query": `{"per_page": 500}`,
	}), cfg, pc.API)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "per_page: must be at most 100")
	assert.Equal(t, 0, fake.count())
}
