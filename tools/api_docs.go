package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jakenesler/planningcenter/catalog"
	"github.com/jakenesler/planningcenter/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerDocTools(s *server.MCPServer, cfg *config.Config, cat *catalog.Catalog) {
	// list_apps
	s.AddTool(
		mcp.NewTool("list_apps",
			mcp.WithDescription("List the Planning Center apps (services, groups, people) with their API versions and endpoint counts"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListApps(ctx, cat, cfg.APIVersions)
		},
	)

	// list_endpoints
	s.AddTool(
		mcp.NewTool("list_endpoints",
			mcp.WithDescription("List API endpoints, optionally filtered by app, resource type or HTTP method"),
			mcp.WithString("app", mcp.Description("App name (services, groups, people)")),
			mcp.WithString("tag", mcp.Description("Filter by resource type (e.g. Plan, Team, Group)")),
			mcp.WithString("method", mcp.Description("Filter by HTTP method (GET, POST, PATCH, DELETE)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			app := mcp.ParseString(req, "app", "")
			tag := mcp.ParseString(req, "tag", "")
			method := strings.ToUpper(mcp.ParseString(req, "method", ""))
			return handleListEndpoints(ctx, cat, app, tag, method)
		},
	)

	// search_api
	s.AddTool(
		mcp.NewTool("search_api",
			mcp.WithDescription("Full-text search across the API catalog. Searches endpoint paths, summaries, descriptions, and resource types."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithString("app", mcp.Description("Limit search to a specific app")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query := mcp.ParseString(req, "query", "")
			app := mcp.ParseString(req, "app", "")
			return handleSearchAPI(ctx, cat, query, app)
		},
	)

	// get_endpoint_details
	s.AddTool(
		mcp.NewTool("get_endpoint_details",
			mcp.WithDescription("Get full details for a specific API endpoint including path parameters, include/order/filter values, where filters and request body attributes"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Endpoint path (e.g. /services/v2/service_types/{service_type_id}/plans)")),
			mcp.WithString("method", mcp.Description("HTTP method (defaults to GET)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			path := mcp.ParseString(req, "path", "")
			method := strings.ToUpper(mcp.ParseString(req, "method", "GET"))
			return handleGetEndpointDetails(ctx, cat, path, method)
		},
	)
}

func handleListApps(_ context.Context, cat *catalog.Catalog, versions map[string]string) (*mcp.CallToolResult, error) {
	type appInfo struct {
		Name       string `json:"name"`
		APIVersion string `json:"api_version,omitempty"`
		Endpoints  int    `json:"endpoints"`
	}

	var apps []appInfo
	for _, name := range cat.Apps() {
		apps = append(apps, appInfo{
			Name:       name,
			APIVersion: versions[name],
			Endpoints:  cat.Index(name).Count(),
		})
	}

	data, _ := json.MarshalIndent(apps, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func handleListEndpoints(_ context.Context, cat *catalog.Catalog, app, tag, method string) (*mcp.CallToolResult, error) {
	if app != "" && cat.Index(app) == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown app %q (available: %s)", app, strings.Join(cat.Apps(), ", "))), nil
	}

	endpoints := cat.Filter(app, tag, method)
	if len(endpoints) == 0 {
		return mcp.NewToolResultText("No endpoints match the given filters."), nil
	}

	title := "Planning Center"
	if app != "" {
		title = app
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s API Endpoints (%d)\n\n", title, len(endpoints)))

	// Group by tag
	tagMap := make(map[string][]catalog.EndpointSummary)
	for _, ep := range endpoints {
		t := ep.Tag
		if t == "" {
			t = "untagged"
		}
		tagMap[t] = append(tagMap[t], ep)
	}
	tags := make([]string, 0, len(tagMap))
	for t := range tagMap {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("## %s\n", t))
		for _, ep := range tagMap[t] {
			sb.WriteString(fmt.Sprintf("- %s %s: %s\n", ep.Method, ep.Path, ep.Summary))
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleSearchAPI(_ context.Context, cat *catalog.Catalog, query, app string) (*mcp.CallToolResult, error) {
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	results := cat.Search(query, app)
	if len(results) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Search results for %q (%d matches)\n\n", query, len(results)))
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("**[%s]** %s %s\n", r.App, r.Method, r.Path))
		if r.Summary != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", r.Summary))
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleGetEndpointDetails(_ context.Context, cat *catalog.Catalog, path, method string) (*mcp.CallToolResult, error) {
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	detail, err := cat.GetDetail(path, method)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, _ := json.MarshalIndent(detail, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
