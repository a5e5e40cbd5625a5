package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/config"
	"github.com/jakenesler/planningcenter/pco"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerAPICallTool(s *server.MCPServer, cfg *config.Config, pc *client.Client) {
	s.AddTool(
		mcp.NewTool("call_api",
			mcp.WithDescription("Make an authenticated call to the Planning Center API. Returns the JSON:API data with included resources stitched under their relationship names. Use fields/match/limit to reduce response size."),
			mcp.WithString("method", mcp.Description("HTTP method (default: GET). POST, PATCH and DELETE need allow_destructive in the config.")),
			mcp.WithString("path", mcp.Required(), mcp.Description("API path including the app and version (e.g. /services/v2/teams, /people/v2/people/1)")),
			mcp.WithString("include", mcp.Description("Comma-separated related resources to include (e.g. \"emails,phone_numbers\")")),
			mcp.WithString("order", mcp.Description("Sort attribute, prefix with - for descending (e.g. \"-created_at\")")),
			mcp.WithString("filter", mcp.Description("Named API filter (e.g. \"future\" for plans)")),
			mcp.WithString("where", mcp.Description("Attribute filters as JSON object, sent as where[attr] (e.g. {\"name\": \"Band\"})")),
			mcp.WithString("query", mcp.Description("Extra query parameters as JSON object (e.g. {\"per_page\": 100})")),
			mcp.WithString("body", mcp.Description("Request body as JSON string")),
			mcp.WithString("all", mcp.Description("\"true\" follows pagination links and returns every item, bounded by limit")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to include in response. Supports nested fields with dot notation (e.g. \"id,attributes.name,team.attributes.name\")")),
			mcp.WithString("match", mcp.Description("Filter array results. Format: \"field:op:value\". Ops: contains, eq, ne, gt, lt (e.g. \"attributes.name:contains:band\", \"attributes.sequence:gt:2\")")),
			mcp.WithString("limit", mcp.Description("Max number of items to return from array responses")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCallAPI(ctx, req, cfg, pc.API)
		},
	)
}

func handleCallAPI(ctx context.Context, req mcp.CallToolRequest, cfg *config.Config, api *pco.Client) (*mcp.CallToolResult, error) {
	method := strings.ToUpper(mcp.ParseString(req, "method", "GET"))
	path := mcp.ParseString(req, "path", "")
	includeStr := mcp.ParseString(req, "include", "")
	order := mcp.ParseString(req, "order", "")
	filter := mcp.ParseString(req, "filter", "")
	whereStr := mcp.ParseString(req, "where", "")
	queryStr := mcp.ParseString(req, "query", "")
	bodyStr := mcp.ParseString(req, "body", "")
	allStr := mcp.ParseString(req, "all", "")
	fieldsStr := mcp.ParseString(req, "fields", "")
	matchStr := mcp.ParseString(req, "match", "")
	limitStr := mcp.ParseString(req, "limit", "")

	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if method != http.MethodGet && !cfg.AllowDestructive {
		return mcp.NewToolResultError(fmt.Sprintf("%s requests are disabled; set allow_destructive: true in the config to enable them", method)), nil
	}

	p := pco.Params{Include: parseFields(includeStr), Order: order, Filter: filter}

	// Parse where filters
	if whereStr != "" {
		where, err := parseJSONObject(whereStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid where JSON: %v", err)), nil
		}
		p.Where = where
	}

	// Parse query params
	if queryStr != "" {
		query, err := parseJSONObject(queryStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid query JSON: %v", err)), nil
		}
		p.Extra = url.Values{}
		for k, v := range query {
			p.Extra.Set(k, v)
		}
	}

	// Parse body
	var body any
	if bodyStr != "" {
		if !json.Valid([]byte(bodyStr)) {
			return mcp.NewToolResultError("invalid body JSON"), nil
		}
		body = json.RawMessage(bodyStr)
	}

	app := appOf(path)
	var (
		jsonResp any
		err      error
	)
	if method == http.MethodGet && allStr == "true" {
		if limit, convErr := strconv.Atoi(limitStr); convErr == nil && limit > 0 {
			p.Limit = limit
		}
		jsonResp, err = streamAll(ctx, api, app, path, p)
	} else {
		jsonResp, err = doOnce(ctx, api, app, method, path, p, body)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err)), nil
	}
	if jsonResp == nil {
		return mcp.NewToolResultText(fmt.Sprintf("%s %s succeeded with no content", method, path)), nil
	}

	// Apply match, fields, limit to array responses
	needsProcessing := fieldsStr != "" || matchStr != "" || limitStr != ""
	if needsProcessing {
		jsonResp = processResponse(jsonResp, fieldsStr, matchStr, limitStr)
	}

	data, _ := json.MarshalIndent(jsonResp, "", "  ")
	if maxKB := cfg.MaxResponseSizeKB; maxKB > 0 && len(data) > maxKB*1024 {
		return mcp.NewToolResultError(fmt.Sprintf("response is %d KB, over the %d KB limit; narrow it with fields, match or limit", len(data)/1024, maxKB)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// appOf returns the app segment of an API path, which selects the
// version header.
func appOf(path string) string {
	app, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return app
}

func parseJSONObject(s string) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out, nil
}

// doOnce performs one request and returns the stitched data: an array
// for collections, an object for a single resource and nil for no data.
func doOnce(ctx context.Context, api *pco.Client, app, method, path string, p pco.Params, body any) (any, error) {
	query, err := p.Values()
	if err != nil {
		return nil, err
	}
	doc, err := api.Do(ctx, pco.Request{App: app, Method: method, Path: path, Query: query, Body: body})
	if err != nil {
		return nil, err
	}
	items, err := pco.Stitch(doc)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeItems(items)
	if err != nil {
		return nil, err
	}
	if doc.IsCollection() {
		return decoded, nil
	}
	if len(decoded) == 0 {
		return nil, nil
	}
	return decoded[0], nil
}

func streamAll(ctx context.Context, api *pco.Client, app, path string, p pco.Params) (any, error) {
	out := []any{}
	for raw, err := range pco.Stream(ctx, pco.NewApp(api, app), path, p) {
		if err != nil {
			return nil, err
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding resource: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeItems(items []json.RawMessage) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, raw := range items {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding resource: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// processResponse applies match, fields, and limit to the stitched response.
func processResponse(resp any, fieldsStr, matchStr, limitStr string) any {
	// If response is an array, apply match and limit
	arr, isArray := resp.([]any)
	if !isArray {
		// Single object, just apply fields
		if obj, ok := resp.(map[string]any); ok && fieldsStr != "" {
			return pickFields(obj, parseFields(fieldsStr))
		}
		return resp
	}

	// Apply match
	if matchStr != "" {
		arr = applyFilter(arr, matchStr)
	}

	// Apply limit
	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(arr) {
			arr = arr[:limit]
		}
	}

	// Apply field selection
	if fieldsStr != "" {
		fields := parseFields(fieldsStr)
		result := make([]any, len(arr))
		for i, item := range arr {
			if obj, ok := item.(map[string]any); ok {
				result[i] = pickFields(obj, fields)
			} else {
				result[i] = item
			}
		}
		return result
	}

	return arr
}

// parseFields splits a comma-separated fields string.
func parseFields(s string) []string {
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// pickFields extracts only the specified fields from an object.
// Supports dot notation for nested fields (e.g. "attributes.name").
func pickFields(obj map[string]any, fields []string) map[string]any {
	result := make(map[string]any)
	for _, f := range fields {
		parts := strings.SplitN(f, ".", 2)
		key := parts[0]
		val, ok := obj[key]
		if !ok {
			continue
		}
		if len(parts) == 1 {
			result[key] = val
		} else {
			// Nested field
			if nested, ok := val.(map[string]any); ok {
				if existing, ok := result[key].(map[string]any); ok {
					// Merge into existing picked nested object
					for k, v := range pickFields(nested, []string{parts[1]}) {
						existing[k] = v
					}
				} else {
					result[key] = pickFields(nested, []string{parts[1]})
				}
			}
		}
	}
	return result
}

// applyFilter filters array items. Format: "field:op:value"
// Ops: contains, eq, ne, gt, lt
func applyFilter(arr []any, matchStr string) []any {
	parts := strings.SplitN(matchStr, ":", 3)
	if len(parts) != 3 {
		return arr
	}
	field, op, value := parts[0], parts[1], parts[2]

	result := []any{}
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fieldVal := getNestedField(obj, field)
		if fieldVal == nil {
			continue
		}
		if matchFilter(fieldVal, op, value) {
			result = append(result, item)
		}
	}
	return result
}

// getNestedField retrieves a value using dot notation.
func getNestedField(obj map[string]any, field string) any {
	parts := strings.SplitN(field, ".", 2)
	val, ok := obj[parts[0]]
	if !ok {
		return nil
	}
	if len(parts) == 1 {
		return val
	}
	if nested, ok := val.(map[string]any); ok {
		return getNestedField(nested, parts[1])
	}
	return nil
}

// matchFilter checks if a value matches the filter operation.
func matchFilter(fieldVal any, op, value string) bool {
	fieldStr := fmt.Sprintf("%v", fieldVal)

	switch op {
	case "contains":
		return strings.Contains(strings.ToLower(fieldStr), strings.ToLower(value))
	case "eq":
		return strings.EqualFold(fieldStr, value)
	case "ne":
		return !strings.EqualFold(fieldStr, value)
	case "gt":
		fv, err1 := strconv.ParseFloat(fieldStr, 64)
		cv, err2 := strconv.ParseFloat(value, 64)
		return err1 == nil && err2 == nil && fv > cv
	case "lt":
		fv, err1 := strconv.ParseFloat(fieldStr, 64)
		cv, err2 := strconv.ParseFloat(value, 64)
		return err1 == nil && err2 == nil && fv < cv
	}
	return false
}
