package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jakenesler/planningcenter/pco"
	"github.com/mark3labs/mcp-go/mcp"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// parseLimit reads an optional positive item limit.
func parseLimit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return n, nil
}

func parseRequiredID(name, s string) (pco.ID, error) {
	if s == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := pco.ParseID(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// splitList splits a comma-separated list into typed values.
func splitList[T ~string](s string) []T {
	fields := parseFields(s)
	if len(fields) == 0 {
		return nil
	}
	out := make([]T, len(fields))
	for i, f := range fields {
		out[i] = T(f)
	}
	return out
}
