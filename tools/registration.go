package tools

import (
	"github.com/jakenesler/planningcenter/catalog"
	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/config"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAll registers all tools with the MCP server.
func RegisterAll(s *server.MCPServer, cfg *config.Config, pc *client.Client, cat *catalog.Catalog) {
	registerDocTools(s, cfg, cat)
	registerAPICallTool(s, cfg, pc)
	registerServicesTools(s, pc)
	registerGroupsTools(s, pc)
	registerPeopleTools(s, pc)
}
