package tools

import (
	"context"
	"fmt"

	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/pco"
	"github.com/jakenesler/planningcenter/services"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerServicesTools(s *server.MCPServer, pc *client.Client) {
	// get_organization
	s.AddTool(
		mcp.NewTool("get_organization",
			mcp.WithDescription("Get the Services organization the credentials belong to"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			org, err := pc.Services.Organization(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to get organization: %v", err)), nil
			}
			return jsonResult(org)
		},
	)

	// list_service_types
	s.AddTool(
		mcp.NewTool("list_service_types",
			mcp.WithDescription("List service types (e.g. Sunday Morning, Youth) with their ids"),
			mcp.WithString("name", mcp.Description("Only service types with this exact name")),
			mcp.WithString("order", mcp.Description("Sort by name or sequence, prefix with - for descending")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListServiceTypes(ctx, req, pc.Services)
		},
	)

	// list_plans
	s.AddTool(
		mcp.NewTool("list_plans",
			mcp.WithDescription("List plans (services on dates) of a service type"),
			mcp.WithString("service_type_id", mcp.Required(), mcp.Description("Service type id (see list_service_types)")),
			mcp.WithString("filter", mcp.Description("future, past or no_dates")),
			mcp.WithString("order", mcp.Description("Sort by created_at, sort_date, title or updated_at, prefix with - for descending")),
			mcp.WithString("include", mcp.Description("Comma-separated: contributors, my_schedules, plan_times, series")),
			mcp.WithString("limit", mcp.Description("Max number of plans to return")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListPlans(ctx, req, pc.Services)
		},
	)

	// list_teams
	s.AddTool(
		mcp.NewTool("list_teams",
			mcp.WithDescription("List Services teams"),
			mcp.WithString("name", mcp.Description("Only teams with this exact name")),
			mcp.WithString("include", mcp.Description("Comma-separated: people, person_team_position_assignments, service_type, team_leaders, team_positions")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListTeams(ctx, req, pc.Services)
		},
	)
}

func handleListServiceTypes(ctx context.Context, req mcp.CallToolRequest, app *services.App) (*mcp.CallToolResult, error) {
	opts := &services.ServiceTypeOptions{
		Order: mcp.ParseString(req, "order", ""),
		Where: services.ServiceTypeWhere{Name: mcp.ParseString(req, "name", "")},
	}
	types, err := app.ServiceTypes.List(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list service types: %v", err)), nil
	}
	return jsonResult(types)
}

func handleListPlans(ctx context.Context, req mcp.CallToolRequest, app *services.App) (*mcp.CallToolResult, error) {
	id, err := parseRequiredID("service_type_id", mcp.ParseString(req, "service_type_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit, err := parseLimit(mcp.ParseString(req, "limit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := &services.PlanOptions{
		Page:    pco.Page{Limit: limit},
		Include: splitList[services.PlanInclude](mcp.ParseString(req, "include", "")),
		Order:   mcp.ParseString(req, "order", ""),
		Filter:  mcp.ParseString(req, "filter", ""),
	}
	plans, err := app.ServiceTypes.With(id).Plans.List(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list plans: %v", err)), nil
	}
	return jsonResult(plans)
}

func handleListTeams(ctx context.Context, req mcp.CallToolRequest, app *services.App) (*mcp.CallToolResult, error) {
	opts := &services.TeamOptions{
		Include: splitList[services.TeamInclude](mcp.ParseString(req, "include", "")),
		Where:   services.TeamWhere{Name: mcp.ParseString(req, "name", "")},
	}
	teams, err := app.Teams.List(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list teams: %v", err)), nil
	}
	return jsonResult(teams)
}
