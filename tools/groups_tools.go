package tools

import (
	"context"
	"fmt"

	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/groups"
	"github.com/jakenesler/planningcenter/pco"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerGroupsTools(s *server.MCPServer, pc *client.Client) {
	// list_groups
	s.AddTool(
		mcp.NewTool("list_groups",
			mcp.WithDescription("List groups with their group type and location"),
			mcp.WithString("name", mcp.Description("Only groups with this exact name")),
			mcp.WithString("archive_status", mcp.Description("not_archived (default), only or include")),
			mcp.WithString("limit", mcp.Description("Max number of groups to return")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListGroups(ctx, req, pc.Groups)
		},
	)

	// list_group_memberships
	s.AddTool(
		mcp.NewTool("list_group_memberships",
			mcp.WithDescription("List the members of a group with their role and person details"),
			mcp.WithString("group_id", mcp.Required(), mcp.Description("Group id (see list_groups)")),
			mcp.WithString("role", mcp.Description("member or leader")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListGroupMemberships(ctx, req, pc.Groups)
		},
	)
}

func handleListGroups(ctx context.Context, req mcp.CallToolRequest, app *groups.App) (*mcp.CallToolResult, error) {
	limit, err := parseLimit(mcp.ParseString(req, "limit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := &groups.GroupOptions{
		Page:    pco.Page{Limit: limit},
		Include: []groups.GroupInclude{groups.IncludeGroupType, groups.IncludeLocation},
		Where: groups.GroupWhere{
			ArchiveStatus: mcp.ParseString(req, "archive_status", ""),
			Name:          mcp.ParseString(req, "name", ""),
		},
	}
	list, err := app.Groups.List(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list groups: %v", err)), nil
	}
	return jsonResult(list)
}

func handleListGroupMemberships(ctx context.Context, req mcp.CallToolRequest, app *groups.App) (*mcp.CallToolResult, error) {
	id, err := parseRequiredID("group_id", mcp.ParseString(req, "group_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := &groups.MembershipOptions{
		Include: []groups.MembershipInclude{groups.IncludePerson},
		Where:   groups.MembershipWhere{Role: mcp.ParseString(req, "role", "")},
	}
	memberships, err := app.Groups.With(id).Memberships.List(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list memberships: %v", err)), nil
	}
	return jsonResult(memberships)
}
