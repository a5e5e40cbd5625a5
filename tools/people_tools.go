package tools

import (
	"context"
	"fmt"

	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/pco"
	"github.com/jakenesler/planningcenter/people"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerPeopleTools(s *server.MCPServer, pc *client.Client) {
	// search_people
	s.AddTool(
		mcp.NewTool("search_people",
			mcp.WithDescription("Search the People directory by name, email or phone number"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Name, email address or phone number")),
			mcp.WithString("status", mcp.Description("active or inactive")),
			mcp.WithString("limit", mcp.Description("Max number of people to return (default 25)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchPeople(ctx, req, pc.People)
		},
	)

	// get_person
	s.AddTool(
		mcp.NewTool("get_person",
			mcp.WithDescription("Get one person from the People directory"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Person id")),
			mcp.WithString("include", mcp.Description("Comma-separated: addresses, emails, phone_numbers, households, primary_campus, field_data, ...")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetPerson(ctx, req, pc.People)
		},
	)
}

const defaultSearchLimit = 25

func handleSearchPeople(ctx context.Context, req mcp.CallToolRequest, app *people.App) (*mcp.CallToolResult, error) {
	query := mcp.ParseString(req, "query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	limit, err := parseLimit(mcp.ParseString(req, "limit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}

	where := people.PersonWhere{SearchNameOrEmailOrPhoneNumber: query}
	if status := mcp.ParseString(req, "status", ""); status != "" {
		where.Status = &status
	}
	opts := &people.PeopleOptions{
		Page:    pco.Page{Limit: limit},
		Include: []people.PersonInclude{people.IncludeEmails, people.IncludePhoneNumbers},
		Where:   where,
	}
	found, err := app.People.List(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search people: %v", err)), nil
	}
	return jsonResult(found)
}

func handleGetPerson(ctx context.Context, req mcp.CallToolRequest, app *people.App) (*mcp.CallToolResult, error) {
	id, err := parseRequiredID("id", mcp.ParseString(req, "id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	include := splitList[people.PersonInclude](mcp.ParseString(req, "include", ""))
	person, err := app.People.Get(ctx, id, include...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get person %s: %v", id, err)), nil
	}
	return jsonResult(person)
}
