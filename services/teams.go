package services

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// TeamInclude names a resource that can be included with a team.
type TeamInclude string

const (
	IncludePeople                        TeamInclude = "people"
	IncludePersonTeamPositionAssignments TeamInclude = "person_team_position_assignments"
	IncludeServiceType                   TeamInclude = "service_type"
	IncludeTeamLeaders                   TeamInclude = "team_leaders"
	IncludeTeamPositions                 TeamInclude = "team_positions"
)

// TeamOptions are the list options of the teams endpoint.
type TeamOptions struct {
	pco.Page
	Include []TeamInclude `validate:"dive,oneof=people person_team_position_assignments service_type team_leaders team_positions"`
	Order   string        `validate:"omitempty,oneof=created_at name updated_at -created_at -name -updated_at"`
	Where   TeamWhere
}

type TeamWhere struct {
	Name string `schema:"name,omitempty"`
}

func (o TeamOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Include = pco.Strings(o.Include)
	p.Order = o.Order
	p.Where = o.Where
	return p
}

// Teams is the /services/v2/teams endpoint.
type Teams struct {
	ep *pco.Endpoint[Team]
}

// Get fetches one team.
func (e *Teams) Get(ctx context.Context, id pco.ID, include ...TeamInclude) (*Team, error) {
	p, err := pco.ParamsOf(TeamOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return e.ep.Get(ctx, id, p)
}

// List fetches every team.
func (e *Teams) List(ctx context.Context, opts *TeamOptions) ([]Team, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Resolve loads the team a relationship points at.
func (e *Teams) Resolve(ctx context.Context, ref TeamRef, include ...TeamInclude) (*Team, error) {
	return e.Get(ctx, ref.ID, include...)
}

// ResolveAll loads every referenced team concurrently, in the order of refs.
func (e *Teams) ResolveAll(ctx context.Context, refs []TeamRef, include ...TeamInclude) ([]Team, error) {
	p, err := pco.ParamsOf(TeamOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return pco.LoadAll(ctx, e.ep, pco.IDs(refs), p)
}

// TeamScope holds the endpoints nested under one team.
type TeamScope struct {
	TeamPositions                 *pco.Endpoint[TeamPosition]
	PersonTeamPositionAssignments *pco.Endpoint[PersonTeamPositionAssignment]
}

// With scopes the nested endpoints to team id.
func (e *Teams) With(id pco.ID) *TeamScope {
	return &TeamScope{
		TeamPositions:                 pco.Child[TeamPosition](e.ep, id, "team_positions", "TeamPosition"),
		PersonTeamPositionAssignments: pco.Child[PersonTeamPositionAssignment](e.ep, id, "person_team_position_assignments", "PersonTeamPositionAssignment"),
	}
}

// Team loads the team the reminder is for.
func (r TeamReminder) Team(ctx context.Context, teams *Teams, include ...TeamInclude) (*Team, error) {
	return teams.Get(ctx, r.TeamID, include...)
}
