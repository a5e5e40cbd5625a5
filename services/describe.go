package services

import "github.com/jakenesler/planningcenter/pco"

var (
	readOps = []pco.Operation{pco.OpGet, pco.OpList}
	listOps = []pco.Operation{pco.OpList}
)

// Describe lists the endpoints of the app.
func Describe() []pco.Descriptor {
	plans := pco.Describe(PlanOptions{})
	page := pco.Describe(pco.Page{})
	return []pco.Descriptor{
		{
			App:     Name,
			Kind:    "Organization",
			Summary: "The organization the credentials belong to.",
			Ops:     []pco.Operation{pco.OpFetch},
		},
		{
			App:     Name,
			Name:    "people",
			Kind:    "Person",
			Summary: "People added to Services.",
			Ops:     readOps,
			Options: pco.Describe(PeopleOptions{}),
			Actions: []pco.Action{{
				Name:    "blockouts",
				Kind:    "Blockout",
				Summary: "Blockout dates of a person.",
				Options: pco.Describe(BlockoutOptions{}),
			}},
		},
		{App: Name, Name: "schedules", Kind: "Schedule", Parents: []string{"people"}, Summary: "Scheduled positions of a person.", Ops: listOps, Options: page},
		{App: Name, Name: "emails", Kind: "Email", Parents: []string{"people"}, Summary: "Email addresses of a person.", Ops: listOps, Options: page},
		{
			App:     Name,
			Name:    "service_types",
			Kind:    "ServiceType",
			Summary: "Service types, the containers for plans.",
			Ops:     readOps,
			Options: pco.Describe(ServiceTypeOptions{}),
			Actions: []pco.Action{{
				Name:    "plans",
				Kind:    "Plan",
				Summary: "Plans of a service type.",
				Options: plans,
			}},
		},
		{App: Name, Name: "plans", Kind: "Plan", Parents: []string{"service_types"}, Summary: "Plans within a service type.", Ops: readOps, Options: plans},
		{App: Name, Name: "plan_templates", Kind: "PlanTemplate", Parents: []string{"service_types"}, Summary: "Templates new plans can be created from.", Ops: readOps, Options: page},
		{App: Name, Name: "time_preference_options", Kind: "TimePreferenceOption", Parents: []string{"service_types"}, Summary: "Service times people can prefer.", Ops: readOps, Options: page},
		{App: Name, Name: "plan_times", Kind: "PlanTime", Parents: []string{"service_types", "plans"}, Summary: "Service, rehearsal and other times of a plan.", Ops: readOps, Options: page},
		{App: Name, Name: "team_members", Kind: "PlanPerson", Parents: []string{"service_types", "plans"}, Summary: "People scheduled in a plan.", Ops: readOps, Options: page},
		{App: Name, Name: "needed_positions", Kind: "NeededPosition", Parents: []string{"service_types", "plans"}, Summary: "Unfilled positions in a plan.", Ops: readOps, Options: page},
		{App: Name, Name: "notes", Kind: "PlanNote", Parents: []string{"service_types", "plans"}, Summary: "Notes attached to a plan.", Ops: readOps, Options: page},
		{
			App:     Name,
			Name:    "teams",
			Kind:    "Team",
			Summary: "Teams within service types.",
			Ops:     readOps,
			Options: pco.Describe(TeamOptions{}),
		},
		{App: Name, Name: "team_positions", Kind: "TeamPosition", Parents: []string{"teams"}, Summary: "Positions on a team.", Ops: readOps, Options: page},
		{App: Name, Name: "person_team_position_assignments", Kind: "PersonTeamPositionAssignment", Parents: []string{"teams"}, Summary: "People assigned to positions on a team.", Ops: readOps, Options: page},
	}
}
