package groups

import "github.com/jakenesler/planningcenter/pco"

// Describe lists the endpoints of the app.
func Describe() []pco.Descriptor {
	read := []pco.Operation{pco.OpGet, pco.OpList}
	groups := pco.Describe(GroupOptions{})
	return []pco.Descriptor{
		{App: Name, Name: "groups", Kind: "Group", Summary: "Groups of people that meet together regularly.", Ops: read, Options: groups},
		{App: Name, Name: "memberships", Kind: "Membership", Parents: []string{"groups"}, Summary: "Memberships of a group.", Ops: read, Options: pco.Describe(MembershipOptions{})},
		{App: Name, Name: "people", Kind: "Person", Parents: []string{"groups"}, Summary: "Members of a group.", Ops: read},
		{App: Name, Name: "group_types", Kind: "GroupType", Summary: "Categories of groups.", Ops: read, Options: pco.Describe(GroupTypeOptions{})},
		{App: Name, Name: "resources", Kind: "Resource", Parents: []string{"group_types"}, Summary: "Files and links shared with a group type.", Ops: read, Options: pco.Describe(ResourceOptions{})},
		{App: Name, Name: "groups", Kind: "Group", Parents: []string{"group_types"}, Summary: "Groups of a group type.", Ops: read, Options: groups},
		{App: Name, Name: "people", Kind: "Person", Summary: "People known to Groups.", Ops: read, Options: pco.Describe(PeopleOptions{})},
		{App: Name, Name: "groups", Kind: "Group", Parents: []string{"people"}, Summary: "Groups a person belongs to.", Ops: read},
		{App: Name, Name: "memberships", Kind: "Membership", Parents: []string{"people"}, Summary: "Memberships of a person.", Ops: read},
	}
}
