// Package groups wraps the Groups app: groups, their memberships and the
// group types they belong to.
package groups

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// Name is the app's URL name.
const Name = "groups"

// App is the Groups API.
type App struct {
	Groups     *Groups
	GroupTypes *GroupTypes
	People     *People
}

// New returns the Groups app served through c.
func New(c *pco.Client) *App {
	app := pco.NewApp(c, Name)
	return &App{
		Groups:     &Groups{ep: pco.NewEndpoint[Group](app, "groups", "Group")},
		GroupTypes: &GroupTypes{ep: pco.NewEndpoint[GroupType](app, "group_types", "GroupType")},
		People:     &People{ep: pco.NewEndpoint[Person](app, "people", "Person")},
	}
}

// GroupInclude names a resource that can be included with a group.
type GroupInclude string

const (
	IncludeEnrollment GroupInclude = "enrollment"
	IncludeGroupType  GroupInclude = "group_type"
	IncludeLocation   GroupInclude = "location"
)

// GroupOptions are the list options of the groups endpoint.
type GroupOptions struct {
	pco.Page
	Include []GroupInclude `validate:"dive,oneof=enrollment group_type location"`
	Order   string         `validate:"omitempty,oneof=name -name"`
	Where   GroupWhere
}

type GroupWhere struct {
	ArchiveStatus string `schema:"archive_status,omitempty" validate:"omitempty,oneof=not_archived only include"`
	Name          string `schema:"name,omitempty"`
}

func (o GroupOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Include = pco.Strings(o.Include)
	p.Order = o.Order
	p.Where = o.Where
	return p
}

// Groups is the /groups/v2/groups endpoint.
type Groups struct {
	ep *pco.Endpoint[Group]
}

// Get fetches one group.
func (e *Groups) Get(ctx context.Context, id pco.ID, include ...GroupInclude) (*Group, error) {
	p, err := pco.ParamsOf(GroupOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return e.ep.Get(ctx, id, p)
}

// List fetches every group.
func (e *Groups) List(ctx context.Context, opts *GroupOptions) ([]Group, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Resolve loads the group a relationship points at.
func (e *Groups) Resolve(ctx context.Context, ref GroupRef, include ...GroupInclude) (*Group, error) {
	return e.Get(ctx, ref.ID, include...)
}

// MembershipInclude names a resource that can be included with a
// membership.
type MembershipInclude string

const IncludePerson MembershipInclude = "person"

// MembershipOptions are the list options of a group's memberships.
type MembershipOptions struct {
	pco.Page
	Include []MembershipInclude `validate:"dive,oneof=person"`
	Order   string              `validate:"omitempty,oneof=joined_at role -joined_at -role"`
	Where   MembershipWhere
}

type MembershipWhere struct {
	Role string `schema:"role,omitempty" validate:"omitempty,oneof=member leader"`
}

func (o MembershipOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Include = pco.Strings(o.Include)
	p.Order = o.Order
	p.Where = o.Where
	return p
}

// Memberships is the memberships endpoint of one group.
type Memberships struct {
	ep *pco.Endpoint[Membership]
}

// Get fetches one membership.
func (e *Memberships) Get(ctx context.Context, id pco.ID, include ...MembershipInclude) (*Membership, error) {
	p, err := pco.ParamsOf(MembershipOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return e.ep.Get(ctx, id, p)
}

// List fetches every membership of the group.
func (e *Memberships) List(ctx context.Context, opts *MembershipOptions) ([]Membership, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// GroupScope holds the endpoints nested under one group.
type GroupScope struct {
	Memberships *Memberships
	People      *pco.Endpoint[Person]
}

// With scopes the nested endpoints to group id.
func (e *Groups) With(id pco.ID) *GroupScope {
	return &GroupScope{
		Memberships: &Memberships{ep: pco.Child[Membership](e.ep, id, "memberships", "Membership")},
		People:      pco.Child[Person](e.ep, id, "people", "Person"),
	}
}
