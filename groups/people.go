package groups

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// PeopleOptions are the list options of the people endpoint.
type PeopleOptions struct {
	pco.Page
	Order string `validate:"omitempty,oneof=first_name last_name -first_name -last_name"`
	Where PeopleWhere
}

type PeopleWhere struct {
	FirstName string `schema:"first_name,omitempty"`
	LastName  string `schema:"last_name,omitempty"`
}

func (o PeopleOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Order = o.Order
	p.Where = o.Where
	return p
}

// People is the /groups/v2/people endpoint.
type People struct {
	ep *pco.Endpoint[Person]
}

// Get fetches one person.
func (e *People) Get(ctx context.Context, id pco.ID) (*Person, error) {
	return e.ep.Get(ctx, id, pco.Params{})
}

// List fetches every person.
func (e *People) List(ctx context.Context, opts *PeopleOptions) ([]Person, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Resolve loads the person a relationship points at.
func (e *People) Resolve(ctx context.Context, ref PersonRef) (*Person, error) {
	return e.Get(ctx, ref.ID)
}

// PersonScope holds the endpoints nested under one person.
type PersonScope struct {
	Groups      *pco.Endpoint[Group]
	Memberships *pco.Endpoint[Membership]
}

// With scopes the nested endpoints to person id.
func (e *People) With(id pco.ID) *PersonScope {
	return &PersonScope{
		Groups:      pco.Child[Group](e.ep, id, "groups", "Group"),
		Memberships: pco.Child[Membership](e.ep, id, "memberships", "Membership"),
	}
}
