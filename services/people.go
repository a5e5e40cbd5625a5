package services

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// PeopleOptions are the list options of the people endpoint.
type PeopleOptions struct {
	pco.Page
	Order string `validate:"omitempty,oneof=created_at first_name last_name updated_at -created_at -first_name -last_name -updated_at"`
}

func (o PeopleOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Order = o.Order
	return p
}

// BlockoutOptions are the options of People.Blockouts.
type BlockoutOptions struct {
	pco.Page
	Filter string `validate:"omitempty,oneof=past future"`
}

func (o BlockoutOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Filter = o.Filter
	return p
}

// People is the /services/v2/people endpoint.
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

// Blockouts lists the blockouts of a person.
func (e *People) Blockouts(ctx context.Context, personID pco.ID, opts *BlockoutOptions) ([]Blockout, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return pco.ListAction[Blockout](ctx, e.ep, personID, "blockouts", p)
}

// PersonScope holds the endpoints nested under one person.
type PersonScope struct {
	Schedules *pco.Endpoint[Schedule]
	Emails    *pco.Endpoint[Email]
}

// With scopes the nested endpoints to person id.
func (e *People) With(id pco.ID) *PersonScope {
	return &PersonScope{
		Schedules: pco.Child[Schedule](e.ep, id, "schedules", "Schedule"),
		Emails:    pco.Child[Email](e.ep, id, "emails", "Email"),
	}
}
