package groups

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// GroupTypeOptions are the list options of the group types endpoint.
type GroupTypeOptions struct {
	pco.Page
	Order string `validate:"omitempty,oneof=name position -name -position"`
}

func (o GroupTypeOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Order = o.Order
	return p
}

// GroupTypes is the /groups/v2/group_types endpoint.
type GroupTypes struct {
	ep *pco.Endpoint[GroupType]
}

// Get fetches one group type.
func (e *GroupTypes) Get(ctx context.Context, id pco.ID) (*GroupType, error) {
	return e.ep.Get(ctx, id, pco.Params{})
}

// List fetches every group type.
func (e *GroupTypes) List(ctx context.Context, opts *GroupTypeOptions) ([]GroupType, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Resolve loads the group type a relationship points at.
func (e *GroupTypes) Resolve(ctx context.Context, ref GroupTypeRef) (*GroupType, error) {
	return e.Get(ctx, ref.ID)
}

// ResourceOptions are the list options of a group type's resources.
type ResourceOptions struct {
	pco.Page
	Order string `validate:"omitempty,oneof=name last_updated -name -last_updated"`
}

func (o ResourceOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Order = o.Order
	return p
}

// Resources is the resources endpoint of one group type.
type Resources struct {
	ep *pco.Endpoint[Resource]
}

// Get fetches one resource.
func (e *Resources) Get(ctx context.Context, id pco.ID) (*Resource, error) {
	return e.ep.Get(ctx, id, pco.Params{})
}

// List fetches every resource.
func (e *Resources) List(ctx context.Context, opts *ResourceOptions) ([]Resource, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// GroupTypeScope holds the endpoints nested under one group type.
type GroupTypeScope struct {
	Resources *Resources
	Groups    *pco.Endpoint[Group]
}

// With scopes the nested endpoints to group type id.
func (e *GroupTypes) With(id pco.ID) *GroupTypeScope {
	return &GroupTypeScope{
		Resources: &Resources{ep: pco.Child[Resource](e.ep, id, "resources", "Resource")},
		Groups:    pco.Child[Group](e.ep, id, "groups", "Group"),
	}
}
