package services

import (
	"context"
	"iter"
	"time"

	"github.com/jakenesler/planningcenter/pco"
)

// ServiceTypeInclude names a resource that can be included with a service
// type.
type ServiceTypeInclude string

const IncludeTimePreferenceOptions ServiceTypeInclude = "time_preference_options"

// ServiceTypeOptions are the list options of the service types endpoint.
type ServiceTypeOptions struct {
	pco.Page
	Include []ServiceTypeInclude `validate:"dive,oneof=time_preference_options"`
	Order   string               `validate:"omitempty,oneof=name sequence -name -sequence"`
	Where   ServiceTypeWhere
}

type ServiceTypeWhere struct {
	Name string `schema:"name,omitempty"`
}

func (o ServiceTypeOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Include = pco.Strings(o.Include)
	p.Order = o.Order
	p.Where = o.Where
	return p
}

// PlanInclude names a resource that can be included with a plan.
type PlanInclude string

const (
	IncludeContributors PlanInclude = "contributors"
	IncludeMySchedules  PlanInclude = "my_schedules"
	IncludePlanTimes    PlanInclude = "plan_times"
	IncludeSeries       PlanInclude = "series"
)

// PlanOptions are the list options of plans.
type PlanOptions struct {
	pco.Page
	Include []PlanInclude `validate:"dive,oneof=contributors my_schedules plan_times series"`
	Order   string        `validate:"omitempty,oneof=created_at sort_date title updated_at -created_at -sort_date -title -updated_at"`
	Filter  string        `validate:"omitempty,oneof=future no_dates past"`
	Where   PlanWhere
}

type PlanWhere struct {
	CreatedAt   *time.Time `schema:"created_at,omitempty"`
	SeriesTitle string     `schema:"series_title,omitempty"`
	Title       string     `schema:"title,omitempty"`
	UpdatedAt   *time.Time `schema:"updated_at,omitempty"`
}

func (o PlanOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Include = pco.Strings(o.Include)
	p.Order = o.Order
	p.Filter = o.Filter
	p.Where = o.Where
	return p
}

// ServiceTypes is the /services/v2/service_types endpoint.
type ServiceTypes struct {
	ep *pco.Endpoint[ServiceType]
}

// Get fetches one service type.
func (e *ServiceTypes) Get(ctx context.Context, id pco.ID, include ...ServiceTypeInclude) (*ServiceType, error) {
	p, err := pco.ParamsOf(ServiceTypeOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return e.ep.Get(ctx, id, p)
}

// List fetches every service type.
func (e *ServiceTypes) List(ctx context.Context, opts *ServiceTypeOptions) ([]ServiceType, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Resolve loads the service type a relationship points at.
func (e *ServiceTypes) Resolve(ctx context.Context, ref ServiceTypeRef, include ...ServiceTypeInclude) (*ServiceType, error) {
	return e.Get(ctx, ref.ID, include...)
}

// Plans lists the plans of a service type.
func (e *ServiceTypes) Plans(ctx context.Context, serviceTypeID pco.ID, opts *PlanOptions) ([]Plan, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return pco.ListAction[Plan](ctx, e.ep, serviceTypeID, "plans", p)
}

// ServiceTypeScope holds the endpoints nested under one service type.
type ServiceTypeScope struct {
	Plans                 *Plans
	PlanTemplates         *pco.Endpoint[PlanTemplate]
	TimePreferenceOptions *pco.Endpoint[TimePreferenceOption]
}

// With scopes the nested endpoints to service type id.
func (e *ServiceTypes) With(id pco.ID) *ServiceTypeScope {
	return &ServiceTypeScope{
		Plans:                 &Plans{ep: pco.Child[Plan](e.ep, id, "plans", "Plan")},
		PlanTemplates:         pco.Child[PlanTemplate](e.ep, id, "plan_templates", "PlanTemplate"),
		TimePreferenceOptions: pco.Child[TimePreferenceOption](e.ep, id, "time_preference_options", "TimePreferenceOption"),
	}
}

// Plans is the plans endpoint of one service type.
type Plans struct {
	ep *pco.Endpoint[Plan]
}

// Get fetches one plan.
func (e *Plans) Get(ctx context.Context, id pco.ID, include ...PlanInclude) (*Plan, error) {
	p, err := pco.ParamsOf(PlanOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return e.ep.Get(ctx, id, p)
}

// List fetches every plan.
func (e *Plans) List(ctx context.Context, opts *PlanOptions) ([]Plan, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// All streams plans page by page.
func (e *Plans) All(ctx context.Context, opts *PlanOptions) iter.Seq2[Plan, error] {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return func(yield func(Plan, error) bool) { yield(Plan{}, err) }
	}
	return e.ep.All(ctx, p)
}

// PlanScope holds the endpoints nested under one plan.
type PlanScope struct {
	PlanTimes       *pco.Endpoint[PlanTime]
	TeamMembers     *pco.Endpoint[PlanPerson]
	NeededPositions *pco.Endpoint[NeededPosition]
	Notes           *pco.Endpoint[PlanNote]
}

// With scopes the nested endpoints to plan id.
func (e *Plans) With(id pco.ID) *PlanScope {
	return &PlanScope{
		PlanTimes:       pco.Child[PlanTime](e.ep, id, "plan_times", "PlanTime"),
		TeamMembers:     pco.Child[PlanPerson](e.ep, id, "team_members", "PlanPerson"),
		NeededPositions: pco.Child[NeededPosition](e.ep, id, "needed_positions", "NeededPosition"),
		Notes:           pco.Child[PlanNote](e.ep, id, "notes", "PlanNote"),
	}
}
