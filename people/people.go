// Package people wraps the People app, the directory of every person in
// the organization.
package people

import (
	"context"
	"time"

	"github.com/jakenesler/planningcenter/pco"
)

// Name is the app's URL name.
const Name = "people"

// Person statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// App is the People API.
type App struct {
	People *People
}

// New returns the People app served through c.
func New(c *pco.Client) *App {
	app := pco.NewApp(c, Name)
	return &App{
		People: &People{ep: pco.NewEndpoint[Person](app, "people", "Person")},
	}
}

// PersonParams are the writable attributes of a person. They double as
// where filters when listing. Nil fields are left out.
type PersonParams struct {
	AccountingAdministrator *bool      `json:"accounting_administrator,omitempty" schema:"accounting_administrator,omitempty"`
	Anniversary             *pco.Date  `json:"anniversary,omitempty" schema:"anniversary,omitempty"`
	Birthdate               *pco.Date  `json:"birthdate,omitempty" schema:"birthdate,omitempty"`
	Child                   *bool      `json:"child,omitempty" schema:"child,omitempty"`
	FirstName               *string    `json:"first_name,omitempty" schema:"first_name,omitempty"`
	Gender                  *string    `json:"gender,omitempty" schema:"gender,omitempty"`
	GivenName               *string    `json:"given_name,omitempty" schema:"given_name,omitempty"`
	Grade                   *int       `json:"grade,omitempty" schema:"grade,omitempty" validate:"omitempty,min=-1,max=12"`
	GraduationYear          *int       `json:"graduation_year,omitempty" schema:"graduation_year,omitempty"`
	InactivatedAt           *time.Time `json:"inactivated_at,omitempty" schema:"inactivated_at,omitempty"`
	LastName                *string    `json:"last_name,omitempty" schema:"last_name,omitempty"`
	MedicalNotes            *string    `json:"medical_notes,omitempty" schema:"medical_notes,omitempty"`
	Membership              *string    `json:"membership,omitempty" schema:"membership,omitempty"`
	MiddleName              *string    `json:"middle_name,omitempty" schema:"middle_name,omitempty"`
	Nickname                *string    `json:"nickname,omitempty" schema:"nickname,omitempty"`
	PeoplePermissions       *string    `json:"people_permissions,omitempty" schema:"people_permissions,omitempty"`
	RemoteID                *int64     `json:"remote_id,omitempty" schema:"remote_id,omitempty"`
	SiteAdministrator       *bool      `json:"site_administrator,omitempty" schema:"site_administrator,omitempty"`
	Status                  *string    `json:"status,omitempty" schema:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// PersonWhere filters people by attribute or by search term.
type PersonWhere struct {
	PersonParams
	CreatedAt                      *time.Time `schema:"created_at,omitempty"`
	UpdatedAt                      *time.Time `schema:"updated_at,omitempty"`
	MFAConfigured                  *bool      `schema:"mfa_configured,omitempty"`
	SearchName                     string     `schema:"search_name,omitempty"`
	SearchNameOrEmail              string     `schema:"search_name_or_email,omitempty"`
	SearchNameOrEmailOrPhoneNumber string     `schema:"search_name_or_email_or_phone_number,omitempty"`
	SearchPhoneNumber              string     `schema:"search_phone_number,omitempty"`
	SearchPhoneNumberE164          string     `schema:"search_phone_number_e164,omitempty"`
}

// PersonInclude names a resource that can be included with a person.
type PersonInclude string

const (
	IncludeAddresses             PersonInclude = "addresses"
	IncludeEmails                PersonInclude = "emails"
	IncludeFieldData             PersonInclude = "field_data"
	IncludeHouseholds            PersonInclude = "households"
	IncludeInactiveReason        PersonInclude = "inactive_reason"
	IncludeMaritalStatus         PersonInclude = "marital_status"
	IncludeNamePrefix            PersonInclude = "name_prefix"
	IncludeNameSuffix            PersonInclude = "name_suffix"
	IncludeOrganization          PersonInclude = "organization"
	IncludePersonApps            PersonInclude = "person_apps"
	IncludePhoneNumbers          PersonInclude = "phone_numbers"
	IncludePlatformNotifications PersonInclude = "platform_notifications"
	IncludePrimaryCampus         PersonInclude = "primary_campus"
	IncludeSchool                PersonInclude = "school"
	IncludeSocialProfiles        PersonInclude = "social_profiles"
)

// PeopleOptions are the list options of the people endpoint.
type PeopleOptions struct {
	pco.Page
	Include []PersonInclude `validate:"dive,oneof=addresses emails field_data households inactive_reason marital_status name_prefix name_suffix organization person_apps phone_numbers platform_notifications primary_campus school social_profiles"`
	Order   string          `validate:"omitempty,oneof=accounting_administrator anniversary birthdate child created_at first_name gender given_name grade graduation_year inactivated_at last_name membership middle_name nickname people_permissions remote_id site_administrator status updated_at -accounting_administrator -anniversary -birthdate -child -created_at -first_name -gender -given_name -grade -graduation_year -inactivated_at -last_name -membership -middle_name -nickname -people_permissions -remote_id -site_administrator -status -updated_at"`
	Where   PersonWhere
}

func (o PeopleOptions) Params() pco.Params {
	p := o.Page.Params()
	p.Include = pco.Strings(o.Include)
	p.Order = o.Order
	p.Where = o.Where
	return p
}

// People is the /people/v2/people endpoint.
type People struct {
	ep *pco.Endpoint[Person]
}

// Get fetches one person.
func (e *People) Get(ctx context.Context, id pco.ID, include ...PersonInclude) (*Person, error) {
	p, err := pco.ParamsOf(PeopleOptions{Include: include})
	if err != nil {
		return nil, err
	}
	return e.ep.Get(ctx, id, p)
}

// List fetches every person matching opts.
func (e *People) List(ctx context.Context, opts *PeopleOptions) ([]Person, error) {
	p, err := pco.ParamsOf(opts)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Create adds a person.
func (e *People) Create(ctx context.Context, attrs PersonParams) (*Person, error) {
	return e.ep.Create(ctx, attrs, nil)
}

// Update changes the set fields of a person.
func (e *People) Update(ctx context.Context, id pco.ID, attrs PersonParams) (*Person, error) {
	return e.ep.Update(ctx, id, attrs, nil)
}

// Delete removes a person.
func (e *People) Delete(ctx context.Context, id pco.ID) error {
	return e.ep.Delete(ctx, id)
}

// Resolve loads the person with the id of ref, which may come from any app.
func (e *People) Resolve(ctx context.Context, ref pco.Identifier, include ...PersonInclude) (*Person, error) {
	return e.Get(ctx, ref.ID, include...)
}

// PersonScope holds the endpoints nested under one person.
type PersonScope struct {
	Emails       *Contacts[Email, EmailParams]
	PhoneNumbers *Contacts[PhoneNumber, PhoneNumberParams]
	Addresses    *Contacts[Address, AddressParams]
}

// With scopes the nested endpoints to person id.
func (e *People) With(id pco.ID) *PersonScope {
	return &PersonScope{
		Emails:       &Contacts[Email, EmailParams]{ep: pco.Child[Email](e.ep, id, "emails", "Email")},
		PhoneNumbers: &Contacts[PhoneNumber, PhoneNumberParams]{ep: pco.Child[PhoneNumber](e.ep, id, "phone_numbers", "PhoneNumber")},
		Addresses:    &Contacts[Address, AddressParams]{ep: pco.Child[Address](e.ep, id, "addresses", "Address")},
	}
}
