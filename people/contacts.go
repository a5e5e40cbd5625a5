package people

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// EmailParams are the writable attributes of an email address.
type EmailParams struct {
	Address  string `json:"address" validate:"required,email"`
	Location string `json:"location,omitempty"`
	Primary  *bool  `json:"primary,omitempty"`
}

// PhoneNumberParams are the writable attributes of a phone number.
type PhoneNumberParams struct {
	Number   string `json:"number" validate:"required"`
	Carrier  string `json:"carrier,omitempty"`
	Location string `json:"location,omitempty"`
	Primary  *bool  `json:"primary,omitempty"`
}

// AddressParams are the writable attributes of an address.
type AddressParams struct {
	StreetLine1 string `json:"street_line_1" validate:"required"`
	StreetLine2 string `json:"street_line_2,omitempty"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	CountryCode string `json:"country_code,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	Location    string `json:"location,omitempty"`
	Primary     *bool  `json:"primary,omitempty"`
}

// Contacts is a contact detail endpoint of one person. M is the model and P
// its writable attributes.
type Contacts[M, P any] struct {
	ep *pco.Endpoint[M]
}

// Get fetches one item.
func (e *Contacts[M, P]) Get(ctx context.Context, id pco.ID) (*M, error) {
	return e.ep.Get(ctx, id, pco.Params{})
}

// List fetches every item.
func (e *Contacts[M, P]) List(ctx context.Context, page *pco.Page) ([]M, error) {
	p, err := pco.ParamsOf(page)
	if err != nil {
		return nil, err
	}
	return e.ep.List(ctx, p)
}

// Create adds an item.
func (e *Contacts[M, P]) Create(ctx context.Context, attrs P) (*M, error) {
	return e.ep.Create(ctx, attrs, nil)
}
