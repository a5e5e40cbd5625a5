// Package services wraps the Services app: service types, plans, teams and
// the people scheduled into them.
package services

import (
	"context"

	"github.com/jakenesler/planningcenter/pco"
)

// Name is the app's URL name.
const Name = "services"

// App is the Services API.
type App struct {
	app          *pco.App
	organization *pco.Endpoint[Organization]

	People       *People
	ServiceTypes *ServiceTypes
	Teams        *Teams
}

// New returns the Services app served through c.
func New(c *pco.Client) *App {
	app := pco.NewApp(c, Name)
	return &App{
		app:          app,
		organization: pco.NewEndpoint[Organization](app, "", "Organization"),
		People:       &People{ep: pco.NewEndpoint[Person](app, "people", "Person")},
		ServiceTypes: &ServiceTypes{ep: pco.NewEndpoint[ServiceType](app, "service_types", "ServiceType")},
		Teams:        &Teams{ep: pco.NewEndpoint[Team](app, "teams", "Team")},
	}
}

// Organization fetches the organization the credentials belong to.
func (a *App) Organization(ctx context.Context) (*Organization, error) {
	return a.organization.Fetch(ctx, pco.Params{})
}
