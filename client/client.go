// Package client assembles the Planning Center apps from configuration.
package client

import (
	"fmt"

	"github.com/jakenesler/planningcenter/config"
	"github.com/jakenesler/planningcenter/groups"
	"github.com/jakenesler/planningcenter/pco"
	"github.com/jakenesler/planningcenter/people"
	"github.com/jakenesler/planningcenter/services"
)

// Client holds every app served by one authenticated connection.
type Client struct {
	API      *pco.Client
	Services *services.App
	Groups   *groups.App
	People   *people.App
}

// New builds a client from cfg. Extra options are applied after the ones
// derived from cfg and override them.
func New(cfg *config.Config, opts ...pco.Option) (*Client, error) {
	base := []pco.Option{pco.WithAPIVersions(cfg.APIVersions)}
	if cfg.Timeout > 0 {
		base = append(base, pco.WithTimeout(cfg.Timeout))
	}
	if cfg.PerPage > 0 {
		base = append(base, pco.WithPerPage(cfg.PerPage))
	}
	if cfg.Concurrency > 0 {
		base = append(base, pco.WithConcurrency(cfg.Concurrency))
	}
	if cfg.Cache.Enabled {
		cache, err := pco.NewDiskCache(cfg.Cache.Dir, cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		base = append(base, pco.WithCache(cache))
	}

	api, err := pco.NewClient(cfg.BaseURL, Auth(cfg), append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return &Client{
		API:      api,
		Services: services.New(api),
		Groups:   groups.New(api),
		People:   people.New(api),
	}, nil
}

// Auth picks basic auth when an application id and secret are configured
// and a bearer token otherwise.
func Auth(cfg *config.Config) pco.AuthStrategy {
	if cfg.UsesBasicAuth() {
		return &pco.BasicAuth{ApplicationID: cfg.ApplicationID, Secret: cfg.Secret}
	}
	return &pco.BearerAuth{Token: cfg.AccessToken}
}

// Catalog describes every endpoint of every app.
func (c *Client) Catalog() []pco.Descriptor {
	return Describe()
}

// Describe describes every endpoint of every app without a connection.
func Describe() []pco.Descriptor {
	var descs []pco.Descriptor
	descs = append(descs, services.Describe()...)
	descs = append(descs, groups.Describe()...)
	descs = append(descs, people.Describe()...)
	return descs
}

// Apps lists the app names in catalog order.
func Apps() []string {
	return []string{services.Name, groups.Name, people.Name}
}
