// Package catalog documents the API endpoints as an OpenAPI document and
// indexes it for lookup and search.
package catalog

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/planningcenter/pco"
)

// Catalog holds the OpenAPI document of every app and an index per app.
type Catalog struct {
	doc     *openapi3.T
	indices map[string]*Index
}

// New documents descs. versions lists the API version of each app.
func New(descs []pco.Descriptor, versions map[string]string) (*Catalog, error) {
	doc, err := Build(descs, versions)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc), nil
}

func fromDocument(doc *openapi3.T) *Catalog {
	return &Catalog{doc: doc, indices: buildIndexes(doc)}
}

// Document returns the OpenAPI document.
func (c *Catalog) Document() *openapi3.T {
	return c.doc
}

// Apps returns the documented app names, sorted.
func (c *Catalog) Apps() []string {
	apps := make([]string, 0, len(c.indices))
	for app := range c.indices {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	return apps
}

// Index returns the index for an app, or nil.
func (c *Catalog) Index(app string) *Index {
	return c.indices[app]
}

// Count returns the number of endpoints across apps.
func (c *Catalog) Count() int {
	n := 0
	for _, idx := range c.indices {
		n += idx.Count()
	}
	return n
}

// Search searches across all apps or a specific one.
func (c *Catalog) Search(query, app string) []EndpointSummary {
	var results []EndpointSummary
	for _, name := range c.Apps() {
		if app != "" && name != app {
			continue
		}
		results = append(results, c.indices[name].Search(query)...)
	}
	return results
}

// Filter lists the endpoints of all apps or a specific one, optionally
// narrowed to a tag and method.
func (c *Catalog) Filter(app, tag, method string) []EndpointSummary {
	var results []EndpointSummary
	for _, name := range c.Apps() {
		if app != "" && name != app {
			continue
		}
		results = append(results, c.indices[name].Filter(tag, method)...)
	}
	return results
}

// GetDetail returns the detail of an endpoint. The app is taken from the
// first path segment.
func (c *Catalog) GetDetail(path, method string) (*EndpointDetail, error) {
	app := appOf(path)
	idx, ok := c.indices[app]
	if !ok {
		return nil, fmt.Errorf("unknown app %q in path %s", app, path)
	}
	return idx.GetDetail(path, method)
}
