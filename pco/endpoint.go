package pco

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App is a top-level API area such as services or groups.
type App struct {
	name   string
	client *Client
}

// NewApp returns the app mounted at /<name>/v2.
func NewApp(c *Client, name string) *App {
	return &App{name: name, client: c}
}

// Name returns the app's URL name.
func (a *App) Name() string { return a.name }

// Client returns the client the app sends requests through.
func (a *App) Client() *Client { return a.client }

// Parent is one step of a nested endpoint's path.
type Parent struct {
	Name string
	ID   ID
}

// Endpoint is a resource collection returning models of type M.
type Endpoint[M any] struct {
	app     *App
	name    string
	kind    string
	parents []Parent
	err     error
}

// NewEndpoint returns the root endpoint name of app. kind is the JSON:API
// type sent in create and update payloads.
func NewEndpoint[M any](app *App, name, kind string) *Endpoint[M] {
	return &Endpoint[M]{app: app, name: name, kind: kind}
}

// Child returns endpoint name nested under item id of parent. If id is not
// set every operation of the child fails with *MissingParentError.
func Child[N, M any](parent *Endpoint[M], id ID, name, kind string) *Endpoint[N] {
	child := &Endpoint[N]{
		app:     parent.app,
		name:    name,
		kind:    kind,
		parents: append(slices.Clone(parent.parents), Parent{Name: parent.name, ID: id}),
		err:     parent.err,
	}
	if id <= 0 && child.err == nil {
		child.err = &MissingParentError{Parent: parent.name, Child: name}
	}
	return child
}

// Name returns the endpoint's URL name.
func (e *Endpoint[M]) Name() string { return e.name }

// Kind returns the JSON:API type of the endpoint's resources.
func (e *Endpoint[M]) Kind() string { return e.kind }

// Parents returns the parent chain, outermost first.
func (e *Endpoint[M]) Parents() []Parent { return slices.Clone(e.parents) }

// Path builds /<app>/v2/<parent>/<id>/.../<endpoint>/<segments...>.
func (e *Endpoint[M]) Path(segments ...string) string {
	parts := []string{e.app.name, "v2"}
	for _, p := range e.parents {
		parts = append(parts, p.Name, p.ID.String())
	}
	if e.name != "" {
		parts = append(parts, e.name)
	}
	parts = append(parts, segments...)
	return "/" + strings.Join(parts, "/")
}

// Get fetches one item by id.
func (e *Endpoint[M]) Get(ctx context.Context, id ID, p Params) (*M, error) {
	if e.err != nil {
		return nil, e.err
	}
	return fetchOne[M](ctx, e.app, e.Path(id.String()), p)
}

// Fetch fetches the single resource served at the endpoint path itself.
func (e *Endpoint[M]) Fetch(ctx context.Context, p Params) (*M, error) {
	if e.err != nil {
		return nil, e.err
	}
	return fetchOne[M](ctx, e.app, e.Path(), p)
}

// List fetches every item, following pagination links.
func (e *Endpoint[M]) List(ctx context.Context, p Params) ([]M, error) {
	return collect(e.All(ctx, p))
}

// All streams every item, fetching pages as the sequence is consumed.
func (e *Endpoint[M]) All(ctx context.Context, p Params) iter.Seq2[M, error] {
	if e.err != nil {
		return failed[M](e.err)
	}
	return paginate[M](ctx, e.app, e.Path(), p)
}

// Stream pages through the collection at path, relative to the base URL,
// and yields each stitched resource as raw JSON. A path serving a single
// resource yields that resource.
func Stream(ctx context.Context, app *App, path string, p Params) iter.Seq2[json.RawMessage, error] {
	return paginate[json.RawMessage](ctx, app, path, p)
}

// Create posts a new item. attrs is encoded as the attributes object.
func (e *Endpoint[M]) Create(ctx context.Context, attrs any, rels map[string]Relationship) (*M, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := Validate(attrs); err != nil {
		return nil, err
	}
	body := newPayload(e.kind, 0, attrs, rels)
	return sendOne[M](ctx, e.app, http.MethodPost, e.Path(), body)
}

// Update patches item id with the non-empty fields of attrs.
func (e *Endpoint[M]) Update(ctx context.Context, id ID, attrs any, rels map[string]Relationship) (*M, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := Validate(attrs); err != nil {
		return nil, err
	}
	body := newPayload(e.kind, id, attrs, rels)
	return sendOne[M](ctx, e.app, http.MethodPatch, e.Path(id.String()), body)
}

// Delete removes item id.
func (e *Endpoint[M]) Delete(ctx context.Context, id ID) error {
	if e.err != nil {
		return e.err
	}
	_, err := e.app.client.Do(ctx, Request{
		App:    e.app.name,
		Method: http.MethodDelete,
		Path:   e.Path(id.String()),
	})
	return err
}

// ListAction lists the N items returned by GET <endpoint>/<id>/<action>.
func ListAction[N, M any](ctx context.Context, e *Endpoint[M], id ID, action string, p Params) ([]N, error) {
	if e.err != nil {
		return nil, e.err
	}
	if id <= 0 {
		return nil, &MissingParentError{Parent: e.name, Child: action}
	}
	return collect(paginate[N](ctx, e.app, e.Path(id.String(), action), p))
}

// LoadAll fetches each id concurrently, bounded by the client's
// concurrency. Results are in the order of ids.
func LoadAll[M any](ctx context.Context, e *Endpoint[M], ids []ID, p Params) ([]M, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([]M, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.app.client.concurrency, 1))
	for i, id := range ids {
		g.Go(func() error {
			m, err := e.Get(ctx, id, p)
			if err != nil {
				return fmt.Errorf("loading %s %s: %w", e.name, id, err)
			}
			out[i] = *m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type payload struct {
	Data payloadData `json:"data"`
}

type payloadData struct {
	Type          string                  `json:"type"`
	ID            *ID                     `json:"id,omitempty"`
	Attributes    any                     `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

func newPayload(kind string, id ID, attrs any, rels map[string]Relationship) payload {
	if attrs == nil {
		attrs = struct{}{}
	}
	data := payloadData{Type: kind, Attributes: attrs, Relationships: rels}
	if id > 0 {
		data.ID = &id
	}
	return payload{Data: data}
}

func fetchOne[M any](ctx context.Context, app *App, path string, p Params) (*M, error) {
	q, err := p.Values()
	if err != nil {
		return nil, err
	}
	doc, err := app.client.Do(ctx, Request{App: app.name, Method: http.MethodGet, Path: path, Query: q})
	if err != nil {
		return nil, err
	}
	return decodeOne[M](doc)
}

func sendOne[M any](ctx context.Context, app *App, method, path string, body any) (*M, error) {
	doc, err := app.client.Do(ctx, Request{App: app.name, Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}
	return decodeOne[M](doc)
}

func decodeOne[M any](doc *Document) (*M, error) {
	items, err := Stitch(doc)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyResponse
	}
	var m M
	if err := json.Unmarshal(items[0], &m); err != nil {
		return nil, fmt.Errorf("decoding resource: %w", err)
	}
	return &m, nil
}

func paginate[M any](ctx context.Context, app *App, path string, p Params) iter.Seq2[M, error] {
	return func(yield func(M, error) bool) {
		var zero M
		query, err := p.Values()
		if err != nil {
			yield(zero, err)
			return
		}
		if query.Get("per_page") == "" && app.client.perPage > 0 {
			query.Set("per_page", fmt.Sprint(app.client.perPage))
		}

		seen := make(map[string]bool)
		next := path
		n := 0
		for next != "" {
			seen[next] = true
			doc, err := app.client.Do(ctx, Request{App: app.name, Method: http.MethodGet, Path: next, Query: query})
			if err != nil {
				yield(zero, err)
				return
			}
			items, err := Stitch(doc)
			if err != nil {
				yield(zero, err)
				return
			}
			for _, raw := range items {
				var m M
				if err := json.Unmarshal(raw, &m); err != nil {
					yield(zero, fmt.Errorf("decoding resource: %w", err))
					return
				}
				if !yield(m, nil) {
					return
				}
				n++
				if p.Limit > 0 && n >= p.Limit {
					return
				}
			}
			if !doc.IsCollection() {
				return
			}
			next, query = doc.Links.Next, nil
			if seen[next] {
				app.client.logger.Warn("pagination link repeats", zap.String("url", next))
				return
			}
		}
	}
}

func failed[M any](err error) iter.Seq2[M, error] {
	return func(yield func(M, error) bool) {
		var zero M
		yield(zero, err)
	}
}

func collect[M any](seq iter.Seq2[M, error]) ([]M, error) {
	var out []M
	for m, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
