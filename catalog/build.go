package catalog

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/jakenesler/planningcenter/pco"
)

const documentVersion = "2"

// Build describes the endpoints in descs as an OpenAPI 3 document.
// versions lists the X-PCO-API-Version of each app.
func Build(descs []pco.Descriptor, versions map[string]string) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Planning Center API",
			Version:     documentVersion,
			Description: describeVersions(versions),
		},
		Servers: openapi3.Servers{{URL: pco.DefaultBaseURL}},
		Paths:   openapi3.NewPaths(),
	}
	b := &builder{doc: doc, seen: make(map[string]bool)}
	for _, d := range descs {
		if err := b.add(d); err != nil {
			return nil, fmt.Errorf("describing %s: %w", operationID(d), err)
		}
	}
	for _, d := range descs {
		b.addActions(d)
	}
	return doc, nil
}

func describeVersions(versions map[string]string) string {
	if len(versions) == 0 {
		return ""
	}
	apps := make([]string, 0, len(versions))
	for app := range versions {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	lines := make([]string, len(apps))
	for i, app := range apps {
		lines[i] = fmt.Sprintf("%s: X-PCO-API-Version %s", app, versions[app])
	}
	return strings.Join(lines, "\n")
}

type builder struct {
	doc  *openapi3.T
	seen map[string]bool // method + normalized path
}

var templateVar = regexp.MustCompile(`\{[^}]*\}`)

// operation registers op unless an operation with the same method and
// path shape exists already, as with the plans action of a service type
// and the plans endpoint nested under it.
func (b *builder) operation(path, method string, op *openapi3.Operation) {
	key := method + " " + templateVar.ReplaceAllString(path, "{}")
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	b.doc.AddOperation(path, method, op)
}

func (b *builder) add(d pco.Descriptor) error {
	collection := collectionPath(d)
	item := collection + "/{id}"
	id := operationID(d)
	label := d.Name
	if label == "" {
		label = strings.ToLower(d.Kind)
	}

	for _, op := range d.Ops {
		switch op {
		case pco.OpFetch:
			o := newOperation(d, id+".fetch", "Fetch the "+label, false)
			addInclude(o, d.Options.Includes)
			b.operation(collection, http.MethodGet, o)
		case pco.OpList:
			o := newOperation(d, id+".list", "List "+label, false)
			addListParams(o, d.Options)
			b.operation(collection, http.MethodGet, o)
		case pco.OpGet:
			o := newOperation(d, id+".get", "Get one "+d.Kind, true)
			addInclude(o, d.Options.Includes)
			b.operation(item, http.MethodGet, o)
		case pco.OpCreate:
			o := newOperation(d, id+".create", "Create a "+d.Kind, false)
			body, err := requestBody(d, false)
			if err != nil {
				return err
			}
			o.RequestBody = body
			b.operation(collection, http.MethodPost, o)
		case pco.OpUpdate:
			o := newOperation(d, id+".update", "Update a "+d.Kind, true)
			body, err := requestBody(d, true)
			if err != nil {
				return err
			}
			o.RequestBody = body
			b.operation(item, http.MethodPatch, o)
		case pco.OpDelete:
			o := newOperation(d, id+".delete", "Delete a "+d.Kind, true)
			o.Responses = nil
			o.AddResponse(http.StatusNoContent, openapi3.NewResponse().WithDescription("Deleted"))
			b.operation(item, http.MethodDelete, o)
		default:
			return fmt.Errorf("unknown operation %q", op)
		}
	}

	return nil
}

// addActions registers the named actions of d. Actions are added after
// every endpoint so that a nested endpoint at the same path wins.
func (b *builder) addActions(d pco.Descriptor) {
	item := collectionPath(d) + "/{id}"
	for _, a := range d.Actions {
		o := newOperation(d, operationID(d)+"."+a.Name, a.Summary, true)
		o.Tags = []string{a.Kind}
		o.Description = ""
		addListParams(o, a.Options)
		b.operation(item+"/"+a.Name, http.MethodGet, o)
	}
}

func collectionPath(d pco.Descriptor) string {
	var sb strings.Builder
	sb.WriteString("/" + d.App + "/v2")
	for _, p := range d.Parents {
		fmt.Fprintf(&sb, "/%s/{%s_id}", p, singular(p))
	}
	if d.Name != "" {
		sb.WriteString("/" + d.Name)
	}
	return sb.String()
}

func singular(name string) string {
	if name == "people" {
		return "person"
	}
	return strings.TrimSuffix(name, "s")
}

func operationID(d pco.Descriptor) string {
	parts := append([]string{d.App}, d.Parents...)
	if d.Name != "" {
		parts = append(parts, d.Name)
	} else {
		parts = append(parts, strings.ToLower(d.Kind))
	}
	return strings.Join(parts, ".")
}

func newOperation(d pco.Descriptor, id, summary string, withID bool) *openapi3.Operation {
	o := openapi3.NewOperation()
	o.OperationID = id
	o.Summary = summary
	o.Description = d.Summary
	o.Tags = []string{d.Kind}
	for _, p := range d.Parents {
		o.AddParameter(openapi3.NewPathParameter(singular(p) + "_id").
			WithSchema(openapi3.NewStringSchema()).
			WithDescription("ID of the parent " + singular(p)))
	}
	if withID {
		o.AddParameter(openapi3.NewPathParameter("id").WithSchema(openapi3.NewStringSchema()))
	}
	o.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("JSON:API document of "+d.Kind).
		WithJSONSchema(openapi3.NewObjectSchema()))
	return o
}

func enumSchema(values []string) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	if len(values) > 0 {
		s.Enum = anySlice(values)
	}
	return s
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func addInclude(o *openapi3.Operation, includes []string) {
	if len(includes) == 0 {
		return
	}
	p := openapi3.NewQueryParameter("include").
		WithSchema(openapi3.NewArraySchema().WithItems(enumSchema(includes))).
		WithDescription("Related resources to include, comma separated")
	p.Explode = openapi3.BoolPtr(false)
	o.AddParameter(p)
}

func addListParams(o *openapi3.Operation, opts pco.OptionSet) {
	addInclude(o, opts.Includes)
	if len(opts.Orders) > 0 {
		o.AddParameter(openapi3.NewQueryParameter("order").WithSchema(enumSchema(opts.Orders)))
	}
	if len(opts.Filters) > 0 {
		o.AddParameter(openapi3.NewQueryParameter("filter").WithSchema(enumSchema(opts.Filters)))
	}
	o.AddParameter(openapi3.NewQueryParameter("per_page").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithMax(100)))
	o.AddParameter(openapi3.NewQueryParameter("offset").
		WithSchema(openapi3.NewIntegerSchema().WithMin(0)))
	for _, name := range opts.Where {
		o.AddParameter(openapi3.NewQueryParameter("where[" + name + "]").
			WithSchema(openapi3.NewStringSchema()))
	}
}

func requestBody(d pco.Descriptor, update bool) (*openapi3.RequestBodyRef, error) {
	attrs, err := attributesSchema(d, update)
	if err != nil {
		return nil, err
	}
	data := openapi3.NewObjectSchema().
		WithProperty("type", enumSchema([]string{d.Kind})).
		WithProperty("attributes", attrs)
	data.Required = []string{"type", "attributes"}
	if update {
		data.WithProperty("id", openapi3.NewStringSchema())
		data.Required = append(data.Required, "id")
	}
	body := openapi3.NewObjectSchema().WithProperty("data", data)
	body.Required = []string{"data"}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
	}, nil
}

func attributesSchema(d pco.Descriptor, update bool) (*openapi3.Schema, error) {
	if d.Body == nil {
		s := openapi3.NewObjectSchema()
		for _, name := range d.Attributes {
			s.WithProperty(name, openapi3.NewSchema())
		}
		return s, nil
	}
	ref, err := openapi3gen.NewSchemaRefForValue(d.Body, openapi3.Schemas{}, openapi3gen.SchemaCustomizer(customizeSchema))
	if err != nil {
		return nil, fmt.Errorf("generating attributes schema: %w", err)
	}
	s := ref.Value
	s.Required = nil
	if !update {
		s.Required = requiredFields(reflect.TypeOf(d.Body))
	}
	return s, nil
}

var dateType = reflect.TypeOf(pco.Date{})

// customizeSchema maps pco.Date to a date string and carries validate
// rules over as enum, bounds and format.
func customizeSchema(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if t == dateType || t == reflect.PointerTo(dateType) {
		nullable := schema.Nullable
		*schema = *openapi3.NewStringSchema().WithFormat("date")
		schema.Nullable = nullable
	}
	numeric := schema.Type.Is(openapi3.TypeInteger) || schema.Type.Is(openapi3.TypeNumber)
	for _, rule := range strings.Split(tag.Get("validate"), ",") {
		key, value, _ := strings.Cut(rule, "=")
		switch key {
		case "oneof":
			schema.Enum = anySlice(strings.Fields(value))
		case "min":
			if f, err := strconv.ParseFloat(value, 64); err == nil && numeric {
				schema.Min = &f
			}
		case "max":
			if f, err := strconv.ParseFloat(value, 64); err == nil && numeric {
				schema.Max = &f
			}
		case "email":
			schema.Format = "email"
		}
	}
	return nil
}

func requiredFields(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			if rule == "required" {
				names = append(names, name)
			}
		}
	}
	return names
}
