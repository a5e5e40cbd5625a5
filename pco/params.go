package pco

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	validate     = validator.New()
	whereEncoder = schema.NewEncoder()
)

func init() {
	whereEncoder.RegisterEncoder(time.Time{}, func(v reflect.Value) string {
		return v.Interface().(time.Time).Format(time.RFC3339)
	})
	whereEncoder.RegisterEncoder(&time.Time{}, func(v reflect.Value) string {
		if v.IsNil() {
			return ""
		}
		return v.Interface().(*time.Time).Format(time.RFC3339)
	})
	whereEncoder.RegisterEncoder(Date{}, func(v reflect.Value) string {
		return v.Interface().(Date).String()
	})
	whereEncoder.RegisterEncoder(&Date{}, func(v reflect.Value) string {
		if v.IsNil() {
			return ""
		}
		return v.Interface().(*Date).String()
	})
}

// Params holds the query options of a request.
type Params struct {
	Include []string
	Order   string
	Filter  string
	PerPage int
	Offset  int

	// Limit stops pagination after this many items. It is not sent.
	Limit int

	// Fields selects sparse fieldsets, keyed by resource type.
	Fields map[string][]string

	// Where is a struct with schema tags or a map[string]string. Each
	// entry is sent as where[name]=value.
	Where any

	Extra url.Values
}

// MaxPerPage is the largest page size the API accepts.
const MaxPerPage = 100

// Values encodes the params as a query string. A per_page outside
// 1..MaxPerPage, set directly or through Extra, is a *ValidationError.
func (p Params) Values() (url.Values, error) {
	if err := p.checkPerPage(); err != nil {
		return nil, err
	}
	v := url.Values{}
	if len(p.Include) > 0 {
		v.Set("include", strings.Join(p.Include, ","))
	}
	if p.Order != "" {
		v.Set("order", p.Order)
	}
	if p.Filter != "" {
		v.Set("filter", p.Filter)
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	for typ, fields := range p.Fields {
		v.Set("fields["+typ+"]", strings.Join(fields, ","))
	}
	where, err := encodeWhere(p.Where)
	if err != nil {
		return nil, err
	}
	for k, vals := range where {
		for _, val := range vals {
			v.Add("where["+k+"]", val)
		}
	}
	for k, vals := range p.Extra {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	return v, nil
}

func (p Params) checkPerPage() error {
	fields := map[string]string{}
	if p.PerPage != 0 && (p.PerPage < 1 || p.PerPage > MaxPerPage) {
		fields["per_page"] = perPageMessage(p.PerPage)
	}
	for _, raw := range p.Extra["per_page"] {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fields["extra.per_page"] = fmt.Sprintf("must be an integer, got %q", raw)
			break
		}
		if n < 1 || n > MaxPerPage {
			fields["extra.per_page"] = perPageMessage(n)
			break
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func perPageMessage(n int) string {
	if n < 1 {
		return "must be at least 1"
	}
	return fmt.Sprintf("must be at most %d", MaxPerPage)
}

func encodeWhere(where any) (url.Values, error) {
	out := url.Values{}
	switch w := where.(type) {
	case nil:
		return out, nil
	case map[string]string:
		for k, v := range w {
			out.Set(k, v)
		}
		return out, nil
	case map[string]any:
		for k, v := range w {
			out.Set(k, fmt.Sprint(v))
		}
		return out, nil
	}
	rv := reflect.ValueOf(where)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return out, nil
	}
	if err := whereEncoder.Encode(where, out); err != nil {
		return nil, fmt.Errorf("encoding where filters: %w", err)
	}
	for k, vals := range out {
		if len(vals) == 1 && vals[0] == "" {
			delete(out, k)
		}
	}
	return out, nil
}

// Page holds paging options. Embed it in endpoint option structs.
type Page struct {
	PerPage int `validate:"omitempty,min=1,max=100"`
	Offset  int `validate:"min=0"`
	Limit   int `validate:"min=0"`
}

// Params returns the paging part of a request.
func (pg Page) Params() Params {
	return Params{PerPage: pg.PerPage, Offset: pg.Offset, Limit: pg.Limit}
}

// Options is implemented by endpoint option structs.
type Options interface {
	Params() Params
}

// ParamsOf validates opts and returns its params. A nil pointer yields
// empty params.
func ParamsOf(opts Options) (Params, error) {
	if opts == nil {
		return Params{}, nil
	}
	if rv := reflect.ValueOf(opts); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return Params{}, nil
	}
	if err := Validate(opts); err != nil {
		return Params{}, err
	}
	return opts.Params(), nil
}

// Validate checks v against its validate tags.
func Validate(v any) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		return newValidationError(err)
	}
	return nil
}

// Strings converts a slice of string-based values.
func Strings[T ~string](in []T) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// OptionSet lists what an options struct accepts.
type OptionSet struct {
	Includes []string `json:"includes,omitempty"`
	Orders   []string `json:"orders,omitempty"`
	Filters  []string `json:"filters,omitempty"`
	Where    []string `json:"where,omitempty"`
}

// Describe reflects over an options struct. Include, Order and Filter
// values come from their oneof validation tags; Where attributes come
// from the schema tags of the Where field.
func Describe(opts any) OptionSet {
	var set OptionSet
	if opts == nil {
		return set
	}
	t := reflect.TypeOf(opts)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return set
	}
	if f, ok := t.FieldByName("Include"); ok {
		set.Includes = oneOf(f.Tag.Get("validate"))
	}
	if f, ok := t.FieldByName("Order"); ok {
		set.Orders = oneOf(f.Tag.Get("validate"))
	}
	if f, ok := t.FieldByName("Filter"); ok {
		set.Filters = oneOf(f.Tag.Get("validate"))
	}
	if f, ok := t.FieldByName("Where"); ok {
		set.Where = schemaNames(f.Type)
	}
	return set
}

func oneOf(tag string) []string {
	for _, rule := range strings.Split(tag, ",") {
		if values, ok := strings.CutPrefix(rule, "oneof="); ok {
			return strings.Fields(values)
		}
	}
	return nil
}

func schemaNames(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			names = append(names, schemaNames(f.Type)...)
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
