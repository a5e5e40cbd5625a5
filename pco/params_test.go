package pco

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type BaseWhere struct {
	CreatedAt *time.Time `schema:"created_at,omitempty"`
}

type widgetWhere struct {
	BaseWhere
	Name      string `schema:"name,omitempty"`
	Active    *bool  `schema:"active,omitempty"`
	Birthdate *Date  `schema:"birthdate,omitempty"`
	Ignored   string `schema:"-"`
}

type widgetInclude string

type widgetOptions struct {
	Page
	Include []widgetInclude `validate:"dive,oneof=owner parts"`
	Order   string          `validate:"omitempty,oneof=name -name"`
	Filter  string          `validate:"omitempty,oneof=active"`
	Where   widgetWhere
}

func (o widgetOptions) Params() Params {
	p := o.Page.Params()
	p.Include = Strings(o.Include)
	p.Order = o.Order
	p.Filter = o.Filter
	p.Where = o.Where
	return p
}

func TestParams_Values(t *testing.T) {
	active := false
	created := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	birthdate := NewDate(1990, time.May, 6)

	p := Params{
		Include: []string{"emails", "addresses"},
		Order:   "-created_at",
		Filter:  "future",
		PerPage: 50,
		Offset:  100,
		Limit:   7,
		Fields:  map[string][]string{"Person": {"first_name", "last_name"}},
		Where: widgetWhere{
			BaseWhere: BaseWhere{CreatedAt: &created},
			Name:      "Ann",
			Active:    &active,
			Birthdate: &birthdate,
		},
		Extra: url.Values{"custom": {"1"}},
	}
	got, err := p.Values()
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"include":           {"emails,addresses"},
		"order":             {"-created_at"},
		"filter":            {"future"},
		"per_page":          {"50"},
		"offset":            {"100"},
		"fields[Person]":    {"first_name,last_name"},
		"where[name]":       {"Ann"},
		"where[active]":     {"false"},
		"where[created_at]": {"2024-01-02T03:04:05Z"},
		"where[birthdate]":  {"1990-05-06"},
		"custom":            {"1"},
	}, got)
}

func TestParams_ValuesOmitsEmptyWhere(t *testing.T) {
	got, err := Params{Where: widgetWhere{}}.Values()
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Params{Where: (*widgetWhere)(nil)}.Values()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParams_ValuesMapWhere(t *testing.T) {
	got, err := Params{Where: map[string]string{"search_name": "smith"}}.Values()
	require.NoError(t, err)
	assert.Equal(t, url.Values{"where[search_name]": {"smith"}}, got)

	got, err = Params{Where: map[string]any{"grade": 3}}.Values()
	require.NoError(t, err)
	assert.Equal(t, url.Values{"where[grade]": {"3"}}, got)
}

func TestParamsOf(t *testing.T) {
	p, err := ParamsOf(nil)
	require.NoError(t, err)
	assert.Equal(t, Params{}, p)

	p, err = ParamsOf((*widgetOptions)(nil))
	require.NoError(t, err)
	assert.Equal(t, Params{}, p)

	p, err = ParamsOf(widgetOptions{Include: []widgetInclude{"owner"}, Order: "-name", Page: Page{PerPage: 10}})
	require.NoError(t, err)
	assert.Equal(t, []string{"owner"}, p.Include)
	assert.Equal(t, 10, p.PerPage)

	tests := []struct {
		name string
		opts widgetOptions
		want string
	}{
		{"per page too large", widgetOptions{Page: Page{PerPage: 500}}, "must be at most 100"},
		{"unknown include", widgetOptions{Include: []widgetInclude{"bogus"}}, "must be one of: owner parts"},
		{"unknown order", widgetOptions{Order: "color"}, "must be one of: name -name"},
		{"negative offset", widgetOptions{Page: Page{Offset: -1}}, "must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParamsOf(tt.opts)
			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(widgetOptions{})
	assert.Equal(t, OptionSet{
		Includes: []string{"owner", "parts"},
		Orders:   []string{"name", "-name"},
		Filters:  []string{"active"},
		Where:    []string{"active", "birthdate", "created_at", "name"},
	}, got)

	assert.Equal(t, got, Describe(&widgetOptions{}))
	assert.Equal(t, OptionSet{}, Describe(nil))
	assert.Equal(t, OptionSet{}, Describe(Page{}))
}

func TestParams_ValuesRejectsPerPageOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		field string
		want  string
	}{
		{"too large", Params{PerPage: 500}, "per_page", "must be at most 100"},
		{"negative", Params{PerPage: -1}, "per_page", "must be at least 1"},
		{"extra zero", Params{Extra: url.Values{"per_page": {"0"}}}, "extra.per_page", "must be at least 1"},
		{"extra too large", Params{Extra: url.Values{"per_page": {"101"}}}, "extra.per_page", "must be at most 100"},
		{"extra not a number", Params{Extra: url.Values{"per_page": {"all"}}}, "extra.per_page", `must be an integer, got "all"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.Values()
			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tt.want, valErr.Fields[tt.field])
		})
	}

	v, err := Params{PerPage: 100, Extra: url.Values{"per_page": {"1"}}}.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "1"}, v["per_page"])
}
