package pco

import (
	"reflect"
	"sort"
	"strings"
)

// Operation is an endpoint capability.
type Operation string

const (
	OpGet    Operation = "get"
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpFetch  Operation = "fetch"
)

// Descriptor is the static shape of an endpoint, used for documentation
// and tooling.
type Descriptor struct {
	App     string
	Name    string
	Kind    string
	Parents []string
	Summary string
	Ops     []Operation

	// Options lists the query options accepted by list (and include by get).
	Options OptionSet

	// Attributes lists the attribute names accepted by create and update.
	Attributes []string

	// Body is a zero value of the attributes struct sent by create and
	// update, when the endpoint has one.
	Body any

	Actions []Action
}

// Action is a named sub-resource listed under one item, such as
// service_types/{id}/plans.
type Action struct {
	Name    string
	Kind    string
	Summary string
	Options OptionSet
}

// Supports reports whether the endpoint offers op.
func (d Descriptor) Supports(op Operation) bool {
	for _, o := range d.Ops {
		if o == op {
			return true
		}
	}
	return false
}

// AttributeNames lists the JSON names of the fields of an attributes
// struct, sorted.
func AttributeNames(attrs any) []string {
	t := reflect.TypeOf(attrs)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
