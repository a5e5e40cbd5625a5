package pco

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentType is the media type of request bodies.
const ContentType = "application/json"

// Document is a JSON:API response envelope.
type Document struct {
	Data     json.RawMessage `json:"data"`
	Included []Resource      `json:"included,omitempty"`
	Links    Links           `json:"links"`
	Meta     Meta            `json:"meta"`
	Errors   []ErrorObject   `json:"errors,omitempty"`
}

// IsCollection reports whether the primary data is an array.
func (d *Document) IsCollection() bool {
	data := bytes.TrimSpace(d.Data)
	return len(data) > 0 && data[0] == '['
}

// Resources decodes the primary data. A single resource is returned as a
// one-element slice; null data yields an empty slice.
func (d *Document) Resources() ([]Resource, error) {
	data := bytes.TrimSpace(d.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	if d.IsCollection() {
		var rs []Resource
		if err := json.Unmarshal(data, &rs); err != nil {
			return nil, fmt.Errorf("decoding data: %w", err)
		}
		return rs, nil
	}
	var r Resource
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding data: %w", err)
	}
	return []Resource{r}, nil
}

// Links is the links member of a document.
type Links struct {
	Self string `json:"self,omitempty"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// PageOffset points at another page of a collection.
type PageOffset struct {
	Offset int `json:"offset"`
}

// Meta is the meta member of a document.
type Meta struct {
	TotalCount int         `json:"total_count"`
	Count      int         `json:"count"`
	Next       *PageOffset `json:"next,omitempty"`
	Prev       *PageOffset `json:"prev,omitempty"`
	CanOrderBy []string    `json:"can_order_by,omitempty"`
	CanQueryBy []string    `json:"can_query_by,omitempty"`
	CanInclude []string    `json:"can_include,omitempty"`
	CanFilter  []string    `json:"can_filter,omitempty"`
	Parent     *Identifier `json:"parent,omitempty"`
}

// Resource is a JSON:API resource object.
type Resource struct {
	Type          string                  `json:"type"`
	ID            ID                      `json:"id"`
	Attributes    json.RawMessage         `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         json.RawMessage         `json:"links,omitempty"`
}

// Identifier returns the resource's type and id.
func (r *Resource) Identifier() Identifier {
	return Identifier{Type: r.Type, ID: r.ID}
}

// Relationship is a to-one or to-many resource linkage.
type Relationship struct {
	Data   []Identifier
	ToMany bool
	Links  json.RawMessage
}

// One returns a to-one relationship.
func One(typ string, id ID) Relationship {
	return Relationship{Data: []Identifier{{Type: typ, ID: id}}}
}

// Many returns a to-many relationship.
func Many(typ string, ids ...ID) Relationship {
	data := make([]Identifier, len(ids))
	for i, id := range ids {
		data[i] = Identifier{Type: typ, ID: id}
	}
	return Relationship{Data: data, ToMany: true}
}

// Empty reports whether the relationship links to nothing.
func (r Relationship) Empty() bool {
	return len(r.Data) == 0
}

// Linkage returns the relationship data in its wire shape: an Identifier
// for to-one, a slice for to-many and nil when empty to-one.
func (r Relationship) Linkage() any {
	if r.ToMany {
		if r.Data == nil {
			return []Identifier{}
		}
		return r.Data
	}
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0]
}

type relationshipJSON struct {
	Data  json.RawMessage `json:"data"`
	Links json.RawMessage `json:"links,omitempty"`
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.Linkage())
	if err != nil {
		return nil, err
	}
	return json.Marshal(relationshipJSON{Data: data, Links: r.Links})
}

func (r *Relationship) UnmarshalJSON(b []byte) error {
	var raw relationshipJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Relationship{Links: raw.Links}
	data := bytes.TrimSpace(raw.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '[':
		r.ToMany = true
		return json.Unmarshal(data, &r.Data)
	default:
		var ident Identifier
		if err := json.Unmarshal(data, &ident); err != nil {
			return err
		}
		r.Data = []Identifier{ident}
		return nil
	}
}
