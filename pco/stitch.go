package pco

import (
	"encoding/json"
	"fmt"
)

// reserved keys of a stitched resource; relationships with these names are
// never expanded in place.
var reserved = map[string]bool{
	"id":            true,
	"type":          true,
	"attributes":    true,
	"relationships": true,
	"links":         true,
}

// graph indexes the included resources of a document by type and id.
type graph struct {
	nodes map[Identifier]*Resource
}

func newGraph(included []Resource) *graph {
	g := &graph{nodes: make(map[Identifier]*Resource, len(included))}
	for i := range included {
		g.nodes[included[i].Identifier()] = &included[i]
	}
	return g
}

// Stitch returns one JSON object per primary resource of doc with related
// included resources expanded in place:
//
//	{"id": "1", "type": "Team", "attributes": {...},
//	 "relationships": {"service_type": {"type": "ServiceType", "id": "2"}},
//	 "service_type": {"id": "2", "type": "ServiceType", ...}}
//
// Empty relationships are dropped. To-many relationships expand to a list
// holding the targets found in included, in linkage order. A resource that
// is already being expanded higher up the tree is not expanded again.
func Stitch(doc *Document) ([]json.RawMessage, error) {
	primary, err := doc.Resources()
	if err != nil {
		return nil, err
	}
	g := newGraph(doc.Included)
	out := make([]json.RawMessage, 0, len(primary))
	for i := range primary {
		node := g.expand(&primary[i], make(map[Identifier]bool))
		b, err := json.Marshal(node)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", primary[i].Type, primary[i].ID, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (g *graph) expand(r *Resource, path map[Identifier]bool) map[string]any {
	key := r.Identifier()
	path[key] = true
	defer delete(path, key)

	node := map[string]any{
		"id":   r.ID,
		"type": r.Type,
	}
	if len(r.Attributes) > 0 {
		node["attributes"] = r.Attributes
	} else {
		node["attributes"] = json.RawMessage("{}")
	}
	if len(r.Links) > 0 {
		node["links"] = r.Links
	}

	rels := make(map[string]any, len(r.Relationships))
	for name, rel := range r.Relationships {
		if rel.Empty() {
			continue
		}
		rels[name] = rel.Linkage()
		if reserved[name] {
			continue
		}
		if !rel.ToMany {
			if target := g.lookup(rel.Data[0], path); target != nil {
				node[name] = g.expand(target, path)
			}
			continue
		}
		var related []map[string]any
		for _, ident := range rel.Data {
			if target := g.lookup(ident, path); target != nil {
				related = append(related, g.expand(target, path))
			}
		}
		if len(related) > 0 {
			node[name] = related
		}
	}
	node["relationships"] = rels
	return node
}

func (g *graph) lookup(ident Identifier, path map[Identifier]bool) *Resource {
	if path[ident] {
		return nil
	}
	return g.nodes[ident]
}
