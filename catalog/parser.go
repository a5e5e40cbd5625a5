package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/planningcenter/internal"
)

// Parse loads an OpenAPI document from raw JSON or YAML and indexes it.
func Parse(ctx context.Context, data []byte) (*Catalog, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	// Validation problems are reported but do not stop indexing.
	if err := doc.Validate(ctx); err != nil {
		internal.Logf("warning: OpenAPI validation: %v", err)
	}

	return fromDocument(doc), nil
}

// appOf returns the first segment of an API path.
func appOf(path string) string {
	app, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return app
}

func buildIndexes(doc *openapi3.T) map[string]*Index {
	indices := make(map[string]*Index)
	if doc.Paths == nil {
		return indices
	}

	for path, pathItem := range doc.Paths.Map() {
		app := appOf(path)
		for method, op := range pathItem.Operations() {
			if op == nil {
				continue
			}

			detail := &EndpointDetail{
				App:         app,
				Method:      strings.ToUpper(method),
				Path:        path,
				OperationID: op.OperationID,
				Summary:     op.Summary,
				Description: op.Description,
				Tags:        op.Tags,
				Responses:   make(map[string]string),
			}

			for _, pRef := range op.Parameters {
				if pRef.Value == nil {
					continue
				}
				detail.Parameters = append(detail.Parameters, parameterInfo(pRef.Value))
			}

			if op.RequestBody != nil && op.RequestBody.Value != nil {
				for ct, mediaType := range op.RequestBody.Value.Content {
					si := &SchemaInfo{ContentType: ct}
					if mediaType.Schema != nil && mediaType.Schema.Value != nil {
						attrs := attributesOf(mediaType.Schema.Value)
						si.Properties = flattenSchema(attrs)
						si.Required = attrs.Required
					}
					detail.RequestBody = si
					break // Take first content type
				}
			}

			if op.Responses != nil {
				for code, respRef := range op.Responses.Map() {
					if respRef.Value != nil && respRef.Value.Description != nil && *respRef.Value.Description != "" {
						detail.Responses[code] = *respRef.Value.Description
					}
				}
			}

			if indices[app] == nil {
				indices[app] = newIndex(app)
			}
			indices[app].add(detail)
		}
	}
	return indices
}

func parameterInfo(p *openapi3.Parameter) ParameterInfo {
	pi := ParameterInfo{
		Name:        p.Name,
		In:          p.In,
		Required:    p.Required,
		Description: p.Description,
	}
	if p.Schema == nil || p.Schema.Value == nil {
		return pi
	}
	s := p.Schema.Value
	pi.Type = typeOf(s)
	enum := s.Enum
	if len(enum) == 0 && s.Items != nil && s.Items.Value != nil {
		enum = s.Items.Value.Enum
	}
	for _, v := range enum {
		pi.Enum = append(pi.Enum, fmt.Sprint(v))
	}
	return pi
}

func typeOf(s *openapi3.Schema) string {
	if types := s.Type.Slice(); len(types) > 0 {
		return types[0]
	}
	return "unknown"
}

// attributesOf descends into data.attributes of a JSON:API request body.
func attributesOf(s *openapi3.Schema) *openapi3.Schema {
	data := s.Properties["data"]
	if data == nil || data.Value == nil {
		return s
	}
	attrs := data.Value.Properties["attributes"]
	if attrs == nil || attrs.Value == nil {
		return s
	}
	return attrs.Value
}

// flattenSchema extracts property names and types from a schema.
func flattenSchema(schema *openapi3.Schema) map[string]any {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	props := make(map[string]any)
	for name, propRef := range schema.Properties {
		if propRef.Value == nil {
			props[name] = "unknown"
			continue
		}
		p := propRef.Value
		t := typeOf(p)
		if p.Format != "" {
			t += " (" + p.Format + ")"
		}
		if len(p.Enum) > 0 {
			values := make([]string, len(p.Enum))
			for i, v := range p.Enum {
				values[i] = fmt.Sprint(v)
			}
			sort.Strings(values)
			props[name] = map[string]any{"type": t, "enum": values}
		} else {
			props[name] = t
		}
	}
	return props
}
