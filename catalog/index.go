package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Index holds parsed endpoint data for a single app.
type Index struct {
	App       string
	Endpoints map[string]map[string]*EndpointDetail // path -> method -> detail
}

func newIndex(app string) *Index {
	return &Index{App: app, Endpoints: make(map[string]map[string]*EndpointDetail)}
}

func (idx *Index) add(detail *EndpointDetail) {
	if idx.Endpoints[detail.Path] == nil {
		idx.Endpoints[detail.Path] = make(map[string]*EndpointDetail)
	}
	idx.Endpoints[detail.Path][detail.Method] = detail
}

// Count returns the total number of endpoints.
func (idx *Index) Count() int {
	n := 0
	for _, methods := range idx.Endpoints {
		n += len(methods)
	}
	return n
}

// Filter returns endpoint summaries matching optional tag and method filters.
func (idx *Index) Filter(tag, method string) []EndpointSummary {
	method = strings.ToUpper(method)
	return idx.collect(func(path string, detail *EndpointDetail) bool {
		if method != "" && detail.Method != method {
			return false
		}
		return tag == "" || hasTag(detail, tag)
	})
}

// Search returns the endpoints whose path, summary, description or tags
// contain query, ignoring case.
func (idx *Index) Search(query string) []EndpointSummary {
	query = strings.ToLower(query)
	return idx.collect(func(path string, detail *EndpointDetail) bool {
		return matches(query, path, detail)
	})
}

// GetDetail returns full details for a specific endpoint. A path that is
// not indexed is matched against indexed paths by prefix or suffix; a
// method that is not indexed falls back to GET.
func (idx *Index) GetDetail(path, method string) (*EndpointDetail, error) {
	methods, ok := idx.Endpoints[path]
	if !ok {
		for _, p := range idx.paths() {
			if strings.HasSuffix(p, path) || strings.HasPrefix(p, path) {
				methods = idx.Endpoints[p]
				path = p
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("endpoint %s not found", path)
		}
	}

	method = strings.ToUpper(method)
	if method == "" {
		method = "GET"
	}
	detail, ok := methods[method]
	if !ok {
		if d, ok := methods["GET"]; ok {
			return d, nil
		}
		return nil, fmt.Errorf("method %s not found for %s", method, path)
	}
	return detail, nil
}

func (idx *Index) paths() []string {
	paths := make([]string, 0, len(idx.Endpoints))
	for p := range idx.Endpoints {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (idx *Index) collect(keep func(path string, detail *EndpointDetail) bool) []EndpointSummary {
	var results []EndpointSummary
	for _, path := range idx.paths() {
		for _, m := range sortedMethods(idx.Endpoints[path]) {
			detail := idx.Endpoints[path][m]
			if !keep(path, detail) {
				continue
			}
			t := ""
			if len(detail.Tags) > 0 {
				t = detail.Tags[0]
			}
			results = append(results, EndpointSummary{
				App:     idx.App,
				Method:  m,
				Path:    path,
				Summary: detail.Summary,
				Tag:     t,
			})
		}
	}
	return results
}

var methodOrder = map[string]int{"GET": 0, "POST": 1, "PATCH": 2, "PUT": 3, "DELETE": 4}

func sortedMethods(methods map[string]*EndpointDetail) []string {
	out := make([]string, 0, len(methods))
	for m := range methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return methodOrder[out[i]] < methodOrder[out[j]] })
	return out
}

func hasTag(detail *EndpointDetail, tag string) bool {
	for _, t := range detail.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func matches(query, path string, detail *EndpointDetail) bool {
	if strings.Contains(strings.ToLower(path), query) {
		return true
	}
	if strings.Contains(strings.ToLower(detail.Summary), query) {
		return true
	}
	if strings.Contains(strings.ToLower(detail.Description), query) {
		return true
	}
	for _, tag := range detail.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
