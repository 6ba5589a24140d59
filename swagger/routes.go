package swagger

import (
	"sync"

	"github.com/cgrand/ring-swagger/schema"
)

// RouteOption configures a route during registration.
type RouteOption func(*Route)

// WithSummary sets the operation summary.
func WithSummary(summary string) RouteOption {
	return func(r *Route) { r.Summary = summary }
}

// WithNotes sets the operation notes.
func WithNotes(notes string) RouteOption {
	return func(r *Route) { r.Notes = notes }
}

// WithNickname overrides the generated operation id.
func WithNickname(nickname string) RouteOption {
	return func(r *Route) { r.Nickname = nickname }
}

// WithReturn sets the response schema.
func WithReturn(n schema.Node) RouteOption {
	return func(r *Route) { r.Return = n }
}

// WithParameters appends parameter specs in declaration order.
func WithParameters(specs ...ParameterSpec) RouteOption {
	return func(r *Route) { r.Parameters = append(r.Parameters, specs...) }
}

// RouteRegistry accumulates routes from routing collaborators, grouped by api
// name, and hands them to the builder. Registration is safe for concurrent
// use; reads return copies.
type RouteRegistry struct {
	mu     sync.RWMutex
	groups map[string]*APIGroup
	order  []string
}

// NewRouteRegistry returns an empty registry.
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{groups: make(map[string]*APIGroup)}
}

// Describe sets the description of a group, creating it if needed.
func (r *RouteRegistry) Describe(group, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.group(group).Description = description
}

// Add registers one route under the named group. When the URI template
// declares path tokens and no path parameter spec was given, the implied path
// parameters are appended automatically.
func (r *RouteRegistry) Add(group, method, uri string, opts ...RouteOption) {
	route := Route{Method: method, URI: uri}
	for _, opt := range opts {
		opt(&route)
	}
	if !hasPathSpec(route.Parameters) {
		if implied := ImpliedPathParameters(uri); implied != nil {
			route.Parameters = append(route.Parameters, *implied)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.group(group)
	g.Routes = append(g.Routes, route)
}

// Groups returns the registered groups in registration order.
func (r *RouteRegistry) Groups() []APIGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]APIGroup, 0, len(r.order))
	for _, name := range r.order {
		g := r.groups[name]
		cp := *g
		cp.Routes = append([]Route(nil), g.Routes...)
		out = append(out, cp)
	}
	return out
}

// Count returns the number of registered routes across all groups.
func (r *RouteRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, g := range r.groups {
		n += len(g.Routes)
	}
	return n
}

func (r *RouteRegistry) group(name string) *APIGroup {
	g, ok := r.groups[name]
	if !ok {
		g = &APIGroup{Name: name}
		r.groups[name] = g
		r.order = append(r.order, name)
	}
	return g
}

func hasPathSpec(specs []ParameterSpec) bool {
	for _, ps := range specs {
		if ps.Location == InPath {
			return true
		}
	}
	return false
}
