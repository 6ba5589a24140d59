package schema

import (
	"fmt"
	"reflect"
	"sort"
)

// Registry is the set of models discovered during one collection pass, keyed
// by id. Recursive nodes resolve their target through a registry instead of
// being expanded in place.
type Registry struct {
	models map[string]*Model
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Model)}
}

// Add registers a model under its id. Re-adding the same model is a no-op;
// a structurally different model under an already taken id is rejected.
func (r *Registry) Add(m *Model) error {
	if m.ID == "" {
		return fmt.Errorf("schema: cannot register a model without an id")
	}
	existing, ok := r.models[m.ID]
	if !ok {
		r.models[m.ID] = m
		return nil
	}
	if existing == m || reflect.DeepEqual(existing, m) {
		return nil
	}
	return fmt.Errorf("schema: conflicting definitions for model %q", m.ID)
}

// Resolve returns the model registered under id.
func (r *Registry) Resolve(id string) (*Model, bool) {
	m, ok := r.models[id]
	return m, ok
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.models[id]
	return ok
}

// Models returns all registered models sorted by id.
func (r *Registry) Models() []*Model {
	out := make([]*Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.models)
}
