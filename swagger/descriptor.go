// Package swagger transforms schema-node graphs and route metadata into
// Swagger 1.2 resource listing and api declaration documents. All operations
// are pure functions over immutable inputs; the only shared structure is a
// Dispatcher's extension table, which must be frozen before concurrent use.
package swagger

// JSONSchema is the Swagger 1.2 dialect type descriptor produced by
// classification: type/format for scalars, items for collections, $ref for
// nested model references, enum for closed value sets.
type JSONSchema struct {
	Type        string      `json:"type,omitempty"`
	Format      string      `json:"format,omitempty"`
	Items       *JSONSchema `json:"items,omitempty"`
	Ref         string      `json:"$ref,omitempty"`
	Enum        []any       `json:"enum,omitempty"`
	UniqueItems bool        `json:"uniqueItems,omitempty"`
}

// asMap renders the descriptor as a plain map, the shape properties are
// emitted in so field metadata can be merged alongside.
func (s JSONSchema) asMap() map[string]any {
	m := make(map[string]any, 2)
	if s.Type != "" {
		m["type"] = s.Type
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.Items != nil {
		m["items"] = s.Items.asMap()
	}
	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if s.Enum != nil {
		m["enum"] = s.Enum
	}
	if s.UniqueItems {
		m["uniqueItems"] = true
	}
	return m
}
