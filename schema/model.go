package schema

// Field is one entry of a model's field map. Meta carries documentation
// metadata (description, defaults) that is merged into the generated property;
// reserved keys are stripped during transformation.
type Field struct {
	Key      string
	Node     Node
	Required bool
	Meta     map[string]any
}

// Model is a named structural schema: a unique id plus an ordered field map.
// Models are referenced by identity everywhere else in a graph, never
// duplicated. A Model with an empty ID is an anonymous field map; the
// collector assigns it a derived id before it can be referenced.
//
// Open marks a field map that tolerates unknown keys. Strict consumers (the
// parameter converter) drop the marker and emit declared fields only.
type Model struct {
	ID     string
	Fields []Field
	Open   bool
}

func (*Model) node() {}

// NewModel builds a named model from fields in declaration order.
func NewModel(id string, fields ...Field) *Model {
	return &Model{ID: id, Fields: fields}
}

// Req is a required field.
func Req(key string, n Node) Field {
	return Field{Key: key, Node: n, Required: true}
}

// Opt is an optional field.
func Opt(key string, n Node) Field {
	return Field{Key: key, Node: n}
}

// WithMeta returns a copy of the field with the given metadata attached.
func (f Field) WithMeta(meta map[string]any) Field {
	f.Meta = meta
	return f
}

// Field returns the field with the given key, if present.
func (m *Model) Field(key string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredKeys returns the keys of required fields in declaration order.
func (m *Model) RequiredKeys() []string {
	var keys []string
	for _, f := range m.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
