package swagger

import (
	"fmt"

	"github.com/cgrand/ring-swagger/schema"
)

// Property is one entry of a model's properties block: the field's type
// descriptor merged with its documentation metadata.
type Property map[string]any

// ModelSpec is the Swagger 1.2 model descriptor emitted into the models block
// of an api declaration. Required lists required field keys in declaration
// order and is omitted entirely when no field is required.
type ModelSpec struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Metadata keys that name the model or field itself rather than documenting
// it; never copied into properties.
var reservedMetaKeys = map[string]struct{}{
	"model": {},
	"name":  {},
}

// TransformModel renders one named model. Classification failures are
// annotated with the offending field key and model id.
func (d *Dispatcher) TransformModel(m *schema.Model) (ModelSpec, error) {
	props := make(map[string]Property, len(m.Fields))
	for _, f := range m.Fields {
		js, err := d.Classify(f.Node)
		if err != nil {
			if unsupported, ok := err.(*UnsupportedSchemaError); ok {
				return ModelSpec{}, unsupported.in(m.ID, f.Key)
			}
			return ModelSpec{}, fmt.Errorf("transforming field %q of model %q: %w", f.Key, m.ID, err)
		}
		prop := Property(js.asMap())
		for k, v := range f.Meta {
			if _, reserved := reservedMetaKeys[k]; !reserved {
				prop[k] = v
			}
		}
		props[f.Key] = prop
	}
	return ModelSpec{
		ID:         m.ID,
		Properties: props,
		Required:   m.RequiredKeys(),
	}, nil
}
