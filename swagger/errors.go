package swagger

import (
	"fmt"

	"github.com/cgrand/ring-swagger/schema"
)

// UnsupportedSchemaError reports a schema node no registered mapping can
// classify. ModelID and FieldKey locate the node when it was reached through
// a model transformation.
type UnsupportedSchemaError struct {
	Node     schema.Node
	ModelID  string
	FieldKey string
}

func (e *UnsupportedSchemaError) Error() string {
	msg := fmt.Sprintf("swagger: unsupported schema node %T (%v)", e.Node, e.Node)
	if e.ModelID != "" {
		msg += fmt.Sprintf(" in field %q of model %q", e.FieldKey, e.ModelID)
	}
	return msg
}

// in returns a copy of the error annotated with its enclosing model and field.
func (e *UnsupportedSchemaError) in(modelID, fieldKey string) *UnsupportedSchemaError {
	return &UnsupportedSchemaError{Node: e.Node, ModelID: modelID, FieldKey: fieldKey}
}

// InvalidParameterLocationError reports a parameter spec whose location is not
// one of path, query or body.
type InvalidParameterLocationError struct {
	Location ParamLocation
	Name     string
}

func (e *InvalidParameterLocationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("swagger: invalid parameter location %q for parameter %q", e.Location, e.Name)
	}
	return fmt.Sprintf("swagger: invalid parameter location %q", e.Location)
}
