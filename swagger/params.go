package swagger

import (
	"fmt"
	"strings"

	"github.com/cgrand/ring-swagger/schema"
)

// ParamLocation is where a parameter travels in a request.
type ParamLocation string

// Supported parameter locations.
const (
	InPath  ParamLocation = "path"
	InQuery ParamLocation = "query"
	InBody  ParamLocation = "body"
)

// ParameterSpec declares one parameter group of a route: a field map for path
// and query parameters, or a single (possibly collection-typed) model for the
// body. Meta overrides the generated parameter's name, description or
// required flag.
type ParameterSpec struct {
	Location ParamLocation
	Schema   schema.Node
	Meta     map[string]any
}

// Parameter is one Swagger 1.2 operation parameter.
type Parameter struct {
	JSONSchema
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Required    bool          `json:"required"`
	ParamType   ParamLocation `json:"paramType"`
}

// ConvertParameters expands parameter specs into Swagger parameters,
// preserving declaration order. Path and query specs emit one parameter per
// field of their attached field map (the open-keys marker is dropped: strict
// mode); a body spec emits exactly one body parameter typed by model
// reference.
func (d *Dispatcher) ConvertParameters(specs []ParameterSpec) ([]Parameter, error) {
	params := make([]Parameter, 0, len(specs))
	for _, ps := range specs {
		switch ps.Location {
		case InPath, InQuery:
			expanded, err := d.convertFieldMap(ps)
			if err != nil {
				return nil, err
			}
			params = append(params, expanded...)
		case InBody:
			p, err := d.convertBody(ps)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		default:
			return nil, &InvalidParameterLocationError{Location: ps.Location, Name: metaString(ps.Meta, "name")}
		}
	}
	return params, nil
}

func (d *Dispatcher) convertFieldMap(ps ParameterSpec) ([]Parameter, error) {
	m, ok := ps.Schema.(*schema.Model)
	if !ok {
		return nil, &UnsupportedSchemaError{Node: ps.Schema}
	}
	params := make([]Parameter, 0, len(m.Fields))
	for _, f := range m.Fields {
		js, err := d.Classify(f.Node)
		if err != nil {
			if unsupported, uok := err.(*UnsupportedSchemaError); uok {
				return nil, unsupported.in(m.ID, f.Key)
			}
			return nil, fmt.Errorf("converting %s parameter %q: %w", ps.Location, f.Key, err)
		}
		params = append(params, Parameter{
			JSONSchema: js,
			Name:       f.Key,
			Required:   f.Required,
			ParamType:  ps.Location,
		})
	}
	return params, nil
}

func (d *Dispatcher) convertBody(ps ParameterSpec) (Parameter, error) {
	// Top-level convention: a model body types as {type: id}, a sequence
	// body as an array of $refs.
	js, err := d.ClassifyReturn(ps.Schema)
	if err != nil {
		return Parameter{}, err
	}
	p := Parameter{
		JSONSchema: js,
		Name:       bodyName(ps.Schema),
		Required:   true,
		ParamType:  InBody,
	}
	if name := metaString(ps.Meta, "name"); name != "" {
		p.Name = name
	}
	if desc := metaString(ps.Meta, "description"); desc != "" {
		p.Description = desc
	}
	if req, ok := ps.Meta["required"].(bool); ok {
		p.Required = req
	}
	return p, nil
}

func bodyName(n schema.Node) string {
	if m, ok := n.(*schema.Model); ok && m.ID != "" {
		return strings.ToLower(m.ID)
	}
	return "body"
}

func metaString(meta map[string]any, key string) string {
	s, _ := meta[key].(string)
	return s
}
