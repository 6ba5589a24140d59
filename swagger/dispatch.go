package swagger

import (
	"reflect"
	"time"

	"github.com/cgrand/ring-swagger/schema"
)

// ClassifyFunc maps one schema node to its JSON Schema descriptor. Registered
// functions receive a Context for classifying child nodes and resolving
// recursive references.
type ClassifyFunc func(c *Context, n schema.Node) (JSONSchema, error)

// Predicate selects the nodes a registered ClassifyFunc applies to.
type Predicate func(n schema.Node) bool

// Dispatcher classifies schema nodes into Swagger 1.2 type descriptors. The
// built-in table is total over the documented variants; callers extend it by
// registration. Lookup order is exact node match first, then registered
// predicate rules in registration order, then the built-in variant table, then
// structural fallbacks; the first match wins.
//
// Registration is not safe for use concurrently with classification: register
// everything up front, or give each caller its own dispatcher.
type Dispatcher struct {
	exact    map[schema.Node]ClassifyFunc
	rules    []rule
	fallback []ClassifyFunc
	registry *schema.Registry
}

type rule struct {
	pred Predicate
	fn   ClassifyFunc
}

// NewDispatcher returns a dispatcher with the built-in mappings only.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{exact: make(map[schema.Node]ClassifyFunc)}
}

// RegisterNode maps one exact node value to fn. The node must be comparable
// (primitives, Recursive, *Model); non-comparable variants register through
// Register instead.
func (d *Dispatcher) RegisterNode(n schema.Node, fn ClassifyFunc) {
	d.exact[n] = fn
}

// Register appends a predicate rule consulted after exact matches, in
// registration order.
func (d *Dispatcher) Register(pred Predicate, fn ClassifyFunc) {
	d.rules = append(d.rules, rule{pred: pred, fn: fn})
}

// RegisterFallback appends a structural fallback consulted after the built-in
// table. A fallback signals "not mine" by returning *UnsupportedSchemaError,
// which passes control to the next one.
func (d *Dispatcher) RegisterFallback(fn ClassifyFunc) {
	d.fallback = append(d.fallback, fn)
}

// WithRegistry returns a copy of the dispatcher whose Recursive nodes resolve
// through reg. The extension tables are shared, not copied.
func (d *Dispatcher) WithRegistry(reg *schema.Registry) *Dispatcher {
	cp := *d
	cp.registry = reg
	return &cp
}

// Classify returns the descriptor for n in nested position: a model yields a
// $ref to its id.
func (d *Dispatcher) Classify(n schema.Node) (JSONSchema, error) {
	return (&Context{d: d}).classify(n)
}

// ClassifyReturn returns the descriptor for n in top-level return position: a
// model yields {type: id} instead of a $ref.
func (d *Dispatcher) ClassifyReturn(n schema.Node) (JSONSchema, error) {
	return (&Context{d: d, TopLevel: true}).classify(n)
}

// Context is the per-call classification state handed to ClassifyFuncs.
type Context struct {
	d *Dispatcher
	// TopLevel is true when classifying a route's return position, where
	// models type as {type: id} rather than {$ref: id}.
	TopLevel bool
}

// Classify classifies a child node in nested position.
func (c *Context) Classify(n schema.Node) (JSONSchema, error) {
	return (&Context{d: c.d}).classify(n)
}

// Resolve looks up a model by id in the registry bound to the dispatcher.
func (c *Context) Resolve(id string) (*schema.Model, bool) {
	if c.d.registry == nil {
		return nil, false
	}
	return c.d.registry.Resolve(id)
}

func (c *Context) classify(n schema.Node) (JSONSchema, error) {
	if n != nil && len(c.d.exact) > 0 && reflect.ValueOf(n).Comparable() {
		if fn, ok := c.d.exact[n]; ok {
			return fn(c, n)
		}
	}
	for _, r := range c.d.rules {
		if r.pred(n) {
			return r.fn(c, n)
		}
	}
	js, err := c.builtin(n)
	if err == nil {
		return js, nil
	}
	if _, unsupported := err.(*UnsupportedSchemaError); !unsupported {
		return JSONSchema{}, err
	}
	for _, fn := range c.d.fallback {
		js, ferr := fn(c, n)
		if ferr == nil {
			return js, nil
		}
		if _, unsupported := ferr.(*UnsupportedSchemaError); !unsupported {
			return JSONSchema{}, ferr
		}
	}
	return JSONSchema{}, err
}

// passthrough re-enters classification for wrapper variants without losing the
// top-level flag.
func (c *Context) passthrough(n schema.Node) (JSONSchema, error) {
	return (&Context{d: c.d, TopLevel: c.TopLevel}).classify(n)
}

func (c *Context) builtin(n schema.Node) (JSONSchema, error) {
	switch v := n.(type) {
	case nil:
		// Absent return schema.
		return JSONSchema{Type: "void"}, nil
	case schema.Primitive:
		return classifyPrimitive(v)
	case schema.Enum:
		if len(v.Values) == 0 {
			return JSONSchema{}, &UnsupportedSchemaError{Node: n}
		}
		js, err := classOf(v.Values[0])
		if err != nil {
			return JSONSchema{}, err
		}
		js.Enum = v.Values
		return js, nil
	case schema.Optional:
		// Optionality lives outside the type descriptor.
		return c.passthrough(v.Inner)
	case schema.Union:
		if len(v.Alternatives) == 0 {
			return JSONSchema{}, &UnsupportedSchemaError{Node: n}
		}
		// Swagger 1.2 has no union type: the first alternative decides,
		// the rest are discarded.
		return c.passthrough(v.Alternatives[0])
	case schema.Recursive:
		target, ok := c.Resolve(v.TargetID)
		if !ok {
			return JSONSchema{}, &UnsupportedSchemaError{Node: n}
		}
		return c.passthrough(target)
	case schema.Literal:
		return classOf(v.Value)
	case schema.Sequence:
		items, err := c.Classify(v.Elem)
		if err != nil {
			return JSONSchema{}, err
		}
		return JSONSchema{Type: "array", Items: &items}, nil
	case schema.Set:
		items, err := c.Classify(v.Elem)
		if err != nil {
			return JSONSchema{}, err
		}
		return JSONSchema{Type: "array", UniqueItems: true, Items: &items}, nil
	case *schema.Model:
		if v.ID == "" {
			return JSONSchema{}, &UnsupportedSchemaError{Node: n}
		}
		if c.TopLevel {
			return JSONSchema{Type: v.ID}, nil
		}
		return JSONSchema{Ref: v.ID}, nil
	default:
		return JSONSchema{}, &UnsupportedSchemaError{Node: n}
	}
}

func classifyPrimitive(p schema.Primitive) (JSONSchema, error) {
	switch p {
	case schema.Long:
		return JSONSchema{Type: "integer", Format: "int64"}, nil
	case schema.Double:
		return JSONSchema{Type: "number", Format: "double"}, nil
	case schema.String, schema.Keyword:
		return JSONSchema{Type: "string"}, nil
	case schema.Boolean:
		return JSONSchema{Type: "boolean"}, nil
	case schema.DateTime:
		return JSONSchema{Type: "string", Format: "date-time"}, nil
	case schema.Date:
		return JSONSchema{Type: "string", Format: "date"}, nil
	default:
		return JSONSchema{}, &UnsupportedSchemaError{Node: p}
	}
}

// classOf types a concrete value, used for enum members and literals.
func classOf(v any) (JSONSchema, error) {
	switch v.(type) {
	case string:
		return JSONSchema{Type: "string"}, nil
	case bool:
		return JSONSchema{Type: "boolean"}, nil
	case int, int32, int64:
		return JSONSchema{Type: "integer", Format: "int64"}, nil
	case float32, float64:
		return JSONSchema{Type: "number", Format: "double"}, nil
	case time.Time:
		return JSONSchema{Type: "string", Format: "date-time"}, nil
	case schema.Primitive:
		return classifyPrimitive(v.(schema.Primitive))
	default:
		return JSONSchema{}, &UnsupportedSchemaError{Node: schema.Literal{Value: v}}
	}
}
