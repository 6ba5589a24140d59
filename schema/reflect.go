package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FromStruct derives a model from a Go struct type: field keys come from json
// tags, required flags from `validate:"required"`, descriptions from doc tags.
// Pointer fields and fields tagged omitempty become Optional. Nested structs
// become anonymous sub-models, named by the collector when the model is
// collected.
func FromStruct(id string, t reflect.Type) (*Model, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, skip := jsonName(sf)
		if skip {
			continue
		}

		node, optional, err := nodeFor(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s of %s: %w", sf.Name, t, err)
		}

		required := hasValidateRule(sf, "required")
		if optional || strings.Contains(sf.Tag.Get("json"), ",omitempty") {
			required = false
			node = Optional{Inner: node}
		}

		f := Field{Key: key, Node: node, Required: required}
		if doc := sf.Tag.Get("doc"); doc != "" {
			f.Meta = map[string]any{"description": doc}
		}
		fields = append(fields, f)
	}
	return &Model{ID: id, Fields: fields}, nil
}

var timeType = reflect.TypeOf(time.Time{})

func nodeFor(t reflect.Type) (Node, bool, error) {
	if t == timeType {
		return DateTime, false, nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		n, _, err := nodeFor(t.Elem())
		return n, true, err
	case reflect.String:
		return String, false, nil
	case reflect.Bool:
		return Boolean, false, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Long, false, nil
	case reflect.Float32, reflect.Float64:
		return Double, false, nil
	case reflect.Slice, reflect.Array:
		elem, _, err := nodeFor(t.Elem())
		if err != nil {
			return nil, false, err
		}
		return Sequence{Elem: elem}, false, nil
	case reflect.Struct:
		m, err := FromStruct("", t)
		if err != nil {
			return nil, false, err
		}
		return m, false, nil
	default:
		return nil, false, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

func jsonName(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name, false
	}
	parts := strings.SplitN(tag, ",", 2)
	switch parts[0] {
	case "-":
		return "", true
	case "":
		return sf.Name, false
	default:
		return parts[0], false
	}
}

func hasValidateRule(sf reflect.StructField, rule string) bool {
	for _, r := range strings.Split(sf.Tag.Get("validate"), ",") {
		if r == rule {
			return true
		}
	}
	return false
}
