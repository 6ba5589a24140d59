package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// CollectModels walks the schema graphs rooted at roots and returns the
// registry of every named model reachable from them. Traversal is depth first:
// sequences, sets, optionals and union alternatives recurse into their
// children, model fields recurse once per model id, and Recursive nodes are
// never expanded (their target is resolved through the registry at
// classification time). Anonymous field maps encountered inside a model are
// assigned a derived id of the form parentID + UpperCamel(fieldKey), so a
// nested address map inside Customer becomes CustomerAddress.
//
// The result has set semantics: root order and duplicate discovery paths do
// not change the outcome.
func CollectModels(roots ...Node) (*Registry, error) {
	c := &collector{registry: NewRegistry()}
	for _, root := range roots {
		if err := c.walk(root, ""); err != nil {
			return nil, err
		}
	}
	return c.registry, nil
}

type collector struct {
	registry *Registry
}

func (c *collector) walk(n Node, derivedID string) error {
	switch v := n.(type) {
	case nil:
		return nil
	case *Model:
		return c.walkModel(v, derivedID)
	case Optional:
		return c.walk(v.Inner, derivedID)
	case Sequence:
		return c.walk(v.Elem, derivedID)
	case Set:
		return c.walk(v.Elem, derivedID)
	case Union:
		for _, alt := range v.Alternatives {
			if err := c.walk(alt, derivedID); err != nil {
				return err
			}
		}
		return nil
	case Recursive:
		// Resolved by id through the registry, never inlined here.
		return nil
	default:
		// Scalar leaves declare no models.
		return nil
	}
}

func (c *collector) walkModel(m *Model, derivedID string) error {
	if m.ID == "" {
		if derivedID == "" {
			return fmt.Errorf("schema: anonymous model is not reachable through a named field")
		}
		m.ID = derivedID
	}
	if c.registry.Contains(m.ID) {
		// Already traversed; guards against cycles and duplicate paths.
		return c.registry.Add(m)
	}
	if err := c.registry.Add(m); err != nil {
		return err
	}
	for _, f := range m.Fields {
		if err := c.walk(f.Node, m.ID+fieldTitle(f.Key)); err != nil {
			return fmt.Errorf("collecting field %q of model %q: %w", f.Key, m.ID, err)
		}
	}
	return nil
}

// fieldTitle upper-camels a field key: "address" -> "Address",
// "order-id" -> "OrderId".
func fieldTitle(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		switch {
		case r == '-' || r == '_' || r == ' ':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
