package validate

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// evalTyped implements spec 4.4's ordering: type/kind match first (a
// mismatch short-circuits everything else for this instance), then const,
// then enum, then whichever per-kind constraint bundle applies to the
// instance's actual kind.
func evalTyped(c *context, s *schema.TypedSchema, n *yaml.Node) error {
	kind, err := schema.KindOf(n)
	if err != nil {
		return c.report(n, schemaerr.TypeMismatch, err.Error())
	}

	if len(s.Types) > 0 && !kindMatchesAny(kind, n, s.Types) {
		return c.report(n, schemaerr.TypeMismatch, fmt.Sprintf("expected type %s, got %s", joinTypes(s.Types), kind))
	}

	if s.HasConst {
		v, err := schema.NodeToValue(n)
		if err != nil {
			return c.report(n, schemaerr.TypeMismatch, "failed to read instance value: "+err.Error())
		}
		if !schema.Equal(v, s.Const) {
			if rerr := c.report(n, schemaerr.ConstMismatch, "instance does not equal the const value"); rerr != nil {
				return rerr
			}
		}
	}

	if len(s.Enum) > 0 {
		v, err := schema.NodeToValue(n)
		if err != nil {
			return c.report(n, schemaerr.TypeMismatch, "failed to read instance value: "+err.Error())
		}
		matched := false
		for _, want := range s.Enum {
			if schema.Equal(v, want) {
				matched = true
				break
			}
		}
		if !matched {
			if rerr := c.report(n, schemaerr.EnumMismatch, "instance does not match any enum value"); rerr != nil {
				return rerr
			}
		}
	}

	switch kind {
	case schema.KindString:
		if s.String != nil {
			if err := evalString(c, s.String, n); err != nil {
				return err
			}
		}
	case schema.KindInt, schema.KindFloat:
		if s.Number != nil {
			if err := evalNumber(c, s.Number, n); err != nil {
				return err
			}
		}
	case schema.KindSequence:
		if s.Array != nil {
			if err := evalArray(c, s.Array, n); err != nil {
				return err
			}
		}
	case schema.KindMapping:
		if s.Object != nil {
			if err := evalObject(c, s.Object, n); err != nil {
				return err
			}
		}
	}

	return nil
}

// kindMatchesAny reports whether kind satisfies any of the declared types,
// applying spec 4.4's integer/number duality: a KindFloat instance with a
// zero fractional part satisfies "integer", and any numeric kind satisfies
// "number".
func kindMatchesAny(kind schema.Kind, n *yaml.Node, types []schema.TypeName) bool {
	for _, t := range types {
		if typeNameMatches(kind, n, t) {
			return true
		}
	}
	return false
}

func typeNameMatches(kind schema.Kind, n *yaml.Node, t schema.TypeName) bool {
	switch t {
	case schema.TypeNull:
		return kind == schema.KindNull
	case schema.TypeBoolean:
		return kind == schema.KindBool
	case schema.TypeInteger:
		return kind == schema.KindInt || (kind == schema.KindFloat && schema.IsIntegerValued(n))
	case schema.TypeNumber:
		return kind == schema.KindInt || kind == schema.KindFloat
	case schema.TypeString:
		return kind == schema.KindString
	case schema.TypeArray:
		return kind == schema.KindSequence
	case schema.TypeObject:
		return kind == schema.KindMapping
	default:
		return false
	}
}

func joinTypes(types []schema.TypeName) string {
	if len(types) == 1 {
		return types[0].String()
	}
	s := ""
	for i, t := range types {
		if i > 0 {
			s += " or "
		}
		s += t.String()
	}
	return s
}
