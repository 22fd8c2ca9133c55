package schema

import (
	"math"

	"go.yaml.in/yaml/v4"
)

// Value is a canonical, detached snapshot of a YAML node's content, used
// wherever the loader needs to hold onto a value independent of its source
// tree: `const`, `enum` entries, and (at validation time) array elements
// being compared for `uniqueItems`.
//
// Value equality implements spec 3.1's total-ordering semantics: integers
// and floats with equal numeric value compare equal, NaN is reflexively
// equal to NaN but distinct from every non-NaN value, and +0.0 equals -0.0.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Seq    []Value
	Map    []ValueEntry
	hasInt bool // true when Kind==KindInt and the int64 form is authoritative
}

// ValueEntry is a single key/value pair of a canonical mapping Value,
// preserving source order.
type ValueEntry struct {
	Key   string
	Value Value
}

// nodeToValue converts a (possibly nested) YAML node into a canonical Value.
func nodeToValue(n *yaml.Node) (Value, error) {
	n = resolveNode(n)
	kind, err := kindOf(n)
	if err != nil {
		return Value{}, err
	}
	switch kind {
	case KindNull:
		return Value{Kind: KindNull}, nil
	case KindBool:
		b, err := decodeBool(n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBool, Bool: b}, nil
	case KindInt:
		i, err := decodeInt(n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Int: i, hasInt: true}, nil
	case KindFloat:
		f, err := decodeFloat(n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFloat, Float: f}, nil
	case KindString:
		return Value{Kind: KindString, Str: resolveNode(n).Value}, nil
	case KindSequence:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{Kind: KindSequence, Seq: items}, nil
	case KindMapping:
		entries := mappingEntries(n)
		out := make([]ValueEntry, 0, len(entries))
		for _, e := range entries {
			v, err := nodeToValue(e.value)
			if err != nil {
				return Value{}, err
			}
			out = append(out, ValueEntry{Key: resolveNode(e.key).Value, Value: v})
		}
		return Value{Kind: KindMapping, Map: out}, nil
	default:
		return Value{}, nil
	}
}

// isNumeric reports whether v holds an integer or float.
func (v Value) isNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// numeric returns v's numeric value as a float64, for Int or Float kinds.
func (v Value) numeric() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}
	return v.Float
}

// Equal implements spec 3.1's structural/total-ordering equality: numerics
// compare by numeric value (int/float duality), NaN is distinct from every
// non-NaN value but equal to another NaN under total ordering, +0.0 == -0.0,
// and containers compare recursively by structure (mappings
// order-independent on keys, sequences order-dependent).
func Equal(a, b Value) bool {
	switch {
	case a.isNumeric() && b.isNumeric():
		af, bf := a.numeric(), b.numeric()
		if math.IsNaN(af) || math.IsNaN(bf) {
			return math.IsNaN(af) == math.IsNaN(bf)
		}
		return af == bf
	case a.Kind != b.Kind:
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindString:
		return a.Str == b.Str
	case KindSequence:
		if len(a.Seq) != len(b.Seq) {
			return false
		}
		for i := range a.Seq {
			if !Equal(a.Seq[i], b.Seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for _, ea := range a.Map {
			found := false
			for _, eb := range b.Map {
				if ea.Key == eb.Key {
					found = Equal(ea.Value, eb.Value)
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}
