package schema

import "regexp"

// TypeName is a declared `type` keyword value, one of the seven kinds
// spec section 3.2 lists: {null, boolean, integer, number, string, array,
// object}. It's distinct from Kind: "number" matches both KindInt and
// KindFloat instances, and "integer" additionally matches a KindFloat
// instance whose fractional part is zero.
type TypeName int

const (
	TypeNull TypeName = iota
	TypeBoolean
	TypeInteger
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String renders the TypeName the way it appears in a schema's `type` keyword.
func (t TypeName) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// typeNameOf parses a `type` keyword string into a TypeName. ok is false
// for any name outside the supported set.
func typeNameOf(s string) (TypeName, bool) {
	switch s {
	case "null":
		return TypeNull, true
	case "boolean":
		return TypeBoolean, true
	case "integer":
		return TypeInteger, true
	case "number":
		return TypeNumber, true
	case "string":
		return TypeString, true
	case "array":
		return TypeArray, true
	case "object":
		return TypeObject, true
	default:
		return 0, false
	}
}

// Schema is a tagged variant over the schema forms spec section 3.2 names:
// BooleanSchema, *TypedSchema, *RefSchema, *CompositionSchema. It carries
// no behavior of its own — the validation engine (package validate)
// type-switches over these concrete forms.
type Schema interface {
	isSchema()
}

// BooleanSchema is the literal `true` (accepts everything) or `false`
// (rejects everything) schema.
type BooleanSchema bool

func (BooleanSchema) isSchema() {}

// BaseSchema holds the fields shared by every typed schema node: inert
// annotations plus the two assertion keywords that are checked ahead of
// any per-kind constraint (spec 4.4).
type BaseSchema struct {
	Title       string
	Description string
	ID          string // $id, root-only by convention but accepted anywhere
	SchemaURI   string // $schema, root-only by convention but accepted anywhere

	HasConst bool
	Const    Value // valid only when HasConst

	Enum []Value // ordered; nil means no enum keyword present
}

// StringConstraints holds the per-kind bundle applicable when an instance's
// actual kind is KindString.
type StringConstraints struct {
	MinLength  *int
	MaxLength  *int
	Pattern    *regexp.Regexp
	PatternSrc string
}

// NumberConstraints holds the per-kind bundle applicable when an instance's
// actual kind is KindInt or KindFloat.
type NumberConstraints struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
}

// ArrayConstraints holds the per-kind bundle applicable when an instance's
// actual kind is KindSequence. At most one of Items or TupleItems is set,
// per spec 4.1's single-schema vs. tuple form of `items`; neither is set
// when `items` is absent.
type ArrayConstraints struct {
	Items       Schema   // single-schema form, applied to every element
	TupleItems  []Schema // tuple form, applied positionally
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

// PatternProperty is a single patternProperties entry: a compiled regex
// paired with the subschema applied to matching property names.
type PatternProperty struct {
	Pattern    *regexp.Regexp
	PatternSrc string
	Schema     Schema
}

// Property is a single properties entry, preserving schema-source order.
type Property struct {
	Name   string
	Schema Schema
}

// ObjectConstraints holds the per-kind bundle applicable when an instance's
// actual kind is KindMapping.
type ObjectConstraints struct {
	Properties           []Property
	PatternProperties    []PatternProperty
	Required             []string
	AdditionalProperties any // nil (unconstrained) | bool | Schema
	MinProperties        *int
	MaxProperties        *int
}

// TypedSchema is the common case: a BaseSchema plus a declared type
// specification and the per-kind constraint bundles that apply when an
// instance matches one of the declared types.
type TypedSchema struct {
	BaseSchema

	// Types is the declared type set. Empty means "accepts any kind" per
	// spec 4.1 ("Absent -> treated as a schema that accepts any kind").
	Types []TypeName

	String *StringConstraints
	Number *NumberConstraints
	Array  *ArrayConstraints
	Object *ObjectConstraints
}

func (*TypedSchema) isSchema() {}

// RefSchema is a deferred `$ref` lookup, resolved through the root's $defs
// table at validation time. It is never an owning edge in the schema graph.
type RefSchema struct {
	Fragment string // e.g. "/$defs/widget"
}

func (*RefSchema) isSchema() {}

// CompositionKind discriminates the four composition operators.
type CompositionKind int

const (
	AllOf CompositionKind = iota
	AnyOf
	OneOf
	Not
)

// String renders the CompositionKind the way it appears as a schema keyword.
func (c CompositionKind) String() string {
	switch c {
	case AllOf:
		return "allOf"
	case AnyOf:
		return "anyOf"
	case OneOf:
		return "oneOf"
	case Not:
		return "not"
	default:
		return "unknown"
	}
}

// CompositionSchema carries one or more subschemas for allOf/anyOf/oneOf,
// or exactly one for not. Composition variants always carry at least one
// subschema — spec 3.3 makes an empty allOf/anyOf/oneOf a load error.
type CompositionSchema struct {
	Kind       CompositionKind
	Subschemas []Schema
}

func (*CompositionSchema) isSchema() {}

// RootSchema wraps the top-level Schema and owns the $defs table: a mapping
// from fragment path (e.g. "/$defs/widget") to Schema. Ref nodes are pure
// lookups into this table, never owning edges, so cycles through $ref are
// representable without the schema graph itself containing a cycle.
type RootSchema struct {
	Root Schema
	Defs map[string]Schema
}

// Resolve looks up a $ref fragment in the $defs table.
func (r *RootSchema) Resolve(fragment string) (Schema, bool) {
	s, ok := r.Defs[fragment]
	return s, ok
}
