package schemaerr

import "fmt"

// Marker is a (line, column, byte offset) triple attached to every parsed
// YAML node and carried into diagnostics for provenance. Line and Column
// are 1-based; a zero Line indicates the location is unknown.
type Marker struct {
	Line       int
	Column     int
	ByteOffset int
}

// IsKnown reports whether this marker has valid line information.
func (m Marker) IsKnown() bool {
	return m.Line > 0
}

// String renders the marker the way error text formats it: "line:column".
func (m Marker) String() string {
	if !m.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", m.Line, m.Column)
}

// LoadErrorKind discriminates the reasons a schema document failed to load.
type LoadErrorKind int

const (
	// ExpectedMapping is reported when a mapping node was required but not found.
	ExpectedMapping LoadErrorKind = iota
	// ExpectedSequence is reported when a sequence node was required but not found.
	ExpectedSequence
	// ExpectedScalar is reported when a scalar node was required but not found.
	ExpectedScalar
	// UnknownType is reported when a `type` value names a kind outside the
	// supported set.
	UnknownType
	// UnsupportedType is reported when a schema node is a kind the loader
	// cannot interpret as a schema (anything but a mapping or boolean scalar).
	UnsupportedType
	// InvalidRegex is reported when `pattern` or a `patternProperties` key
	// fails to compile.
	InvalidRegex
	// MalformedRef is reported when `$ref` is not a local fragment of the
	// form "#/...".
	MalformedRef
	// EmptyComposition is reported when allOf/anyOf/oneOf names zero subschemas.
	EmptyComposition
	// InvalidMultipleOf is reported when `multipleOf` is not strictly positive.
	InvalidMultipleOf
	// Generic covers load failures that don't fit a more specific kind.
	Generic
)

// String returns the keyword-ish name of the load error kind.
func (k LoadErrorKind) String() string {
	switch k {
	case ExpectedMapping:
		return "ExpectedMapping"
	case ExpectedSequence:
		return "ExpectedSequence"
	case ExpectedScalar:
		return "ExpectedScalar"
	case UnknownType:
		return "UnknownType"
	case UnsupportedType:
		return "UnsupportedType"
	case InvalidRegex:
		return "InvalidRegex"
	case MalformedRef:
		return "MalformedRef"
	case EmptyComposition:
		return "EmptyComposition"
	case InvalidMultipleOf:
		return "InvalidMultipleOf"
	case Generic:
		return "Generic"
	default:
		return "Unknown"
	}
}

// LoadError represents a fatal failure to build a Schema graph from a YAML
// tree. Loading halts on the first LoadError.
type LoadError struct {
	// Kind discriminates the failure category.
	Kind LoadErrorKind
	// Marker is the source position of the offending node.
	Marker Marker
	// Path is a best-effort JSON-pointer-style path to the offending node,
	// empty when the failure is at the schema root.
	Path string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any (e.g. a regexp.Compile failure).
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Marker, e.Kind)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// ValidationErrorKind discriminates the reasons an instance failed to
// validate against a schema.
type ValidationErrorKind int

const (
	// TypeMismatch is reported when an instance's kind is not among the
	// schema's declared type(s).
	TypeMismatch ValidationErrorKind = iota
	// ConstMismatch is reported when an instance is not structurally equal
	// to a schema's `const` value.
	ConstMismatch
	// EnumMismatch is reported when an instance matches none of a schema's
	// `enum` values.
	EnumMismatch
	// PatternMismatch is reported when a string fails its `pattern` regex.
	PatternMismatch
	// RangeViolation is reported for minimum/maximum/exclusiveMinimum/
	// exclusiveMaximum violations.
	RangeViolation
	// MultipleOfViolation is reported when a number is not a multiple of
	// `multipleOf`.
	MultipleOfViolation
	// LengthViolation is reported for minLength/maxLength violations.
	LengthViolation
	// SizeViolation is reported for minItems/maxItems/minProperties/
	// maxProperties violations.
	SizeViolation
	// UniquenessViolation is reported when `uniqueItems` finds a duplicate pair.
	UniquenessViolation
	// RequiredMissing is reported when a `required` property is absent.
	RequiredMissing
	// UnexpectedProperty is reported when `additionalProperties: false`
	// rejects an undeclared property.
	UnexpectedProperty
	// OneOfNoneMatched is reported when no `oneOf` branch accepted the instance.
	OneOfNoneMatched
	// OneOfMultipleMatched is reported when more than one `oneOf` branch
	// accepted the instance.
	OneOfMultipleMatched
	// AnyOfMismatch is reported when no `anyOf` branch accepted the instance.
	AnyOfMismatch
	// NotShouldHaveFailed is reported when the subschema of `not` accepted
	// the instance.
	NotShouldHaveFailed
	// FalseSchema is reported when the schema is the boolean literal `false`.
	FalseSchema
	// UnresolvedRef is reported when a `$ref` fragment has no entry in
	// `$defs`.
	UnresolvedRef
)

// String returns the keyword-ish name of the validation error kind.
func (k ValidationErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case ConstMismatch:
		return "ConstMismatch"
	case EnumMismatch:
		return "EnumMismatch"
	case PatternMismatch:
		return "PatternMismatch"
	case RangeViolation:
		return "RangeViolation"
	case MultipleOfViolation:
		return "MultipleOfViolation"
	case LengthViolation:
		return "LengthViolation"
	case SizeViolation:
		return "SizeViolation"
	case UniquenessViolation:
		return "UniquenessViolation"
	case RequiredMissing:
		return "RequiredMissing"
	case UnexpectedProperty:
		return "UnexpectedProperty"
	case OneOfNoneMatched:
		return "OneOfNoneMatched"
	case OneOfMultipleMatched:
		return "OneOfMultipleMatched"
	case AnyOfMismatch:
		return "AnyOfMismatch"
	case NotShouldHaveFailed:
		return "NotShouldHaveFailed"
	case FalseSchema:
		return "FalseSchema"
	case UnresolvedRef:
		return "UnresolvedRef"
	default:
		return "Unknown"
	}
}

// ValidationError is a single, non-fatal diagnostic produced while
// validating a target YAML document against a Schema.
type ValidationError struct {
	// Path is the JSON-pointer-style path into the target document
	// (".name" for object descent, "[i]" for array descent; empty at root).
	Path string
	// Marker is the source position of the offending instance node.
	Marker Marker
	// Kind discriminates the failure category.
	Kind ValidationErrorKind
	// Message is a human-readable description of the failure.
	Message string
}

// Error renders the error using the format from the external interface:
// "[<line>:<col>] <path>: <message>".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Marker, e.Path, e.Message)
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ResourceLimitError represents a defensive resource-exhaustion guard
// tripping, such as a $ref chain that never reaches a type check. It is not
// part of the spec's two core taxonomies: it signals a hard stop of
// validation, distinct from an accumulated ValidationError.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "ref_hops".
	ResourceType string
	// Limit is the configured maximum.
	Limit int
	// Path is where the limit was hit.
	Path string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s (limit %d) at %s", e.ResourceType, e.Limit, e.Path)
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
