// Package schema holds the schema data model and the loader that builds it
// from a parsed YAML tree.
//
// A Schema is one of four concrete forms: BooleanSchema, *TypedSchema,
// *RefSchema, or *CompositionSchema. The package carries no validation
// behavior of its own — package validate type-switches over these forms
// and walks a target document against them.
package schema
