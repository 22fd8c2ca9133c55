// Package pathbuilder provides efficient incremental path construction for
// the validation engine's diagnostic paths.
//
// Builder uses push/pop semantics to avoid allocations during recursive
// traversal: the full string is only materialized when String() is called
// to format a diagnostic.
package pathbuilder
