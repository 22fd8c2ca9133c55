// Package schemaerr provides structured error types for the schema loader
// and the validation engine.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), letting callers distinguish a fatal load failure from an
// accumulated, non-fatal validation diagnostic.
//
// # Error categories
//
//   - LoadError: malformed schema documents, detected while building the
//     Schema graph. Loading aborts on the first LoadError.
//   - ValidationError: instance/schema mismatches, detected while walking a
//     target document. These accumulate in a Diagnostics slice unless
//     fail-fast is enabled.
//   - ResourceLimitError: a defensive recursion-depth guard tripped during
//     $ref resolution. Not part of the core taxonomy; see ResourceLimitError.
//
// # Usage with errors.As
//
//	root, err := schema.Load(data)
//	if err != nil {
//	    var loadErr *schemaerr.LoadError
//	    if errors.As(err, &loadErr) {
//	        fmt.Println(loadErr.Kind, loadErr.Marker)
//	    }
//	}
package schemaerr

import "errors"

// Sentinel errors for use with errors.Is().
var (
	// ErrLoad indicates a schema failed to load.
	ErrLoad = errors.New("schema load error")

	// ErrValidation indicates an instance failed validation.
	ErrValidation = errors.New("schema validation error")

	// ErrResourceLimit indicates a defensive resource limit was exceeded.
	ErrResourceLimit = errors.New("schema resource limit exceeded")
)
