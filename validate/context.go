// Package validate evaluates a parsed schema (package schema) against a
// target YAML document and reports diagnostics.
package validate

import (
	"errors"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/internal/pathbuilder"
	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// defaultMaxRefHops bounds $ref chains that never reach an intervening type
// check. It's not part of the document dialect; it's a defensive guard
// against the non-termination risk a pure ref-to-ref cycle would otherwise
// pose.
const defaultMaxRefHops = 100

// errShortCircuit is returned internally by the recursive evaluator to
// unwind the call stack as soon as fail-fast mode has its first diagnostic.
// It never escapes Validate.
var errShortCircuit = errors.New("validate: short-circuit")

// context carries per-call validation state: accumulated diagnostics, the
// current path, the source bytes for marker computation, and the root
// schema for $ref resolution.
type context struct {
	root     *schema.RootSchema
	src      []byte
	path     *pathbuilder.Builder
	errs     []*schemaerr.ValidationError
	failFast bool
	logger   schema.Logger
	refHops  int
	maxHops  int
}

// report appends a diagnostic at the current path and returns
// errShortCircuit when fail-fast mode should stop further evaluation.
func (c *context) report(n *yaml.Node, kind schemaerr.ValidationErrorKind, message string) error {
	ve := &schemaerr.ValidationError{
		Path:    c.path.String(),
		Kind:    kind,
		Message: message,
	}
	if n != nil {
		ve.Marker = schema.MarkerOf(n, c.src)
	}
	c.errs = append(c.errs, ve)
	c.logger.Debug("validation diagnostic", "path", ve.Path, "kind", kind.String())
	if c.failFast {
		return errShortCircuit
	}
	return nil
}

// ephemeral returns a fresh context sharing root/src/maxHops but with its
// own error sink and failFast=false, used by anyOf/not/oneOf-probe branches
// that need a boolean accept/reject signal without polluting the parent's
// diagnostics (spec composition evaluation semantics).
func (c *context) ephemeral() *context {
	return &context{
		root:    c.root,
		src:     c.src,
		path:    pathbuilder.Get(),
		logger:  c.logger,
		refHops: c.refHops,
		maxHops: c.maxHops,
	}
}

func (c *context) release() {
	pathbuilder.Put(c.path)
}
