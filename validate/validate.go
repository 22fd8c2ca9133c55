package validate

import (
	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/internal/pathbuilder"
	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// ValidateOption configures a Validate call.
type ValidateOption func(*context)

// WithFailFast stops validation at the first diagnostic instead of
// accumulating every violation.
func WithFailFast() ValidateOption {
	return func(c *context) { c.failFast = true }
}

// WithLogger attaches a Logger the validation engine uses for diagnostic
// tracing.
func WithLogger(l schema.Logger) ValidateOption {
	return func(c *context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxRefHops overrides the default bound on consecutive $ref hops with
// no intervening type check.
func WithMaxRefHops(n int) ValidateOption {
	return func(c *context) { c.maxHops = n }
}

// Validate validates target (the root of a parsed YAML document) against
// root and returns every diagnostic collected. An empty, non-nil slice
// means the document is valid. The src bytes must be the same bytes target
// was parsed from, so diagnostics can carry accurate markers.
//
// A non-nil error is returned only for a ResourceLimitError: a defensive
// hard stop, distinct from the accumulated ValidationError diagnostics,
// that trips when a $ref chain never reaches a type check.
func Validate(root *schema.RootSchema, target *yaml.Node, src []byte, opts ...ValidateOption) ([]*schemaerr.ValidationError, error) {
	c := &context{
		root:    root,
		src:     src,
		path:    pathbuilder.Get(),
		errs:    []*schemaerr.ValidationError{},
		logger:  schema.NopLogger{},
		maxHops: defaultMaxRefHops,
	}
	for _, opt := range opts {
		opt(c)
	}
	defer c.release()

	if err := evalNode(c, root.Root, target); err != nil && err != errShortCircuit {
		return c.errs, err
	}
	return c.errs, nil
}

// evalNode dispatches on the concrete Schema variant. It returns
// errShortCircuit to request the caller unwind immediately under fail-fast,
// or a *schemaerr.ResourceLimitError to request a hard stop; any other
// return is nil.
func evalNode(c *context, s schema.Schema, n *yaml.Node) error {
	switch sv := s.(type) {
	case schema.BooleanSchema:
		if !bool(sv) {
			return c.report(n, schemaerr.FalseSchema, "schema is false, no instance is valid")
		}
		return nil
	case *schema.RefSchema:
		return evalRef(c, sv, n)
	case *schema.CompositionSchema:
		return evalComposition(c, sv, n)
	case *schema.TypedSchema:
		// A type check ends a run of consecutive $ref hops: any $ref it
		// reaches applies to a child of n.
		hops := c.refHops
		c.refHops = 0
		err := evalTyped(c, sv, n)
		c.refHops = hops
		return err
	default:
		return nil
	}
}

// evalRef resolves a $ref against the root's $defs table and evaluates the
// target schema, counting consecutive hops to guard against a pure
// ref-to-ref cycle that never reaches a type check.
func evalRef(c *context, ref *schema.RefSchema, n *yaml.Node) error {
	target, ok := c.root.Resolve(ref.Fragment)
	if !ok {
		return c.report(n, schemaerr.UnresolvedRef, "unresolved $ref "+ref.Fragment)
	}
	c.logger.Debug("resolved $ref", "fragment", ref.Fragment)
	c.refHops++
	defer func() { c.refHops-- }()
	if c.refHops > c.maxHops {
		return &schemaerr.ResourceLimitError{ResourceType: "ref_hops", Limit: c.maxHops, Path: c.path.String()}
	}
	return evalNode(c, target, n)
}
