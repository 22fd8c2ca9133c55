package validate

import (
	"errors"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// evalComposition dispatches allOf/anyOf/oneOf/not. allOf reports into the
// real context so its subschemas' diagnostics are visible to the caller;
// anyOf/not/oneOf's per-branch probes run against an ephemeral context,
// since only their accept/reject outcome matters, not the diagnostics that
// produced it.
func evalComposition(c *context, cs *schema.CompositionSchema, n *yaml.Node) error {
	switch cs.Kind {
	case schema.AllOf:
		return evalAllOf(c, cs.Subschemas, n)
	case schema.AnyOf:
		return evalAnyOf(c, cs.Subschemas, n)
	case schema.OneOf:
		return evalOneOf(c, cs.Subschemas, n)
	case schema.Not:
		return evalNot(c, cs.Subschemas[0], n)
	default:
		return nil
	}
}

func evalAllOf(c *context, subs []schema.Schema, n *yaml.Node) error {
	for _, sub := range subs {
		if err := evalNode(c, sub, n); err != nil {
			return err
		}
	}
	return nil
}

// probe evaluates s against n in an ephemeral context and reports whether
// it was accepted, propagating only a ResourceLimitError upward.
func probe(c *context, s schema.Schema, n *yaml.Node) (accepted bool, limitErr error) {
	e := c.ephemeral()
	defer e.release()
	err := evalNode(e, s, n)
	if err != nil && !errors.Is(err, errShortCircuit) {
		var rle *schemaerr.ResourceLimitError
		if errors.As(err, &rle) {
			return false, err
		}
	}
	return len(e.errs) == 0, nil
}

func evalAnyOf(c *context, subs []schema.Schema, n *yaml.Node) error {
	for _, sub := range subs {
		accepted, err := probe(c, sub, n)
		if err != nil {
			return err
		}
		if accepted {
			return nil
		}
	}
	return c.report(n, schemaerr.AnyOfMismatch, "instance does not match any anyOf subschema")
}

func evalNot(c *context, sub schema.Schema, n *yaml.Node) error {
	accepted, err := probe(c, sub, n)
	if err != nil {
		return err
	}
	if accepted {
		return c.report(n, schemaerr.NotShouldHaveFailed, "instance matches the not subschema")
	}
	return nil
}

// evalOneOf implements the fail-fast resolution spec section 9 states:
// under fail-fast, oneOf does not stop at the first match; it stops once 2
// matches are found (reporting OneOfMultipleMatched), and otherwise
// evaluates every branch before reporting OneOfNoneMatched or accepting.
// Without fail-fast, every branch is always evaluated.
func evalOneOf(c *context, subs []schema.Schema, n *yaml.Node) error {
	matches := 0
	for _, sub := range subs {
		accepted, err := probe(c, sub, n)
		if err != nil {
			return err
		}
		if accepted {
			matches++
			if c.failFast && matches >= 2 {
				return c.report(n, schemaerr.OneOfMultipleMatched, "instance matches more than one oneOf subschema")
			}
		}
	}
	switch {
	case matches == 0:
		return c.report(n, schemaerr.OneOfNoneMatched, "instance matches none of the oneOf subschemas")
	case matches > 1:
		return c.report(n, schemaerr.OneOfMultipleMatched, "instance matches more than one oneOf subschema")
	default:
		return nil
	}
}
