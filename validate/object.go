package validate

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// evalObject applies required/minProperties/maxProperties, descends into
// declared properties and matching patternProperties, and enforces
// additionalProperties against whatever neither matched.
func evalObject(c *context, oc *schema.ObjectConstraints, n *yaml.Node) error {
	entries := schema.MappingEntries(n)

	for _, req := range oc.Required {
		if !hasKey(entries, req) {
			c.path.Push(req)
			err := c.report(n, schemaerr.RequiredMissing, fmt.Sprintf("required property %q is missing", req))
			c.path.Pop()
			if err != nil {
				return err
			}
		}
	}

	if oc.MinProperties != nil && len(entries) < *oc.MinProperties {
		if err := c.report(n, schemaerr.SizeViolation, fmt.Sprintf("object has %d properties, minimum is %d", len(entries), *oc.MinProperties)); err != nil {
			return err
		}
	}
	if oc.MaxProperties != nil && len(entries) > *oc.MaxProperties {
		if err := c.report(n, schemaerr.SizeViolation, fmt.Sprintf("object has %d properties, maximum is %d", len(entries), *oc.MaxProperties)); err != nil {
			return err
		}
	}

	for _, e := range entries {
		name := schema.ResolveNode(e.Key).Value
		matched := false

		if prop, ok := lookupProperty(oc.Properties, name); ok {
			matched = true
			c.path.Push(name)
			err := evalNode(c, prop, e.Value)
			c.path.Pop()
			if err != nil {
				return err
			}
		}

		for _, pp := range oc.PatternProperties {
			if !pp.Pattern.MatchString(name) {
				continue
			}
			matched = true
			c.path.Push(name)
			err := evalNode(c, pp.Schema, e.Value)
			c.path.Pop()
			if err != nil {
				return err
			}
		}

		if matched || oc.AdditionalProperties == nil {
			continue
		}
		switch ap := oc.AdditionalProperties.(type) {
		case bool:
			if !ap {
				c.path.Push(name)
				err := c.report(e.Key, schemaerr.UnexpectedProperty, fmt.Sprintf("additional property %q is not allowed", name))
				c.path.Pop()
				if err != nil {
					return err
				}
			}
		case schema.Schema:
			c.path.Push(name)
			err := evalNode(c, ap, e.Value)
			c.path.Pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func hasKey(entries []schema.MapEntry, name string) bool {
	for _, e := range entries {
		if schema.ResolveNode(e.Key).Value == name {
			return true
		}
	}
	return false
}

func lookupProperty(props []schema.Property, name string) (schema.Schema, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}
