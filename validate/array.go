package validate

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// evalArray applies minItems/maxItems/uniqueItems and descends into items
// (single-schema form, applied to every element) or TupleItems (positional
// form; elements beyond the tuple length are unconstrained).
func evalArray(c *context, ac *schema.ArrayConstraints, n *yaml.Node) error {
	items := schema.ResolveNode(n).Content
	count := len(items)

	if ac.MinItems != nil && count < *ac.MinItems {
		if err := c.report(n, schemaerr.SizeViolation, fmt.Sprintf("array has %d items, minimum is %d", count, *ac.MinItems)); err != nil {
			return err
		}
	}
	if ac.MaxItems != nil && count > *ac.MaxItems {
		if err := c.report(n, schemaerr.SizeViolation, fmt.Sprintf("array has %d items, maximum is %d", count, *ac.MaxItems)); err != nil {
			return err
		}
	}
	if ac.UniqueItems {
		if firstIdx, secondIdx, ok := firstDuplicate(items); ok {
			if err := c.report(items[secondIdx], schemaerr.UniquenessViolation, fmt.Sprintf("array item %d duplicates item %d", secondIdx, firstIdx)); err != nil {
				return err
			}
		}
	}

	switch {
	case ac.Items != nil:
		for i, item := range items {
			c.path.PushIndex(i)
			err := evalNode(c, ac.Items, item)
			c.path.Pop()
			if err != nil {
				return err
			}
		}
	case ac.TupleItems != nil:
		for i, item := range items {
			if i >= len(ac.TupleItems) {
				break
			}
			c.path.PushIndex(i)
			err := evalNode(c, ac.TupleItems[i], item)
			c.path.Pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// firstDuplicate returns the (first, second) index pair of the earliest
// structurally-equal pair of items, by total-ordering equality.
func firstDuplicate(items []*yaml.Node) (first, second int, ok bool) {
	values := make([]schema.Value, 0, len(items))
	for i, item := range items {
		v, err := schema.NodeToValue(item)
		if err != nil {
			continue
		}
		for j, seen := range values {
			if schema.Equal(v, seen) {
				return j, i, true
			}
		}
		values = append(values, v)
	}
	return 0, 0, false
}
