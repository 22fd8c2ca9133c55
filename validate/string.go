package validate

import (
	"fmt"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// evalString applies minLength/maxLength/pattern. Lengths count runes, not
// bytes, so multi-byte characters count as one unit.
func evalString(c *context, sc *schema.StringConstraints, n *yaml.Node) error {
	s := schema.ResolveNode(n).Value
	length := utf8.RuneCountInString(s)

	if sc.MinLength != nil && length < *sc.MinLength {
		if err := c.report(n, schemaerr.LengthViolation, fmt.Sprintf("string length %d is less than minLength %d", length, *sc.MinLength)); err != nil {
			return err
		}
	}
	if sc.MaxLength != nil && length > *sc.MaxLength {
		if err := c.report(n, schemaerr.LengthViolation, fmt.Sprintf("string length %d exceeds maxLength %d", length, *sc.MaxLength)); err != nil {
			return err
		}
	}
	if sc.Pattern != nil && !sc.Pattern.MatchString(s) {
		if err := c.report(n, schemaerr.PatternMismatch, fmt.Sprintf("string does not match pattern %q", sc.PatternSrc)); err != nil {
			return err
		}
	}
	return nil
}
