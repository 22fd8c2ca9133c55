package validate

import (
	"fmt"
	"math"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// multipleOfEpsilon tolerates floating point rounding when checking
// n / multipleOf for an integral quotient.
const multipleOfEpsilon = 1e-9

// evalNumber applies minimum/maximum/exclusiveMinimum/exclusiveMaximum/
// multipleOf. Unlike OpenAPI 3.0's boolean exclusiveMinimum/exclusiveMaximum
// flags, this dialect follows JSON Schema 2020-12: exclusiveMinimum and
// exclusiveMaximum are themselves numeric bounds, independent of minimum
// and maximum.
func evalNumber(c *context, nc *schema.NumberConstraints, n *yaml.Node) error {
	v, err := schema.DecodeFloat(n)
	if err != nil {
		return c.report(n, schemaerr.TypeMismatch, "failed to read numeric value: "+err.Error())
	}

	if nc.Minimum != nil && v < *nc.Minimum {
		if err := c.report(n, schemaerr.RangeViolation, fmt.Sprintf("value %v is less than minimum %v", v, *nc.Minimum)); err != nil {
			return err
		}
	}
	if nc.Maximum != nil && v > *nc.Maximum {
		if err := c.report(n, schemaerr.RangeViolation, fmt.Sprintf("value %v exceeds maximum %v", v, *nc.Maximum)); err != nil {
			return err
		}
	}
	if nc.ExclusiveMinimum != nil && v <= *nc.ExclusiveMinimum {
		if err := c.report(n, schemaerr.RangeViolation, fmt.Sprintf("value %v must be strictly greater than %v", v, *nc.ExclusiveMinimum)); err != nil {
			return err
		}
	}
	if nc.ExclusiveMaximum != nil && v >= *nc.ExclusiveMaximum {
		if err := c.report(n, schemaerr.RangeViolation, fmt.Sprintf("value %v must be strictly less than %v", v, *nc.ExclusiveMaximum)); err != nil {
			return err
		}
	}
	if nc.MultipleOf != nil {
		q := v / *nc.MultipleOf
		if math.Abs(q-math.Round(q)) > multipleOfEpsilon {
			if err := c.report(n, schemaerr.MultipleOfViolation, fmt.Sprintf("value %v is not a multiple of %v", v, *nc.MultipleOf)); err != nil {
				return err
			}
		}
	}
	return nil
}
