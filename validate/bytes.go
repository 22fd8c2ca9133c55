package validate

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/schemaerr"
)

// ValidateBytes parses data as YAML and validates it against root, the
// convenience counterpart to schema.Load for callers that have a target
// document as raw bytes rather than an already-parsed tree.
func ValidateBytes(root *schema.RootSchema, data []byte, opts ...ValidateOption) ([]*schemaerr.ValidationError, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("validate: parsing YAML: %w", err)
	}
	return Validate(root, &doc, data, opts...)
}
