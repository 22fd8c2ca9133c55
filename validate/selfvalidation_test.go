package validate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlschema/yamlschema/schema"
)

// TestSelfValidation checks spec's self-validation invariant: loading
// testdata/meta-schema.yaml as a schema and validating the same bytes as an
// instance yields empty diagnostics.
func TestSelfValidation(t *testing.T) {
	data, err := os.ReadFile("testdata/meta-schema.yaml")
	require.NoError(t, err)

	root, err := schema.Load(data)
	require.NoError(t, err)

	diags, err := ValidateBytes(root, data)
	require.NoError(t, err)
	if !assert.Empty(t, diags) {
		for _, d := range diags {
			t.Logf("diagnostic: %s", d.Error())
		}
	}
}

// TestSelfValidation_RejectsUnknownKeyword confirms the meta-schema's
// additionalProperties:false on a schema object rejects a keyword outside
// the supported set.
func TestSelfValidation_RejectsUnknownKeyword(t *testing.T) {
	data, err := os.ReadFile("testdata/meta-schema.yaml")
	require.NoError(t, err)
	root, err := schema.Load(data)
	require.NoError(t, err)

	diags, err := ValidateBytes(root, []byte(`
type: string
readOnly: true
`))
	require.NoError(t, err)
	assert.NotEmpty(t, diags)
}
