package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlschema/yamlschema/schemaerr"
)

func TestLoad_SimpleTyped(t *testing.T) {
	root, err := Load([]byte(`
type: object
required: [name]
properties:
  name:
    type: string
    minLength: 1
  age:
    type: integer
    minimum: 0
`))
	require.NoError(t, err)
	ts, ok := root.Root.(*TypedSchema)
	require.True(t, ok)
	assert.Equal(t, []TypeName{TypeObject}, ts.Types)
	require.NotNil(t, ts.Object)
	assert.Equal(t, []string{"name"}, ts.Object.Required)
	require.Len(t, ts.Object.Properties, 2)
}

func TestLoad_Defs(t *testing.T) {
	root, err := Load([]byte(`
$defs:
  widget:
    type: string
type: object
properties:
  w:
    $ref: "#/$defs/widget"
`))
	require.NoError(t, err)
	_, ok := root.Resolve("/$defs/widget")
	assert.True(t, ok)
}

func TestLoad_BooleanSchema(t *testing.T) {
	root, err := Load([]byte(`false`))
	require.NoError(t, err)
	assert.Equal(t, BooleanSchema(false), root.Root)
}

func TestLoad_Composition(t *testing.T) {
	root, err := Load([]byte(`
anyOf:
  - type: string
  - type: integer
`))
	require.NoError(t, err)
	cs, ok := root.Root.(*CompositionSchema)
	require.True(t, ok)
	assert.Equal(t, AnyOf, cs.Kind)
	assert.Len(t, cs.Subschemas, 2)
}

func TestLoad_EmptyCompositionIsError(t *testing.T) {
	_, err := Load([]byte(`
allOf: []
`))
	var le *schemaerr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, schemaerr.EmptyComposition, le.Kind)
}

func TestLoad_MalformedRef(t *testing.T) {
	_, err := Load([]byte(`
$ref: "https://example.com/schema.yaml"
`))
	var le *schemaerr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, schemaerr.MalformedRef, le.Kind)
}

func TestLoad_UnknownType(t *testing.T) {
	_, err := Load([]byte(`
type: widget
`))
	var le *schemaerr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, schemaerr.UnknownType, le.Kind)
}

func TestLoad_InvalidRegex(t *testing.T) {
	_, err := Load([]byte(`
type: string
pattern: "["
`))
	var le *schemaerr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, schemaerr.InvalidRegex, le.Kind)
}

func TestLoad_InvalidMultipleOf(t *testing.T) {
	_, err := Load([]byte(`
type: number
multipleOf: -1
`))
	var le *schemaerr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, schemaerr.InvalidMultipleOf, le.Kind)
}

func TestLoad_RootMustBeMapping(t *testing.T) {
	_, err := Load([]byte(`
- 1
- 2
`))
	var le *schemaerr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, schemaerr.ExpectedMapping, le.Kind)
}

func TestLoad_TupleItems(t *testing.T) {
	root, err := Load([]byte(`
type: array
items:
  - type: string
  - type: integer
`))
	require.NoError(t, err)
	ts := root.Root.(*TypedSchema)
	require.NotNil(t, ts.Array)
	assert.Nil(t, ts.Array.Items)
	assert.Len(t, ts.Array.TupleItems, 2)
}

func TestLoad_ConstAndEnum(t *testing.T) {
	root, err := Load([]byte(`
const: 3
enum: [1, 2, 3]
`))
	require.NoError(t, err)
	ts := root.Root.(*TypedSchema)
	assert.True(t, ts.HasConst)
	assert.Len(t, ts.Enum, 3)
}

func TestLoad_PatternProperties(t *testing.T) {
	root, err := Load([]byte(`
type: object
patternProperties:
  "^x-":
    type: string
additionalProperties: false
`))
	require.NoError(t, err)
	ts := root.Root.(*TypedSchema)
	require.NotNil(t, ts.Object)
	require.Len(t, ts.Object.PatternProperties, 1)
	assert.Equal(t, "^x-", ts.Object.PatternProperties[0].PatternSrc)
	assert.Equal(t, false, ts.Object.AdditionalProperties)
}
