package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlschema/yamlschema/schemaerr"
)

// These scenarios are the concrete schema/instance/expected triples the
// composition and type-matching rules were built against.

func TestScenario_IntegerType(t *testing.T) {
	root := load(t, `type: integer`)

	errs, err := ValidateBytes(root, []byte(`42`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = ValidateBytes(root, []byte(`3.1415926`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.TypeMismatch, errs[0].Kind)

	errs, err = ValidateBytes(root, []byte(`"42"`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.TypeMismatch, errs[0].Kind)

	errs, err = ValidateBytes(root, []byte(`1.0`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestScenario_MultipleOf(t *testing.T) {
	root := load(t, `
type: number
multipleOf: 10
`)
	for _, v := range []string{"0", "10"} {
		errs, err := ValidateBytes(root, []byte(v))
		require.NoError(t, err)
		assert.Emptyf(t, errs, "value %s", v)
	}
	errs, err := ValidateBytes(root, []byte(`23`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.MultipleOfViolation, errs[0].Kind)
}

func TestScenario_RangeBounds(t *testing.T) {
	root := load(t, `
type: number
minimum: 0
exclusiveMaximum: 10
`)
	errs, err := ValidateBytes(root, []byte(`-1`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.RangeViolation, errs[0].Kind)

	for _, v := range []string{"0", "9"} {
		errs, err := ValidateBytes(root, []byte(v))
		require.NoError(t, err)
		assert.Emptyf(t, errs, "value %s", v)
	}

	errs, err = ValidateBytes(root, []byte(`10`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.RangeViolation, errs[0].Kind)
}

func TestScenario_OneOfMultipleOf(t *testing.T) {
	root := load(t, `
oneOf:
  - type: number
    multipleOf: 5
  - type: number
    multipleOf: 3
`)
	for _, v := range []string{"10", "9"} {
		errs, err := ValidateBytes(root, []byte(v))
		require.NoError(t, err)
		assert.Emptyf(t, errs, "value %s", v)
	}

	errs, err := ValidateBytes(root, []byte(`15`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.OneOfMultipleMatched, errs[0].Kind)

	errs, err = ValidateBytes(root, []byte(`2`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.OneOfNoneMatched, errs[0].Kind)
}

func TestScenario_ObjectPropertyPaths(t *testing.T) {
	root := load(t, `
type: object
properties:
  foo: { type: string }
  bar: { type: number }
`)
	errs, err := ValidateBytes(root, []byte(`
foo: 42
bar: "x"
`))
	require.NoError(t, err)
	require.Len(t, errs, 2)
	paths := map[string]bool{errs[0].Path: true, errs[1].Path: true}
	assert.True(t, paths[".foo"])
	assert.True(t, paths[".bar"])
	for _, e := range errs {
		assert.GreaterOrEqual(t, e.Marker.Line, 1)
		assert.GreaterOrEqual(t, e.Marker.Column, 1)
	}
}

func TestScenario_NotMultipleOfTwo(t *testing.T) {
	root := load(t, `
not:
  type: number
  multipleOf: 2
`)
	errs, err := ValidateBytes(root, []byte(`1`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = ValidateBytes(root, []byte(`-2`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.NotShouldHaveFailed, errs[0].Kind)
}

func TestScenario_MultiTypeWithPerKindConstraints(t *testing.T) {
	root := load(t, `
type: [string, number]
minimum: 1
minLength: 1
`)
	errs, err := ValidateBytes(root, []byte(`0`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.RangeViolation, errs[0].Kind)

	errs, err = ValidateBytes(root, []byte(`""`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.LengthViolation, errs[0].Kind)

	for _, v := range []string{`"one"`, `1`} {
		errs, err := ValidateBytes(root, []byte(v))
		require.NoError(t, err)
		assert.Emptyf(t, errs, "value %s", v)
	}
}

func TestScenario_BooleanSchemaLaw(t *testing.T) {
	trueRoot := load(t, `true`)
	errs, err := ValidateBytes(trueRoot, []byte(`"anything"`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	falseRoot := load(t, `false`)
	errs, err = ValidateBytes(falseRoot, []byte(`"anything"`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.FalseSchema, errs[0].Kind)
}

func TestScenario_AllOfIffBothEmpty(t *testing.T) {
	root := load(t, `
allOf:
  - type: number
    minimum: 0
  - type: number
    maximum: 10
`)
	errs, err := ValidateBytes(root, []byte(`5`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = ValidateBytes(root, []byte(`-1`))
	require.NoError(t, err)
	assert.NotEmpty(t, errs)
}

func TestScenario_ConstAndEnumAcceptNaNReflexively(t *testing.T) {
	root := load(t, `const: .nan`)
	errs, err := ValidateBytes(root, []byte(`.nan`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = ValidateBytes(root, []byte(`1.0`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, schemaerr.ConstMismatch, errs[0].Kind)

	root = load(t, `enum: [.nan, 1]`)
	errs, err = ValidateBytes(root, []byte(`.nan`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestScenario_Idempotence(t *testing.T) {
	root := load(t, `
type: object
required: [name]
properties:
  name: { type: string, minLength: 3 }
`)
	doc := []byte(`name: ab`)
	first, err := ValidateBytes(root, doc)
	require.NoError(t, err)
	second, err := ValidateBytes(root, doc)
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Path, second[i].Path)
		assert.Equal(t, first[i].Message, second[i].Message)
	}
}
