package schema

import (
	"fmt"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schemaerr"
)

// LoadOption configures a Load/LoadNode call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger Logger
}

// WithLoaderLogger attaches a Logger the loader uses for diagnostic events,
// such as hoisting a $defs entry or rejecting a malformed $ref.
func WithLoaderLogger(l Logger) LoadOption {
	return func(c *loadConfig) { c.logger = l }
}

func applyLoadOptions(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{logger: NopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load parses data as YAML and builds a RootSchema from it. This is the
// external interface's `load(bytes) -> RootSchema` entry point: the YAML
// tokenizer is the external collaborator spec section 1 assumes is
// available; LoadNode is the core entry point for callers that already
// have a parsed tree.
func Load(data []byte, opts ...LoadOption) (*RootSchema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parsing YAML: %w", err)
	}
	return LoadNode(&doc, data, opts...)
}

// LoadNode builds a RootSchema from a parsed YAML tree. src is the original
// bytes, used only to compute byte offsets for markers.
func LoadNode(node *yaml.Node, src []byte, opts ...LoadOption) (*RootSchema, error) {
	cfg := applyLoadOptions(opts)
	l := &loader{src: src, logger: cfg.logger}
	return l.loadRoot(node)
}

type loader struct {
	src    []byte
	logger Logger
}

// loadRoot implements spec 4.1's three-step entry point: require a mapping,
// hoist $defs, then load the remaining keys as the root Schema.
func (l *loader) loadRoot(node *yaml.Node) (*RootSchema, error) {
	root := resolveNode(node)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &schemaerr.LoadError{
			Kind:    schemaerr.ExpectedMapping,
			Marker:  markerOf(root, l.src),
			Message: "schema root must be a mapping",
		}
	}

	defs := map[string]Schema{}
	if defsNode, ok := mappingLookup(root, "$defs"); ok {
		defsMapping := resolveNode(defsNode)
		if defsMapping == nil || defsMapping.Kind != yaml.MappingNode {
			return nil, &schemaerr.LoadError{
				Kind:    schemaerr.ExpectedMapping,
				Marker:  markerOf(defsNode, l.src),
				Path:    ".$defs",
				Message: "$defs must be a mapping",
			}
		}
		for _, entry := range mappingEntries(defsMapping) {
			name := resolveNode(entry.key).Value
			fragment := "/$defs/" + name
			sub, err := l.loadSchema(entry.value, fragment)
			if err != nil {
				return nil, err
			}
			l.logger.Debug("hoisted $defs entry", "fragment", fragment)
			defs[fragment] = sub
		}
	}

	rootSchema, err := l.loadSchema(root, "")
	if err != nil {
		return nil, err
	}

	return &RootSchema{Root: rootSchema, Defs: defs}, nil
}

// loadSchema implements spec 4.1's recursive load_schema(node). path is the
// JSON-pointer-style path to node, used only for error reporting.
func (l *loader) loadSchema(node *yaml.Node, path string) (Schema, error) {
	n := resolveNode(node)
	if n == nil {
		return nil, &schemaerr.LoadError{Kind: schemaerr.UnsupportedType, Path: path, Message: "missing schema node"}
	}

	if n.Kind == yaml.ScalarNode && n.Tag == "!!bool" {
		b, err := decodeBool(n)
		if err != nil {
			return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedScalar, Marker: markerOf(n, l.src), Path: path, Message: "invalid boolean schema", Cause: err}
		}
		return BooleanSchema(b), nil
	}

	if n.Kind != yaml.MappingNode {
		return nil, &schemaerr.LoadError{
			Kind:    schemaerr.UnsupportedType,
			Marker:  markerOf(n, l.src),
			Path:    path,
			Message: fmt.Sprintf("schema node must be a mapping or boolean, got kind %d", n.Kind),
		}
	}

	if sub, ok, err := l.loadComposition(n, path, "allOf", AllOf); ok || err != nil {
		return sub, err
	}
	if sub, ok, err := l.loadComposition(n, path, "anyOf", AnyOf); ok || err != nil {
		return sub, err
	}
	if sub, ok, err := l.loadComposition(n, path, "oneOf", OneOf); ok || err != nil {
		return sub, err
	}
	if notNode, ok := mappingLookup(n, "not"); ok {
		sub, err := l.loadSchema(notNode, path+".not")
		if err != nil {
			return nil, err
		}
		return &CompositionSchema{Kind: Not, Subschemas: []Schema{sub}}, nil
	}
	if refNode, ok := mappingLookup(n, "$ref"); ok {
		return l.loadRef(refNode, path)
	}

	return l.loadTyped(n, path)
}

// loadComposition handles one of allOf/anyOf/oneOf. ok is false when the
// keyword is absent, allowing the caller to try the next keyword.
func (l *loader) loadComposition(n *yaml.Node, path, keyword string, kind CompositionKind) (Schema, bool, error) {
	arrNode, ok := mappingLookup(n, keyword)
	if !ok {
		return nil, false, nil
	}
	arr := resolveNode(arrNode)
	if arr == nil || arr.Kind != yaml.SequenceNode {
		return nil, true, &schemaerr.LoadError{
			Kind:    schemaerr.ExpectedSequence,
			Marker:  markerOf(arrNode, l.src),
			Path:    path + "." + keyword,
			Message: keyword + " must be an array of schemas",
		}
	}
	if len(arr.Content) == 0 {
		return nil, true, &schemaerr.LoadError{
			Kind:    schemaerr.EmptyComposition,
			Marker:  markerOf(arr, l.src),
			Path:    path + "." + keyword,
			Message: keyword + " must name at least one subschema",
		}
	}
	subs := make([]Schema, 0, len(arr.Content))
	for i, c := range arr.Content {
		sub, err := l.loadSchema(c, fmt.Sprintf("%s.%s[%d]", path, keyword, i))
		if err != nil {
			return nil, true, err
		}
		subs = append(subs, sub)
	}
	return &CompositionSchema{Kind: kind, Subschemas: subs}, true, nil
}

// loadRef parses a `$ref` string of the form "#/$defs/name" into a deferred
// RefSchema. It does not resolve the fragment — that happens in $defs
// lookups at validation time.
func (l *loader) loadRef(refNode *yaml.Node, path string) (Schema, error) {
	n := resolveNode(refNode)
	if n == nil || n.Kind != yaml.ScalarNode {
		l.logger.Warn("rejected malformed $ref", "path", path)
		return nil, &schemaerr.LoadError{Kind: schemaerr.MalformedRef, Marker: markerOf(refNode, l.src), Path: path + ".$ref", Message: "$ref must be a string"}
	}
	ref := n.Value
	if !strings.HasPrefix(ref, "#") {
		l.logger.Warn("rejected malformed $ref", "path", path, "ref", ref)
		return nil, &schemaerr.LoadError{
			Kind:    schemaerr.MalformedRef,
			Marker:  markerOf(n, l.src),
			Path:    path + ".$ref",
			Message: fmt.Sprintf("only local fragments are supported, got %q", ref),
		}
	}
	fragment := strings.TrimPrefix(ref, "#")
	if fragment == "" || !strings.HasPrefix(fragment, "/") {
		l.logger.Warn("rejected malformed $ref", "path", path, "ref", ref)
		return nil, &schemaerr.LoadError{
			Kind:    schemaerr.MalformedRef,
			Marker:  markerOf(n, l.src),
			Path:    path + ".$ref",
			Message: fmt.Sprintf("malformed JSON-pointer fragment %q", ref),
		}
	}
	return &RefSchema{Fragment: fragment}, nil
}

// loadTyped loads the common case: base annotations, a type specification,
// and whichever per-kind constraint bundles are present.
func (l *loader) loadTyped(n *yaml.Node, path string) (Schema, error) {
	base, err := l.loadBase(n, path)
	if err != nil {
		return nil, err
	}

	types, err := l.loadTypes(n, path)
	if err != nil {
		return nil, err
	}

	ts := &TypedSchema{BaseSchema: base, Types: types}

	if ts.String, err = l.loadStringConstraints(n, path); err != nil {
		return nil, err
	}
	if ts.Number, err = l.loadNumberConstraints(n, path); err != nil {
		return nil, err
	}
	if ts.Array, err = l.loadArrayConstraints(n, path); err != nil {
		return nil, err
	}
	if ts.Object, err = l.loadObjectConstraints(n, path); err != nil {
		return nil, err
	}

	return ts, nil
}

func (l *loader) loadBase(n *yaml.Node, path string) (BaseSchema, error) {
	var base BaseSchema
	if v, ok := mappingLookup(n, "title"); ok {
		base.Title = resolveNode(v).Value
	}
	if v, ok := mappingLookup(n, "description"); ok {
		base.Description = resolveNode(v).Value
	}
	if v, ok := mappingLookup(n, "$id"); ok {
		base.ID = resolveNode(v).Value
	}
	if v, ok := mappingLookup(n, "$schema"); ok {
		base.SchemaURI = resolveNode(v).Value
	}
	if v, ok := mappingLookup(n, "const"); ok {
		val, err := nodeToValue(v)
		if err != nil {
			return base, &schemaerr.LoadError{Kind: schemaerr.Generic, Marker: markerOf(v, l.src), Path: path + ".const", Message: "failed to load const value", Cause: err}
		}
		base.HasConst = true
		base.Const = val
	}
	if v, ok := mappingLookup(n, "enum"); ok {
		arr := resolveNode(v)
		if arr == nil || arr.Kind != yaml.SequenceNode {
			return base, &schemaerr.LoadError{Kind: schemaerr.ExpectedSequence, Marker: markerOf(v, l.src), Path: path + ".enum", Message: "enum must be an array"}
		}
		vals := make([]Value, 0, len(arr.Content))
		for _, c := range arr.Content {
			val, err := nodeToValue(c)
			if err != nil {
				return base, &schemaerr.LoadError{Kind: schemaerr.Generic, Marker: markerOf(c, l.src), Path: path + ".enum", Message: "failed to load enum entry", Cause: err}
			}
			vals = append(vals, val)
		}
		base.Enum = vals
	}
	return base, nil
}

// loadTypes reads the `type` keyword: absent, a single string, or a
// sequence of strings (spec 4.1).
func (l *loader) loadTypes(n *yaml.Node, path string) ([]TypeName, error) {
	typeNode, ok := mappingLookup(n, "type")
	if !ok {
		return nil, nil
	}
	t := resolveNode(typeNode)
	if t == nil {
		return nil, nil
	}
	if t.Kind == yaml.ScalarNode {
		name, ok := typeNameOf(t.Value)
		if !ok {
			return nil, &schemaerr.LoadError{Kind: schemaerr.UnknownType, Marker: markerOf(t, l.src), Path: path + ".type", Message: fmt.Sprintf("unknown type %q", t.Value)}
		}
		return []TypeName{name}, nil
	}
	if t.Kind == yaml.SequenceNode {
		types := make([]TypeName, 0, len(t.Content))
		for _, c := range t.Content {
			cn := resolveNode(c)
			name, ok := typeNameOf(cn.Value)
			if !ok {
				return nil, &schemaerr.LoadError{Kind: schemaerr.UnknownType, Marker: markerOf(cn, l.src), Path: path + ".type", Message: fmt.Sprintf("unknown type %q", cn.Value)}
			}
			types = append(types, name)
		}
		return types, nil
	}
	return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedScalar, Marker: markerOf(t, l.src), Path: path + ".type", Message: "type must be a string or an array of strings"}
}

func (l *loader) loadStringConstraints(n *yaml.Node, path string) (*StringConstraints, error) {
	var sc StringConstraints
	present := false

	if v, ok := mappingLookup(n, "minLength"); ok {
		i, err := requireNonNegativeInt(l, v, path+".minLength")
		if err != nil {
			return nil, err
		}
		sc.MinLength = &i
		present = true
	}
	if v, ok := mappingLookup(n, "maxLength"); ok {
		i, err := requireNonNegativeInt(l, v, path+".maxLength")
		if err != nil {
			return nil, err
		}
		sc.MaxLength = &i
		present = true
	}
	if v, ok := mappingLookup(n, "pattern"); ok {
		src := resolveNode(v).Value
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, &schemaerr.LoadError{Kind: schemaerr.InvalidRegex, Marker: markerOf(v, l.src), Path: path + ".pattern", Message: fmt.Sprintf("invalid pattern %q", src), Cause: err}
		}
		sc.Pattern = re
		sc.PatternSrc = src
		present = true
	}
	if !present {
		return nil, nil
	}
	return &sc, nil
}

func (l *loader) loadNumberConstraints(n *yaml.Node, path string) (*NumberConstraints, error) {
	var nc NumberConstraints
	present := false

	assign := func(keyword string, dst **float64) error {
		v, ok := mappingLookup(n, keyword)
		if !ok {
			return nil
		}
		f, err := decodeFloat(v)
		if err != nil {
			return &schemaerr.LoadError{Kind: schemaerr.ExpectedScalar, Marker: markerOf(v, l.src), Path: path + "." + keyword, Message: "must be numeric", Cause: err}
		}
		*dst = &f
		present = true
		return nil
	}

	if err := assign("minimum", &nc.Minimum); err != nil {
		return nil, err
	}
	if err := assign("maximum", &nc.Maximum); err != nil {
		return nil, err
	}
	if err := assign("exclusiveMinimum", &nc.ExclusiveMinimum); err != nil {
		return nil, err
	}
	if err := assign("exclusiveMaximum", &nc.ExclusiveMaximum); err != nil {
		return nil, err
	}
	if v, ok := mappingLookup(n, "multipleOf"); ok {
		f, err := decodeFloat(v)
		if err != nil {
			return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedScalar, Marker: markerOf(v, l.src), Path: path + ".multipleOf", Message: "must be numeric", Cause: err}
		}
		if f <= 0 {
			return nil, &schemaerr.LoadError{Kind: schemaerr.InvalidMultipleOf, Marker: markerOf(v, l.src), Path: path + ".multipleOf", Message: "multipleOf must be positive"}
		}
		nc.MultipleOf = &f
		present = true
	}

	if !present {
		return nil, nil
	}
	return &nc, nil
}

func (l *loader) loadArrayConstraints(n *yaml.Node, path string) (*ArrayConstraints, error) {
	var ac ArrayConstraints
	present := false

	if v, ok := mappingLookup(n, "items"); ok {
		items := resolveNode(v)
		switch {
		case items != nil && items.Kind == yaml.SequenceNode:
			tuple := make([]Schema, 0, len(items.Content))
			for i, c := range items.Content {
				sub, err := l.loadSchema(c, fmt.Sprintf("%s.items[%d]", path, i))
				if err != nil {
					return nil, err
				}
				tuple = append(tuple, sub)
			}
			ac.TupleItems = tuple
		default:
			sub, err := l.loadSchema(items, path+".items")
			if err != nil {
				return nil, err
			}
			ac.Items = sub
		}
		present = true
	}
	if v, ok := mappingLookup(n, "minItems"); ok {
		i, err := requireNonNegativeInt(l, v, path+".minItems")
		if err != nil {
			return nil, err
		}
		ac.MinItems = &i
		present = true
	}
	if v, ok := mappingLookup(n, "maxItems"); ok {
		i, err := requireNonNegativeInt(l, v, path+".maxItems")
		if err != nil {
			return nil, err
		}
		ac.MaxItems = &i
		present = true
	}
	if v, ok := mappingLookup(n, "uniqueItems"); ok {
		b, err := decodeBool(v)
		if err != nil {
			return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedScalar, Marker: markerOf(v, l.src), Path: path + ".uniqueItems", Message: "must be a boolean", Cause: err}
		}
		ac.UniqueItems = b
		present = true
	}

	if !present {
		return nil, nil
	}
	return &ac, nil
}

func (l *loader) loadObjectConstraints(n *yaml.Node, path string) (*ObjectConstraints, error) {
	var oc ObjectConstraints
	present := false

	if v, ok := mappingLookup(n, "properties"); ok {
		props := resolveNode(v)
		if props == nil || props.Kind != yaml.MappingNode {
			return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedMapping, Marker: markerOf(v, l.src), Path: path + ".properties", Message: "properties must be a mapping"}
		}
		for _, e := range mappingEntries(props) {
			name := resolveNode(e.key).Value
			sub, err := l.loadSchema(e.value, path+".properties."+name)
			if err != nil {
				return nil, err
			}
			oc.Properties = append(oc.Properties, Property{Name: name, Schema: sub})
		}
		present = true
	}
	if v, ok := mappingLookup(n, "patternProperties"); ok {
		pp := resolveNode(v)
		if pp == nil || pp.Kind != yaml.MappingNode {
			return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedMapping, Marker: markerOf(v, l.src), Path: path + ".patternProperties", Message: "patternProperties must be a mapping"}
		}
		for _, e := range mappingEntries(pp) {
			patSrc := resolveNode(e.key).Value
			re, err := regexp.Compile(patSrc)
			if err != nil {
				return nil, &schemaerr.LoadError{Kind: schemaerr.InvalidRegex, Marker: markerOf(e.key, l.src), Path: path + ".patternProperties", Message: fmt.Sprintf("invalid pattern %q", patSrc), Cause: err}
			}
			sub, err := l.loadSchema(e.value, path+".patternProperties."+patSrc)
			if err != nil {
				return nil, err
			}
			oc.PatternProperties = append(oc.PatternProperties, PatternProperty{Pattern: re, PatternSrc: patSrc, Schema: sub})
		}
		present = true
	}
	if v, ok := mappingLookup(n, "required"); ok {
		arr := resolveNode(v)
		if arr == nil || arr.Kind != yaml.SequenceNode {
			return nil, &schemaerr.LoadError{Kind: schemaerr.ExpectedSequence, Marker: markerOf(v, l.src), Path: path + ".required", Message: "required must be an array"}
		}
		for _, c := range arr.Content {
			oc.Required = append(oc.Required, resolveNode(c).Value)
		}
		present = true
	}
	if v, ok := mappingLookup(n, "additionalProperties"); ok {
		ap := resolveNode(v)
		switch {
		case ap != nil && ap.Kind == yaml.ScalarNode && ap.Tag == "!!bool":
			b, _ := decodeBool(ap)
			oc.AdditionalProperties = b
		default:
			sub, err := l.loadSchema(v, path+".additionalProperties")
			if err != nil {
				return nil, err
			}
			oc.AdditionalProperties = sub
		}
		present = true
	}
	if v, ok := mappingLookup(n, "minProperties"); ok {
		i, err := requireNonNegativeInt(l, v, path+".minProperties")
		if err != nil {
			return nil, err
		}
		oc.MinProperties = &i
		present = true
	}
	if v, ok := mappingLookup(n, "maxProperties"); ok {
		i, err := requireNonNegativeInt(l, v, path+".maxProperties")
		if err != nil {
			return nil, err
		}
		oc.MaxProperties = &i
		present = true
	}

	if !present {
		return nil, nil
	}
	return &oc, nil
}

// requireNonNegativeInt decodes a scalar node as a non-negative int,
// enforcing spec 3.3's minLength/maxLength/minItems/maxItems >= 0 invariant.
func requireNonNegativeInt(l *loader, v *yaml.Node, path string) (int, error) {
	i, err := decodeInt(v)
	if err != nil {
		return 0, &schemaerr.LoadError{Kind: schemaerr.ExpectedScalar, Marker: markerOf(v, l.src), Path: path, Message: "must be a non-negative integer", Cause: err}
	}
	if i < 0 {
		return 0, &schemaerr.LoadError{Kind: schemaerr.Generic, Marker: markerOf(v, l.src), Path: path, Message: "must be a non-negative integer"}
	}
	return int(i), nil
}
