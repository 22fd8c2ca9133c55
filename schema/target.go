package schema

import "go.yaml.in/yaml/v4"

// This file exports the node-walking primitives that package validate needs
// to inspect a target YAML document. They're thin wrappers over the
// unexported helpers in node.go, kept separate so node.go reads as the
// loader's internal toolkit and this file reads as the deliberate public
// surface for instance inspection.

// ResolveNode strips DocumentNode and AliasNode wrappers.
func ResolveNode(n *yaml.Node) *yaml.Node { return resolveNode(n) }

// KindOf determines a node's Kind from its YAML Kind/Tag.
func KindOf(n *yaml.Node) (Kind, error) { return kindOf(n) }

// DecodeBool decodes a !!bool scalar node.
func DecodeBool(n *yaml.Node) (bool, error) { return decodeBool(n) }

// DecodeInt decodes a !!int scalar node.
func DecodeInt(n *yaml.Node) (int64, error) { return decodeInt(n) }

// DecodeFloat decodes a !!int or !!float scalar node as a float64.
func DecodeFloat(n *yaml.Node) (float64, error) { return decodeFloat(n) }

// IsIntegerValued reports whether a numeric node's value has zero
// fractional part.
func IsIntegerValued(n *yaml.Node) bool { return isIntegerValued(n) }

// MapEntry is an exported (key, value) node pair of a mapping node.
type MapEntry struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// MappingEntries returns the (key, value) node pairs of a mapping node in
// source order.
func MappingEntries(n *yaml.Node) []MapEntry {
	entries := mappingEntries(n)
	out := make([]MapEntry, len(entries))
	for i, e := range entries {
		out[i] = MapEntry{Key: e.key, Value: e.value}
	}
	return out
}

// MappingLookup returns the value node for a string key, and whether it was found.
func MappingLookup(n *yaml.Node, key string) (*yaml.Node, bool) { return mappingLookup(n, key) }

// NodeToValue converts a (possibly nested) YAML node into a canonical Value,
// for structural comparisons against const/enum/uniqueItems.
func NodeToValue(n *yaml.Node) (Value, error) { return nodeToValue(n) }
