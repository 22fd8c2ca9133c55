package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/yamlschema/yamlschema/schemaerr"
)

// Kind is the YAML-level kind of a node, as distinguished by spec section
// 3.1's MarkedNode/Scalar model. Unlike a declared schema type, a Kind is
// what an instance actually *is*.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String renders the kind the way diagnostics describe an instance's shape.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	default:
		return "unknown"
	}
}

// resolveNode strips DocumentNode and AliasNode wrappers, returning the
// concrete content node underneath.
func resolveNode(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return n
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return n
}

// MarkerOf computes a Marker for a YAML node, deriving the byte offset from
// src. It's exported for collaborators (such as package validate) that need
// to attach source position to diagnostics about nodes from a loaded tree.
func MarkerOf(n *yaml.Node, src []byte) schemaerr.Marker {
	return markerOf(n, src)
}

// markerOf computes a Marker for a node, deriving the byte offset from src
// by scanning for the node's (line, column) — go.yaml.in/yaml/v4's Node
// does not itself expose a byte offset.
func markerOf(n *yaml.Node, src []byte) schemaerr.Marker {
	if n == nil {
		return schemaerr.Marker{}
	}
	return schemaerr.Marker{
		Line:       n.Line,
		Column:     n.Column,
		ByteOffset: byteOffset(src, n.Line, n.Column),
	}
}

// byteOffset converts a 1-based (line, column) pair into a byte offset into
// src. Returns 0 if line is not known or out of range. Column is counted in
// bytes past the start of the line, matching how go.yaml.in/yaml/v4 reports
// columns for ASCII-dominant YAML documents.
func byteOffset(src []byte, line, column int) int {
	if line <= 0 {
		return 0
	}
	offset := 0
	remainingLines := line - 1
	for remainingLines > 0 && offset < len(src) {
		idx := indexByte(src[offset:], '\n')
		if idx < 0 {
			return 0
		}
		offset += idx + 1
		remainingLines--
	}
	if remainingLines > 0 {
		return 0
	}
	if column > 1 {
		offset += column - 1
	}
	if offset > len(src) {
		offset = len(src)
	}
	return offset
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// kindOf determines a node's Kind from its YAML Kind/Tag.
func kindOf(n *yaml.Node) (Kind, error) {
	n = resolveNode(n)
	if n == nil {
		return KindNull, fmt.Errorf("schema: nil node")
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return KindSequence, nil
	case yaml.MappingNode:
		return KindMapping, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return KindNull, nil
		case "!!bool":
			return KindBool, nil
		case "!!int":
			return KindInt, nil
		case "!!float":
			return KindFloat, nil
		default:
			return KindString, nil
		}
	default:
		return KindNull, fmt.Errorf("schema: unsupported node kind %d", n.Kind)
	}
}

// decodeBool decodes a !!bool scalar node.
func decodeBool(n *yaml.Node) (bool, error) {
	n = resolveNode(n)
	return strconv.ParseBool(n.Value)
}

// decodeInt decodes a !!int scalar node.
func decodeInt(n *yaml.Node) (int64, error) {
	n = resolveNode(n)
	return strconv.ParseInt(n.Value, 0, 64)
}

// decodeFloat decodes a !!int or !!float scalar node as a float64.
func decodeFloat(n *yaml.Node) (float64, error) {
	n = resolveNode(n)
	switch n.Tag {
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return 0, err
		}
		return float64(i), nil
	default:
		switch strings.ToLower(n.Value) {
		case ".nan":
			return math.NaN(), nil
		case ".inf", "+.inf":
			return math.Inf(1), nil
		case "-.inf":
			return math.Inf(-1), nil
		}
		return strconv.ParseFloat(n.Value, 64)
	}
}

// isIntegerValued reports whether a numeric node's value has zero
// fractional part, per spec 4.4: "an Int or a Float whose fractional part
// is zero satisfies type: integer".
func isIntegerValued(n *yaml.Node) bool {
	n = resolveNode(n)
	if n.Tag == "!!int" {
		return true
	}
	f, err := decodeFloat(n)
	if err != nil {
		return false
	}
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

// mappingEntries returns the (key, value) node pairs of a mapping node in
// source order.
func mappingEntries(n *yaml.Node) []mapEntry {
	n = resolveNode(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	entries := make([]mapEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		entries = append(entries, mapEntry{key: n.Content[i], value: n.Content[i+1]})
	}
	return entries
}

type mapEntry struct {
	key   *yaml.Node
	value *yaml.Node
}

// mappingLookup returns the value node for a string key, and whether it was
// found, searching in source order (first match wins, matching map
// semantics where duplicate keys aren't expected).
func mappingLookup(n *yaml.Node, key string) (*yaml.Node, bool) {
	for _, e := range mappingEntries(n) {
		if resolveNode(e.key).Value == key {
			return e.value, true
		}
	}
	return nil, false
}
