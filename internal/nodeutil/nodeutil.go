// Package nodeutil provides helpers for working with yaml.Node document
// trees: parsing, mapping access, deep copies, canonical sorting, and
// order-preserving YAML/JSON encoding.
//
// All specweld documents are held as *yaml.Node trees. The node Kind
// distinguishes scalars, sequences, and mappings, and every node carries the
// source line and column used in error reporting.
package nodeutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// ParseBytes parses a YAML or JSON document into its root node.
// The yaml package accepts JSON input directly, so both fragment formats go
// through the same path. The surrounding DocumentNode is unwrapped.
func ParseBytes(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("empty document")
		}
		return doc.Content[0], nil
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("empty document")
	}
	return &doc, nil
}

// IsMapping reports whether n is a mapping node.
func IsMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is a sequence node.
func IsSequence(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsScalar reports whether n is a scalar node.
func IsScalar(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode
}

// Resolve follows alias nodes to their anchor target.
// Non-alias nodes are returned unchanged.
func Resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// Entries returns the key/value pairs of a mapping node in document order.
// Returns nil for non-mapping nodes.
func Entries(mapping *yaml.Node) []Entry {
	mapping = Resolve(mapping)
	if !IsMapping(mapping) {
		return nil
	}
	entries := make([]Entry, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		entries = append(entries, Entry{Key: mapping.Content[i], Value: mapping.Content[i+1]})
	}
	return entries
}

// Keys returns the scalar keys of a mapping node in document order.
func Keys(mapping *yaml.Node) []string {
	entries := Entries(mapping)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key.Value)
	}
	return keys
}

// Lookup returns the key and value nodes for key in a mapping node.
// Returns (nil, nil) when the key is absent or mapping is not a mapping.
func Lookup(mapping *yaml.Node, key string) (keyNode, valueNode *yaml.Node) {
	mapping = Resolve(mapping)
	if !IsMapping(mapping) {
		return nil, nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i], mapping.Content[i+1]
		}
	}
	return nil, nil
}

// Get returns the value node for key in a mapping node, or nil.
func Get(mapping *yaml.Node, key string) *yaml.Node {
	_, value := Lookup(mapping, key)
	return value
}

// Has reports whether a mapping node contains key.
func Has(mapping *yaml.Node, key string) bool {
	keyNode, _ := Lookup(mapping, key)
	return keyNode != nil
}

// Set appends a key/value pair to a mapping node.
// The caller is responsible for checking the key is absent first; the merger
// treats a present key as a collision, never an overwrite.
func Set(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, NewScalar(key), value)
}

// NewMapping returns an empty mapping node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// NewSequence returns an empty sequence node.
func NewSequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

// NewScalar returns a string scalar node.
func NewScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// Clone returns a deep copy of a node tree.
// Aliases are expanded so the copy is self-contained; anchors are dropped.
// Source line and column information is preserved.
func Clone(n *yaml.Node) *yaml.Node {
	n = Resolve(n)
	if n == nil {
		return nil
	}
	out := &yaml.Node{
		Kind:        n.Kind,
		Style:       n.Style,
		Tag:         n.Tag,
		Value:       n.Value,
		HeadComment: n.HeadComment,
		LineComment: n.LineComment,
		FootComment: n.FootComment,
		Line:        n.Line,
		Column:      n.Column,
	}
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = Clone(child)
		}
	}
	return out
}

// SortEntries sorts a mapping node's entries by key in byte order.
// Used where deterministic output demands canonical entry ordering.
func SortEntries(mapping *yaml.Node) {
	entries := Entries(mapping)
	if len(entries) < 2 {
		return
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Key.Value, b.Key.Value)
	})
	content := make([]*yaml.Node, 0, len(entries)*2)
	for _, e := range entries {
		content = append(content, e.Key, e.Value)
	}
	mapping.Content = content
}

// EncodeYAML marshals a node tree to YAML with 2-space indentation and a
// trailing newline.
func EncodeYAML(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON marshals a node tree to indented JSON, preserving the node
// tree's key order rather than sorting keys alphabetically.
func EncodeJSON(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, n); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeNodeJSON writes a node tree to a buffer as compact JSON, preserving
// mapping key order.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	n = Resolve(n)
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(buf, n)

	default:
		return fmt.Errorf("cannot encode node kind %d as JSON", n.Kind)
	}
}

// writeScalarJSON writes a scalar node as its natural JSON value based on
// the resolved YAML tag.
func writeScalarJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Tag {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return fmt.Errorf("invalid bool scalar %q: %w", n.Value, err)
		}
		buf.WriteString(strconv.FormatBool(b))
		return nil
	case "!!int":
		if _, err := strconv.ParseInt(n.Value, 10, 64); err != nil {
			// Hex/octal or out-of-range values fall back to string form.
			return writeStringJSON(buf, n.Value)
		}
		buf.WriteString(n.Value)
		return nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return writeStringJSON(buf, n.Value)
		}
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	default:
		return writeStringJSON(buf, n.Value)
	}
}

func writeStringJSON(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// Equal reports whether two node trees have the same structure and scalar
// content. Styles, comments, and source positions are ignored.
func Equal(a, b *yaml.Node) bool {
	a, b = Resolve(a), Resolve(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case yaml.ScalarNode:
		return a.Tag == b.Tag && a.Value == b.Value
	case yaml.DocumentNode, yaml.SequenceNode, yaml.MappingNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !Equal(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
