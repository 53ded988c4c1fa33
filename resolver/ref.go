package resolver

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/internal/nodeutil"
)

// refKey is the mapping key that marks a reference node.
const refKey = "$ref"

// docSections are the top-level section names a document-absolute reference
// may start with. Any other "#/..." reference is fragment-local.
var docSections = map[string]bool{
	"components": true,
	"paths":      true,
	"webhooks":   true,
	"tags":       true,
}

// isDocAbsolute reports whether ref is a document-absolute reference
// ("#/components/...", "#/paths/...", and so on).
func isDocAbsolute(ref string) bool {
	if !strings.HasPrefix(ref, "#/") {
		return false
	}
	rest := ref[2:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return docSections[rest]
}

// hasURLScheme reports whether ref starts with a URL scheme such as
// "http://" or "file://". Scheme-qualified references always resolve outside
// the version closure.
func hasURLScheme(ref string) bool {
	for i, r := range ref {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			continue
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
			continue
		case r == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// walkRefs visits every $ref scalar in a node tree in document order.
// The visitor may rewrite the value node in place; returning an error stops
// the walk immediately.
func walkRefs(n *yaml.Node, visit func(value *yaml.Node) error) error {
	n = nodeutil.Resolve(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			if err := walkRefs(child, visit); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Value == refKey && nodeutil.IsScalar(nodeutil.Resolve(value)) {
				if err := visit(nodeutil.Resolve(value)); err != nil {
					return err
				}
				continue
			}
			if err := walkRefs(value, visit); err != nil {
				return err
			}
		}
	}
	return nil
}
