// Package jsonpointer implements the subset of RFC 6901 JSON Pointer
// evaluation needed to resolve $ref fragments against yaml.Node trees.
package jsonpointer

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/internal/nodeutil"
)

// Escape encodes a single reference token per RFC 6901:
// "~" becomes "~0" and "/" becomes "~1".
func Escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// Unescape decodes a single reference token per RFC 6901.
// The order matters: "~1" first, then "~0".
func Unescape(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// Split parses a JSON pointer ("/a/b~1c") into unescaped reference tokens.
// The empty pointer yields no tokens. A leading "#" is not accepted here;
// callers strip the fragment marker first.
func Split(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("invalid JSON pointer %q: must start with '/'", pointer)
	}
	raw := strings.Split(pointer[1:], "/")
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		tokens[i] = Unescape(tok)
	}
	return tokens, nil
}

// Join builds a JSON pointer from unescaped reference tokens.
func Join(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteByte('/')
		sb.WriteString(Escape(tok))
	}
	return sb.String()
}

// Eval resolves a JSON pointer against a node tree and returns the target
// node, or nil when any token fails to resolve. Mapping tokens match keys;
// sequence tokens must be valid indices.
func Eval(root *yaml.Node, pointer string) *yaml.Node {
	tokens, err := Split(pointer)
	if err != nil {
		return nil
	}
	node := nodeutil.Resolve(root)
	for _, tok := range tokens {
		switch {
		case nodeutil.IsMapping(node):
			node = nodeutil.Get(node, tok)
		case nodeutil.IsSequence(node):
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node.Content) {
				return nil
			}
			node = node.Content[idx]
		default:
			return nil
		}
		if node == nil {
			return nil
		}
		node = nodeutil.Resolve(node)
	}
	return node
}
