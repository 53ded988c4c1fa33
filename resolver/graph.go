package resolver

import (
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/internal/jsonpointer"
	"github.com/specweld/specweld/internal/nodeutil"
)

// Graph is the reference graph of a merged document: which section entries
// each entry reaches through $ref pointers. The splitter uses it to decide
// component ownership.
type Graph struct {
	// edges maps an entry pointer to the entry pointers it references
	// directly. Only document-absolute references contribute edges.
	edges map[string][]string
}

// componentSections are the section paths whose entries participate in the
// graph, beyond paths and webhooks.
var componentSections = []string{
	"schemas", "responses", "parameters", "examples",
	"requestBodies", "headers", "securitySchemes", "links", "callbacks",
}

// NewGraph builds the reference graph of a merged document.
func NewGraph(doc *yaml.Node) *Graph {
	g := &Graph{edges: make(map[string][]string)}

	for _, section := range []string{"paths", "webhooks"} {
		g.addSection(doc, []string{section})
	}
	for _, sub := range componentSections {
		g.addSection(doc, []string{"components", sub})
	}
	return g
}

// addSection records the direct references of every entry in one section.
func (g *Graph) addSection(doc *yaml.Node, sectionPath []string) {
	section := doc
	for _, key := range sectionPath {
		section = nodeutil.Get(section, key)
		if section == nil {
			return
		}
	}
	for _, e := range nodeutil.Entries(section) {
		from := EntryPointer(sectionPath, e.Key.Value)
		g.edges[from] = directRefs(e.Value)
	}
}

// directRefs collects the entry pointers of all document-absolute references
// inside a node tree, deduplicated, in first-seen order.
func directRefs(n *yaml.Node) []string {
	var refs []string
	seen := make(map[string]bool)
	_ = walkRefs(n, func(value *yaml.Node) error {
		entry, ok := refEntryPointer(value.Value)
		if ok && !seen[entry] {
			seen[entry] = true
			refs = append(refs, entry)
		}
		return nil
	})
	return refs
}

// refEntryPointer truncates a document-absolute reference to the pointer of
// the section entry it lands in ("/components/schemas/User").
func refEntryPointer(ref string) (string, bool) {
	if !isDocAbsolute(ref) {
		return "", false
	}
	tokens, err := jsonpointer.Split(ref[1:])
	if err != nil {
		return "", false
	}
	sectionLen := 1
	if tokens[0] == "components" {
		sectionLen = 2
	}
	if len(tokens) <= sectionLen {
		return "", false
	}
	return jsonpointer.Join(tokens[:sectionLen+1]), true
}

// Reachable returns every entry pointer transitively reachable from the
// given entry, excluding the entry itself, sorted lexicographically.
func (g *Graph) Reachable(from string) []string {
	seen := map[string]bool{from: true}
	queue := slices.Clone(g.edges[from])
	var out []string
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, next)
		queue = append(queue, g.edges[next]...)
	}
	slices.SortFunc(out, strings.Compare)
	return out
}

// Entries returns every entry pointer known to the graph, sorted.
func (g *Graph) Entries() []string {
	out := make([]string, 0, len(g.edges))
	for entry := range g.edges {
		out = append(out, entry)
	}
	slices.SortFunc(out, strings.Compare)
	return out
}
