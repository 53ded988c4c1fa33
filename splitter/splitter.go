package splitter

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/naming"
	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/resolver"
	"github.com/specweld/specweld/specerrors"
)

// SharedGroup is the group name for components referenced by several path
// groups, or by none.
const SharedGroup = "shared"

// methodOrder is the canonical order in which operations are inspected when
// grouping a path entry by tag.
var methodOrder = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// assembledSections are the top-level keys the splitter routes by category;
// every other top-level key is metadata.
var assembledSections = map[string]bool{
	"paths":      true,
	"webhooks":   true,
	"tags":       true,
	"components": true,
}

// Result contains the outcome of a split operation.
type Result struct {
	// Set holds the planned fragments keyed by their RelPath
	Set *fragment.Set
	// Warnings lists entries that fell back to the default group
	Warnings []string
}

// Split decomposes a full specification into fragments.
//
// Path and webhook entries are grouped by the first operation tag found in
// canonical method order, then by the first static path segment, and
// finally into the default group with a recorded warning
// (*specerrors.UnsupportedGroupingError, never fatal). Components go to the
// single path group that reaches them through the reference graph, or to
// their category's shared fragment. Tags become a mapping keyed by tag
// name; remaining top-level keys form the metadata fragment.
//
// Every document-absolute reference is rewritten into fragment-tree form;
// one that names a missing entry fails the split with
// *specerrors.DanglingReferenceError. The input document is never mutated.
func Split(spec *fragment.FullSpec, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("splitter: invalid options: %w", err)
	}
	if spec == nil || spec.Doc == nil {
		return nil, fmt.Errorf("splitter: full spec is required")
	}
	if spec.Version == "" {
		return nil, fmt.Errorf("splitter: version tag is required")
	}
	doc := nodeutil.Clone(spec.Doc)
	if !nodeutil.IsMapping(doc) {
		return nil, fmt.Errorf("splitter: document root must be a mapping")
	}

	logger := cfg.logger.With("version", spec.Version)
	pln := newPlan()
	assign := resolver.Assignment{}
	var warnings []string

	// Paths and webhooks first: their groups drive component ownership.
	groupByEntry := make(map[string]string)
	for _, category := range []fragment.Category{fragment.CategoryPaths, fragment.CategoryWebhooks} {
		section := nodeutil.Get(doc, string(category))
		for _, e := range nodeutil.Entries(section) {
			group, gerr := groupForEntry(category.Section(), e.Key.Value, e.Value)
			if gerr != nil {
				group = cfg.defaultGroup
				warnings = append(warnings, gerr.Error())
				logger.Warn("entry routed to default group",
					"section", gerr.Section, "key", gerr.Key, "reason", gerr.Reason)
			}
			relPath := path.Join(string(category), group+".yaml")
			pln.add(relPath, category, e.Key.Value, e.Value)
			ptr := resolver.EntryPointer(category.SectionPath(), e.Key.Value)
			assign[ptr] = relPath
			groupByEntry[ptr] = group
		}
	}

	// Component ownership: which path groups reach each component entry.
	graph := resolver.NewGraph(doc)
	owners := make(map[string]map[string]bool)
	for ptr, group := range groupByEntry {
		for _, reached := range graph.Reachable(ptr) {
			if !strings.HasPrefix(reached, "/components/") {
				continue
			}
			set := owners[reached]
			if set == nil {
				set = make(map[string]bool)
				owners[reached] = set
			}
			set[group] = true
		}
	}

	if components := nodeutil.Get(doc, "components"); components != nil {
		for _, sub := range nodeutil.Entries(components) {
			category, ok := fragment.CategoryForSection("components", sub.Key.Value)
			if !ok {
				return nil, fmt.Errorf("splitter: no fragment category for components subsection %q", sub.Key.Value)
			}
			for _, e := range nodeutil.Entries(sub.Value) {
				ptr := resolver.EntryPointer(category.SectionPath(), e.Key.Value)
				group := SharedGroup
				if set := owners[ptr]; len(set) == 1 {
					for g := range set {
						group = g
					}
				}
				relPath := path.Join(string(category), group+".yaml")
				pln.add(relPath, category, e.Key.Value, e.Value)
				assign[ptr] = relPath
			}
		}
	}

	if tags := nodeutil.Resolve(nodeutil.Get(doc, "tags")); tags != nil {
		if !nodeutil.IsSequence(tags) {
			return nil, fmt.Errorf("splitter: tags section must be a sequence")
		}
		for i, item := range tags.Content {
			name, fields := tagFields(nodeutil.Resolve(item))
			if name == "" {
				gerr := &specerrors.UnsupportedGroupingError{
					Section: "tags",
					Key:     fmt.Sprintf("[%d]", i),
					Reason:  "tag has no name",
				}
				warnings = append(warnings, gerr.Error())
				logger.Warn("unnamed tag routed to default group", "index", i)
				name = fmt.Sprintf("%s-%d", cfg.defaultGroup, i)
			}
			pln.add("tags/tags.yaml", fragment.CategoryTags, name, fields)
		}
	}

	// Everything else is top-level metadata, kept in document order.
	for _, e := range nodeutil.Entries(doc) {
		if assembledSections[e.Key.Value] {
			continue
		}
		pln.add("meta/header.yaml", fragment.CategoryMeta, e.Key.Value, e.Value)
	}

	frags := make([]*fragment.Fragment, 0, len(pln.fragments))
	for _, pf := range pln.ordered() {
		fdoc := pf.document()
		if err := resolver.RelativizeFragment(fdoc, pf.relPath, assign); err != nil {
			return nil, err
		}
		frags = append(frags, &fragment.Fragment{
			Version:  spec.Version,
			Category: pf.category,
			Name:     strings.TrimSuffix(path.Base(pf.relPath), ".yaml"),
			Path:     pf.relPath,
			RelPath:  pf.relPath,
			Format:   fragment.FormatYAML,
			Doc:      fdoc,
		})
		logger.Debug("planned fragment", "relpath", pf.relPath, "entries", len(pf.entries))
	}
	logger.Info("split complete", "fragments", len(frags), "warnings", len(warnings))

	return &Result{
		Set:      fragment.NewSet(spec.Version, frags...),
		Warnings: warnings,
	}, nil
}

// groupForEntry decides the group of one paths or webhooks entry: the first
// operation tag in canonical method order, else the first static path
// segment. Webhook names have no slashes so the whole name is the segment.
func groupForEntry(section, key string, value *yaml.Node) (string, *specerrors.UnsupportedGroupingError) {
	value = nodeutil.Resolve(value)
	for _, method := range methodOrder {
		op := nodeutil.Resolve(nodeutil.Get(value, method))
		if !nodeutil.IsMapping(op) {
			continue
		}
		tags := nodeutil.Resolve(nodeutil.Get(op, "tags"))
		if tags == nil || !nodeutil.IsSequence(tags) || len(tags.Content) == 0 {
			continue
		}
		if first := nodeutil.Resolve(tags.Content[0]); nodeutil.IsScalar(first) {
			if group := naming.ToGroupName(first.Value); group != "" {
				return group, nil
			}
		}
	}

	for _, segment := range strings.Split(strings.TrimPrefix(key, "/"), "/") {
		if segment == "" || strings.HasPrefix(segment, "{") {
			continue
		}
		if group := naming.ToGroupName(segment); group != "" {
			return group, nil
		}
	}

	return "", &specerrors.UnsupportedGroupingError{
		Section: section,
		Key:     key,
		Reason:  "no operation tag or static path segment",
	}
}

// tagFields splits a tags sequence item into its name and remaining fields.
// A tag with no fields beyond its name yields a null value, the bare-tag
// form of the tags fragment.
func tagFields(item *yaml.Node) (string, *yaml.Node) {
	if !nodeutil.IsMapping(item) {
		return "", nullNode()
	}
	fields := nodeutil.NewMapping()
	var name string
	for _, e := range nodeutil.Entries(item) {
		if e.Key.Value == "name" {
			if v := nodeutil.Resolve(e.Value); nodeutil.IsScalar(v) {
				name = v.Value
			}
			continue
		}
		fields.Content = append(fields.Content, e.Key, e.Value)
	}
	if len(fields.Content) == 0 {
		return name, nullNode()
	}
	return name, fields
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// plannedEntry is one entry routed to a planned fragment.
type plannedEntry struct {
	key   string
	value *yaml.Node
}

// plannedFragment accumulates the entries routed to one fragment file.
type plannedFragment struct {
	relPath  string
	category fragment.Category
	entries  []plannedEntry
}

// document builds the fragment's root mapping. Entry keys are sorted for
// every category except meta, which keeps the full spec's key order.
func (pf *plannedFragment) document() *yaml.Node {
	entries := pf.entries
	if pf.category != fragment.CategoryMeta {
		entries = slices.Clone(entries)
		slices.SortStableFunc(entries, func(a, b plannedEntry) int {
			return strings.Compare(a.key, b.key)
		})
	}
	doc := nodeutil.NewMapping()
	for _, e := range entries {
		nodeutil.Set(doc, e.key, e.value)
	}
	return doc
}

// plan indexes planned fragments by RelPath.
type plan struct {
	fragments map[string]*plannedFragment
}

func newPlan() *plan {
	return &plan{fragments: make(map[string]*plannedFragment)}
}

func (p *plan) add(relPath string, category fragment.Category, key string, value *yaml.Node) {
	pf := p.fragments[relPath]
	if pf == nil {
		pf = &plannedFragment{relPath: relPath, category: category}
		p.fragments[relPath] = pf
	}
	pf.entries = append(pf.entries, plannedEntry{key: key, value: value})
}

// ordered returns the planned fragments sorted by RelPath.
func (p *plan) ordered() []*plannedFragment {
	out := make([]*plannedFragment, 0, len(p.fragments))
	for _, pf := range p.fragments {
		out = append(out, pf)
	}
	slices.SortFunc(out, func(a, b *plannedFragment) int {
		return strings.Compare(a.relPath, b.relPath)
	})
	return out
}
