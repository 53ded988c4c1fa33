package merger

import (
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/nodeutil"
)

// metaKeyOrder is the canonical order of known top-level metadata keys.
// Meta keys outside this list (extensions and the like) are appended after
// components in sorted order.
var metaKeyOrder = []string{
	"openapi",
	"info",
	"jsonSchemaDialect",
	"externalDocs",
	"servers",
	"security",
}

// componentOrder is the canonical order of the components subsections.
var componentOrder = []fragment.Category{
	fragment.CategorySchemas,
	fragment.CategoryResponses,
	fragment.CategoryParameters,
	fragment.CategoryExamples,
	fragment.CategoryRequestBodies,
	fragment.CategoryHeaders,
	fragment.CategorySecuritySchemes,
	fragment.CategoryLinks,
	fragment.CategoryCallbacks,
}

// assemble builds the full-spec document from the accumulated sections.
// Section order is canonical and entry keys are sorted in byte order, so
// the document bytes are independent of fragment enumeration order.
// Entry values keep their authored key order.
func assemble(accum map[fragment.Category]map[string]*entry) *yaml.Node {
	doc := nodeutil.NewMapping()
	meta := accum[fragment.CategoryMeta]

	for _, key := range metaKeyOrder {
		if e, ok := meta[key]; ok {
			nodeutil.Set(doc, key, e.value)
		}
	}

	if tags := accum[fragment.CategoryTags]; len(tags) > 0 {
		nodeutil.Set(doc, "tags", tagSequence(tags))
	}

	for _, category := range []fragment.Category{fragment.CategoryPaths, fragment.CategoryWebhooks} {
		if section := accum[category]; len(section) > 0 {
			nodeutil.Set(doc, string(category), sortedMapping(section))
		}
	}

	components := nodeutil.NewMapping()
	for _, category := range componentOrder {
		if section := accum[category]; len(section) > 0 {
			nodeutil.Set(components, string(category), sortedMapping(section))
		}
	}
	if len(components.Content) > 0 {
		nodeutil.Set(doc, "components", components)
	}

	var rest []string
	for key := range meta {
		if !slices.Contains(metaKeyOrder, key) {
			rest = append(rest, key)
		}
	}
	slices.SortFunc(rest, strings.Compare)
	for _, key := range rest {
		nodeutil.Set(doc, key, meta[key].value)
	}

	return doc
}

// sortedMapping builds a mapping node from accumulated entries with keys in
// byte order.
func sortedMapping(section map[string]*entry) *yaml.Node {
	keys := make([]string, 0, len(section))
	for key := range section {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, strings.Compare)

	m := nodeutil.NewMapping()
	for _, key := range keys {
		nodeutil.Set(m, key, section[key].value)
	}
	return m
}

// tagSequence emits the tags section as a sequence sorted by tag name.
// Each fragment entry is a mapping of tag fields keyed by name; the emitted
// item carries the name first, then the authored fields.
func tagSequence(tags map[string]*entry) *yaml.Node {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)

	seq := nodeutil.NewSequence()
	for _, name := range names {
		item := nodeutil.NewMapping()
		nodeutil.Set(item, "name", nodeutil.NewScalar(name))
		value := nodeutil.Resolve(tags[name].value)
		if nodeutil.IsMapping(value) {
			item.Content = append(item.Content, value.Content...)
		}
		seq.Content = append(seq.Content, item)
	}
	return seq
}
