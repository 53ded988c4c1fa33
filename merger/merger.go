package merger

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/resolver"
	"github.com/specweld/specweld/specerrors"
)

// Result contains the outcome of a merge operation.
type Result struct {
	// Spec is the assembled full specification
	Spec *fragment.FullSpec
	// Stats summarizes what went into the document
	Stats Stats
	// Warnings lists non-fatal observations made during the merge
	Warnings []string
}

// Stats summarizes the content of a merged specification.
type Stats struct {
	// FragmentCount is the number of fragments merged
	FragmentCount int
	// EntryCount is the total number of section entries
	EntryCount int
	// SectionEntries maps each contributing category to its entry count
	SectionEntries map[fragment.Category]int
}

// entry is one accumulated section entry with its contributing fragment,
// kept for collision blame.
type entry struct {
	keyNode *yaml.Node
	value   *yaml.Node
	source  *fragment.Fragment
}

// reservedMetaKeys are top-level keys a meta fragment may not contribute
// because the merger assembles those sections from their own categories.
var reservedMetaKeys = map[string]bool{
	"paths":      true,
	"webhooks":   true,
	"tags":       true,
	"components": true,
}

// Merge combines the fragments of one version into a full specification.
//
// For each fragment, in RelPath order: its references are qualified into
// document-absolute form, then each top-level entry is inserted into the
// destination section. An already-present key aborts the merge with a
// *specerrors.CollisionError identifying both contributing fragments. After
// assembly, every reference in the document must resolve or the merge fails
// with *specerrors.DanglingReferenceError.
//
// Merge order does not affect the assembled document content, only which
// fragment is blamed first on collision.
func Merge(set *fragment.Set, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("merger: invalid options: %w", err)
	}
	if set == nil {
		return nil, fmt.Errorf("merger: fragment set is required")
	}

	logger := cfg.logger.With("version", set.Version)
	accum := make(map[fragment.Category]map[string]*entry)
	var warnings []string

	for _, frag := range set.Fragments() {
		// Work on a copy: fragments are the loader's values and the merge
		// must not mutate its input.
		work := *frag
		work.Doc = nodeutil.Clone(frag.Doc)
		if err := resolver.QualifyFragment(&work, set); err != nil {
			return nil, err
		}

		section := accum[frag.Category]
		if section == nil {
			section = make(map[string]*entry)
			accum[frag.Category] = section
		}

		for _, e := range nodeutil.Entries(work.Doc) {
			key := e.Key.Value
			if frag.Category == fragment.CategoryMeta && reservedMetaKeys[key] {
				return nil, &specerrors.LoadError{
					Path:    frag.RelPath,
					Line:    e.Key.Line,
					Column:  e.Key.Column,
					Message: fmt.Sprintf("meta fragments may not define reserved key %q", key),
				}
			}
			if frag.Category == fragment.CategoryTags && !tagValueOK(e.Value) {
				return nil, &specerrors.LoadError{
					Path:    frag.RelPath,
					Line:    e.Key.Line,
					Column:  e.Key.Column,
					Message: fmt.Sprintf("tag entry %q must be a mapping or null", key),
				}
			}
			if prev, exists := section[key]; exists {
				return nil, &specerrors.CollisionError{
					Section: frag.Category.Section(),
					Key:     key,
					First: specerrors.FragmentRef{
						File:   prev.source.RelPath,
						Line:   prev.keyNode.Line,
						Column: prev.keyNode.Column,
					},
					Second: specerrors.FragmentRef{
						File:   frag.RelPath,
						Line:   e.Key.Line,
						Column: e.Key.Column,
					},
				}
			}
			section[key] = &entry{keyNode: e.Key, value: e.Value, source: frag}
		}
		logger.Debug("merged fragment", "relpath", frag.RelPath, "category", string(frag.Category))
	}

	doc := assemble(accum)
	if err := resolver.ValidateDocument(doc); err != nil {
		return nil, err
	}

	stats := Stats{
		FragmentCount:  set.Len(),
		SectionEntries: make(map[fragment.Category]int, len(accum)),
	}
	for category, section := range accum {
		stats.SectionEntries[category] = len(section)
		stats.EntryCount += len(section)
	}
	logger.Info("merge complete", "fragments", stats.FragmentCount, "entries", stats.EntryCount)

	return &Result{
		Spec:     &fragment.FullSpec{Version: set.Version, Doc: doc},
		Stats:    stats,
		Warnings: warnings,
	}, nil
}

// tagValueOK reports whether a tag fragment entry value is usable: a
// mapping of tag fields, or null for a bare tag name.
func tagValueOK(n *yaml.Node) bool {
	n = nodeutil.Resolve(n)
	if nodeutil.IsMapping(n) {
		return true
	}
	return nodeutil.IsScalar(n) && n.Tag == "!!null"
}
