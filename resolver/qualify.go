package resolver

import (
	"path"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/jsonpointer"
	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/specerrors"
)

// QualifyFragment rewrites every fragment-form reference inside frag.Doc
// into document-absolute form, in place.
//
//   - In-file "#/Key/..." becomes "#/<section>/Key/..." using the fragment's
//     own category.
//   - Cross-fragment "<relpath>#/Key/..." is resolved against the
//     referencing fragment's directory; the target fragment must exist in
//     set and define the first pointer segment.
//   - Already document-absolute references are left untouched; they are
//     validated against the merged document after assembly.
//
// Unresolvable references fail fast with *specerrors.DanglingReferenceError.
// Qualifying an already-qualified document is a no-op.
func QualifyFragment(frag *fragment.Fragment, set *fragment.Set) error {
	return walkRefs(frag.Doc, func(value *yaml.Node) error {
		qualified, err := qualifyRef(value.Value, frag, set, value)
		if err != nil {
			return err
		}
		value.Value = qualified
		value.Tag = "!!str"
		return nil
	})
}

// qualifyRef computes the document-absolute form of one reference string.
func qualifyRef(ref string, frag *fragment.Fragment, set *fragment.Set, node *yaml.Node) (string, error) {
	dangling := func(reason string) error {
		return &specerrors.DanglingReferenceError{
			Ref:     ref,
			File:    frag.RelPath,
			Line:    node.Line,
			Column:  node.Column,
			Message: reason,
		}
	}

	switch {
	case isDocAbsolute(ref):
		return ref, nil

	case strings.HasPrefix(ref, "#/"):
		// In-file reference, relative to the fragment's own section.
		section := frag.Category.SectionPath()
		if len(section) == 0 {
			return "", dangling("meta fragments have no referenceable section")
		}
		return "#" + jsonpointer.Join(section) + ref[1:], nil

	case hasURLScheme(ref):
		return "", dangling("reference resolves outside the version closure")

	case strings.Contains(ref, "#"):
		file, pointer, _ := strings.Cut(ref, "#")
		if strings.HasPrefix(file, "/") {
			return "", dangling("absolute file paths escape the version root")
		}
		rel := path.Clean(path.Join(frag.Dir(), file))
		if rel == ".." || strings.HasPrefix(rel, "../") {
			return "", dangling("reference escapes the version root")
		}
		target, ok := set.ByRelPath(rel)
		if !ok {
			return "", dangling("fragment " + rel + " not found in version " + set.Version)
		}
		section := target.Category.SectionPath()
		if len(section) == 0 {
			return "", dangling("meta fragment entries are not referenceable")
		}
		tokens, err := jsonpointer.Split(pointer)
		if err != nil || len(tokens) == 0 {
			return "", dangling("reference must point at a named entry")
		}
		if !nodeutil.Has(target.Doc, tokens[0]) {
			return "", dangling("fragment " + rel + " does not define " + tokens[0])
		}
		return "#" + jsonpointer.Join(section) + pointer, nil

	default:
		return "", dangling("reference resolves outside the version closure")
	}
}

// ValidateDocument checks that every reference in a merged document is
// document-absolute and resolves to a node present in the same document.
// The first failure aborts with *specerrors.DanglingReferenceError.
func ValidateDocument(doc *yaml.Node) error {
	return walkRefs(doc, func(value *yaml.Node) error {
		if err := checkDocRef(doc, value); err != nil {
			return err
		}
		return nil
	})
}

// CollectDangling walks a merged document and returns every unresolvable
// reference, in document order. Unlike ValidateDocument it never stops at
// the first failure; the validator uses it to report the complete picture.
func CollectDangling(doc *yaml.Node) []*specerrors.DanglingReferenceError {
	var dangling []*specerrors.DanglingReferenceError
	_ = walkRefs(doc, func(value *yaml.Node) error {
		if err := checkDocRef(doc, value); err != nil {
			dangling = append(dangling, err)
		}
		return nil
	})
	return dangling
}

// checkDocRef validates a single reference against the merged document.
func checkDocRef(doc, value *yaml.Node) *specerrors.DanglingReferenceError {
	ref := value.Value
	if !strings.HasPrefix(ref, "#/") {
		return &specerrors.DanglingReferenceError{
			Ref:     ref,
			Line:    value.Line,
			Column:  value.Column,
			Message: "reference resolves outside the document",
		}
	}
	if jsonpointer.Eval(doc, ref[1:]) == nil {
		return &specerrors.DanglingReferenceError{
			Ref:     ref,
			Line:    value.Line,
			Column:  value.Column,
			Message: "no definition at this pointer",
		}
	}
	return nil
}
