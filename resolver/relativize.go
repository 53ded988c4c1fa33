package resolver

import (
	"path"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/internal/jsonpointer"
	"github.com/specweld/specweld/specerrors"
)

// Assignment records which planned fragment owns each full-spec entry
// during a split. Keys are entry pointers ("/components/schemas/User");
// values are fragment paths relative to the version root
// ("schemas/pets.yaml").
type Assignment map[string]string

// EntryPointer builds the assignment key for an entry of a section.
func EntryPointer(sectionPath []string, key string) string {
	return jsonpointer.Join(append(append([]string{}, sectionPath...), key))
}

// RelativizeFragment rewrites every document-absolute reference inside a
// planned fragment document into fragment-tree form, in place.
//
//   - A reference to an entry owned by ownRelPath itself becomes in-file
//     ("#/Key/...").
//   - A reference to an entry owned by another fragment becomes a
//     file-relative reference from ownRelPath's directory
//     ("../schemas/shared.yaml#/Key/...").
//   - References that already carry a file part, and fragment-local
//     references, are left untouched, making the rewrite idempotent.
//
// A document-absolute reference whose target entry is not in the assignment
// fails with *specerrors.DanglingReferenceError.
func RelativizeFragment(doc *yaml.Node, ownRelPath string, assign Assignment) error {
	ownDir := path.Dir(ownRelPath)
	return walkRefs(doc, func(value *yaml.Node) error {
		rewritten, err := relativizeRef(value.Value, ownRelPath, ownDir, assign, value)
		if err != nil {
			return err
		}
		value.Value = rewritten
		value.Tag = "!!str"
		return nil
	})
}

// relativizeRef computes the fragment-tree form of one reference string.
func relativizeRef(ref, ownRelPath, ownDir string, assign Assignment, node *yaml.Node) (string, error) {
	if !isDocAbsolute(ref) {
		// In-file or file-relative already; leave untouched.
		return ref, nil
	}

	tokens, err := jsonpointer.Split(ref[1:])
	if err != nil {
		return "", &specerrors.DanglingReferenceError{
			Ref: ref, File: ownRelPath, Line: node.Line, Column: node.Column,
			Message: "malformed pointer",
		}
	}

	sectionLen := 1
	if tokens[0] == "components" {
		sectionLen = 2
	}
	if len(tokens) <= sectionLen {
		return "", &specerrors.DanglingReferenceError{
			Ref: ref, File: ownRelPath, Line: node.Line, Column: node.Column,
			Message: "reference does not name a section entry",
		}
	}

	entry := jsonpointer.Join(tokens[:sectionLen+1])
	owner, ok := assign[entry]
	if !ok {
		return "", &specerrors.DanglingReferenceError{
			Ref: ref, File: ownRelPath, Line: node.Line, Column: node.Column,
			Message: "target entry is not in the split assignment",
		}
	}

	local := jsonpointer.Join(tokens[sectionLen:])
	if owner == ownRelPath {
		return "#" + local, nil
	}
	return relativeFilePath(ownDir, owner) + "#" + local, nil
}

// relativeFilePath returns the slash-separated path of target relative to
// fromDir, both given relative to the version root.
func relativeFilePath(fromDir, target string) string {
	if fromDir == "." || fromDir == "" {
		return target
	}
	if path.Dir(target) == fromDir {
		return path.Base(target)
	}
	ups := strings.Count(fromDir, "/") + 1
	return strings.Repeat("../", ups) + target
}
