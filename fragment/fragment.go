package fragment

import (
	"path"
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Format identifies the encoding of a fragment or full-spec file.
type Format int

const (
	// FormatYAML is the default fragment encoding.
	FormatYAML Format = iota
	// FormatJSON is selected by a .json file extension.
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatForPath returns the Format implied by a file path's extension.
func FormatForPath(p string) Format {
	if strings.EqualFold(path.Ext(p), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Fragment is one file's worth of a partial OpenAPI specification.
// It is owned by the loader until consumed by the merger.
type Fragment struct {
	// Version is the API version tag this fragment belongs to (e.g., "v1")
	Version string
	// Category identifies the full-spec section the fragment contributes to
	Category Category
	// Name is the file stem (e.g., "users" for paths/users.yaml)
	Name string
	// Path is the source location as given to the loader
	Path string
	// RelPath is the slash-separated path relative to the version root
	// (e.g., "schemas/user.yaml"); it is the fragment's identity within a Set
	RelPath string
	// Format is the source encoding (YAML or JSON)
	Format Format
	// Doc is the parsed mapping of top-level entry keys to content
	Doc *yaml.Node
}

// Dir returns the fragment's directory relative to the version root,
// slash-separated (e.g., "schemas").
func (f *Fragment) Dir() string {
	return path.Dir(f.RelPath)
}

// Set is the ordered collection of all fragments for one API version.
// Fragments are ordered by RelPath so merge input is deterministic
// regardless of filesystem enumeration order.
type Set struct {
	// Version is the API version tag shared by all fragments in the set
	Version string

	fragments []*Fragment
	byRelPath map[string]*Fragment
}

// NewSet builds a Set from fragments, sorting them by RelPath.
// All fragments must share the version tag; the loader guarantees this, and
// in-memory construction (tests, the splitter round trip) is expected to.
func NewSet(version string, fragments ...*Fragment) *Set {
	s := &Set{
		Version:   version,
		fragments: slices.Clone(fragments),
		byRelPath: make(map[string]*Fragment, len(fragments)),
	}
	slices.SortStableFunc(s.fragments, func(a, b *Fragment) int {
		return strings.Compare(a.RelPath, b.RelPath)
	})
	for _, f := range s.fragments {
		s.byRelPath[f.RelPath] = f
	}
	return s
}

// Fragments returns the fragments in RelPath order.
// The returned slice is shared; callers must not mutate it.
func (s *Set) Fragments() []*Fragment {
	return s.fragments
}

// Len returns the number of fragments in the set.
func (s *Set) Len() int {
	return len(s.fragments)
}

// ByRelPath looks up a fragment by its version-root-relative path.
func (s *Set) ByRelPath(rel string) (*Fragment, bool) {
	f, ok := s.byRelPath[rel]
	return f, ok
}

// FullSpec is the single merged specification document for one API version.
// Invariant: every $ref inside Doc resolves within the same document.
type FullSpec struct {
	// Version is the API version tag (e.g., "v1")
	Version string
	// Doc is the document root mapping
	Doc *yaml.Node
	// SourcePath is the file the spec was read from, or empty when the spec
	// was produced in memory by the merger
	SourcePath string
}
