// Package specerrors provides structured error types for specweld.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - LoadError: unreadable or malformed fragment files
//   - CollisionError: duplicate keys contributed by two fragments during merge
//   - DanglingReferenceError: $ref pointers that cannot be resolved
//   - UnsupportedGroupingError: full-spec entries the splitter cannot classify
//
// # Usage with errors.As
//
//	result, err := merger.Merge(set)
//	if err != nil {
//	    var collision *specerrors.CollisionError
//	    if errors.As(err, &collision) {
//	        // Both contributing fragments are identified
//	        fmt.Println(collision.First.File, collision.Second.File)
//	    }
//	}
package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrLoad indicates a fragment could not be read or parsed.
	ErrLoad = errors.New("load error")

	// ErrCollision indicates two fragments defined the same key.
	ErrCollision = errors.New("collision error")

	// ErrDanglingReference indicates a $ref failed to resolve.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrUnsupportedGrouping indicates an entry matched no grouping convention.
	ErrUnsupportedGrouping = errors.New("unsupported grouping")
)

// LoadError represents a failure to read or parse a fragment file.
// This includes unreadable files, malformed YAML/JSON, non-mapping fragment
// roots, and unknown category directories.
type LoadError struct {
	// Path is the file or directory path that failed to load
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the load failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// FragmentRef identifies where a fragment contributed a key.
type FragmentRef struct {
	// File is the fragment path, relative to the version root when known
	File string
	// Line is the 1-based line number of the key (0 if unknown)
	Line int
	// Column is the 1-based column number of the key (0 if unknown)
	Column int
}

// String returns the location in IDE-friendly file:line:column format.
func (r FragmentRef) String() string {
	if r.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", r.File, r.Line, r.Column)
	}
	return r.File
}

// CollisionError represents two fragments defining the same key.
// Collisions are never silently resolved; the merge aborts and both
// contributing fragments are identified.
type CollisionError struct {
	// Section is the full-spec section where the collision occurred
	// (e.g., "paths", "components.schemas")
	Section string
	// Key is the duplicated key (e.g., a schema name or path template)
	Key string
	// First is the fragment that contributed the key first, in merge order
	First FragmentRef
	// Second is the fragment whose duplicate key aborted the merge
	Second FragmentRef
}

// Error returns a human-readable error message naming the key and both
// contributing fragments.
func (e *CollisionError) Error() string {
	msg := "collision error"
	if e.Section != "" {
		msg += " in " + e.Section
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": duplicate key %q", e.Key)
	}
	if e.First.File != "" || e.Second.File != "" {
		msg += fmt.Sprintf(" (defined in %s and %s)", e.First, e.Second)
	}
	return msg
}

// Unwrap returns nil as CollisionError has no underlying cause.
func (e *CollisionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// DanglingReferenceError represents a $ref that cannot be resolved within
// the target version's fragment set or merged document.
type DanglingReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// File is the source fragment path (empty for the merged document)
	File string
	// Line is the 1-based line number of the $ref (0 if unknown)
	Line int
	// Column is the 1-based column number of the $ref (0 if unknown)
	Column int
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message naming the offending pointer
// and its source.
func (e *DanglingReferenceError) Error() string {
	msg := "dangling reference"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.File != "" {
		msg += " in " + e.File
		if e.Line > 0 {
			msg += fmt.Sprintf(" at line %d, column %d", e.Line, e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as DanglingReferenceError has no underlying cause.
func (e *DanglingReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}

// UnsupportedGroupingError represents a full-spec entry that matched no
// grouping convention during split. The splitter records it as a warning and
// routes the entry to the default fragment; it never aborts the split.
type UnsupportedGroupingError struct {
	// Section is the full-spec section containing the entry
	Section string
	// Key is the entry key that could not be classified
	Key string
	// Reason describes why no grouping convention claimed the entry
	Reason string
}

// Error returns a human-readable error message.
func (e *UnsupportedGroupingError) Error() string {
	msg := "unsupported grouping"
	if e.Section != "" {
		msg += " in " + e.Section
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" for %q", e.Key)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns nil as UnsupportedGroupingError has no underlying cause.
func (e *UnsupportedGroupingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedGroupingError) Is(target error) bool {
	return target == ErrUnsupportedGrouping
}
