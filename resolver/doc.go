// Package resolver rewrites and validates $ref pointers as fragments are
// combined into a full specification or separated back out of one.
//
// Three reference forms exist:
//
//   - in-file: "#/Key/..." relative to the fragment's own category section
//   - cross-fragment: "../schemas/user.yaml#/User", a file path relative to
//     the referencing fragment's directory plus a pointer into that file
//   - document-absolute: "#/components/schemas/User", relative to the
//     merged document
//
// Qualify (the merge direction) rewrites the first two forms into the third.
// Relativize (the split direction) rewrites the third back into the first
// two, using the splitter's fragment assignment. Both directions are
// single-pass recursive rewrites and are idempotent: references already in
// the target form are left untouched.
//
// A reference that cannot be resolved within the current version's closure
// fails with *specerrors.DanglingReferenceError naming the offending pointer
// and its source fragment.
package resolver
