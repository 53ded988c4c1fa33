// Package merger welds an ordered fragment set into one full OpenAPI
// specification document per API version.
//
// Each fragment's top-level entries are accumulated into the corresponding
// full-spec section after its references are qualified. A key contributed
// twice is a collision and aborts the merge; fragments are never silently
// overwritten. After assembly every reference in the document is validated.
//
// Output is deterministic: sections appear in canonical order, entry keys
// are sorted in byte order, and tags are emitted as a sequence sorted by
// name. Merging any permutation of the same fragment set yields
// byte-identical output; enumeration order only affects which fragment is
// blamed first on collision.
package merger
