// Package specweld aggregates OpenAPI specifications that are maintained as
// per-version, per-category fragment files.
//
// The engine is a strict pipeline of pure transforms:
//
//   - [fragment] loads a directory tree of fragments for one API version.
//   - [merger] welds the fragments into a single full specification,
//     qualifying $ref pointers and detecting key collisions.
//   - [splitter] performs the inverse, decomposing a full specification back
//     into the fragment layout while relativizing references.
//   - [validator] checks a full specification and reports every violation it
//     finds as data rather than stopping at the first.
//
// The specweld CLI (cmd/specweld) wires these packages into the "generate",
// "split", and "validate" commands.
package specweld
