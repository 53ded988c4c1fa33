// Package fragment defines the specweld data model and the fragment loader.
//
// A Fragment is one file's worth of a partial OpenAPI specification: a
// mapping of keyed entries belonging to exactly one category (schemas,
// paths, tags, ...) of one API version. The on-disk layout is
//
//	<spec-dir>/<version>/<category>/<name>.<ext>
//
// with one structured document per file, in YAML or JSON.
//
// Load reads the tree for one version into an ordered Set; LoadFullSpec
// reads a single merged document for the splitter and validator. Both are
// pure reads with no side effects.
package fragment
