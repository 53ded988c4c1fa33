// Package splitter decomposes a full OpenAPI specification into the
// fragment tree layout consumed by the loader and merger.
//
// Path and webhook entries are grouped by operation tag, falling back to
// the first static path segment and finally a configurable default group.
// Components follow the path groups that reference them; a component shared
// between groups (or referenced by none) lands in its category's shared
// fragment. Document-absolute references are rewritten into fragment-tree
// form before writing, so a split tree merges back into the same document.
package splitter
