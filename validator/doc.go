// Package validator checks a full OpenAPI specification for structural
// problems: unresolvable references, duplicate operation ids, missing
// required sections, and malformed section shapes.
//
// All checks always run; the result carries every violation found rather
// than stopping at the first. An optional conformance pass round-trips the
// document through github.com/getkin/kin-openapi for deeper OpenAPI 3
// validation.
package validator
