package validator

import (
	"fmt"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/issues"
	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/resolver"
)

// Result contains the outcome of a validation run.
type Result struct {
	// Issues lists every violation found, in check order
	Issues []issues.Issue
	// ErrorCount is the number of error-severity issues
	ErrorCount int
	// WarningCount is the number of warning-severity issues
	WarningCount int
}

// Valid reports whether the document passed: no error-severity issues.
func (r *Result) Valid() bool {
	return r.ErrorCount == 0
}

var (
	openapiVersionRE = regexp.MustCompile(`^3(\.\d+){1,2}$`)
	componentKeyRE   = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// httpMethods are the operation keys of a path item.
var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

// pathItemFields are the non-operation keys a path item may carry.
var pathItemFields = map[string]bool{
	"$ref": true, "summary": true, "description": true,
	"servers": true, "parameters": true,
}

// Validate checks a full specification and reports every violation found.
//
// The checks are independent and all of them always run: reference
// resolution, required top-level sections, section structure, and
// operation-id uniqueness. The input document is never mutated. A non-nil
// error means the run itself could not proceed, not that the document is
// invalid; use Result.Valid for that.
func Validate(spec *fragment.FullSpec, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}
	if spec == nil || spec.Doc == nil {
		return nil, fmt.Errorf("validator: full spec is required")
	}

	v := &run{file: spec.SourcePath}
	doc := spec.Doc
	if !nodeutil.IsMapping(nodeutil.Resolve(doc)) {
		v.errorf(doc, "", "document root must be a mapping")
		return v.result(cfg, spec)
	}
	doc = nodeutil.Resolve(doc)

	v.checkReferences(doc)
	v.checkRequiredSections(doc)
	v.checkPaths(doc, "paths")
	v.checkPaths(doc, "webhooks")
	v.checkOperationIDs(doc)
	v.checkComponents(doc)
	v.checkTags(doc)

	if cfg.conformance {
		v.checkConformance(doc)
	}

	return v.result(cfg, spec)
}

// run accumulates issues for one validation pass.
type run struct {
	file   string
	issues []issues.Issue
}

func (v *run) add(severity issues.Severity, n *yaml.Node, jsonPath, format string, args ...any) {
	issue := issues.Issue{
		Path:     jsonPath,
		Message:  fmt.Sprintf(format, args...),
		Severity: severity,
		File:     v.file,
	}
	if n != nil {
		issue.Line = n.Line
		issue.Column = n.Column
	}
	v.issues = append(v.issues, issue)
}

func (v *run) errorf(n *yaml.Node, jsonPath, format string, args ...any) {
	v.add(issues.SeverityError, n, jsonPath, format, args...)
}

func (v *run) warnf(n *yaml.Node, jsonPath, format string, args ...any) {
	v.add(issues.SeverityWarning, n, jsonPath, format, args...)
}

func (v *run) result(cfg *validateConfig, spec *fragment.FullSpec) (*Result, error) {
	r := &Result{Issues: v.issues}
	for _, issue := range v.issues {
		switch issue.Severity {
		case issues.SeverityError:
			r.ErrorCount++
		case issues.SeverityWarning:
			r.WarningCount++
		}
	}
	cfg.logger.Info("validation complete",
		"version", spec.Version, "errors", r.ErrorCount, "warnings", r.WarningCount)
	return r, nil
}

// checkReferences reports every $ref that does not resolve in the document.
func (v *run) checkReferences(doc *yaml.Node) {
	for _, dangling := range resolver.CollectDangling(doc) {
		v.issues = append(v.issues, issues.Issue{
			Path:     dangling.Ref,
			Message:  "unresolvable $ref: " + dangling.Message,
			Severity: issues.SeverityError,
			Value:    dangling.Ref,
			Line:     dangling.Line,
			Column:   dangling.Column,
			File:     v.file,
		})
	}
}

// checkRequiredSections verifies openapi, info, and paths are present and
// well-formed.
func (v *run) checkRequiredSections(doc *yaml.Node) {
	openapi := nodeutil.Resolve(nodeutil.Get(doc, "openapi"))
	switch {
	case openapi == nil:
		v.errorf(doc, "openapi", "missing required field")
	case !nodeutil.IsScalar(openapi):
		v.errorf(openapi, "openapi", "must be a version string")
	case !openapiVersionRE.MatchString(openapi.Value):
		v.errorf(openapi, "openapi", "unsupported version %q, want 3.x", openapi.Value)
	}

	info := nodeutil.Resolve(nodeutil.Get(doc, "info"))
	switch {
	case info == nil:
		v.errorf(doc, "info", "missing required field")
	case !nodeutil.IsMapping(info):
		v.errorf(info, "info", "must be a mapping")
	default:
		for _, field := range []string{"title", "version"} {
			value := nodeutil.Resolve(nodeutil.Get(info, field))
			if value == nil || !nodeutil.IsScalar(value) || value.Value == "" {
				v.errorf(info, "info."+field, "missing required field")
			}
		}
	}

	if paths := nodeutil.Resolve(nodeutil.Get(doc, "paths")); paths == nil {
		v.errorf(doc, "paths", "missing required field")
	} else if !nodeutil.IsMapping(paths) {
		v.errorf(paths, "paths", "must be a mapping")
	}
}

// checkPaths verifies the shape of the paths or webhooks section: key form,
// path item keys, and operation nodes.
func (v *run) checkPaths(doc *yaml.Node, section string) {
	sec := nodeutil.Resolve(nodeutil.Get(doc, section))
	if sec == nil || !nodeutil.IsMapping(sec) {
		return
	}
	for _, e := range nodeutil.Entries(sec) {
		jsonPath := section + "." + e.Key.Value
		if section == "paths" && !strings.HasPrefix(e.Key.Value, "/") {
			v.errorf(e.Key, jsonPath, "path must start with '/'")
		}
		item := nodeutil.Resolve(e.Value)
		if !nodeutil.IsMapping(item) {
			v.errorf(e.Key, jsonPath, "path item must be a mapping")
			continue
		}
		for _, field := range nodeutil.Entries(item) {
			key := field.Key.Value
			switch {
			case httpMethods[key]:
				if !nodeutil.IsMapping(nodeutil.Resolve(field.Value)) {
					v.errorf(field.Key, jsonPath+"."+key, "operation must be a mapping")
				}
			case pathItemFields[key] || strings.HasPrefix(key, "x-"):
				// Allowed path item field or extension.
			default:
				v.warnf(field.Key, jsonPath+"."+key, "unknown path item field %q", key)
			}
		}
	}
}

// checkOperationIDs reports operationId values used more than once across
// paths and webhooks.
func (v *run) checkOperationIDs(doc *yaml.Node) {
	firstSeen := make(map[string]string)
	for _, section := range []string{"paths", "webhooks"} {
		sec := nodeutil.Resolve(nodeutil.Get(doc, section))
		for _, e := range nodeutil.Entries(sec) {
			item := nodeutil.Resolve(e.Value)
			for _, field := range nodeutil.Entries(item) {
				if !httpMethods[field.Key.Value] {
					continue
				}
				op := nodeutil.Resolve(field.Value)
				id := nodeutil.Resolve(nodeutil.Get(op, "operationId"))
				if id == nil || !nodeutil.IsScalar(id) || id.Value == "" {
					continue
				}
				jsonPath := section + "." + e.Key.Value + "." + field.Key.Value
				if prev, dup := firstSeen[id.Value]; dup {
					v.errorf(id, jsonPath, "duplicate operationId %q, first used at %s", id.Value, prev)
					continue
				}
				firstSeen[id.Value] = jsonPath
			}
		}
	}
}

// checkComponents verifies subsection shape and component key charset.
func (v *run) checkComponents(doc *yaml.Node) {
	components := nodeutil.Resolve(nodeutil.Get(doc, "components"))
	if components == nil {
		return
	}
	if !nodeutil.IsMapping(components) {
		v.errorf(components, "components", "must be a mapping")
		return
	}
	for _, sub := range nodeutil.Entries(components) {
		jsonPath := "components." + sub.Key.Value
		section := nodeutil.Resolve(sub.Value)
		if !nodeutil.IsMapping(section) {
			v.errorf(sub.Key, jsonPath, "must be a mapping")
			continue
		}
		for _, e := range nodeutil.Entries(section) {
			if !componentKeyRE.MatchString(e.Key.Value) {
				v.errorf(e.Key, jsonPath+"."+e.Key.Value,
					"component key %q must match %s", e.Key.Value, componentKeyRE)
			}
		}
	}
}

// checkTags verifies the tags section is a sequence of named objects with
// unique names.
func (v *run) checkTags(doc *yaml.Node) {
	tags := nodeutil.Resolve(nodeutil.Get(doc, "tags"))
	if tags == nil {
		return
	}
	if !nodeutil.IsSequence(tags) {
		v.errorf(tags, "tags", "must be a sequence")
		return
	}
	seen := make(map[string]bool)
	for i, item := range tags.Content {
		jsonPath := fmt.Sprintf("tags[%d]", i)
		tag := nodeutil.Resolve(item)
		if !nodeutil.IsMapping(tag) {
			v.errorf(item, jsonPath, "tag must be a mapping")
			continue
		}
		name := nodeutil.Resolve(nodeutil.Get(tag, "name"))
		if name == nil || !nodeutil.IsScalar(name) || name.Value == "" {
			v.errorf(item, jsonPath, "tag must have a name")
			continue
		}
		if seen[name.Value] {
			v.warnf(name, jsonPath, "duplicate tag name %q", name.Value)
		}
		seen[name.Value] = true
	}
}
