package fragment

import "strings"

// Category identifies which full-spec section a fragment contributes to.
// The category is derived from the fragment's parent directory name.
type Category string

const (
	// CategoryMeta fragments contribute document top-level metadata
	// (openapi, info, servers, security, externalDocs, extensions).
	CategoryMeta Category = "meta"
	// CategoryPaths fragments contribute entries to the paths section.
	CategoryPaths Category = "paths"
	// CategoryWebhooks fragments contribute entries to the webhooks section.
	CategoryWebhooks Category = "webhooks"
	// CategoryTags fragments hold a mapping of tag name to tag object
	// (sans name); the merger emits them as the tags sequence.
	CategoryTags Category = "tags"
	// CategorySchemas fragments contribute to components.schemas.
	CategorySchemas Category = "schemas"
	// CategoryParameters fragments contribute to components.parameters.
	CategoryParameters Category = "parameters"
	// CategoryResponses fragments contribute to components.responses.
	CategoryResponses Category = "responses"
	// CategoryRequestBodies fragments contribute to components.requestBodies.
	CategoryRequestBodies Category = "requestBodies"
	// CategoryHeaders fragments contribute to components.headers.
	CategoryHeaders Category = "headers"
	// CategoryExamples fragments contribute to components.examples.
	CategoryExamples Category = "examples"
	// CategoryLinks fragments contribute to components.links.
	CategoryLinks Category = "links"
	// CategoryCallbacks fragments contribute to components.callbacks.
	CategoryCallbacks Category = "callbacks"
	// CategorySecuritySchemes fragments contribute to components.securitySchemes.
	CategorySecuritySchemes Category = "securitySchemes"
)

// categories lists all categories in canonical order. The order matches the
// section order of the assembled full spec.
var categories = []Category{
	CategoryMeta,
	CategoryTags,
	CategoryPaths,
	CategoryWebhooks,
	CategorySchemas,
	CategoryResponses,
	CategoryParameters,
	CategoryExamples,
	CategoryRequestBodies,
	CategoryHeaders,
	CategorySecuritySchemes,
	CategoryLinks,
	CategoryCallbacks,
}

// Categories returns all known categories in canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps a directory name to its Category.
// Returns false for unknown directory names.
func ParseCategory(dir string) (Category, bool) {
	for _, c := range categories {
		if string(c) == dir {
			return c, true
		}
	}
	return "", false
}

// SectionPath returns the key path of the full-spec section this category
// contributes to, e.g. ["components", "schemas"] or ["paths"].
// CategoryMeta returns nil: its entries live at the document top level.
func (c Category) SectionPath() []string {
	switch c {
	case CategoryMeta:
		return nil
	case CategoryPaths, CategoryWebhooks, CategoryTags:
		return []string{string(c)}
	default:
		return []string{"components", string(c)}
	}
}

// Section returns the dotted section name used in error reporting, e.g.
// "components.schemas" or "paths". CategoryMeta returns "" (top level).
func (c Category) Section() string {
	return strings.Join(c.SectionPath(), ".")
}

// CategoryForSection returns the category owning the given section key path.
// It is the inverse of SectionPath for non-meta categories.
func CategoryForSection(path ...string) (Category, bool) {
	switch len(path) {
	case 1:
		switch path[0] {
		case "paths":
			return CategoryPaths, true
		case "webhooks":
			return CategoryWebhooks, true
		case "tags":
			return CategoryTags, true
		}
	case 2:
		if path[0] == "components" {
			if c, ok := ParseCategory(path[1]); ok && len(c.SectionPath()) == 2 {
				return c, true
			}
		}
	}
	return "", false
}
