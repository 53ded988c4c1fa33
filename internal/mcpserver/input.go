package mcpserver

import (
	"fmt"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/nodeutil"
)

// defaultVersion is used when a tool input omits the version tag.
const defaultVersion = "v1"

// specInput identifies a full spec for the split and validate tools:
// either inline document content or a file path, never both.
type specInput struct {
	Content string `json:"content,omitempty" jsonschema:"Inline full-spec document (YAML or JSON)"`
	File    string `json:"file,omitempty"    jsonschema:"Path to a full-spec file"`
}

// resolve loads the full spec the input identifies.
func (s specInput) resolve(version string) (*fragment.FullSpec, error) {
	switch {
	case s.Content != "" && s.File != "":
		return nil, fmt.Errorf("provide content or file, not both")
	case s.Content != "":
		doc, err := nodeutil.ParseBytes([]byte(s.Content))
		if err != nil {
			return nil, fmt.Errorf("parsing spec content: %w", err)
		}
		return &fragment.FullSpec{Version: version, Doc: doc}, nil
	case s.File != "":
		return fragment.LoadFullSpec(s.File, version)
	default:
		return nil, fmt.Errorf("spec content or file is required")
	}
}

// versionOrDefault normalizes an optional version tag.
func versionOrDefault(version string) string {
	if version == "" {
		return defaultVersion
	}
	return version
}
