package mcpserver

import (
	"context"
	"path"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/specweld/specweld/internal/naming"
	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/splitter"
)

type splitInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The full spec to split"`
	Version      string    `json:"version,omitempty"       jsonschema:"API version tag (default v1)"`
	DefaultGroup string    `json:"default_group,omitempty" jsonschema:"Group name for entries no convention claims (default misc)"`
}

type splitFragment struct {
	Path     string `json:"path"`
	Category string `json:"category"`
	Group    string `json:"group"`
	Entries  int    `json:"entries"`
	Content  string `json:"content"`
}

// groupLabel derives the human-readable group label from a fragment's file
// stem, e.g. "paths/pet-store.yaml" -> "Pet Store".
func groupLabel(relPath string) string {
	base := path.Base(relPath)
	return naming.ToDisplayName(strings.TrimSuffix(base, path.Ext(base)))
}

type splitOutput struct {
	Version       string          `json:"version"`
	FragmentCount int             `json:"fragment_count"`
	Returned      int             `json:"returned"`
	Fragments     []splitFragment `json:"fragments,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	version := versionOrDefault(input.Version)

	spec, err := input.Spec.resolve(version)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	var opts []splitter.Option
	if input.DefaultGroup != "" {
		opts = append(opts, splitter.WithDefaultGroup(input.DefaultGroup))
	}
	result, err := splitter.Split(spec, opts...)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	frags := capItems(result.Set.Fragments(), cfg.FragmentLimit)
	output := splitOutput{
		Version:       version,
		FragmentCount: result.Set.Len(),
		Returned:      len(frags),
		Fragments:     makeSlice[splitFragment](len(frags)),
		Warnings:      result.Warnings,
	}
	for _, frag := range frags {
		data, err := nodeutil.EncodeYAML(frag.Doc)
		if err != nil {
			return errResult(err), splitOutput{}, nil
		}
		output.Fragments = append(output.Fragments, splitFragment{
			Path:     frag.RelPath,
			Category: string(frag.Category),
			Group:    groupLabel(frag.RelPath),
			Entries:  len(nodeutil.Entries(frag.Doc)),
			Content:  string(data),
		})
	}
	return nil, output, nil
}
