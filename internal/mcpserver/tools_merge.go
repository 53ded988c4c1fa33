package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/merger"
)

type mergeInput struct {
	SpecDir string `json:"spec_dir"          jsonschema:"Fragment tree root containing <version>/<category> directories"`
	Version string `json:"version,omitempty" jsonschema:"API version tag (default v1)"`
}

type mergeOutput struct {
	Version       string         `json:"version"`
	FragmentCount int            `json:"fragment_count"`
	EntryCount    int            `json:"entry_count"`
	Sections      map[string]int `json:"sections,omitempty"`
	Spec          string         `json:"spec"`
	Warnings      []string       `json:"warnings,omitempty"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	version := versionOrDefault(input.Version)

	set, err := fragment.Load(input.SpecDir, version)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}
	result, err := merger.Merge(set)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}
	data, err := merger.EncodeResult(result, fragment.FormatYAML)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	sections := make(map[string]int, len(result.Stats.SectionEntries))
	for category, count := range result.Stats.SectionEntries {
		sections[string(category)] = count
	}

	return nil, mergeOutput{
		Version:       version,
		FragmentCount: result.Stats.FragmentCount,
		EntryCount:    result.Stats.EntryCount,
		Sections:      sections,
		Spec:          string(data),
		Warnings:      result.Warnings,
	}, nil
}
