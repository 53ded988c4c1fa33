package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/specweld/specweld/validator"
)

type validateInput struct {
	Spec        specInput `json:"spec"                  jsonschema:"The full spec to validate"`
	Version     string    `json:"version,omitempty"     jsonschema:"API version tag (default v1)"`
	Conformance *bool     `json:"conformance,omitempty" jsonschema:"Also run the deep OpenAPI 3 conformance pass"`
}

type validateIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Returned     int             `json:"returned"`
	Issues       []validateIssue `json:"issues,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	conformance := cfg.Conformance
	if input.Conformance != nil {
		conformance = *input.Conformance
	}

	spec, err := input.Spec.resolve(versionOrDefault(input.Version))
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.Validate(spec, validator.WithConformance(conformance))
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	reported := capItems(result.Issues, cfg.IssueLimit)
	output := validateOutput{
		Valid:        result.Valid(),
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Returned:     len(reported),
		Issues:       makeSlice[validateIssue](len(reported)),
	}
	for _, issue := range reported {
		output.Issues = append(output.Issues, validateIssue{
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
			Line:     issue.Line,
			Column:   issue.Column,
		})
	}
	return nil, output, nil
}
