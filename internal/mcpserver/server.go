// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes specweld capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/specweld/specweld"
)

const serverInstructions = `specweld MCP server — merges OpenAPI spec fragments into full specs, splits full specs back into fragment trees, and validates full specs.

Configuration: All defaults are configurable via SPECWELD_MCP_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SPECWELD_MCP_ISSUE_LIMIT (default: 100) — maximum issues returned by validate
- SPECWELD_MCP_FRAGMENT_LIMIT (default: 100) — maximum fragments returned by split
- SPECWELD_MCP_CONFORMANCE (default: false) — run the deep OpenAPI 3 conformance pass in validate by default

Fragment layout: <spec_dir>/<version>/<category>/<name>.yaml where category is one of meta, paths, webhooks, tags, schemas, parameters, responses, requestBodies, headers, examples, links, callbacks, securitySchemes.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specweld", Version: specweld.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge the fragment tree of one API version into a full OpenAPI specification. Requires spec_dir pointing at the fragment tree root. Returns the merged document plus per-section entry counts. Fails with structured detail on duplicate keys or unresolvable $refs.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split a full OpenAPI specification into a fragment tree plan. Provide the spec as inline content or a file path. Path entries are grouped by operation tag (fallback: first static path segment, then the default group); components follow the path groups that reference them. Returns the planned fragments with their content. Result size is capped by SPECWELD_MCP_FRAGMENT_LIMIT.",
	}, handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a full OpenAPI specification: $ref resolution, duplicate operationIds, required sections, and section structure. Provide the spec as inline content or a file path. Set conformance=true for the deeper kin-openapi pass. Returns issues with severity and location, capped by SPECWELD_MCP_ISSUE_LIMIT.",
	}, handleValidate)
}

// capItems truncates a slice to the configured result limit.
func capItems[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
