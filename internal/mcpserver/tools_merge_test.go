package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/internal/testutil"
)

const mergeFixture = `
-- v1/meta/header.yaml --
openapi: 3.0.3
info:
  title: Pet API
  version: 1.0.0
-- v1/paths/pets.yaml --
/pets:
  get:
    operationId: listPets
    responses:
      "200":
        content:
          application/json:
            schema:
              $ref: "../schemas/pets.yaml#/Pet"
-- v1/schemas/pets.yaml --
Pet:
  type: object
`

func TestMergeTool(t *testing.T) {
	dir := testutil.ExtractTxtar(t, mergeFixture)

	input := mergeInput{SpecDir: dir}
	result, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "v1", output.Version)
	assert.Equal(t, 3, output.FragmentCount)
	assert.Equal(t, 4, output.EntryCount)
	assert.Equal(t, 1, output.Sections["schemas"])
	assert.Contains(t, output.Spec, "openapi: 3.0.3")
	assert.Contains(t, output.Spec, "$ref: '#/components/schemas/Pet'")
}

func TestMergeTool_CollisionSanitized(t *testing.T) {
	dir := testutil.ExtractTxtar(t, `
-- v1/schemas/a.yaml --
Foo:
  type: object
-- v1/schemas/b.yaml --
Foo:
  type: string
`)

	input := mergeInput{SpecDir: dir, Version: "v1"}
	result, _, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text := result.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, `"Foo"`)
	assert.NotContains(t, text, dir, "absolute paths are masked")
}

func TestMergeTool_MissingDir(t *testing.T) {
	input := mergeInput{SpecDir: t.TempDir() + "/missing"}
	result, _, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
