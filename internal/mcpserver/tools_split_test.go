package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/internal/testutil"
)

const fullSpecContent = `openapi: 3.0.3
info:
  title: Pet API
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
  /toys:
    get:
      operationId: listToys
      tags: [pet toys]
      responses:
        "200":
          description: ok
components:
  schemas:
    Pet:
      type: object
`

func TestSplitTool_InlineContent(t *testing.T) {
	input := splitInput{Spec: specInput{Content: fullSpecContent}}
	result, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "v1", output.Version)
	assert.Equal(t, output.FragmentCount, output.Returned)

	paths := make(map[string]splitFragment, len(output.Fragments))
	for _, frag := range output.Fragments {
		paths[frag.Path] = frag
	}
	require.Contains(t, paths, "meta/header.yaml")
	require.Contains(t, paths, "paths/pets.yaml")
	require.Contains(t, paths, "paths/pet-toys.yaml")
	require.Contains(t, paths, "schemas/pets.yaml")
	assert.Equal(t, "schemas", paths["schemas/pets.yaml"].Category)
	assert.Equal(t, 1, paths["schemas/pets.yaml"].Entries)
	assert.Contains(t, paths["paths/pets.yaml"].Content, "../schemas/pets.yaml#/Pet")

	assert.Equal(t, "Pets", paths["paths/pets.yaml"].Group)
	assert.Equal(t, "Pet Toys", paths["paths/pet-toys.yaml"].Group)
}

func TestSplitTool_FromFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "full_spec.yaml", fullSpecContent)

	input := splitInput{Spec: specInput{File: path}, Version: "v2"}
	result, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "v2", output.Version)
}

func TestSplitTool_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		input splitInput
	}{
		{name: "no spec given", input: splitInput{}},
		{
			name: "both content and file",
			input: splitInput{
				Spec: specInput{Content: "openapi: 3.0.3\n", File: "x.yaml"},
			},
		},
		{
			name: "dangling reference",
			input: splitInput{
				Spec: specInput{Content: "openapi: 3.0.3\npaths:\n  /a:\n    get:\n      responses:\n        \"200\":\n          content:\n            application/json:\n              schema:\n                $ref: \"#/components/schemas/Missing\"\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
