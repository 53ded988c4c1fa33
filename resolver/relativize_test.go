package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/internal/nodeutil"
	"github.com/specweld/specweld/specerrors"
)

func TestEntryPointer(t *testing.T) {
	assert.Equal(t, "/components/schemas/User", EntryPointer([]string{"components", "schemas"}, "User"))
	assert.Equal(t, "/paths/~1pets~1{id}", EntryPointer([]string{"paths"}, "/pets/{id}"))
}

func TestRelativizeFragment(t *testing.T) {
	assign := Assignment{
		"/paths/~1pets":              "paths/pets.yaml",
		"/components/schemas/Pet":    "schemas/pets.yaml",
		"/components/schemas/Owner":  "schemas/pets.yaml",
		"/components/schemas/Common": "schemas/shared.yaml",
	}

	tests := []struct {
		name     string
		own      string
		src      string
		expected string
	}{
		{
			name:     "same fragment becomes in-file",
			own:      "schemas/pets.yaml",
			src:      "Pet:\n  properties:\n    owner:\n      $ref: \"#/components/schemas/Owner\"\n",
			expected: "#/Owner",
		},
		{
			name:     "same directory sibling",
			own:      "schemas/pets.yaml",
			src:      "Pet:\n  allOf:\n    - $ref: \"#/components/schemas/Common\"\n",
			expected: "shared.yaml#/Common",
		},
		{
			name:     "other directory",
			own:      "paths/pets.yaml",
			src:      "/pets:\n  get:\n    responses:\n      \"200\":\n        content:\n          application/json:\n            schema:\n              $ref: \"#/components/schemas/Pet\"\n",
			expected: "../schemas/pets.yaml#/Pet",
		},
		{
			name:     "nested pointer keeps its tail",
			own:      "paths/pets.yaml",
			src:      "/pets:\n  get:\n    x-example:\n      $ref: \"#/components/schemas/Pet/properties/id\"\n",
			expected: "../schemas/pets.yaml#/Pet/properties/id",
		},
		{
			name:     "already relativized is untouched",
			own:      "schemas/pets.yaml",
			src:      "Pet:\n  properties:\n    owner:\n      $ref: \"#/Owner\"\n",
			expected: "#/Owner",
		},
		{
			name:     "file ref is untouched",
			own:      "schemas/pets.yaml",
			src:      "Pet:\n  allOf:\n    - $ref: \"shared.yaml#/Common\"\n",
			expected: "shared.yaml#/Common",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := nodeutil.ParseBytes([]byte(tt.src))
			require.NoError(t, err)

			require.NoError(t, RelativizeFragment(doc, tt.own, assign))
			assert.Equal(t, tt.expected, findRef(t, doc))
		})
	}
}

func TestRelativizeFragment_Idempotent(t *testing.T) {
	assign := Assignment{
		"/components/schemas/Pet":    "schemas/pets.yaml",
		"/components/schemas/Common": "schemas/shared.yaml",
	}
	doc, err := nodeutil.ParseBytes([]byte(`
Pet:
  properties:
    common:
      $ref: "#/components/schemas/Common"
`))
	require.NoError(t, err)

	require.NoError(t, RelativizeFragment(doc, "schemas/pets.yaml", assign))
	first := nodeutil.Clone(doc)
	require.NoError(t, RelativizeFragment(doc, "schemas/pets.yaml", assign))

	assert.True(t, nodeutil.Equal(first, doc), "second relativize pass must not change anything")
}

func TestRelativizeFragment_UnassignedTarget(t *testing.T) {
	doc, err := nodeutil.ParseBytes([]byte(`
Pet:
  properties:
    ghost:
      $ref: "#/components/schemas/Ghost"
`))
	require.NoError(t, err)

	err = RelativizeFragment(doc, "schemas/pets.yaml", Assignment{})
	require.Error(t, err)

	var dangling *specerrors.DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "#/components/schemas/Ghost", dangling.Ref)
	assert.Equal(t, "schemas/pets.yaml", dangling.File)
}

func TestRelativizeFragment_BareSectionRef(t *testing.T) {
	doc, err := nodeutil.ParseBytes([]byte(`
Pet:
  x-all:
    $ref: "#/components/schemas"
`))
	require.NoError(t, err)

	err = RelativizeFragment(doc, "schemas/pets.yaml", Assignment{})
	assert.ErrorIs(t, err, specerrors.ErrDanglingReference)
}

func TestRelativeFilePath(t *testing.T) {
	tests := []struct {
		fromDir  string
		target   string
		expected string
	}{
		{"schemas", "schemas/shared.yaml", "shared.yaml"},
		{"paths", "schemas/pets.yaml", "../schemas/pets.yaml"},
		{".", "schemas/pets.yaml", "schemas/pets.yaml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, relativeFilePath(tt.fromDir, tt.target), "%s -> %s", tt.fromDir, tt.target)
	}
}
