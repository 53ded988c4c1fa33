package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/issues"
	"github.com/specweld/specweld/internal/nodeutil"
)

const validSpec = `
openapi: 3.0.3
info:
  title: Pet API
  version: 1.0.0
tags:
  - name: pets
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
`

func parseSpec(t *testing.T, src string) *fragment.FullSpec {
	t.Helper()
	doc, err := nodeutil.ParseBytes([]byte(src))
	require.NoError(t, err)
	return &fragment.FullSpec{Version: "v1", Doc: doc}
}

func errorPaths(result *Result) []string {
	var out []string
	for _, issue := range result.Issues {
		if issue.Severity == issues.SeverityError {
			out = append(out, issue.Path)
		}
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	result, err := Validate(parseSpec(t, validSpec))
	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Empty(t, result.Issues)
}

func TestValidate_Checks(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantPath string
		wantMsg  string
	}{
		{
			name:     "missing openapi field",
			src:      "info: {title: T, version: '1'}\npaths: {}\n",
			wantPath: "openapi",
			wantMsg:  "missing required field",
		},
		{
			name:     "wrong openapi version",
			src:      "openapi: 2.0.0\ninfo: {title: T, version: '1'}\npaths: {}\n",
			wantPath: "openapi",
			wantMsg:  "unsupported version",
		},
		{
			name:     "missing info title",
			src:      "openapi: 3.0.3\ninfo: {version: '1'}\npaths: {}\n",
			wantPath: "info.title",
			wantMsg:  "missing required field",
		},
		{
			name:     "missing paths section",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\n",
			wantPath: "paths",
			wantMsg:  "missing required field",
		},
		{
			name:     "path without leading slash",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\npaths:\n  pets:\n    get:\n      responses: {}\n",
			wantPath: "paths.pets",
			wantMsg:  "path must start with '/'",
		},
		{
			name:     "operation is not a mapping",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\npaths:\n  /pets:\n    get: yes\n",
			wantPath: "paths./pets.get",
			wantMsg:  "operation must be a mapping",
		},
		{
			name:     "dangling reference",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\npaths:\n  /pets:\n    get:\n      responses:\n        \"200\":\n          content:\n            application/json:\n              schema:\n                $ref: \"#/components/schemas/Missing\"\n",
			wantPath: "#/components/schemas/Missing",
			wantMsg:  "unresolvable $ref",
		},
		{
			name:     "bad component key",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\npaths: {}\ncomponents:\n  schemas:\n    \"pet name\":\n      type: object\n",
			wantPath: "components.schemas.pet name",
			wantMsg:  "component key",
		},
		{
			name:     "tags is not a sequence",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\npaths: {}\ntags:\n  pets: {}\n",
			wantPath: "tags",
			wantMsg:  "must be a sequence",
		},
		{
			name:     "tag without name",
			src:      "openapi: 3.0.3\ninfo: {title: T, version: '1'}\npaths: {}\ntags:\n  - description: nameless\n",
			wantPath: "tags[0]",
			wantMsg:  "tag must have a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(parseSpec(t, tt.src))
			require.NoError(t, err)
			require.False(t, result.Valid())

			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					assert.Contains(t, issue.Message, tt.wantMsg)
					found = true
				}
			}
			assert.True(t, found, "no issue at %q in %v", tt.wantPath, result.Issues)
		})
	}
}

func TestValidate_DuplicateOperationID(t *testing.T) {
	result, err := Validate(parseSpec(t, `
openapi: 3.0.3
info: {title: T, version: "1"}
paths:
  /pets:
    get:
      operationId: list
      responses: {}
  /stores:
    get:
      operationId: list
      responses: {}
`))
	require.NoError(t, err)

	require.Equal(t, []string{"paths./stores.get"}, errorPaths(result))
	assert.Contains(t, result.Issues[0].Message, `duplicate operationId "list"`)
	assert.Contains(t, result.Issues[0].Message, "paths./pets.get")
}

func TestValidate_IndependentDefects(t *testing.T) {
	// Three unrelated defects produce exactly three error issues; no check
	// short-circuits another.
	result, err := Validate(parseSpec(t, `
openapi: 2.0.0
info: {version: "1"}
paths:
  /pets:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Missing"
`))
	require.NoError(t, err)

	assert.Equal(t, 3, result.ErrorCount)
	assert.ElementsMatch(t, []string{
		"#/components/schemas/Missing",
		"openapi",
		"info.title",
	}, errorPaths(result))
}

func TestValidate_Warnings(t *testing.T) {
	result, err := Validate(parseSpec(t, `
openapi: 3.0.3
info: {title: T, version: "1"}
paths:
  /pets:
    fetch:
      responses: {}
tags:
  - name: pets
  - name: pets
`))
	require.NoError(t, err)

	assert.True(t, result.Valid(), "warnings do not invalidate the document")
	assert.Equal(t, 2, result.WarningCount)
}

func TestValidate_Conformance(t *testing.T) {
	result, err := Validate(parseSpec(t, validSpec), WithConformance(true))
	require.NoError(t, err)
	assert.True(t, result.Valid(), "issues: %v", result.Issues)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	spec := parseSpec(t, validSpec)
	snapshot := nodeutil.Clone(spec.Doc)

	_, err := Validate(spec, WithConformance(true))
	require.NoError(t, err)

	assert.True(t, nodeutil.Equal(snapshot, spec.Doc))
}
