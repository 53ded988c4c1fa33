package jsonpointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/internal/nodeutil"
)

func TestEscapeUnescape(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		escaped string
	}{
		{name: "plain", raw: "User", escaped: "User"},
		{name: "slash", raw: "/pets/{id}", escaped: "~1pets~1{id}"},
		{name: "tilde", raw: "a~b", escaped: "a~0b"},
		{name: "both", raw: "~/", escaped: "~0~1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.escaped, Escape(tt.raw))
			assert.Equal(t, tt.raw, Unescape(tt.escaped))
		})
	}
}

func TestSplitJoin(t *testing.T) {
	tokens, err := Split("/paths/~1pets~1{id}/get")
	require.NoError(t, err)
	assert.Equal(t, []string{"paths", "/pets/{id}", "get"}, tokens)

	assert.Equal(t, "/paths/~1pets~1{id}/get", Join(tokens))

	tokens, err = Split("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
	assert.Equal(t, "", Join(nil))

	_, err = Split("paths/get")
	assert.Error(t, err, "pointer must start with '/'")
}

func TestEval(t *testing.T) {
	root, err := nodeutil.ParseBytes([]byte(`
components:
  schemas:
    User:
      type: object
paths:
  /pets/{id}:
    get:
      operationId: getPet
servers:
  - url: https://api.example.com
`))
	require.NoError(t, err)

	tests := []struct {
		name    string
		pointer string
		found   bool
		value   string
	}{
		{name: "schema", pointer: "/components/schemas/User", found: true},
		{name: "escaped path key", pointer: "/paths/~1pets~1{id}/get/operationId", found: true, value: "getPet"},
		{name: "sequence index", pointer: "/servers/0/url", found: true, value: "https://api.example.com"},
		{name: "missing key", pointer: "/components/schemas/Missing", found: false},
		{name: "index out of range", pointer: "/servers/3", found: false},
		{name: "non-numeric index", pointer: "/servers/first", found: false},
		{name: "descend into scalar", pointer: "/paths/~1pets~1{id}/get/operationId/deeper", found: false},
		{name: "whole document", pointer: "", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Eval(root, tt.pointer)
			if !tt.found {
				assert.Nil(t, node)
				return
			}
			require.NotNil(t, node)
			if tt.value != "" {
				assert.Equal(t, tt.value, node.Value)
			}
		})
	}
}
