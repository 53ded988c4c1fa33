package mcpserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "absolute path is masked",
			err:  fmt.Errorf("reading full spec: open /home/alice/specs/full_spec.yaml: no such file"),
			want: "reading full spec: open <path>: no such file",
		},
		{
			name: "temp dir path is masked",
			err:  errors.New("loading /tmp/x123/spec/v1: not a directory"),
			want: "loading <path>: not a directory",
		},
		{
			name: "relative paths pass through",
			err:  errors.New("fragment schemas/user.yaml: duplicate key"),
			want: "fragment schemas/user.yaml: duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestCapItems(t *testing.T) {
	items := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, capItems(items, 2))
	assert.Equal(t, items, capItems(items, 10))
	assert.Equal(t, items, capItems(items, 0))
}
