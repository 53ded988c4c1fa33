package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGroupName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already kebab", input: "pet-store", expected: "pet-store"},
		{name: "spaces", input: "Pet Store", expected: "pet-store"},
		{name: "camel case", input: "userAccounts", expected: "user-accounts"},
		{name: "pascal case", input: "UserAccounts", expected: "user-accounts"},
		{name: "underscores", input: "user_accounts", expected: "user-accounts"},
		{name: "acronym run", input: "OAuthTokens", expected: "oauth-tokens"},
		{name: "punctuation collapse", input: "pets & toys!!", expected: "pets-toys"},
		{name: "leading and trailing junk", input: "--pets--", expected: "pets"},
		{name: "digits", input: "v2 widgets", expected: "v2-widgets"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToGroupName(tt.input))
		})
	}
}

func TestToDisplayName(t *testing.T) {
	assert.Equal(t, "Pet Store", ToDisplayName("pet-store"))
	assert.Equal(t, "Misc", ToDisplayName("misc"))
	assert.Equal(t, "", ToDisplayName(""))
}
