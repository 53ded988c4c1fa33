// Package naming provides group-name normalization for the splitter.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser performs proper Unicode title casing (strings.Title is deprecated).
var titleCaser = cases.Title(language.English, cases.NoLower)

// ToGroupName normalizes an arbitrary tag or path segment into a kebab-case
// fragment file stem. Letters are lowercased, runs of non-alphanumeric
// characters collapse to a single hyphen, and leading/trailing hyphens are
// trimmed.
// Example: "Pet Store" -> "pet-store"
// Example: "userAccounts" -> "user-accounts"
func ToGroupName(s string) string {
	var result strings.Builder
	prevLower := false
	prevHyphen := true // suppress a leading hyphen

	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prevLower && !prevHyphen {
				result.WriteRune('-')
			}
			result.WriteRune(unicode.ToLower(r))
			prevLower = false
			prevHyphen = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevLower = unicode.IsLower(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				result.WriteRune('-')
				prevHyphen = true
			}
			prevLower = false
		}
	}

	return strings.TrimRight(result.String(), "-")
}

// ToDisplayName converts a kebab-case group name into a human-readable
// title-cased label for logs and summaries.
// Example: "pet-store" -> "Pet Store"
func ToDisplayName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "-", " "))
}
