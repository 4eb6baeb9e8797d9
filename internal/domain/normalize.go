package domain

import (
	"strings"
)

// NormalizeText prepares sentence text for deduplication:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of whitespace (spaces, tabs, newlines) into one space
//
// Diacritics, punctuation and non-Latin scripts are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(CollapseSpace(text))
}

// CollapseSpace trims text and replaces every run of Unicode whitespace,
// including NBSP, with a single ASCII space. Target sentences are stored in
// this form so that the whitespace tokens rejoin to exactly the target.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
