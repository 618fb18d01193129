package normalize

import (
	"strings"

	"github.com/editorial-pipelines/canonform/value"
)

// Canonical author fields. Everything else moves to platform_specific.
var authorCanonical = map[string]bool{
	"name":             true,
	"email":            true,
	"institution":      true,
	"is_corresponding": true,
}

// Author normalizes a single author entity in place and returns it.
// is_corresponding is always a boolean afterwards, never null.
func Author(author map[string]any) map[string]any {
	if author == nil {
		return nil
	}

	author["is_corresponding"] = isCorresponding(author)
	CollectExtras(author, authorCanonical)
	return author
}

// isCorresponding derives the corresponding-author flag. Signals in
// priority order: the explicit flag, the legacy "corresponding" flag, a
// free-text role mentioning "corresponding author". Default false.
func isCorresponding(author map[string]any) bool {
	if v, ok := author["is_corresponding"]; ok && v != nil {
		return value.Bool(v)
	}
	if v, ok := author["corresponding"]; ok && v != nil {
		return value.Bool(v)
	}
	role := strings.ToLower(value.Text(author["role"]))
	return strings.Contains(role, "corresponding author")
}
