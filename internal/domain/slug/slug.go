// Package slug derives URL-safe identifiers from product names.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// Derive lowercases name, joins whitespace runs with a single hyphen and strips
// every remaining character outside [a-z0-9-]. Collisions are not resolved.
func Derive(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespace.ReplaceAllString(s, "-")

	return disallowed.ReplaceAllString(s, "")
}
