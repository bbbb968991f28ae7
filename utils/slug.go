package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Slugify normalizes a shop name into a URL slug: lowercase, dashes for
// spaces, anything else dropped. Returns "" when nothing usable remains.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
