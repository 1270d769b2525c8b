package catalog

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimDash = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts a display name into a URL-safe slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = slugTrimDash.ReplaceAllString(slug, "")
	if len(slug) > 120 {
		slug = strings.Trim(slug[:120], "-")
	}
	return slug
}
