package usecase

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	edgeHyphens     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives the URL-safe slug of a title: lowercase, special characters
// stripped, whitespace collapsed to single hyphens.
// "Code & Coffee!!" becomes "code-coffee".
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	slug = edgeHyphens.ReplaceAllString(slug, "")
	if slug == "" {
		slug = "event"
	}
	return slug
}
