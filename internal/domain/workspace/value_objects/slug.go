package value_objects

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug is a workspace's URL-safe identifier. It is unique, lowercase and
// hyphenated.
type Slug string

var slugPattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// NewSlug normalizes raw input into a valid slug: diacritics stripped,
// lowercased, whitespace runs collapsed to single hyphens.
func NewSlug(raw string) (Slug, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("slug is required")
	}

	s = stripDiacritics(s)
	s = strings.ToLower(s)
	s = whitespaceRuns.ReplaceAllString(s, "-")

	if !slugPattern.MatchString(s) {
		return "", fmt.Errorf("invalid slug %q: only lowercase letters, digits, hyphens and underscores are allowed", s)
	}

	return Slug(s), nil
}

func (s Slug) String() string {
	return string(s)
}

func (s Slug) IsValid() bool {
	return slugPattern.MatchString(string(s))
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
