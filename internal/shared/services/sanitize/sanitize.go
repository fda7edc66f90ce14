// Package sanitize strips markup from user-submitted free text before it is
// stored. Ticket titles, descriptions and chat comments are rendered verbatim
// in client transcripts, so only plain text may survive.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	// Plain strips all HTML and trims surrounding whitespace.
	Plain(input string) string
}

type sanitizerImpl struct {
	policy *bluemonday.Policy
}

func NewSanitizer() Sanitizer {
	return &sanitizerImpl{
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *sanitizerImpl) Plain(input string) string {
	cleaned := s.policy.Sanitize(input)
	// bluemonday escapes entities it keeps; decode them back to text.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
