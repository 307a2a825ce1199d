package service

import (
	"regexp"
	"strings"
)

const (
	maxTextLength  = 2000
	maxEmailLength = 254
)

// emailPattern accepts local@domain.tld shapes: no whitespace or extra @ on
// either side, and at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// htmlEscaper escapes the five markup-significant characters. Values pass
// through it exactly once, before they are persisted or interpolated into an
// email body.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// sanitizeText escapes, trims and caps a free-text field. Escaping happens
// before the cut, so truncation cannot separate a source character from its
// entity.
func sanitizeText(s string) string {
	s = htmlEscaper.Replace(s)
	s = strings.TrimSpace(s)
	return truncateRunes(s, maxTextLength)
}

// sanitizeEmail lower-cases, trims and caps an address. No HTML escaping:
// escape entities would corrupt the address, and mailto links need the
// literal value. The pattern check gates what gets this far.
func sanitizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return truncateRunes(s, maxEmailLength)
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
