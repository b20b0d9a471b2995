package wikidump

import (
	"strings"
	"unicode/utf8"
)

// Deny lists for non-article pages, all compared case-insensitively.
// The numeric literal and the doubled "HELP:" are carried over
// verbatim from a hand-maintained list; they are data corrections for
// specific dumps, not general rules.
var (
	titlePrefixes = []string{
		"USER:", "WIKIPEDIA:", "FILE:", "MEDIAWIKI:", "TEMPLATE:",
		"HELP:", "CATEGORY:", "PORTAL:", "BOOK:", "28644448", "HELP:",
	}
	titleSuffixes = []string{"(DISAMBIGUATION)"}
	textPrefixes  = []string{"#REDIRECT", "{{SOFTREDIRECT"}
	textTailTerms = []string{"{{DISAMB", "{{DAB", "STUB}}"}
)

// tailWindow bounds how far back from the end of an article the stub
// markers are searched, in characters. Changing it changes which
// pages are kept.
const tailWindow = 8000

// Config controls which pages an extractor keeps.
type Config struct {
	// PageLengthLimit rejects any page whose raw text is this many
	// characters or fewer. Zero still rejects empty pages.
	PageLengthLimit int
}

// tailStart returns the byte index where the last n characters of s
// begin.
func tailStart(s string, n int) int {
	i := len(s)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return i
}

// BadPage reports whether a page should be dropped as non-article
// content: deny-listed title namespaces, disambiguation pages,
// redirects, and bodies at or under the length limit.
func (c Config) BadPage(title, text string) bool {
	for _, term := range titlePrefixes {
		if len(title) >= len(term) &&
			strings.EqualFold(title[:len(term)], term) {
			return true
		}
	}
	for _, term := range titleSuffixes {
		if len(title) >= len(term) &&
			strings.EqualFold(title[len(title)-len(term):], term) {
			return true
		}
	}
	if utf8.RuneCountInString(text) <= c.PageLengthLimit {
		return true
	}
	for _, term := range textPrefixes {
		if len(text) >= len(term) &&
			strings.EqualFold(text[:len(term)], term) {
			return true
		}
	}
	tail := strings.ToUpper(text[tailStart(text, tailWindow):])
	for _, term := range textTailTerms {
		if strings.Contains(tail, term) {
			return true
		}
	}
	return false
}
