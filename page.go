package wikidump

import (
	"fmt"
	"strings"
)

// A Page is one article scraped from a dump.
type Page struct {
	// ID is the numeric article id from the dump.
	ID uint64
	// Title is the article title, verbatim from between the title
	// tags.
	Title string
	// Text is the raw article body, markup and all.
	Text string
	// StartOffset is the byte offset in the source stream of the
	// line carrying the <page> marker, usable for seeking back to
	// this page without rescanning the dump.
	StartOffset int64
}

// String formats the page as a banner-delimited block suitable for
// eyeballing dump output.
func (p *Page) String() string {
	rule := strings.Repeat("=", 79)
	return fmt.Sprintf("%s\n%d %s\n%s\n%s\n%s\n",
		rule, p.ID, p.Title, strings.Repeat("-", 79), p.Text, rule)
}
