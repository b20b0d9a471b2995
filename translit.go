package wikidump

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Transliterate folds text down to plain ASCII (diacritics dropped,
// other scripts romanized) and trims surrounding whitespace.
func Transliterate(s string) string {
	return strings.TrimSpace(unidecode.Unidecode(s))
}

// Preprocess rewrites the page in place with markup stripped from
// the text and both title and text transliterated to ASCII, the form
// the downstream segmentation and tokenizing steps expect.
func (p *Page) Preprocess() {
	p.Text = Transliterate(CleanText(p.Text))
	p.Title = Transliterate(p.Title)
}
