package wikidump

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Unicode separators some dumps use to pre-mark sentence and
// paragraph boundaries. When present they win over the trained
// detector.
const (
	lineSeparator      = " "
	paragraphSeparator = " "
)

var sentTokenizer *sentences.DefaultSentenceTokenizer

func init() {
	var err error
	sentTokenizer, err = english.NewSentenceTokenizer(nil)
	if err != nil {
		panic(err)
	}
}

// SplitParagraphs splits cleaned article text into paragraphs, on
// U+2029 when the text carries it, otherwise on newlines.
func SplitParagraphs(text string) []string {
	sep := "\n"
	if strings.Contains(text, paragraphSeparator) {
		sep = paragraphSeparator
	}
	rv := []string{}
	for _, p := range strings.Split(text, sep) {
		if p = strings.TrimSpace(p); p != "" {
			rv = append(rv, p)
		}
	}
	return rv
}

// SplitSentences splits a paragraph into sentences, on U+2028 when
// the text carries it, otherwise with a trained punkt boundary
// detector.
func SplitSentences(text string) []string {
	if strings.Contains(text, lineSeparator) {
		return strings.Split(text, lineSeparator)
	}
	rv := []string{}
	for _, s := range sentTokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			rv = append(rv, t)
		}
	}
	return rv
}
