// Simplistic tokenizer for English and similar languages.

package wikidump

import (
	"regexp"
	"sort"
)

var (
	numericRE = regexp.MustCompile(`\d[\d\.]+`)
	tokenRE   = regexp.MustCompile(`(\w|\b['\.]\b)+`)
)

// numToken is what numeric tokens regularize to.
const numToken = "<NUM>"

// Tokenize splits a sentence into word tokens, regularizing numbers
// to a single placeholder token.
func Tokenize(s string) []string {
	out := make([]string, 0)
	for _, token := range tokenRE.FindAllString(s, -1) {
		if numericRE.MatchString(token) {
			token = numToken
		}
		out = append(out, token)
	}
	return out
}

// A TokenCount is one token's occurrence count within a page.
type TokenCount struct {
	Token string
	Count int
}

// CountTokens tallies token frequencies across an article body,
// most frequent first.
func CountTokens(text string) []TokenCount {
	counts := map[string]int{}
	for _, para := range SplitParagraphs(text) {
		for _, sent := range SplitSentences(para) {
			for _, tok := range Tokenize(sent) {
				counts[tok]++
			}
		}
	}
	rv := make([]TokenCount, 0, len(counts))
	for tok, n := range counts {
		rv = append(rv, TokenCount{tok, n})
	}
	sort.Slice(rv, func(i, j int) bool {
		if rv[i].Count != rv[j].Count {
			return rv[i].Count > rv[j].Count
		}
		return rv[i].Token < rv[j].Token
	})
	return rv
}
