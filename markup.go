package wikidump

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
)

var (
	commentRE, nowikiRE          *regexp.Regexp
	wiktRE, brokenWiktRE         *regexp.Regexp
	refRE, emptyRefRE, tagRE     *regexp.Regexp
	templateRE, tableRE          *regexp.Regexp
	pipedLinkRE, bareLinkRE      *regexp.Regexp
	headingRE, quotesRE, blankRE *regexp.Regexp
	linkRE, fileRE               *regexp.Regexp
)

func init() {
	commentRE = regexp.MustCompile(`(?ms)<!--.*?-->`)
	nowikiRE = regexp.MustCompile(`(?ms)<nowiki>.*?</nowiki>`)
	wiktRE = regexp.MustCompile(`\[{2,}wikt:[^\|]+\|([^\]]+)\]{2,}`)
	brokenWiktRE = regexp.MustCompile(`{{broken wikt link\|([^\|}]+)(?:\|([^}]+))?}{2,}`)
	refRE = regexp.MustCompile(`(?ms)<ref[^>/]*>.*?</ref>`)
	emptyRefRE = regexp.MustCompile(`<ref[^>]*/>`)
	tagRE = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	templateRE = regexp.MustCompile(`(?ms){{[^{}]*}}`)
	tableRE = regexp.MustCompile(`(?ms){\|.*?\|}`)
	pipedLinkRE = regexp.MustCompile(`\[\[[^\[\]\|]*\|([^\[\]]*)\]\]`)
	bareLinkRE = regexp.MustCompile(`\[\[([^\[\]\|]*)\]\]`)
	headingRE = regexp.MustCompile(`(?m)^=+\s*(.*?)\s*=+\s*$`)
	quotesRE = regexp.MustCompile(`'{2,}`)
	blankRE = regexp.MustCompile(`\n{3,}`)
	linkRE = regexp.MustCompile(`\[\[([^\|\]]+)`)
	fileRE = regexp.MustCompile(`\[File:([^\|\]]+)`)
}

func stripHidden(text string) string {
	return nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(text, ""), "")
}

// CleanText reduces wiki markup to something resembling plain text:
// wiktionary link repairs, then comments, refs, templates, tables,
// link syntax and leftover tags are stripped. It is a heuristic
// reduction, not a renderer.
func CleanText(text string) string {
	text = wiktRE.ReplaceAllString(text, "$1")
	text = brokenWiktRE.ReplaceAllString(text, "$1")
	text = stripHidden(text)
	text = refRE.ReplaceAllString(text, "")
	text = emptyRefRE.ReplaceAllString(text, "")
	// Templates nest; a few passes handles the depths seen in
	// practice.
	for i := 0; i < 4 && strings.Contains(text, "{{"); i++ {
		text = templateRE.ReplaceAllString(text, "")
	}
	text = tableRE.ReplaceAllString(text, "")
	text = pipedLinkRE.ReplaceAllString(text, "$1")
	text = bareLinkRE.ReplaceAllString(text, "$1")
	text = headingRE.ReplaceAllString(text, "$1")
	text = quotesRE.ReplaceAllString(text, "")
	text = tagRE.ReplaceAllString(text, "")
	text = blankRE.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// FindLinks finds all the links from within an article body.
func FindLinks(text string) []string {
	matches := linkRE.FindAllStringSubmatch(stripHidden(text), -1)

	rv := make([]string, 0, len(matches))
	for _, x := range matches {
		rv = append(rv, x[1])
	}

	return rv
}

// FindFiles finds all the File references from within an article
// body.
//
// This includes things in comments, as many I found were commented
// out.
func FindFiles(text string) []string {
	cleaned := nowikiRE.ReplaceAllString(text, "")
	matches := fileRE.FindAllStringSubmatch(cleaned, -1)

	rv := []string{}
	for _, x := range matches {
		rv = append(rv, x[1])
	}

	return rv
}

// URLForFile gets the wikimedia URL for the given named file.
func URLForFile(name string) string {
	m := md5.New()
	name = strings.Replace(name, " ", "_", -1)
	m.Write([]byte(name))
	h := hex.EncodeToString(m.Sum([]byte{}))

	return "http://upload.wikimedia.org/wikipedia/commons/" +
		string(h[0]) + "/" + h[0:2] + "/" + url.QueryEscape(name)
}
