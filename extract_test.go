package wikidump

import (
	"io"
	"strings"
	"testing"
)

const testDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.8/" xml:lang="en">
  <siteinfo>
    <sitename>Wikipedia</sitename>
  </siteinfo>
  <page>
    <title>Paris</title>
    <ns>0</ns>
    <id>22989</id>
    <revision>
      <id>500123</id>
      <text xml:space="preserve">Paris is the capital and most populous city of France, with over two million residents.</text>
    </revision>
  </page>
  <page>
    <title>Sponge</title>
    <ns>0</ns>
    <id>28518</id>
    <revision>
      <id>500124</id>
      <text xml:space="preserve">Sponges are animals of the phylum Porifera.
They are multicellular organisms which have bodies full of pores.
Sponges do not have nervous, digestive or circulatory systems.</text>
    </revision>
  </page>
  <page>
    <title>User:Alice</title>
    <ns>2</ns>
    <id>31337</id>
    <revision>
      <id>500125</id>
      <text xml:space="preserve">A user page with plenty of text that still must never be kept.</text>
    </revision>
  </page>
  <page>
    <title>Francia</title>
    <ns>0</ns>
    <id>31338</id>
    <revision>
      <id>500126</id>
      <text xml:space="preserve">#REDIRECT [[France]] this alias points at the main article.</text>
    </revision>
  </page>
  <page>
    <title>Mercury (disambiguation)</title>
    <ns>0</ns>
    <id>31339</id>
    <revision>
      <id>500127</id>
      <text xml:space="preserve">Mercury may refer to the planet, the element, or the deity.</text>
    </revision>
  </page>
  <page>
    <title>Ab</title>
    <ns>0</ns>
    <id>31340</id>
    <revision>
      <id>500128</id>
      <text xml:space="preserve">Tiny.</text>
    </revision>
  </page>
  <page>
    <title>Unfinished</title>
    <ns>0</ns>
    <id>31341</id>
    <revision>
      <id>500129</id>
      <text xml:space="preserve">This page's text field is never closed before the stream ends.
`

var testConfig = Config{PageLengthLimit: 50}

func readAll(t *testing.T, ex *Extractor) []*Page {
	var rv []*Page
	for {
		p, err := ex.Next()
		if err == io.EOF {
			return rv
		}
		if err != nil {
			t.Fatalf("Error reading pages: %v", err)
		}
		rv = append(rv, p)
	}
}

func TestExtractor(t *testing.T) {
	pages := readAll(t, NewExtractor(strings.NewReader(testDump), testConfig))

	if len(pages) != 2 {
		t.Fatalf("Expected 2 accepted pages, got %v: %v", len(pages), pages)
	}

	p := pages[0]
	if p.ID != 22989 || p.Title != "Paris" {
		t.Errorf("Unexpected first page: %v %q", p.ID, p.Title)
	}
	if !strings.HasPrefix(p.Text, "Paris is the capital") ||
		strings.Contains(p.Text, "<text") ||
		strings.Contains(p.Text, "</text>") {
		t.Errorf("Bad text extraction: %q", p.Text)
	}

	p = pages[1]
	if p.ID != 28518 || p.Title != "Sponge" {
		t.Errorf("Unexpected second page: %v %q", p.ID, p.Title)
	}
	want := "Sponges are animals of the phylum Porifera.\n" +
		"They are multicellular organisms which have bodies full of pores.\n" +
		"Sponges do not have nervous, digestive or circulatory systems."
	if p.Text != want {
		t.Errorf("Multi-line text mismatch.\n got %q\nwant %q", p.Text, want)
	}
}

func TestExtractorOffsets(t *testing.T) {
	pages := readAll(t, NewExtractor(strings.NewReader(testDump), testConfig))

	for _, p := range pages {
		rest := testDump[p.StartOffset:]
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
		}
		if !strings.Contains(line, "<page>") {
			t.Errorf("Offset %v of %q does not point at a page marker: %q",
				p.StartOffset, p.Title, line)
		}

		// A fresh extractor seeked to the offset must reproduce
		// the page.
		again, err := NewExtractorAt(strings.NewReader(rest),
			testConfig, p.StartOffset).Next()
		if err != nil {
			t.Fatalf("Error re-extracting %q at %v: %v",
				p.Title, p.StartOffset, err)
		}
		if *again != *p {
			t.Errorf("Re-extraction mismatch at %v:\n got %+v\nwant %+v",
				p.StartOffset, again, p)
		}
	}
}

func TestExtractorTruncation(t *testing.T) {
	// Cut the stream in the middle of the second page's text; only
	// the first page is complete before that point.
	cut := strings.Index(testDump, "bodies full of pores")
	if cut < 0 {
		t.Fatal("test dump changed")
	}
	pages := readAll(t, NewExtractor(strings.NewReader(testDump[:cut]),
		testConfig))
	if len(pages) != 1 || pages[0].Title != "Paris" {
		t.Fatalf("Expected only the complete first page, got %v", pages)
	}
}

func TestExtractorEmpty(t *testing.T) {
	if pages := readAll(t, NewExtractor(strings.NewReader(""),
		testConfig)); len(pages) != 0 {
		t.Fatalf("Expected no pages from empty input, got %v", pages)
	}
}

func TestExtractorHeaderNeverCompletes(t *testing.T) {
	in := "<page>\n<garbage/>\nno title here\n"
	if pages := readAll(t, NewExtractor(strings.NewReader(in),
		testConfig)); len(pages) != 0 {
		t.Fatalf("Expected no pages, got %v", pages)
	}
}

func TestExtractorInvalidUTF8(t *testing.T) {
	in := "<page>\n<title>X\xff\xfeY</title>\n"
	_, err := NewExtractor(strings.NewReader(in), testConfig).Next()
	if err == nil || err == io.EOF {
		t.Fatalf("Expected a decode error, got %v", err)
	}
}

func TestExtractorTextCloseWithoutOpen(t *testing.T) {
	// A stray close marker while waiting for the text field must
	// not produce a page or crash; the candidate just never
	// completes.
	in := "<page>\n<title>X</title>\n<id>1</id>\n</text>\n"
	if pages := readAll(t, NewExtractor(strings.NewReader(in),
		testConfig)); len(pages) != 0 {
		t.Fatalf("Expected no pages, got %v", pages)
	}
}
