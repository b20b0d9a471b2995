package wikidump

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var titleRE, idRE, textRE, textOpenRE *regexp.Regexp

func init() {
	titleRE = regexp.MustCompile(`<title>(.*?)</title>`)
	idRE = regexp.MustCompile(`<id>(\d+)</id>`)
	textRE = regexp.MustCompile(`<text[^>]*>(.*?)</text>`)
	textOpenRE = regexp.MustCompile(`<text.*?>`)
}

const textClose = "</text>\n"

type parseState int

const (
	stIdle parseState = iota
	stPage
	stTitle
	stID
	stText
)

// An Extractor scrapes article pages out of a dump stream in a
// single forward pass, line by line.
//
// One Extractor owns one stream cursor; it is not safe to share
// across goroutines.
type Extractor struct {
	r   *bufio.Reader
	cfg Config

	state parseState
	start int64
	id    uint64
	title string
	frags []string

	pos, nextPos int64
}

// NewExtractor gets an extractor reading pages from the given
// reader.
func NewExtractor(r io.Reader, cfg Config) *Extractor {
	return &Extractor{r: bufio.NewReader(r), cfg: cfg}
}

// NewExtractorAt gets an extractor whose page offsets are reported
// relative to the whole stream rather than the reader, for readers
// already seeked to offset.
func NewExtractorAt(r io.Reader, cfg Config, offset int64) *Extractor {
	ex := NewExtractor(r, cfg)
	ex.nextPos = offset
	return ex
}

// Next gets the next accepted page from the stream, consuming as
// many input lines as it takes. It returns io.EOF once the stream is
// exhausted; a page left incomplete at that point is dropped.
func (ex *Extractor) Next() (*Page, error) {
	for {
		line, err := ex.r.ReadString('\n')
		if line != "" {
			ex.pos = ex.nextPos
			ex.nextPos += int64(len(line))
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("invalid utf-8 at offset %v", ex.pos)
			}
			if p := ex.feed(line); p != nil {
				return p, nil
			}
		}
		if err != nil {
			return nil, err
		}
	}
}

// feed runs one line through the state machine, returning a page
// when one completes and survives the filter.
func (ex *Extractor) feed(line string) *Page {
	switch ex.state {
	case stIdle:
		if strings.Contains(line, "<page>") {
			ex.state = stPage
			ex.start = ex.pos
		}
	case stPage:
		if m := titleRE.FindStringSubmatch(line); m != nil {
			ex.state = stTitle
			ex.title = m[1]
		}
	case stTitle:
		if m := idRE.FindStringSubmatch(line); m != nil {
			id, err := strconv.ParseUint(m[1], 10, 64)
			if err == nil {
				ex.state = stID
				ex.id = id
			}
		}
	case stID:
		if strings.HasSuffix(line, textClose) {
			if m := textRE.FindStringSubmatch(line); m != nil {
				return ex.finish(m[1])
			}
		} else if loc := textOpenRE.FindStringIndex(line); loc != nil {
			ex.state = stText
			ex.frags = append(ex.frags, line[loc[1]:])
		}
	case stText:
		if strings.HasSuffix(line, textClose) {
			ex.frags = append(ex.frags, line[:len(line)-len(textClose)])
			return ex.finish(strings.Join(ex.frags, ""))
		}
		ex.frags = append(ex.frags, line)
	}
	return nil
}

func (ex *Extractor) finish(text string) *Page {
	p := &Page{
		ID:          ex.id,
		Title:       ex.title,
		Text:        text,
		StartOffset: ex.start,
	}
	ex.state = stIdle
	ex.title = ""
	ex.frags = nil
	if ex.cfg.BadPage(p.Title, p.Text) {
		return nil
	}
	return p
}
