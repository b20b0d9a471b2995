package wikidump

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// A PlainReader reads pre-flattened dumps with one tab-delimited
// ID<TAB>TITLE<TAB>TEXT record per line. No page filtering is
// applied; input in this form is assumed to have been filtered when
// it was flattened.
type PlainReader struct {
	r            *bufio.Reader
	pos, nextPos int64
}

// NewPlainReader gets a reader for tab-delimited page records.
func NewPlainReader(r io.Reader) *PlainReader {
	return &PlainReader{r: bufio.NewReader(r)}
}

// Next gets the next page record. A line without exactly three
// fields is an error; this mode has a strict contract.
func (pr *PlainReader) Next() (*Page, error) {
	line, err := pr.r.ReadString('\n')
	if line == "" && err != nil {
		return nil, err
	}
	pr.pos = pr.nextPos
	pr.nextPos += int64(len(line))

	parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	if len(parts) != 3 {
		return nil, errors.New("bad record")
	}
	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return nil, err
	}
	return &Page{
		ID:          id,
		Title:       parts[1],
		Text:        parts[2],
		StartOffset: pr.pos,
	}, nil
}
