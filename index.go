package wikidump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// An IndexEntry locates one accepted page within a dump.
type IndexEntry struct {
	// Offset is the byte offset of the page's <page> marker.
	Offset int64
	ID     uint64
	Title  string
}

func (e IndexEntry) String() string {
	return fmt.Sprintf("%v:%v:%v", e.Offset, e.ID, e.Title)
}

// An IndexReader reads offset:id:title index lines as written by an
// IndexWriter (or the indexdump tool).
type IndexReader struct {
	r *bufio.Scanner
}

// NewIndexReader gets an index reader for the given stream.
func NewIndexReader(r io.Reader) *IndexReader {
	return &IndexReader{r: bufio.NewScanner(r)}
}

// Next gets the next entry from the index stream.
func (ir *IndexReader) Next() (IndexEntry, error) {
	if !ir.r.Scan() {
		err := ir.r.Err()
		if err == nil {
			err = io.EOF
		}
		return IndexEntry{}, err
	}
	parts := strings.SplitN(ir.r.Text(), ":", 3)
	if len(parts) != 3 {
		return IndexEntry{}, errors.New("bad record")
	}
	rv := IndexEntry{Title: parts[2]}
	offset, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return IndexEntry{}, err
	}
	rv.Offset = offset
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return IndexEntry{}, err
	}
	rv.ID = id
	return rv, nil
}

// An IndexWriter emits one index line per page.
type IndexWriter struct {
	w *bufio.Writer
}

// NewIndexWriter gets an index writer on the given stream.
func NewIndexWriter(w io.Writer) *IndexWriter {
	return &IndexWriter{w: bufio.NewWriter(w)}
}

// Write records one page's location.
func (iw *IndexWriter) Write(p *Page) error {
	e := IndexEntry{Offset: p.StartOffset, ID: p.ID, Title: p.Title}
	_, err := fmt.Fprintln(iw.w, e.String())
	return err
}

// Flush writes any buffered index lines to the underlying stream.
func (iw *IndexWriter) Flush() error {
	return iw.w.Flush()
}
