package wikidump

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

const testIndex = `499:10:AccessibleComputing
1287:12:Anarchism
5892:13:AfghanistanHistory
19041:14:Vehicle registration plates of Vietnam: список
`

func TestIndexReader(t *testing.T) {
	ir := NewIndexReader(strings.NewReader(testIndex))

	e, err := ir.Next()
	if err != nil {
		t.Fatalf("Error parsing first entry: %v", err)
	}
	if e.String() != "499:10:AccessibleComputing" {
		t.Errorf("Error stringing first entry, got %v", e)
	}

	var last IndexEntry
	for {
		var tmp IndexEntry
		tmp, err = ir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Error reading stream:  %v", err)
		}
		last = tmp
	}
	if last.Offset != 19041 || last.ID != 14 {
		t.Fatalf("Unexpected last entry: %+v", last)
	}
	// Titles keep their colons; only the first two fields split.
	if last.Title != "Vehicle registration plates of Vietnam: список" {
		t.Fatalf("Title mangled: %q", last.Title)
	}
}

func TestIndexReaderBadRecords(t *testing.T) {
	tests := []string{
		"no colons here\n",
		"499\n",
		"notanumber:10:Title\n",
		"499:notanumber:Title\n",
	}
	for _, in := range tests {
		if _, err := NewIndexReader(strings.NewReader(in)).Next(); err == nil {
			t.Errorf("Expected error on %q", in)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	pages := []*Page{
		{ID: 10, Title: "AccessibleComputing", Text: "x", StartOffset: 499},
		{ID: 12, Title: "Anarchism", Text: "y", StartOffset: 1287},
	}

	buf := &bytes.Buffer{}
	iw := NewIndexWriter(buf)
	for _, p := range pages {
		if err := iw.Write(p); err != nil {
			t.Fatalf("Error writing entry for %q: %v", p.Title, err)
		}
	}
	if err := iw.Flush(); err != nil {
		t.Fatalf("Error flushing: %v", err)
	}

	ir := NewIndexReader(buf)
	for _, p := range pages {
		e, err := ir.Next()
		if err != nil {
			t.Fatalf("Error reading entry back: %v", err)
		}
		if e.Offset != p.StartOffset || e.ID != p.ID || e.Title != p.Title {
			t.Errorf("Round trip mismatch: %+v vs page %+v", e, p)
		}
	}
	if _, err := ir.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF, got %v", err)
	}
}
