package wikidump

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestIndexedExtractor(t *testing.T) {
	dir := t.TempDir()
	dumpfn := filepath.Join(dir, "dump.xml")
	indexfn := filepath.Join(dir, "dump.index")

	if err := os.WriteFile(dumpfn, []byte(testDump), 0644); err != nil {
		t.Fatalf("Error writing dump: %v", err)
	}

	direct := readAll(t, NewExtractor(strings.NewReader(testDump), testConfig))

	f, err := os.Create(indexfn)
	if err != nil {
		t.Fatalf("Error creating index: %v", err)
	}
	iw := NewIndexWriter(f)
	for _, p := range direct {
		if err := iw.Write(p); err != nil {
			t.Fatalf("Error writing index entry: %v", err)
		}
	}
	if err := iw.Flush(); err != nil {
		t.Fatalf("Error flushing index: %v", err)
	}
	f.Close()

	ix, err := NewIndexedExtractor(indexfn, dumpfn, 2, testConfig)
	if err != nil {
		t.Fatalf("Error creating indexed extractor: %v", err)
	}

	var got []*Page
	for {
		p, err := ix.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Error reading indexed pages: %v", err)
		}
		got = append(got, p)
	}

	if len(got) != len(direct) {
		t.Fatalf("Expected %v pages, got %v", len(direct), len(got))
	}
	// Workers race, so order by ID before comparing.
	sort.Slice(got, func(i, j int) bool { return got[i].ID < got[j].ID })
	sort.Slice(direct, func(i, j int) bool { return direct[i].ID < direct[j].ID })
	for i := range direct {
		if *got[i] != *direct[i] {
			t.Errorf("Page %v mismatch:\n got %+v\nwant %+v",
				i, got[i], direct[i])
		}
	}
}
