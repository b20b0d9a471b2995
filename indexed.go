package wikidump

import (
	"io"
	"log"
	"os"
	"sync"
)

// An IndexedExtractor re-reads pages from an uncompressed dump by
// seeking straight to the offsets recorded in an index, fanning the
// work out across several readers.
type IndexedExtractor struct {
	workerch chan IndexEntry
	entries  chan *Page
}

func indexFeeder(indexfn string, ix *IndexedExtractor) {
	defer close(ix.workerch)

	r, err := os.Open(indexfn)
	if err != nil {
		log.Fatalf("Error opening %v: %v", indexfn, err)
	}
	defer r.Close()

	ir := NewIndexReader(r)
	for {
		e, err := ir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading index: %v", err)
		}
		ix.workerch <- e
	}
}

func indexedWorker(dumpfn string, cfg Config, wg *sync.WaitGroup,
	ix *IndexedExtractor) {
	defer wg.Done()

	r, err := os.Open(dumpfn)
	if err != nil {
		log.Fatalf("Error opening %v: %v", dumpfn, err)
	}
	defer r.Close()

	for e := range ix.workerch {
		_, err := r.Seek(e.Offset, 0)
		if err != nil {
			log.Fatalf("Error seeking to %v: %v", e.Offset, err)
		}
		p, err := NewExtractorAt(r, cfg, e.Offset).Next()
		if err == nil {
			ix.entries <- p
		}
	}
}

// NewIndexedExtractor gets an extractor reading the pages listed in
// indexfn out of dumpfn with numWorkers parallel readers. Pages come
// out in whatever order the workers finish.
func NewIndexedExtractor(indexfn, dumpfn string, numWorkers int,
	cfg Config) (*IndexedExtractor, error) {
	r, err := os.Open(dumpfn)
	if err != nil {
		return nil, err
	}
	r.Close()

	rv := &IndexedExtractor{
		workerch: make(chan IndexEntry, 1000),
		entries:  make(chan *Page, 1000),
	}

	wg := sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go indexedWorker(dumpfn, cfg, &wg, rv)
	}

	go indexFeeder(indexfn, rv)

	go func() {
		wg.Wait()
		close(rv.entries)
	}()

	return rv, nil
}

// Next gets the next page, returning io.EOF once every indexed page
// has been read.
func (ix *IndexedExtractor) Next() (*Page, error) {
	p, ok := <-ix.entries
	if !ok {
		return nil, io.EOF
	}
	return p, nil
}
