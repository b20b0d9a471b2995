// Load scraped article pages into CouchBase
package main

import (
	"compress/bzip2"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/couchbase/go-couchbase"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikidump"
)

var numWorkers = flag.Int("numWorkers", 8, "Number of page workers")
var lengthLimit = flag.Int("lengthLimit", 50,
	"Reject pages whose text is this many characters or fewer")

var wg sync.WaitGroup

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage:\n  %s [opts] wikipedia.xml[.bz2]\n",
		os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

type Article struct {
	PageID uint64   `json:"pageid"`
	Text   string   `json:"text"`
	Offset int64    `json:"offset"`
	Files  []string `json:"files,omitempty"`
	Links  []string `json:"links,omitempty"`
}

func doPage(db *couchbase.Bucket, p *wikidump.Page) {
	article := Article{
		PageID: p.ID,
		Text:   p.Text,
		Offset: p.StartOffset,
	}
	article.Files = wikidump.FindFiles(article.Text)
	article.Links = wikidump.FindLinks(article.Text)

	err := db.Set(p.Title, 0, article)
	if err != nil {
		log.Printf("Error setting %v: %v", p.Title, err)
		return
	}
}

func pageHandler(db *couchbase.Bucket, ch <-chan *wikidump.Page) {
	defer wg.Done()
	for p := range ch {
		doPage(db, p)
	}
}

func main() {
	couchbaseServer := flag.String("couchbase", "http://localhost:8091/",
		"Couchbase URL")
	couchbaseBucket := flag.String("bucket", "default", "Couchbase bucket")
	procs := flag.Int("cpus", runtime.NumCPU(), "Number of CPUS to use")
	flag.Parse()

	runtime.GOMAXPROCS(*procs)

	if flag.NArg() != 1 {
		usage()
	}

	db, err := couchbase.GetBucket(*couchbaseServer,
		"default", *couchbaseBucket)
	if err != nil {
		log.Fatalf("Error connecting to couchbase: %v", err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(flag.Arg(0), ".bz2") {
		r = bzip2.NewReader(f)
	}

	p := wikidump.NewExtractor(r,
		wikidump.Config{PageLengthLimit: *lengthLimit})

	ch := make(chan *wikidump.Page, 1000)

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go pageHandler(db, ch)
	}

	pages := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for err == nil {
		var page *wikidump.Page
		page, err = p.Next()
		if err == nil {
			ch <- page
		}

		pages++
		if pages%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Processed %s pages total (%.2f/s)",
				humanize.Comma(pages), float64(reportfreq)/d.Seconds())
			prev = now
		}
	}
	close(ch)
	wg.Wait()
	log.Printf("Ended with err after %v:  %v after %s pages",
		time.Now().Sub(start), err, humanize.Comma(pages))

}
