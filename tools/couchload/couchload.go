// Load scraped article pages into CouchDB
package main

import (
	"compress/bzip2"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-couch"
	"github.com/dustin/go-humanize"
	"github.com/dustin/httputil"
	"github.com/dustin/go-wikidump"
)

var wg sync.WaitGroup

var lengthLimit = flag.Int("lengthLimit", 50,
	"Reject pages whose text is this many characters or fewer")

type Article struct {
	ID     string   `json:"_id"`
	Rev    string   `json:"_rev"`
	PageID uint64   `json:"pageid"`
	Text   string   `json:"text"`
	Offset int64    `json:"offset"`
	Files  []string `json:"files,omitempty"`
	Links  []string `json:"links,omitempty"`
}

func escapeTitle(in string) string {
	return strings.Replace(strings.Replace(in, "/", "%2f", -1),
		"+", "%2b", -1)
}

func resolveConflict(db *couch.Database, a *Article) {
	log.Printf("Resolving conflict on %s", a.ID)
	var prev Article
	err := db.Retrieve(escapeTitle(a.ID), &prev)
	if err != nil {
		log.Printf("  Error retrieving existing %v: %v", a.ID, err)
		return
	}
	if prev.Rev == "" {
		log.Printf("Got no rev from %v", a.ID)
		return
	}
	// Later positions in the dump carry the later revision of a
	// duplicated title.
	if a.Offset > prev.Offset {
		log.Printf("  This one is newer...replacing %s.", prev.Rev)
		_, err = db.EditWith(a, a.ID, prev.Rev)
		if err != nil {
			log.Printf("  Error updating %v: %v", prev.ID, err)
		}
	}
}

func doPage(db *couch.Database, p *wikidump.Page) {
	defer wg.Done()
	article := Article{
		ID:     escapeTitle(p.Title),
		PageID: p.ID,
		Text:   p.Text,
		Offset: p.StartOffset,
	}
	article.Files = wikidump.FindFiles(article.Text)
	article.Links = wikidump.FindLinks(article.Text)

	_, _, err := db.Insert(&article)
	switch {
	case err == nil:
		// yay
	case httputil.IsHTTPStatus(err, 409):
		resolveConflict(db, &article)
	default:
		log.Printf("Error inserting %#v: %v", article, err)
	}
}

func pageHandler(db couch.Database, ch <-chan *wikidump.Page) {
	for p := range ch {
		doPage(&db, p)
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("Need a CouchDB URL and a dump file")
	}
	dburl, filename := flag.Arg(0), flag.Arg(1)

	db, err := couch.Connect(dburl)
	if err != nil {
		log.Fatalf("Error connecting to couchdb: %v", err)
	}

	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		r = bzip2.NewReader(f)
	}

	p := wikidump.NewExtractor(r,
		wikidump.Config{PageLengthLimit: *lengthLimit})

	ch := make(chan *wikidump.Page, 1000)

	for i := 0; i < 20; i++ {
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
			wg.Add(1)
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
	wg.Wait()
	close(ch)
	log.Printf("Ended with err after %v:  %v after %s pages",
		time.Now().Sub(start), err, humanize.Comma(pages))

}
