// Load scraped article pages into ElasticSearch
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

	"github.com/dustin/go-elasticsearch"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikidump"
)

var wg = sync.WaitGroup{}

var lengthLimit = flag.Int("lengthLimit", 50,
	"Reject pages whose text is this many characters or fewer")

func pageHandler(u string, ch chan *wikidump.Page) {
	counter := 0
	es := elasticsearch.ElasticSearch{URL: u}
	bulkLoader := es.Bulk()

	for p := range ch {
		counter++
		if counter > 1000 {
			bulkLoader.SendBatch()
			counter = 0
		}
		ui := elasticsearch.UpdateInstruction{
			Id:    p.Title,
			Index: "wikidump",
			Type:  "article",
			Body: map[string]interface{}{
				"id":     p.ID,
				"text":   wikidump.Transliterate(wikidump.CleanText(p.Text)),
				"links":  wikidump.FindLinks(p.Text),
				"offset": p.StartOffset,
			},
		}
		bulkLoader.Update(&ui)
		wg.Done()
	}
	bulkLoader.Quit()
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("Need a dump file and an ElasticSearch URL")
	}
	filename, esurl := flag.Arg(0), flag.Arg(1)

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

	for i := 0; i < 4; i++ {
		go pageHandler(esurl, ch)
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
