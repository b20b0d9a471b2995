// Sample program that scans a dump and reports what it keeps.
package main

import (
	"compress/bzip2"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikidump"
)

var (
	lengthLimit = flag.Int("lengthLimit", 50,
		"Reject pages whose text is this many characters or fewer")
	plainMode = flag.Bool("plain", false,
		"Input is tab-delimited id/title/text, one record per line")
	printPages = flag.Bool("print", false, "Print each kept page")
)

type pageSource interface {
	Next() (*wikidump.Page, error)
}

func process(p pageSource) {
	pages := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	var err error
	for err == nil {
		var page *wikidump.Page
		page, err = p.Next()
		if err != nil {
			break
		}
		if *printPages {
			os.Stdout.WriteString(page.String())
		}

		pages++
		if pages%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Kept %s pages total (%.2f/s)",
				humanize.Comma(pages), float64(reportfreq)/d.Seconds())
			prev = now
		}
	}
	if err != io.EOF {
		log.Fatalf("Error reading dump: %v", err)
	}
	d := time.Since(start)
	log.Printf("Done after %v: %s pages kept (%.2f p/s)",
		d, humanize.Comma(pages), float64(pages)/d.Seconds())
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("Need a dump file to scan")
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
	if *plainMode {
		process(wikidump.NewPlainReader(r))
		return
	}
	process(wikidump.NewExtractor(r,
		wikidump.Config{PageLengthLimit: *lengthLimit}))
}
