// Seek to a recorded offset in an uncompressed dump and print the
// page found there.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/dustin/go-wikidump"
)

var lengthLimit = flag.Int("lengthLimit", 50,
	"Reject pages whose text is this many characters or fewer")

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("Need a dump file and a byte offset")
	}

	offset, err := strconv.ParseInt(flag.Arg(1), 10, 64)
	if err != nil {
		log.Fatalf("Bad offset %v: %v", flag.Arg(1), err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error opening %v: %v", flag.Arg(0), err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, 0); err != nil {
		log.Fatalf("Error seeking to %v: %v", offset, err)
	}

	ex := wikidump.NewExtractorAt(f,
		wikidump.Config{PageLengthLimit: *lengthLimit}, offset)
	p, err := ex.Next()
	if err != nil {
		log.Fatalf("No page at offset %v: %v", offset, err)
	}
	os.Stdout.WriteString(p.String())
}
