// Emit an offset:id:title index line for every page kept from a
// dump, for later direct seeking.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/dustin/go-wikidump"
)

var lengthLimit = flag.Int("lengthLimit", 50,
	"Reject pages whose text is this many characters or fewer")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("Need an uncompressed dump file to index")
	}

	r, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error opening %v: %v", flag.Arg(0), err)
	}
	defer r.Close()

	ex := wikidump.NewExtractor(r,
		wikidump.Config{PageLengthLimit: *lengthLimit})
	iw := wikidump.NewIndexWriter(os.Stdout)
	for {
		p, err := ex.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading dump: %v", err)
		}
		if err := iw.Write(p); err != nil {
			log.Fatalf("Error writing index entry: %v", err)
		}
	}
	if err := iw.Flush(); err != nil {
		log.Fatalf("Error flushing index: %v", err)
	}
}
