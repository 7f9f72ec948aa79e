// Command arthurcat decodes an ARTHUR stream and prints one line per
// message. It exists mainly as a manual inspection tool while developing
// against the format: point it at a recorded stream and see what a Reader
// sees.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arthur-md/arthur"
	"github.com/arthur-md/arthur/errs"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: arthurcat [file]\n\nReads an ARTHUR stream from file, or stdin if no file is given, and prints one line per message.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	src := os.Stdin

	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		src = f
	}

	r, err := arthur.NewReader(src)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	count := 0

	for {
		m, err := r.Read()
		if errors.Is(err, errs.ErrEndOfStream) {
			break
		}

		if err != nil {
			log.Fatalf("arthurcat: %v (after %d messages)", err, count)
		}

		printMessage(count, m)
		count++
	}

	fmt.Fprintf(os.Stderr, "%d messages\n", count)
}

func printMessage(i int, m arthur.Message) {
	switch msg := m.(type) {
	case *arthur.BookSnapshot:
		fmt.Printf("%d\tSNAPSHOT\tts=%d\tbids=%d\tasks=%d\tredundant=%t\n",
			i, msg.Timestamp, len(msg.Bids), len(msg.Asks), msg.Redundant)
	case *arthur.BookDiff:
		side := "ask"
		if msg.IsBid {
			side = "bid"
		}

		kind := "diff"
		if msg.Qty.IsZero() {
			kind = "removal"
		}

		fmt.Printf("%d\t%s\tts=%d\tside=%s\tprice=%s\tqty=%s\n",
			i, kind, msg.Timestamp, side, msg.Price.String(), msg.Qty.String())
	case *arthur.Trade:
		id := msg.ID.StrID
		if msg.ID.Numeric {
			id = msg.ID.IntID.String()
		}

		fmt.Printf("%d\tTRADE\tts=%d\tprice=%s\tqty=%s\tmaker_is_bid=%t\tid=%s\n",
			i, msg.Timestamp, msg.Price.String(), msg.Qty.String(), msg.MakerIsBid, id)
	case *arthur.Disconnect:
		fmt.Printf("%d\tDISCONNECT\tts=%d\n", i, msg.Timestamp)
	default:
		fmt.Printf("%d\tUNKNOWN\n", i)
	}
}
