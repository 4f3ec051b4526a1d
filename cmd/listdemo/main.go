package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/manthanabc/intlist/linked_list"
	"github.com/manthanabc/intlist/naturals"
)

// chain is the part of the list contract the demo drives; both renditions
// in linked_list satisfy it.
type chain interface {
	Append(value uint64)
	Remove(value uint64) bool
	ToSequence() []uint64
	fmt.Stringer
}

type options struct {
	n      uint64
	remove uint64
	arena  bool
	sum    bool
}

func main() {
	n := flag.Uint64("n", 5, "how many natural numbers to append")
	remove := flag.Uint64("remove", 3, "value to remove after the first display")
	arena := flag.Bool("arena", false, "run on the arena-backed rendition")
	sum := flag.Bool("sum", false, "print the sum of the appended numbers")
	flag.Parse()

	run(os.Stdout, options{n: *n, remove: *remove, arena: *arena, sum: *sum})
}

func run(w io.Writer, opts options) {
	var l chain
	if opts.arena {
		l = linked_list.NewArenaList()
	} else {
		l = linked_list.New()
	}

	for _, v := range naturals.FirstN(opts.n) {
		l.Append(v)
	}

	fmt.Fprintln(w, "Initial list:")
	fmt.Fprintln(w, l)
	if opts.sum {
		fmt.Fprintf(w, "Sum of first %d natural numbers: %d\n", opts.n, naturals.Sum(l.ToSequence()))
	}

	l.Remove(opts.remove)
	fmt.Fprintf(w, "List after removing %d:\n", opts.remove)
	fmt.Fprintln(w, l)
}
