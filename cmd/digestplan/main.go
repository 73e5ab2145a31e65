// digestplan answers changes trie digest scheduling questions for a chain.
//
// It is intended for checking chain parameters and for debugging indexers:
// given the digest interval, digest levels and zero block it reports which
// digest is due at a block, the covering top level range, and the full list
// of digests due over a range of blocks.
//
//	digestplan --interval 8 --levels 4 level 4096
//	digestplan --config chain.yaml plan 1 10000
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
