// SPDX-License-Identifier: MIT

// Command seqalign aligns two sequences globally or locally and prints the
// score, the aligned rows and identity statistics.
//
// Usage:
//
//	seqalign align GATTACA GCATGCT
//	seqalign align --mode local --fasta pair.fa -o json
//	seqalign table --alphabet ACGT --match 5 --mismatch -4 --gap -6
//	seqalign matrix --mode local AA TAAT
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
