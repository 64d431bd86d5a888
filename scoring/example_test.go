// SPDX-License-Identifier: MIT

package scoring_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
)

// ExampleBuild shows the three score classes of a built table.
func ExampleBuild() {
	t, err := scoring.Build([]rune("ACGT"), 10, 4, -6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	match, _ := t.Score('A', 'A')
	mismatch, _ := t.Score('A', 'T')
	gap, _ := t.Score('-', 'G')
	fmt.Println(match, mismatch, gap, t.IsSymmetric())
	// Output:
	// 10 4 -6 true
}

// ExampleBuild_invalidAlphabet rejects the gap marker as a symbol.
func ExampleBuild_invalidAlphabet() {
	_, err := scoring.Build([]rune("AC-"), 1, 0, -1)
	fmt.Println(errors.Is(err, scoring.ErrInvalidAlphabet))
	// Output:
	// true
}
