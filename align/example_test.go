// SPDX-License-Identifier: MIT

package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFill
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	x = "AA", y = "TAAT" under match 10, mismatch 4, gap -6.
//	The Global table carries negative borders; the Local table floors
//	every cell at 0.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleFill() {
	t, _ := scoring.Build([]rune("AT"), 10, 4, -6)

	g, _ := align.Fill("AA", "TAAT", t, align.Global)
	l, _ := align.Fill("AA", "TAAT", t, align.Local)
	fmt.Print(g)
	fmt.Print(l)
	// Output:
	// [0, -6, -12, -18, -24]
	// [-6, 4, 4, -2, -8]
	// [-12, -2, 14, 14, 8]
	// [0, 0, 0, 0, 0]
	// [0, 4, 10, 10, 4]
	// [0, 4, 14, 20, 14]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_global
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A short probe against a longer read; Global mode must pad the probe
//	with gaps on both ends.
func ExampleAlign_global() {
	t, _ := scoring.BuildString("ACGT", 5, -4, -6)

	res, err := align.Align("ACGTTGCA", "TTGC", t, align.Global)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d\n%s\n%s\n", res.Score, res.X, res.Y)
	// Output:
	// score=-4
	// ACGTTGCA
	// ---TTGC-
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_local
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same inputs in Local mode: only the shared core is reported, together
//	with its position in each input.
func ExampleAlign_local() {
	t, _ := scoring.BuildString("ACGT", 5, -4, -6)

	res, err := align.Align("ACGTTGCA", "TTGC", t, align.Local)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d %s/%s x[%d:%d] y[%d:%d]\n",
		res.Score, res.X, res.Y, res.XStart, res.XEnd, res.YStart, res.YEnd)
	// Output:
	// score=20 TTGC/TTGC x[3:7] y[0:4]
}

// ExampleFillScore computes only the optimal score in O(M) memory.
func ExampleFillScore() {
	t, _ := scoring.BuildString("ACGT", 5, -4, -6)

	g, _ := align.FillScore("GATTACA", "GCATGCT", t, align.Global)
	l, _ := align.FillScore("GATTACA", "GCATGCT", t, align.Local)
	fmt.Println(g, l)
	// Output:
	// 0 10
}
