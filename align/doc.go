// SPDX-License-Identifier: MIT

// Package align computes optimal pairwise alignments of two symbol sequences
// with the classic dynamic-programming kernels.
//
// 🚀 What is pairwise alignment?
//
//	Given two sequences X and Y and a substitution table, find the
//	arrangement of X and Y (with gap symbols inserted) that maximizes the
//	summed substitution score. Used in:
//	  • Protein and DNA homology search
//	  • Diffing of tokenized text and word lists
//	  • Spelling correction and fuzzy matching
//
// ✨ Modes:
//   - Global (Needleman–Wunsch): both sequences are consumed end to end.
//   - Local (Smith–Waterman): the best-scoring pair of contiguous substrings;
//     every cell is floored at zero so an alignment may start anywhere.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqalign/align"
//	  "github.com/katalvlaran/seqalign/scoring"
//	)
//
//	table, _ := scoring.Build([]rune("ACGT"), 10, 4, -6)
//	m, err := align.Fill("AA", "TAAT", table, align.Global)
//	if err != nil {
//	  // errors.Is(err, scoring.ErrUnknownSymbol)
//	}
//	res, _ := align.TracebackGlobal("AA", "TAAT", table, m)
//	fmt.Println(res.Score, res.X, res.Y) // 8 -AA- TAAT
//
// Tie-breaking (fixed, so fixtures are reproducible):
//   - Each traceback step prefers the diagonal move, then up (symbol of X
//     against a gap), then left (gap against a symbol of Y).
//   - Local traceback starts at the first maximum cell in row-major order.
//   - Local traceback stops as soon as the current cell holds 0, before any
//     move from it is attempted.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for Fill, O(M) for FillScore
package align
