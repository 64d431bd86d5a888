// SPDX-License-Identifier: MIT

// Package scoring builds substitution-score tables for pairwise sequence alignment.
//
// A Table maps every ordered pair of symbols drawn from an alphabet plus the
// gap marker '-' to an integer score. Tables are immutable once built and are
// safe for concurrent reads.
//
// Two construction paths are provided:
//
//   - Build: the classic three-constant scheme (match, mismatch, gap). The
//     resulting table is always symmetric.
//   - FromMap / LoadYAML: a precomputed table keyed by symbol pairs, e.g. a
//     BLOSUM or PAM matrix exported with an explicit gap row and column.
//
// Storage layout:
//
//	symbols  = ['-', sorted alphabet...]
//	scores   = flat row-major k×k slice, offset = rank(a)*k + rank(b)
//
// Sequences are translated to ranks once (Encode) so that the alignment DP
// loop indexes a slice instead of hashing runes per cell.
//
// Example:
//
//	t, err := scoring.Build([]rune("ACGT"), 10, 4, -6)
//	if err != nil {
//	  // errors.Is(err, scoring.ErrInvalidAlphabet)
//	}
//	s, _ := t.Score('A', 'T') // 4
//
// Complexity:
//   - Build / FromMap: O(k²) time and memory for k = |alphabet|+1.
//   - Score: O(1) after two rank lookups; ScoreAt: O(1).
package scoring
