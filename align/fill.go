// SPDX-License-Identifier: MIT

package align

import (
	"github.com/katalvlaran/seqalign/scoring"
)

// Fill computes the alignment matrix of x against y.
//
// Algorithm Outline:
//  1. Let n = len(x), m = len(y) in runes. Allocate (n+1)x(m+1) matrix S.
//  2. Initialize:
//     S[0][0] = 0
//     S[i][0] = S[i-1][0] + score(x[i-1], '-')
//     S[0][j] = S[0][j-1] + score('-', y[j-1])
//  3. For i = 1..n, j = 1..m:
//     diag = S[i-1][j-1] + score(x[i-1], y[j-1])
//     up   = S[i-1][j]   + score(x[i-1], '-')
//     left = S[i][j-1]   + score('-', y[j-1])
//     S[i][j] = max(diag, up, left)
//  4. In Local mode every cell, including the borders, is floored at 0.
//
// Errors:
//   - ErrNilTable: t is nil.
//   - ErrUnknownMode: mode is neither Global nor Local.
//   - scoring.ErrUnknownSymbol: x or y holds a symbol t does not cover.
//
// Empty sequences are valid and produce a single row and/or column.
//
// Complexity: Time O(n·m), Memory O(n·m).
func Fill(x, y string, t *scoring.Table, mode Mode) (*Matrix, error) {
	xs, ys, err := prepare(ctxFill, x, y, t, mode)
	if err != nil {
		return nil, err
	}

	return fillRanks(xs, ys, t, mode), nil
}

// prepare validates the inputs and encodes both sequences into table ranks.
func prepare(method, x, y string, t *scoring.Table, mode Mode) (xs, ys []int, err error) {
	if t == nil {
		return nil, nil, alignErrorf(method, "table", ErrNilTable)
	}
	if err = mode.validate(method); err != nil {
		return nil, nil, err
	}
	if xs, err = t.Encode(x); err != nil {
		return nil, nil, alignErrorf(method, "x", err)
	}
	if ys, err = t.Encode(y); err != nil {
		return nil, nil, alignErrorf(method, "y", err)
	}

	return xs, ys, nil
}

// fillRanks runs the recurrence over pre-encoded sequences.
func fillRanks(xs, ys []int, t *scoring.Table, mode Mode) *Matrix {
	n, k := len(xs), len(ys)
	m := newMatrix(n+1, k+1, mode)
	cols := k + 1
	gap := t.GapRank()
	local := mode == Local

	// First column: x against gaps.
	for i := 1; i <= n; i++ {
		v := m.data[(i-1)*cols] + t.ScoreAt(xs[i-1], gap)
		if local && v < 0 {
			v = 0
		}
		m.data[i*cols] = v
	}
	// First row: gaps against y.
	for j := 1; j <= k; j++ {
		v := m.data[j-1] + t.ScoreAt(gap, ys[j-1])
		if local && v < 0 {
			v = 0
		}
		m.data[j] = v
	}

	for i := 1; i <= n; i++ {
		prev := m.data[(i-1)*cols : i*cols]
		curr := m.data[i*cols : (i+1)*cols]
		xi := xs[i-1]
		up := t.ScoreAt(xi, gap)
		for j := 1; j <= k; j++ {
			yj := ys[j-1]
			v := max3(
				prev[j-1]+t.ScoreAt(xi, yj),
				prev[j]+up,
				curr[j-1]+t.ScoreAt(gap, yj),
			)
			if local && v < 0 {
				v = 0
			}
			curr[j] = v
		}
	}

	return m
}

// FillScore returns only the optimal score, keeping two rows instead of the
// full matrix: the bottom-right cell in Global mode, the maximum cell in
// Local mode. It agrees with Fill followed by a traceback.
//
// Complexity: Time O(n·m), Memory O(m).
func FillScore(x, y string, t *scoring.Table, mode Mode) (int, error) {
	xs, ys, err := prepare(ctxFillScore, x, y, t, mode)
	if err != nil {
		return 0, err
	}

	k := len(ys)
	gap := t.GapRank()
	local := mode == Local
	prev := make([]int, k+1)
	curr := make([]int, k+1)

	for j := 1; j <= k; j++ {
		v := prev[j-1] + t.ScoreAt(gap, ys[j-1])
		if local && v < 0 {
			v = 0
		}
		prev[j] = v
	}
	best := maxOf(prev)

	for _, xi := range xs {
		up := t.ScoreAt(xi, gap)
		curr[0] = prev[0] + up
		if local && curr[0] < 0 {
			curr[0] = 0
		}
		for j := 1; j <= k; j++ {
			yj := ys[j-1]
			v := max3(
				prev[j-1]+t.ScoreAt(xi, yj),
				prev[j]+up,
				curr[j-1]+t.ScoreAt(gap, yj),
			)
			if local && v < 0 {
				v = 0
			}
			curr[j] = v
		}
		if b := maxOf(curr); b > best {
			best = b
		}
		prev, curr = curr, prev
	}

	if local {
		return best, nil
	}

	return prev[k], nil
}

// max3 returns the maximum of three ints.
func max3(a, b, c int) int {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}

// maxOf returns the largest element of a non-empty slice.
func maxOf(s []int) int {
	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}

	return best
}
