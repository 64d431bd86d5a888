// SPDX-License-Identifier: MIT

// Package scoring - Table storage & lookups.
//
// Purpose:
//   - Keep scores in one contiguous row-major buffer indexed by symbol rank.
//   - Resolve runes to ranks through an ASCII fast table, falling back to a map
//     for the rest of Unicode.
//   - Never expose the backing buffer; all accessors return values or copies.

package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Gap is the reserved symbol denoting an insertion or deletion.
const Gap = '-'

// gapRank is the rank of Gap in every Table.
const gapRank = 0

// method tags used in error wrappers
const (
	ctxScore  = "Table.Score"
	ctxEncode = "Table.Encode"
	ctxBuild  = "Build"
	ctxMap    = "FromMap"
	ctxLoad   = "LoadYAML"
)

// Table is an immutable substitution-score lookup over alphabet ∪ {Gap}.
type Table struct {
	symbols []rune       // rank -> symbol; symbols[0] == Gap
	scores  []int        // k*k row-major
	ascii   [128]int16   // rune -> rank+1 for ASCII; 0 means absent
	ranks   map[rune]int // non-ASCII rune -> rank
}

// newTable allocates a Table over the given symbol order (gap first).
func newTable(symbols []rune) *Table {
	k := len(symbols)
	t := &Table{
		symbols: symbols,
		scores:  make([]int, k*k),
	}
	for i, r := range symbols {
		if r >= 0 && r < 128 {
			t.ascii[r] = int16(i + 1)
			continue
		}
		if t.ranks == nil {
			t.ranks = make(map[rune]int)
		}
		t.ranks[r] = i
	}

	return t
}

// orderSymbols returns Gap followed by the distinct members of alphabet in
// ascending rune order.
func orderSymbols(alphabet []rune) []rune {
	seen := make(map[rune]struct{}, len(alphabet))
	uniq := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		uniq = append(uniq, r)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })

	return append([]rune{Gap}, uniq...)
}

// Size returns the number of symbols including the gap marker.
func (t *Table) Size() int {
	return len(t.symbols)
}

// Symbols returns a copy of the symbol order, gap marker first.
func (t *Table) Symbols() []rune {
	out := make([]rune, len(t.symbols))
	copy(out, t.symbols)

	return out
}

// Alphabet returns a copy of the non-gap symbols in rank order.
func (t *Table) Alphabet() []rune {
	out := make([]rune, len(t.symbols)-1)
	copy(out, t.symbols[1:])

	return out
}

// Rank reports the index of r in the table's symbol order.
func (t *Table) Rank(r rune) (int, bool) {
	if r >= 0 && r < 128 {
		v := t.ascii[r]

		return int(v) - 1, v != 0
	}
	i, ok := t.ranks[r]

	return i, ok
}

// GapRank returns the rank of the gap marker.
func (t *Table) GapRank() int {
	return gapRank
}

// ScoreAt returns the score for the symbol ranks i and j.
// Ranks must come from Rank or Encode on the same table.
func (t *Table) ScoreAt(i, j int) int {
	return t.scores[i*len(t.symbols)+j]
}

// Score returns the substitution score of aligning a against b.
func (t *Table) Score(a, b rune) (int, error) {
	i, ok := t.Rank(a)
	if !ok {
		return 0, scoringErrorf(ctxScore, "%q", ErrUnknownSymbol, a)
	}
	j, ok := t.Rank(b)
	if !ok {
		return 0, scoringErrorf(ctxScore, "%q", ErrUnknownSymbol, b)
	}

	return t.ScoreAt(i, j), nil
}

// Encode translates seq into symbol ranks. The gap marker is accepted like
// any other table symbol.
func (t *Table) Encode(seq string) ([]int, error) {
	out := make([]int, 0, len(seq))
	pos := 0
	for _, r := range seq {
		i, ok := t.Rank(r)
		if !ok {
			return nil, scoringErrorf(ctxEncode, "%q at position %d", ErrUnknownSymbol, r, pos)
		}
		out = append(out, i)
		pos++
	}

	return out, nil
}

// IsSymmetric reports whether score(a,b) == score(b,a) for every pair.
// Tables produced by Build are always symmetric.
func (t *Table) IsSymmetric() bool {
	k := len(t.symbols)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if t.scores[i*k+j] != t.scores[j*k+i] {
				return false
			}
		}
	}

	return true
}

// Map exports the table as nested maps keyed by symbol.
func (t *Table) Map() map[rune]map[rune]int {
	k := len(t.symbols)
	out := make(map[rune]map[rune]int, k)
	for i, a := range t.symbols {
		row := make(map[rune]int, k)
		for j, b := range t.symbols {
			row[b] = t.scores[i*k+j]
		}
		out[a] = row
	}

	return out
}

// String renders the table as a grid with a header row of symbols.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for _, s := range t.symbols {
		fmt.Fprintf(&sb, " %4c", s)
	}
	sb.WriteByte('\n')
	k := len(t.symbols)
	for i, a := range t.symbols {
		fmt.Fprintf(&sb, "%c ", a)
		for j := 0; j < k; j++ {
			fmt.Fprintf(&sb, " %4d", t.scores[i*k+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
