// SPDX-License-Identifier: MIT

package scoring

// Build constructs the substitution table for alphabet ∪ {Gap} from three
// scalar scores.
//
// Implementation:
//   - Stage 1: reject an alphabet containing Gap (ErrInvalidAlphabet).
//   - Stage 2: order symbols (gap first, then ascending) and allocate k×k.
//   - Stage 3: for every ordered pair (a, b):
//     a or b is Gap   -> gap
//     a == b          -> diag
//     otherwise       -> off
//
// Duplicate alphabet entries are collapsed. The empty alphabet yields the
// single gap/gap entry.
//
// Complexity: O(k²) time and memory, k = distinct symbols + 1.
func Build(alphabet []rune, diag, off, gap int) (*Table, error) {
	for _, r := range alphabet {
		if r == Gap {
			return nil, scoringErrorf(ctxBuild, "alphabet %q", ErrInvalidAlphabet, string(alphabet))
		}
	}

	t := newTable(orderSymbols(alphabet))
	k := len(t.symbols)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			var s int
			switch {
			case i == gapRank || j == gapRank:
				s = gap
			case i == j:
				s = diag
			default:
				s = off
			}
			t.scores[i*k+j] = s
		}
	}

	return t, nil
}

// BuildString is Build over the runes of alphabet.
func BuildString(alphabet string, diag, off, gap int) (*Table, error) {
	return Build([]rune(alphabet), diag, off, gap)
}

// FromMap builds a Table from a precomputed nested map keyed by symbol pairs.
// The key set must contain Gap, and every ordered pair over the key set must
// be present. Symmetry is not enforced; see IsSymmetric.
//
// Complexity: O(k²).
func FromMap(m map[rune]map[rune]int) (*Table, error) {
	if _, ok := m[Gap]; !ok {
		return nil, scoringErrorf(ctxMap, "no %q row", ErrMissingGap, Gap)
	}
	alphabet := make([]rune, 0, len(m))
	for r, row := range m {
		if r != Gap {
			alphabet = append(alphabet, r)
		}
		// a column symbol without its own row cannot complete the square
		for b := range row {
			if _, ok := m[b]; !ok {
				return nil, scoringErrorf(ctxMap, "pair (%q,%q)", ErrIncompleteTable, b, r)
			}
		}
	}

	t := newTable(orderSymbols(alphabet))
	k := len(t.symbols)
	for i, a := range t.symbols {
		row := m[a]
		for j, b := range t.symbols {
			s, ok := row[b]
			if !ok {
				return nil, scoringErrorf(ctxMap, "pair (%q,%q)", ErrIncompleteTable, a, b)
			}
			t.scores[i*k+j] = s
		}
	}

	return t, nil
}
