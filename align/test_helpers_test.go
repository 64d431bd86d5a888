// SPDX-License-Identifier: MIT

package align_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/scoring"
)

// testSeed locks the random fixtures.
const testSeed = 20240607

// globalAATAAT and localAATAAT are the filled matrices for x="AA", y="TAAT"
// under atTable.
var (
	globalAATAAT = [][]int{
		{0, -6, -12, -18, -24},
		{-6, 4, 4, -2, -8},
		{-12, -2, 14, 14, 8},
	}
	localAATAAT = [][]int{
		{0, 0, 0, 0, 0},
		{0, 4, 10, 10, 4},
		{0, 4, 14, 20, 14},
	}
)

// atTable is the two-letter fixture table: match 10, mismatch 4, gap -6.
func atTable(t testing.TB) *scoring.Table {
	t.Helper()
	tbl, err := scoring.FromMap(map[rune]map[rune]int{
		'-': {'-': -6, 'A': -6, 'T': -6},
		'A': {'-': -6, 'A': 10, 'T': 4},
		'T': {'-': -6, 'A': 4, 'T': 10},
	})
	require.NoError(t, err)

	return tbl
}

func oneLetterTable(t testing.TB) *scoring.Table {
	t.Helper()
	tbl, err := scoring.Build([]rune{'A'}, 2, 1, -1)
	require.NoError(t, err)

	return tbl
}

func dnaTable(t testing.TB) *scoring.Table {
	t.Helper()
	tbl, err := scoring.BuildString("ACGT", 5, -4, -6)
	require.NoError(t, err)

	return tbl
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(testSeed))
}

func randomSeq(rng *rand.Rand, alphabet string, n int) string {
	letters := []rune(alphabet)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(letters[rng.Intn(len(letters))])
	}

	return sb.String()
}

// stripGaps removes gap markers from an aligned row.
func stripGaps(s string) string {
	return strings.ReplaceAll(s, string(scoring.Gap), "")
}
