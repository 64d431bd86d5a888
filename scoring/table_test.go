// SPDX-License-Identifier: MIT

package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/scoring"
)

func TestTable_ScoreUnknown(t *testing.T) {
	tbl, err := scoring.BuildString("ACGT", 1, -1, -2)
	require.NoError(t, err)

	_, err = tbl.Score('A', 'N')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	_, err = tbl.Score('x', 'A')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}

func TestTable_Rank(t *testing.T) {
	tbl, err := scoring.BuildString("TGCAλ", 1, -1, -2)
	require.NoError(t, err)

	r, ok := tbl.Rank(scoring.Gap)
	assert.True(t, ok)
	assert.Equal(t, tbl.GapRank(), r)

	for i, sym := range tbl.Symbols() {
		r, ok := tbl.Rank(sym)
		assert.True(t, ok)
		assert.Equal(t, i, r, "rank of %q", sym)
	}

	_, ok = tbl.Rank('N')
	assert.False(t, ok)
	_, ok = tbl.Rank('μ')
	assert.False(t, ok)
}

func TestTable_Encode(t *testing.T) {
	tbl, err := scoring.BuildString("ACGT", 1, -1, -2)
	require.NoError(t, err)

	ranks, err := tbl.Encode("GATTACA")
	require.NoError(t, err)
	require.Len(t, ranks, 7)
	for i, r := range "GATTACA" {
		want, _ := tbl.Rank(r)
		assert.Equal(t, want, ranks[i])
	}

	empty, err := tbl.Encode("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = tbl.Encode("GATNACA")
	require.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "position 3")
}

func TestTable_CopiesAreIndependent(t *testing.T) {
	tbl, err := scoring.BuildString("AC", 1, -1, -2)
	require.NoError(t, err)

	syms := tbl.Symbols()
	syms[1] = 'Z'
	assert.Equal(t, []rune("-AC"), tbl.Symbols())

	m := tbl.Map()
	m['A']['A'] = 99
	s, _ := tbl.Score('A', 'A')
	assert.Equal(t, 1, s)
}

func TestTable_String(t *testing.T) {
	tbl, err := scoring.BuildString("A", 2, 1, -1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "-")
	assert.Contains(t, lines[0], "A")
	assert.True(t, strings.HasPrefix(lines[2], "A "))
	assert.Contains(t, lines[2], "2")
}
