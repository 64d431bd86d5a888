// SPDX-License-Identifier: MIT

package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// TestFill_EmptySequences verifies the 1×1 matrix for two empty inputs.
func TestFill_EmptySequences(t *testing.T) {
	tbl := oneLetterTable(t)

	for _, mode := range []align.Mode{align.Global, align.Local} {
		m, err := align.Fill("", "", tbl, mode)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0}}, m.ToRows(), "mode %s", mode)
		assert.Equal(t, mode, m.Mode())
	}
}

// TestFill_GapAsSymbol aligns against a literal gap marker.
func TestFill_GapAsSymbol(t *testing.T) {
	m, err := align.Fill("A", "-", oneLetterTable(t), align.Global)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, -1}, {-1, -1}}, m.ToRows())
}

// TestFill_GlobalTwoLetters checks every row of the AA/TAAT fixture.
func TestFill_GlobalTwoLetters(t *testing.T) {
	m, err := align.Fill("AA", "TAAT", atTable(t), align.Global)
	require.NoError(t, err)

	assert.Equal(t, globalAATAAT, m.ToRows())
	assert.Equal(t, []int{-12, -2, 14, 14, 8}, m.Row(2))
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 5, m.Cols())
}

// TestFill_LocalTwoLetters checks the same fixture under zero flooring.
func TestFill_LocalTwoLetters(t *testing.T) {
	m, err := align.Fill("AA", "TAAT", atTable(t), align.Local)
	require.NoError(t, err)

	assert.Equal(t, localAATAAT, m.ToRows())
	assert.Equal(t, []int{0, 4, 14, 20, 14}, m.Row(2))
}

// TestFill_Errors covers the nil table, bad mode and unknown symbols.
func TestFill_Errors(t *testing.T) {
	tbl := atTable(t)

	_, err := align.Fill("A", "A", nil, align.Global)
	assert.ErrorIs(t, err, align.ErrNilTable)

	_, err = align.Fill("A", "A", tbl, align.Mode(7))
	assert.ErrorIs(t, err, align.ErrUnknownMode)

	_, err = align.Fill("AGA", "TAAT", tbl, align.Global)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)

	_, err = align.Fill("AA", "TAxT", tbl, align.Local)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}

// TestFill_Invariants checks the boundary and the Local floor over random inputs.
func TestFill_Invariants(t *testing.T) {
	tbl := dnaTable(t)
	rng := newRNG()

	for n := 0; n < 40; n++ {
		x := randomSeq(rng, "ACGT", rng.Intn(25))
		y := randomSeq(rng, "ACGT", rng.Intn(25))

		for _, mode := range []align.Mode{align.Global, align.Local} {
			m, err := align.Fill(x, y, tbl, mode)
			require.NoError(t, err)
			require.Equal(t, len(x)+1, m.Rows())
			require.Equal(t, len(y)+1, m.Cols())

			v, err := m.At(0, 0)
			require.NoError(t, err)
			assert.Zero(t, v)

			if mode == align.Local {
				for _, row := range m.ToRows() {
					for _, cell := range row {
						assert.GreaterOrEqual(t, cell, 0)
					}
				}
			}
		}
	}
}

// TestFillScore_MatchesFill confirms the two-row kernel agrees with the full matrix.
func TestFillScore_MatchesFill(t *testing.T) {
	tbl := dnaTable(t)
	rng := newRNG()

	for n := 0; n < 40; n++ {
		x := randomSeq(rng, "ACGT", rng.Intn(30))
		y := randomSeq(rng, "ACGT", rng.Intn(30))

		m, err := align.Fill(x, y, tbl, align.Global)
		require.NoError(t, err)
		got, err := align.FillScore(x, y, tbl, align.Global)
		require.NoError(t, err)
		want, _ := m.At(len(x), len(y))
		assert.Equal(t, want, got, "global %q/%q", x, y)

		m, err = align.Fill(x, y, tbl, align.Local)
		require.NoError(t, err)
		got, err = align.FillScore(x, y, tbl, align.Local)
		require.NoError(t, err)
		want, _, _ = m.Max()
		assert.Equal(t, want, got, "local %q/%q", x, y)
	}
}

func TestFillScore_Errors(t *testing.T) {
	_, err := align.FillScore("A", "A", nil, align.Local)
	assert.ErrorIs(t, err, align.ErrNilTable)

	_, err = align.FillScore("N", "A", atTable(t), align.Local)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}
