// SPDX-License-Identifier: MIT

package align

import (
	"github.com/katalvlaran/seqalign/scoring"
)

// Align fills the matrix for x and y and traces back one optimal alignment
// in the given mode. The matrix is discarded afterwards.
//
// Example:
//
//	t, _ := scoring.Build([]rune("AT"), 10, 4, -6)
//	res, err := align.Align("AA", "TAAT", t, align.Local)
//	// res.Score == 20, res.X == "AA", res.Y == "AA"
func Align(x, y string, t *scoring.Table, mode Mode) (Alignment, error) {
	m, err := Fill(x, y, t, mode)
	if err != nil {
		return Alignment{}, err
	}

	return Traceback(x, y, t, m, mode)
}
