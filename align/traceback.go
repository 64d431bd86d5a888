// SPDX-License-Identifier: MIT

package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
)

// Traceback walks a filled matrix backward and reconstructs one optimal
// alignment of x against y.
//
// Start:
//   - Global: cell (len(x), len(y)).
//   - Local:  the first maximum cell in row-major order (see Matrix.Max).
//
// Each step, while i > 0 or j > 0:
//  1. Local only: stop if S[i][j] == 0.
//  2. If i > 0 and j > 0:
//     diag  if S[i][j] == S[i-1][j-1] + score(x[i-1], y[j-1])
//     up    if S[i][j] == S[i-1][j]   + score(x[i-1], '-')
//     left  otherwise
//  3. Otherwise drain: up while i > 0, then left while j > 0.
//
// The returned Score is the value of the start cell.
//
// Errors:
//   - ErrNilTable, ErrNilMatrix, ErrUnknownMode.
//   - scoring.ErrUnknownSymbol for symbols t does not cover.
//   - ErrDimensionMismatch when m is not (len(x)+1)×(len(y)+1).
//   - ErrModeMismatch when m was filled in a mode other than mode.
//
// Complexity: Time O(n+m) for the walk (O(n·m) to locate the Local start).
func Traceback(x, y string, t *scoring.Table, m *Matrix, mode Mode) (Alignment, error) {
	if m == nil {
		return Alignment{}, alignErrorf(ctxTrace, "matrix", ErrNilMatrix)
	}
	xs, ys, err := prepare(ctxTrace, x, y, t, mode)
	if err != nil {
		return Alignment{}, err
	}
	if m.r != len(xs)+1 || m.c != len(ys)+1 {
		what := fmt.Sprintf("%dx%d for lengths %d,%d", m.r, m.c, len(xs), len(ys))
		return Alignment{}, alignErrorf(ctxTrace, what, ErrDimensionMismatch)
	}
	if m.mode != mode {
		what := fmt.Sprintf("%s matrix, %s traceback", m.mode, mode)
		return Alignment{}, alignErrorf(ctxTrace, what, ErrModeMismatch)
	}

	w := walker{
		xr: []rune(x),
		yr: []rune(y),
		xs: xs,
		ys: ys,
		t:  t,
		m:  m,
	}

	return w.run(mode), nil
}

// TracebackGlobal is Traceback in Global mode.
func TracebackGlobal(x, y string, t *scoring.Table, m *Matrix) (Alignment, error) {
	return Traceback(x, y, t, m, Global)
}

// TracebackLocal is Traceback in Local mode.
func TracebackLocal(x, y string, t *scoring.Table, m *Matrix) (Alignment, error) {
	return Traceback(x, y, t, m, Local)
}

// walker holds the state of one backward walk. ax/ay collect columns in
// reverse order.
type walker struct {
	xr, yr []rune
	xs, ys []int
	t      *scoring.Table
	m      *Matrix
	ax, ay []rune
}

func (w *walker) run(mode Mode) Alignment {
	var score, i, j int
	if mode == Local {
		score, i, j = w.m.Max()
	} else {
		i, j = len(w.xs), len(w.ys)
		score = w.m.at(i, j)
	}
	endI, endJ := i, j

	capHint := i + j
	w.ax = make([]rune, 0, capHint)
	w.ay = make([]rune, 0, capHint)

	gap := w.t.GapRank()
	for i > 0 || j > 0 {
		cur := w.m.at(i, j)
		if mode == Local && cur == 0 {
			break
		}
		switch {
		case i > 0 && j > 0 && cur == w.m.at(i-1, j-1)+w.t.ScoreAt(w.xs[i-1], w.ys[j-1]):
			w.push(w.xr[i-1], w.yr[j-1])
			i--
			j--
		case i > 0 && (j == 0 || cur == w.m.at(i-1, j)+w.t.ScoreAt(w.xs[i-1], gap)):
			w.push(w.xr[i-1], scoring.Gap)
			i--
		default:
			w.push(scoring.Gap, w.yr[j-1])
			j--
		}
	}

	return Alignment{
		Mode:   mode,
		Score:  score,
		X:      reversed(w.ax),
		Y:      reversed(w.ay),
		XStart: i,
		XEnd:   endI,
		YStart: j,
		YEnd:   endJ,
	}
}

func (w *walker) push(a, b rune) {
	w.ax = append(w.ax, a)
	w.ay = append(w.ay, b)
}

// reversed returns s back to front as a string.
func reversed(s []rune) string {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}

	return string(s)
}
