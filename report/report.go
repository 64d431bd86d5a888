// SPDX-License-Identifier: MIT

// Package report summarizes and renders alignments for human consumption.
//
// Nothing here influences how an alignment is computed; it only consumes
// align.Alignment values.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// ErrRaggedAlignment indicates aligned rows of different lengths.
var ErrRaggedAlignment = errors.New("report: aligned rows differ in length")

// Column markers used in the middle line of Render.
const (
	MarkMatch    = '|'
	MarkMismatch = '.'
	MarkGap      = ' '
)

// Summary counts the column classes of an alignment.
type Summary struct {
	Columns    int     `json:"columns" yaml:"columns"`
	Matches    int     `json:"matches" yaml:"matches"`
	Mismatches int     `json:"mismatches" yaml:"mismatches"`
	Gaps       int     `json:"gaps" yaml:"gaps"`
	Identity   float64 `json:"identity" yaml:"identity"` // Matches / Columns, 0 when empty
}

// Summarize classifies every column of a. A column holding a gap on either
// side counts as a gap.
func Summarize(a align.Alignment) (Summary, error) {
	xr, yr := []rune(a.X), []rune(a.Y)
	if len(xr) != len(yr) {
		return Summary{}, fmt.Errorf("Summarize(%d,%d): %w", len(xr), len(yr), ErrRaggedAlignment)
	}

	s := Summary{Columns: len(xr)}
	for i := range xr {
		switch {
		case xr[i] == scoring.Gap || yr[i] == scoring.Gap:
			s.Gaps++
		case xr[i] == yr[i]:
			s.Matches++
		default:
			s.Mismatches++
		}
	}
	if s.Columns > 0 {
		s.Identity = float64(s.Matches) / float64(s.Columns)
	}

	return s, nil
}

// MatchLine returns the middle line of the rendered alignment.
func MatchLine(a align.Alignment) (string, error) {
	xr, yr := []rune(a.X), []rune(a.Y)
	if len(xr) != len(yr) {
		return "", fmt.Errorf("MatchLine(%d,%d): %w", len(xr), len(yr), ErrRaggedAlignment)
	}

	var sb strings.Builder
	for i := range xr {
		switch {
		case xr[i] == scoring.Gap || yr[i] == scoring.Gap:
			sb.WriteRune(MarkGap)
		case xr[i] == yr[i]:
			sb.WriteRune(MarkMatch)
		default:
			sb.WriteRune(MarkMismatch)
		}
	}

	return sb.String(), nil
}

// Render writes a as blocks of three lines (X, match line, Y), wrapping every
// width columns. width <= 0 disables wrapping. Blocks are separated by an
// empty line.
func Render(w io.Writer, a align.Alignment, width int) error {
	mid, err := MatchLine(a)
	if err != nil {
		return err
	}
	xr, mr, yr := []rune(a.X), []rune(mid), []rune(a.Y)
	n := len(xr)
	if width <= 0 || width > n {
		width = n
	}

	for start := 0; start < n; start += width {
		end := start + width
		if end > n {
			end = n
		}
		if start > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
			string(xr[start:end]), string(mr[start:end]), string(yr[start:end])); err != nil {
			return err
		}
	}

	return nil
}
