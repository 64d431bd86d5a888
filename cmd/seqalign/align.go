// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/seqio"
	"github.com/katalvlaran/seqalign/report"
)

// errNeedPair is returned when the command cannot find two sequences.
var errNeedPair = errors.New("need exactly two sequences: pass SEQX SEQY or --fasta with at least two records")

// result is the structured output of the align command.
type result struct {
	XName     string          `json:"xName" yaml:"xName"`
	YName     string          `json:"yName" yaml:"yName"`
	Alignment align.Alignment `json:"alignment" yaml:"alignment"`
	Summary   report.Summary  `json:"summary" yaml:"summary"`
}

// readPair returns the two records to align, from --fasta or from args.
func readPair(fasta string, args []string) (x, y seqio.Record, err error) {
	if fasta != "" {
		if len(args) != 0 {
			return x, y, errNeedPair
		}
		recs, err := seqio.ReadFile(fasta)
		if err != nil {
			return x, y, err
		}
		if len(recs) < 2 {
			return x, y, fmt.Errorf("%s: %w", fasta, errNeedPair)
		}

		return recs[0], recs[1], nil
	}
	if len(args) != 2 {
		return x, y, errNeedPair
	}

	return seqio.Record{Name: "x", Sequence: strings.ToUpper(args[0])},
		seqio.Record{Name: "y", Sequence: strings.ToUpper(args[1])}, nil
}

func (a *app) alignCmd() *cobra.Command {
	var fasta string
	cmd := &cobra.Command{
		Use:   "align [SEQX SEQY]",
		Short: "Align two sequences and print the optimal alignment",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, y, err := readPair(fasta, args)
			if err != nil {
				return err
			}
			mode := a.cfg.AlignMode()
			a.log.Debug("aligning",
				zap.Stringer("mode", mode),
				zap.String("x", x.Name), zap.Int("lenX", len(x.Sequence)),
				zap.String("y", y.Name), zap.Int("lenY", len(y.Sequence)),
			)

			start := time.Now()
			res, err := align.Align(x.Sequence, y.Sequence, a.table, mode)
			if err != nil {
				return err
			}
			sum, err := report.Summarize(res)
			if err != nil {
				return err
			}
			a.log.Info("alignment done",
				zap.Int("score", res.Score),
				zap.Int("columns", sum.Columns),
				zap.Duration("elapsed", time.Since(start)),
			)

			out := result{XName: x.Name, YName: y.Name, Alignment: res, Summary: sum}
			if a.cfg.Output == config.OutputText {
				return a.writeText(out)
			}

			return a.encode(out)
		},
	}
	cmd.Flags().StringVar(&fasta, "fasta", "", "read the two sequences from a FASTA or plain text file")

	return cmd
}

func (a *app) writeText(r result) error {
	al, s := r.Alignment, r.Summary
	if _, err := fmt.Fprintf(a.out, "mode:     %s\nscore:    %d\n%s[%d:%d] vs %s[%d:%d]\n\n",
		al.Mode, al.Score, r.XName, al.XStart, al.XEnd, r.YName, al.YStart, al.YEnd); err != nil {
		return err
	}
	if err := report.Render(a.out, al, a.cfg.Width); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "\nidentity: %.2f%% (%d/%d), mismatches %d, gaps %d\n",
		100*s.Identity, s.Matches, s.Columns, s.Mismatches, s.Gaps)

	return err
}
