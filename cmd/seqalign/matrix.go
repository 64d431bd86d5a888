// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
)

// matrixDoc is the structured output of the matrix command.
type matrixDoc struct {
	Mode align.Mode `json:"mode" yaml:"mode"`
	Rows [][]int    `json:"rows" yaml:"rows,flow"`
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix SEQX SEQY",
		Short: "Print the filled alignment matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, y := strings.ToUpper(args[0]), strings.ToUpper(args[1])
			m, err := align.Fill(x, y, a.table, a.cfg.AlignMode())
			if err != nil {
				return err
			}
			a.log.Debug("matrix filled", zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

			if a.cfg.Output == config.OutputText {
				_, err := io.WriteString(a.out, m.String())

				return err
			}

			return a.encode(matrixDoc{Mode: m.Mode(), Rows: m.ToRows()})
		},
	}
}
