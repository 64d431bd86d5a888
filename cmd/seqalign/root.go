// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/logging"
	"github.com/katalvlaran/seqalign/scoring"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out     io.Writer
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	table   *scoring.Table
	log     *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:               "seqalign",
		Short:             "Global and local pairwise sequence alignment",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	config.RegisterFlags(pf)

	root.AddCommand(a.alignCmd(), a.tableCmd(), a.matrixCmd())

	return root
}

// setup resolves configuration, the logger and the scoring table.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = log.Named(cmd.Name())

	tbl, err := cfg.Table()
	if err != nil {
		return err
	}
	a.table = tbl
	a.log.Debug("scoring table ready",
		zap.Int("symbols", tbl.Size()),
		zap.Bool("symmetric", tbl.IsSymmetric()),
		zap.String("source", tableSource(cfg)),
	)

	return nil
}

func tableSource(cfg *config.Config) string {
	if cfg.Matrix != "" {
		return cfg.Matrix
	}

	return "scalar"
}

// encode writes v in the configured structured format.
func (a *app) encode(v interface{}) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("encode: unsupported output %q", a.cfg.Output)
	}
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the resolved substitution table",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if a.cfg.Output == config.OutputText {
				_, err := io.WriteString(a.out, a.table.String())

				return err
			}

			return a.encode(scoring.ToDocument(a.table))
		},
	}
}
