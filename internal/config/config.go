// SPDX-License-Identifier: MIT

// Package config resolves command line settings from flags, SEQALIGN_*
// environment variables and an optional YAML config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// EnvPrefix is the environment variable prefix, e.g. SEQALIGN_MODE.
const EnvPrefix = "SEQALIGN"

// Keys shared by flags, environment and config file.
const (
	KeyMode      = "mode"
	KeyAlphabet  = "alphabet"
	KeyMatch     = "match"
	KeyMismatch  = "mismatch"
	KeyGap       = "gap"
	KeyMatrix    = "matrix"
	KeyOutput    = "output"
	KeyWidth     = "width"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Defaults.
const (
	DefaultMode      = "global"
	DefaultAlphabet  = "ACGT"
	DefaultMatch     = 5
	DefaultMismatch  = -4
	DefaultGap       = -6
	DefaultOutput    = OutputText
	DefaultWidth     = 60
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	Mode      string `mapstructure:"mode"`
	Alphabet  string `mapstructure:"alphabet"`
	Match     int    `mapstructure:"match"`
	Mismatch  int    `mapstructure:"mismatch"`
	Gap       int    `mapstructure:"gap"`
	Matrix    string `mapstructure:"matrix"` // scoring document; overrides the scalar scores
	Output    string `mapstructure:"output"`
	Width     int    `mapstructure:"width"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// RegisterFlags adds every configuration flag to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyMode, "m", DefaultMode, "alignment mode: global|local")
	fs.StringP(KeyAlphabet, "a", DefaultAlphabet, "sequence alphabet (gap marker '-' excluded)")
	fs.Int(KeyMatch, DefaultMatch, "score for identical symbols")
	fs.Int(KeyMismatch, DefaultMismatch, "score for differing symbols")
	fs.Int(KeyGap, DefaultGap, "score for a symbol against a gap")
	fs.String(KeyMatrix, "", "YAML scoring document (overrides alphabet/match/mismatch/gap)")
	fs.StringP(KeyOutput, "o", DefaultOutput, "output format: text|json|yaml")
	fs.Int(KeyWidth, DefaultWidth, "text output line width, 0 disables wrapping")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level: debug|info|warn|error")
	fs.String(KeyLogFormat, DefaultLogFormat, "log format: console|json")
}

// Load resolves a Config. fs may be nil; file may be empty.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (*Config, error) {
	v.SetDefault(KeyMode, DefaultMode)
	v.SetDefault(KeyAlphabet, DefaultAlphabet)
	v.SetDefault(KeyMatch, DefaultMatch)
	v.SetDefault(KeyMismatch, DefaultMismatch)
	v.SetDefault(KeyGap, DefaultGap)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyWidth, DefaultWidth)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the option values without touching the filesystem.
func (c *Config) Validate() error {
	if _, err := align.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidConfig, c.Output)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width %d must be >= 0", ErrInvalidConfig, c.Width)
	}
	if c.Matrix == "" && strings.ContainsRune(c.Alphabet, scoring.Gap) {
		return fmt.Errorf("%w: alphabet %q contains the gap marker", ErrInvalidConfig, c.Alphabet)
	}

	return nil
}

// AlignMode returns the parsed alignment mode.
func (c *Config) AlignMode() align.Mode {
	m, _ := align.ParseMode(c.Mode)

	return m
}

// Table builds the scoring table: from the Matrix document when set,
// otherwise from the alphabet and the three scalar scores. Symbols from
// either source are folded to upper case to match the sequence reader.
func (c *Config) Table() (*scoring.Table, error) {
	if c.Matrix != "" {
		t, err := scoring.LoadFile(c.Matrix)
		if err != nil {
			return nil, err
		}

		return foldTable(t)
	}

	return scoring.BuildString(strings.ToUpper(c.Alphabet), c.Match, c.Mismatch, c.Gap)
}

// foldTable upper-cases the symbols of a loaded table so it matches the
// upper-cased sequences. Two symbols folding to the same letter are rejected.
func foldTable(t *scoring.Table) (*scoring.Table, error) {
	seen := make(map[rune]rune, t.Size())
	for _, r := range t.Symbols() {
		u := unicode.ToUpper(r)
		if prev, dup := seen[u]; dup {
			return nil, fmt.Errorf("%w: matrix symbols %q and %q both fold to %q", ErrInvalidConfig, prev, r, u)
		}
		seen[u] = r
	}

	src := t.Map()
	folded := make(map[rune]map[rune]int, len(src))
	for a, row := range src {
		out := make(map[rune]int, len(row))
		for b, v := range row {
			out[unicode.ToUpper(b)] = v
		}
		folded[unicode.ToUpper(a)] = out
	}

	return scoring.FromMap(folded)
}
