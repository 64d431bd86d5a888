// SPDX-License-Identifier: MIT

package scoring

import (
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of a scoring source. Exactly one of the two
// forms must be present:
//
//	# scalar form, expanded with Build
//	alphabet: ACGT
//	diagonal: 10
//	offDiagonal: 4
//	gap: -6
//
//	# explicit form, loaded with FromMap
//	matrix:
//	  "-": {"-": -6, A: -6, T: -6}
//	  A:   {"-": -6, A: 10, T: 4}
//	  T:   {"-": -6, A: 4, T: 10}
type Document struct {
	Alphabet    string                    `yaml:"alphabet,omitempty" json:"alphabet,omitempty"`
	Diagonal    *int                      `yaml:"diagonal,omitempty" json:"diagonal,omitempty"`
	OffDiagonal *int                      `yaml:"offDiagonal,omitempty" json:"offDiagonal,omitempty"`
	Gap         *int                      `yaml:"gap,omitempty" json:"gap,omitempty"`
	Matrix      map[string]map[string]int `yaml:"matrix,omitempty" json:"matrix,omitempty"`
}

// Table resolves the document into a Table.
func (d *Document) Table() (*Table, error) {
	scalar := d.Diagonal != nil || d.OffDiagonal != nil || d.Gap != nil || d.Alphabet != ""
	explicit := len(d.Matrix) > 0
	switch {
	case scalar && explicit:
		return nil, scoringErrorf(ctxLoad, "both scalar and matrix forms given", ErrBadDocument)
	case explicit:
		return d.explicitTable()
	case scalar:
		if d.Diagonal == nil || d.OffDiagonal == nil || d.Gap == nil {
			return nil, scoringErrorf(ctxLoad, "diagonal, offDiagonal and gap are all required", ErrBadDocument)
		}

		return Build([]rune(d.Alphabet), *d.Diagonal, *d.OffDiagonal, *d.Gap)
	default:
		return nil, scoringErrorf(ctxLoad, "empty document", ErrBadDocument)
	}
}

func (d *Document) explicitTable() (*Table, error) {
	m := make(map[rune]map[rune]int, len(d.Matrix))
	for ks, row := range d.Matrix {
		a, err := singleRune(ks)
		if err != nil {
			return nil, err
		}
		out := make(map[rune]int, len(row))
		for ls, s := range row {
			b, err := singleRune(ls)
			if err != nil {
				return nil, err
			}
			out[b] = s
		}
		m[a] = out
	}

	return FromMap(m)
}

func singleRune(s string) (rune, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || r == utf8.RuneError {
		return 0, scoringErrorf(ctxLoad, "key %q is not a single symbol", ErrBadDocument, s)
	}

	return r, nil
}

// LoadYAML decodes a Document from r and resolves it into a Table.
func LoadYAML(r io.Reader) (*Table, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, scoringErrorf(ctxLoad, "empty document", ErrBadDocument)
		}

		return nil, scoringErrorf(ctxLoad, "%v", ErrBadDocument, err)
	}

	return doc.Table()
}

// LoadFile opens path and calls LoadYAML.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadYAML(f)
}

// ToDocument exports t in the explicit matrix form.
func ToDocument(t *Table) Document {
	m := t.Map()
	doc := Document{Matrix: make(map[string]map[string]int, len(m))}
	for a, row := range m {
		out := make(map[string]int, len(row))
		for b, s := range row {
			out[string(b)] = s
		}
		doc.Matrix[string(a)] = out
	}

	return doc
}
