// SPDX-License-Identifier: MIT

// Package seqio reads sequences for the command line tools.
//
// Two layouts are accepted:
//   - FASTA: the first non-blank line starts with '>'. Records are parsed
//     by the biogo FASTA reader; a record is named by the first word of
//     its header.
//   - Plain: one sequence per non-blank line, named "seq1", "seq2", ...
//
// Sequence letters are upper-cased and all whitespace is dropped. Lines
// starting with ';' are comments in both layouts.
package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrNoSequences indicates the input held no sequence records.
	ErrNoSequences = errors.New("seqio: no sequences found")

	// ErrUnexpectedRecord indicates the FASTA reader returned a sequence
	// type other than the linear template.
	ErrUnexpectedRecord = errors.New("seqio: unexpected record type")
)

// maxLine bounds a single input line.
const maxLine = 64 << 20

// Record is one named sequence.
type Record struct {
	Name     string
	Sequence string
}

// ReadSequences parses every record in r.
func ReadSequences(r io.Reader) ([]Record, error) {
	lines, err := contentLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoSequences
	}

	var records []Record
	if strings.HasPrefix(lines[0], ">") {
		records, err = readFasta(strings.NewReader(strings.Join(lines, "\n")))
		if err != nil {
			return nil, err
		}
	} else {
		records = make([]Record, 0, len(lines))
		for i, line := range lines {
			records = append(records, Record{Name: defaultName(i), Sequence: normalize(line)})
		}
	}
	if len(records) == 0 {
		return nil, ErrNoSequences
	}

	return records, nil
}

// ReadFile opens path and calls ReadSequences.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := ReadSequences(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// contentLines returns the trimmed lines of r, without blanks and comments.
func contentLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// readFasta drains a biogo FASTA scanner into records.
func readFasta(r io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := bioseqio.NewScanner(fasta.NewReader(r, template))

	var records []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedRecord, sc.Seq())
		}
		name := s.Name()
		if name == "" {
			name = defaultName(len(records))
		}
		records = append(records, Record{Name: name, Sequence: normalize(letters(s.Seq))})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("seqio: fasta: %w", err)
	}

	return records, nil
}

// letters converts biogo letters back to text. Letters are single bytes,
// so multi-byte UTF-8 symbols survive the round trip.
func letters(ls alphabet.Letters) string {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = byte(l)
	}

	return string(b)
}

func defaultName(i int) string {
	return fmt.Sprintf("seq%d", i+1)
}

// normalize upper-cases s and drops whitespace.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
