// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

// Mode selects the alignment recurrence and traceback rules.
//
//   - Global is Needleman–Wunsch: unclamped cells, traceback from the
//     bottom-right corner through to (0,0).
//   - Local is Smith–Waterman: cells floored at 0, traceback from the
//     maximum cell until a zero cell is reached.
type Mode int

const (
	// Global aligns both sequences end to end.
	Global Mode = iota

	// Local aligns the best-scoring pair of substrings.
	Local
)

// String returns "global" or "local".
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) validate(method string) error {
	if m != Global && m != Local {
		return alignErrorf(method, m.String(), ErrUnknownMode)
	}

	return nil
}

// ParseMode accepts "global"/"nw"/"needleman-wunsch" and
// "local"/"sw"/"smith-waterman", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "nw", "needleman-wunsch":
		return Global, nil
	case "local", "sw", "smith-waterman":
		return Local, nil
	default:
		return 0, alignErrorf("ParseMode", s, ErrUnknownMode)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if err := m.validate("Mode.MarshalText"); err != nil {
		return nil, err
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Alignment is one optimal alignment of X against Y.
//
// X and Y have equal rune length. Removing the gap markers from X yields
// x[XStart:XEnd] of the original input (rune offsets); likewise for Y. For
// Global alignments the spans always cover both inputs entirely.
type Alignment struct {
	Mode   Mode   `json:"mode" yaml:"mode"`
	Score  int    `json:"score" yaml:"score"`
	X      string `json:"x" yaml:"x"`
	Y      string `json:"y" yaml:"y"`
	XStart int    `json:"xStart" yaml:"xStart"`
	XEnd   int    `json:"xEnd" yaml:"xEnd"`
	YStart int    `json:"yStart" yaml:"yStart"`
	YEnd   int    `json:"yEnd" yaml:"yEnd"`
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int {
	return len([]rune(a.X))
}
