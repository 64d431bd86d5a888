// SPDX-License-Identifier: MIT

package scoring

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "scoring: ". Callers branch with errors.Is;
// context is attached by wrapping with %w at the detection site.
var (
	// ErrInvalidAlphabet indicates the gap marker was supplied as an alphabet symbol.
	ErrInvalidAlphabet = errors.New("scoring: gap marker must not be part of the alphabet")

	// ErrUnknownSymbol indicates a lookup for a symbol the table does not cover.
	ErrUnknownSymbol = errors.New("scoring: unknown symbol")

	// ErrMissingGap indicates a precomputed table lacks the gap row or column.
	ErrMissingGap = errors.New("scoring: table has no gap entries")

	// ErrIncompleteTable indicates a precomputed table lacks at least one ordered pair.
	ErrIncompleteTable = errors.New("scoring: table is missing symbol pairs")

	// ErrBadDocument indicates a scoring document that is neither the scalar
	// form nor the explicit matrix form.
	ErrBadDocument = errors.New("scoring: malformed scoring document")
)

// scoringErrorf attaches a method tag and detail to a sentinel.
func scoringErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
