// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable indicates a nil *scoring.Table was supplied.
	ErrNilTable = errors.New("align: scoring table is nil")

	// ErrNilMatrix indicates a nil *Matrix was supplied to a traceback.
	ErrNilMatrix = errors.New("align: alignment matrix is nil")

	// ErrUnknownMode indicates a Mode value other than Global or Local.
	ErrUnknownMode = errors.New("align: unknown alignment mode")

	// ErrDimensionMismatch indicates the matrix shape does not match
	// (len(x)+1) × (len(y)+1).
	ErrDimensionMismatch = errors.New("align: matrix dimensions do not match sequences")

	// ErrModeMismatch indicates a traceback mode other than the one the
	// matrix was filled in.
	ErrModeMismatch = errors.New("align: matrix was filled in a different mode")

	// ErrOutOfRange indicates a matrix index outside valid bounds.
	ErrOutOfRange = errors.New("align: index out of range")

	// ErrBadShape indicates empty or ragged literal matrix rows.
	ErrBadShape = errors.New("align: invalid matrix shape")
)

// alignErrorf wraps err with an operation tag.
func alignErrorf(method, what string, err error) error {
	return fmt.Errorf("%s(%s): %w", method, what, err)
}
