// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All exported
// operations MUST return these sentinels (never panic on caller-triggered
// conditions) and tests MUST check them via errors.Is. Do not wrap these at
// definition time; wrap with fmt.Errorf("%s: %w", ctx, ErrX) at call sites
// that need extra context.
package matrix

import "errors"

var (
	// ErrIndexOutOfRange is returned when a row or column index falls
	// outside the matrix's stored dimensions. Corresponds to spec.md's
	// IndexOutOfRange error kind.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrInvariantViolation is returned by Sparse.AddTo when asked to add a
	// column to itself. Sparse has no paranoid checking mode: a duplicate
	// SetEntry and a pivot query on a Dirty column are not detected and do
	// not return it. Corresponds to spec.md's InvariantViolation error kind.
	ErrInvariantViolation = errors.New("matrix: invariant violation")

	// ErrAbortedByCaller names the caller-cancellation condition.
	// Corresponds to spec.md's AbortedByCaller error kind. reduce.Kernel
	// reports cancellation with its own, distinct reduce.ErrAbortedByCaller,
	// so errors.Is against this value does not match Kernel's error.
	ErrAbortedByCaller = errors.New("matrix: aborted by caller")

	// ErrDimensionMismatch is returned when two matrices expected to share
	// a dimension (row count for a column add, shape for a kernel check)
	// do not.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape names an invalid matrix shape (negative row/column
	// counts). No operation in this package returns it: NewSparse panics on
	// a negative dimension instead.
	ErrBadShape = errors.New("matrix: invalid shape")
)
