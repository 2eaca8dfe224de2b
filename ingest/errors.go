package ingest

import "errors"

// Sentinel errors returned by Builder. Each is wrapped with
// github.com/pkg/errors at the call site so a caller assembling a matrix
// from malformed or adversarial input gets a stack trace. For
// ErrDuplicateEntry it points at the AddEntry call that repeated a pair;
// the bigrade-layout errors are detected and wrapped inside Build.
var (
	// ErrDuplicateEntry is returned by AddEntry when validation is enabled
	// and (row, col) was already set — violating the uniqueness promise
	// matrix.Sparse.SetEntry otherwise trusts the caller to keep.
	ErrDuplicateEntry = errors.New("ingest: duplicate (row, col) entry")

	// ErrBigradeOutOfOrder is returned when MarkBigrade's recorded last-
	// column indices are not non-decreasing in the declared layout order.
	ErrBigradeOutOfOrder = errors.New("ingest: bigrade column ranges out of order")

	// ErrColumnCountMismatch is returned by Build when the final bigrade's
	// last column index is not the last of the numCols columns the Builder
	// was created with.
	ErrColumnCountMismatch = errors.New("ingest: bigrade layout does not cover every column")

	// ErrBigradeNotFullyCovered is returned by Build when fewer bigrade
	// cells were marked than the declared outer/inner grid size.
	ErrBigradeNotFullyCovered = errors.New("ingest: not every declared bigrade was marked")
)
