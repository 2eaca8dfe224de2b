package column

import "errors"

// Sentinel errors returned by column operations. Callers should compare with
// errors.Is; packages above column wrap these with fmt.Errorf("%s: %w", ...)
// to add column/row context before returning them to their own callers.
var (
	// ErrEmptyColumn names the empty-column condition for operations that
	// have no sentinel "-1" return available in their signature. Every
	// operation in this package reports an empty column with -1, so none of
	// them returns it.
	ErrEmptyColumn = errors.New("column: empty column")

	// ErrNotFinalized is returned when an operation that requires a
	// Finalized column (PivotFinalizedChecked, Sort) is called on a column that is
	// still Dirty or Heaped. Only raised when a LazyHeap has CheckInvariants
	// enabled; by default the read proceeds against whatever state the
	// underlying slice happens to be in, matching the original's
	// non-paranoid build.
	ErrNotFinalized = errors.New("column: operation requires a finalized column")

	// ErrSelfAdd is returned by List.AddColumn when the source and
	// destination column are the same object; adding a column to itself
	// under mod-2 arithmetic always yields the zero column, which is never
	// a useful operation and is far more likely a caller bug.
	ErrSelfAdd = errors.New("column: cannot add a column to itself")
)
