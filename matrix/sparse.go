package matrix

import (
	"fmt"
	"strings"

	"github.com/twoparam-tda/bigraded/column"
)

// Sparse is the Sparse Column Store: a fixed number of rows and an
// independently growable array of columns, each stored as a column.LazyHeap.
// It is the GF(2) analogue of the original engine's MapMatrix — a sparse
// matrix in which every logical entry is mod-2 membership, never a general
// scalar.
type Sparse struct {
	numRows int
	cols    []*column.LazyHeap
}

// NewSparse returns a Sparse Column Store with numRows rows and numCols
// empty columns. numRows and numCols must both be non-negative; NewSparse
// panics otherwise, since a negative dimension can only be a construction-
// time programmer error, never a runtime condition a caller should recover
// from.
func NewSparse(numRows, numCols int) *Sparse {
	if numRows < 0 || numCols < 0 {
		panic(fmt.Sprintf("matrix: invalid shape (%d, %d)", numRows, numCols))
	}
	cols := make([]*column.LazyHeap, numCols)
	for i := range cols {
		cols[i] = column.NewLazyHeap()
	}
	return &Sparse{numRows: numRows, cols: cols}
}

// NumRows reports the fixed row count.
func (s *Sparse) NumRows() int { return s.numRows }

// NumCols reports the current column count.
func (s *Sparse) NumCols() int { return len(s.cols) }

func (s *Sparse) checkCol(col int) error {
	if col < 0 || col >= len(s.cols) {
		return fmt.Errorf("column %d: %w", col, ErrIndexOutOfRange)
	}
	return nil
}

func (s *Sparse) checkRow(row int) error {
	if row < 0 || row >= s.numRows {
		return fmt.Errorf("row %d: %w", row, ErrIndexOutOfRange)
	}
	return nil
}

// Column returns the underlying column.LazyHeap for col, for callers (the
// reduction engine, mostly) that need direct access to its pivot/add
// operations. Returns ErrIndexOutOfRange if col is out of range.
func (s *Sparse) Column(col int) (*column.LazyHeap, error) {
	if err := s.checkCol(col); err != nil {
		return nil, err
	}
	return s.cols[col], nil
}

// SetEntry toggles row within col, pushing it onto the column's backing
// LazyHeap without restoring heap order. Returns ErrIndexOutOfRange if
// either index is out of range.
func (s *Sparse) SetEntry(row, col int) error {
	if err := s.checkRow(row); err != nil {
		return err
	}
	if err := s.checkCol(col); err != nil {
		return err
	}
	s.cols[col].SetEntry(row)
	return nil
}

// HeapifyCol restores heap order over col without cancelling duplicates.
func (s *Sparse) HeapifyCol(col int) error {
	if err := s.checkCol(col); err != nil {
		return err
	}
	s.cols[col].HeapifyCol()
	return nil
}

// Finalize cancels every duplicate row pair in col and leaves it heap-
// ordered with each surviving row present exactly once.
func (s *Sparse) Finalize(col int) error {
	if err := s.checkCol(col); err != nil {
		return err
	}
	s.cols[col].Finalize()
	return nil
}

// Pivot returns col's current maximum surviving row without mutating its
// logical content, or -1 if col is logically empty.
func (s *Sparse) Pivot(col int) (int, error) {
	if err := s.checkCol(col); err != nil {
		return 0, err
	}
	return s.cols[col].Pivot(), nil
}

// PivotFinalized returns col's heap-root row directly, assuming col has
// already been finalized. O(1) versus Pivot's amortized O(log n).
func (s *Sparse) PivotFinalized(col int) (int, error) {
	if err := s.checkCol(col); err != nil {
		return 0, err
	}
	return s.cols[col].PivotFinalized(), nil
}

// RemovePivot pops and returns col's current maximum surviving row,
// discarding it, or -1 if col is logically empty.
func (s *Sparse) RemovePivot(col int) (int, error) {
	if err := s.checkCol(col); err != nil {
		return 0, err
	}
	return s.cols[col].RemovePivot(), nil
}

// PushIndex pushes row back onto col and restores heap order.
func (s *Sparse) PushIndex(col, row int) error {
	if err := s.checkCol(col); err != nil {
		return err
	}
	if err := s.checkRow(row); err != nil {
		return err
	}
	s.cols[col].PushIndex(row)
	return nil
}

// AddTo adds column src onto column dst under mod-2 arithmetic (dst += src).
// Returns ErrInvariantViolation if src == dst, since adding a column to
// itself always yields the zero column and can only be a caller bug.
func (s *Sparse) AddTo(src, dst int) error {
	if err := s.checkCol(src); err != nil {
		return err
	}
	if err := s.checkCol(dst); err != nil {
		return err
	}
	if src == dst {
		return fmt.Errorf("column %d onto itself: %w", src, ErrInvariantViolation)
	}
	s.cols[dst].AddFrom(s.cols[src])
	return nil
}

// AddToOther adds column src of other onto column dst of s under mod-2
// arithmetic. Unlike AddTo, the two columns may belong to different Sparse
// instances (the original engine's "add_to(other_matrix)" overload); Go's
// column.LazyHeap does not care which store a sibling column came from, so
// this and AddTo share the same underlying LazyHeap.AddFrom.
func (s *Sparse) AddToOther(other *Sparse, src, dst int) error {
	if err := other.checkCol(src); err != nil {
		return err
	}
	if err := s.checkCol(dst); err != nil {
		return err
	}
	if other.numRows != s.numRows {
		return fmt.Errorf("row counts %d and %d: %w", s.numRows, other.numRows, ErrDimensionMismatch)
	}
	s.cols[dst].AddFrom(other.cols[src])
	return nil
}

// AddFromPopped adds column src onto column dst, skipping src's current
// heap-root entry (the pivot the caller has already consumed separately).
// src and dst may belong to different Sparse instances.
func (s *Sparse) AddFromPopped(other *Sparse, src, dst int) error {
	if err := other.checkCol(src); err != nil {
		return err
	}
	if err := s.checkCol(dst); err != nil {
		return err
	}
	if other.numRows != s.numRows {
		return fmt.Errorf("row counts %d and %d: %w", s.numRows, other.numRows, ErrDimensionMismatch)
	}
	s.cols[dst].AddFromPopped(other.cols[src])
	return nil
}

// Clear discards all entries of col, leaving it empty and heap-ordered.
func (s *Sparse) Clear(col int) error {
	if err := s.checkCol(col); err != nil {
		return err
	}
	s.cols[col].Clear()
	return nil
}

// MoveCol moves the contents of src into dst, leaving src empty. Matches
// the original's move_col: ownership transfers, the source slot is zeroed
// rather than left aliasing the destination.
func (s *Sparse) MoveCol(src, dst int) error {
	if err := s.checkCol(src); err != nil {
		return err
	}
	if err := s.checkCol(dst); err != nil {
		return err
	}
	if src == dst {
		return nil
	}
	s.cols[dst] = s.cols[src]
	s.cols[src] = column.NewLazyHeap()
	return nil
}

// AppendColFrom appends a new column to the end of s containing the moved
// content of other's src column, leaving other's src column empty. Used by
// the reduction engine to move a finished kernel generator out of the
// slave identity matrix and onto the back of the kernel result as it is
// discovered, bigrade by bigrade.
func (s *Sparse) AppendColFrom(other *Sparse, src int) error {
	if err := other.checkCol(src); err != nil {
		return err
	}
	s.cols = append(s.cols, other.cols[src])
	other.cols[src] = column.NewLazyHeap()
	return nil
}

// MoveColFrom moves column src of other into column dst of s, leaving
// other's src column empty. Used by FromLex to relocate column ranges
// between the lex-ordered source matrix and the colex-ordered matrix being
// built from it.
func (s *Sparse) MoveColFrom(other *Sparse, src, dst int) error {
	if err := other.checkCol(src); err != nil {
		return err
	}
	if err := s.checkCol(dst); err != nil {
		return err
	}
	s.cols[dst] = other.cols[src]
	other.cols[src] = column.NewLazyHeap()
	return nil
}

// Contains reports whether row has odd multiplicity (mod-2 membership) in
// col.
func (s *Sparse) Contains(row, col int) (bool, error) {
	if err := s.checkRow(row); err != nil {
		return false, err
	}
	if err := s.checkCol(col); err != nil {
		return false, err
	}
	return s.cols[col].Contains(row), nil
}

// String renders a dense 0/1 grid for test failure messages; this is never
// used for anything but debug output, matching the original's print()/
// _print_sparse() helpers becoming an idiomatic fmt.Stringer here.
func (s *Sparse) String() string {
	var b strings.Builder
	for r := 0; r < s.numRows; r++ {
		for c := range s.cols {
			if s.cols[c].Contains(r) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			if c+1 < len(s.cols) {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
