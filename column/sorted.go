package column

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Sorted is the terminal, ascending, duplicate-free form of a column used
// by presentation minimization. It is reached from a Finalized LazyHeap via
// Sort, never built up directly from Dirty entries the way List and
// LazyHeap are.
//
// A Roaring bitmap is both a sorted set of non-negative integers and a
// mod-2 group under Xor, which makes it a strictly better realization of
// the original's add_to_sorted (std::set_symmetric_difference over two
// sorted vectors) than a hand-rolled merge: membership, max, and symmetric
// difference are all native bitmap operations instead of linear scans.
type Sorted struct {
	bm *roaring.Bitmap
}

// NewSorted returns an empty Sorted column.
func NewSorted() *Sorted {
	return &Sorted{bm: roaring.New()}
}

// Sort converts a Finalized LazyHeap into a Sorted column, draining l of
// its entries in the process (l is left empty and StateFinalized). If
// CheckInvariants is set on l and it is not yet Finalized, returns
// ErrNotFinalized and leaves l untouched.
func Sort(l *LazyHeap) (*Sorted, error) {
	if l.CheckInvariants && l.state != StateFinalized {
		return nil, ErrNotFinalized
	}
	rows := l.sortedRawRows()
	bm := roaring.New()
	for _, r := range rows {
		bm.Add(uint32(r))
	}
	return &Sorted{bm: bm}, nil
}

// ToLazyHeap converts a Sorted column back into an unpermuted, Finalized
// LazyHeap. The round trip loses no information: Sorted is already
// duplicate-free, so Finalize on the result is immediately a no-op.
func (s *Sorted) ToLazyHeap() *LazyHeap {
	l := NewLazyHeap()
	it := s.bm.Iterator()
	for it.HasNext() {
		l.rows = append(l.rows, int(it.Next()))
	}
	// Roaring iterates ascending; LazyHeap wants heap (max-root) order.
	for i, j := 0, len(l.rows)-1; i < j; i, j = i+1, j-1 {
		l.rows[i], l.rows[j] = l.rows[j], l.rows[i]
	}
	l.HeapifyCol()
	l.state = StateFinalized
	return l
}

// Contains reports whether row is a member, via a native bitmap lookup
// rather than the original's binary search over a sorted std::vector.
func (s *Sorted) Contains(row int) bool {
	return s.bm.Contains(uint32(row))
}

// Max returns the largest stored row, or -1 if the column is empty.
func (s *Sorted) Max() int {
	if s.bm.IsEmpty() {
		return -1
	}
	return int(s.bm.Maximum())
}

// Len reports the number of stored rows.
func (s *Sorted) Len() int {
	return int(s.bm.GetCardinality())
}

// Rows returns the column's stored rows in ascending order.
func (s *Sorted) Rows() []int {
	arr := s.bm.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// AddSorted adds other's rows onto s under mod-2 arithmetic: Xor is exactly
// symmetric difference, so this single bitmap operation replaces the
// original's std::set_symmetric_difference merge pass.
func (s *Sorted) AddSorted(other *Sorted) {
	s.bm.Xor(other.bm)
}

// Clone returns an independent deep copy of s.
func (s *Sorted) Clone() *Sorted {
	return &Sorted{bm: s.bm.Clone()}
}
