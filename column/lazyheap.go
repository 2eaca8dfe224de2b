package column

import (
	"container/heap"

	"github.com/twoparam-tda/bigraded/scratch"
)

// LazyHeap is the lazy max-heap vector form of a sparse column: row indices
// are pushed in arbitrary order and a valid max-heap is restored only when
// HeapifyCol or Finalize runs, exactly as PHAT's vector_heap representation
// defers the cost of ordering until a pivot is actually needed. Duplicate
// rows (mod-2 cancellation) are resolved lazily too: PivotFinalized assumes
// Finalize already cancelled pairs, while Pivot/RemovePivot cancel pairs
// on demand without mutating the logical column.
//
// The backing slice always stores raw row indices. A permuted column
// (constructed by matrix.Permuted) supplies a non-identity key/unkey pair so
// that heap ordering and the observable pivot value are both taken in
// permuted space, while duplicate-row cancellation still compares raw
// indices — mirroring vector_heap_perm's split between its perm-aware
// comparator and its raw equality check in _pop_max_index.
type LazyHeap struct {
	rows  []int
	dirty int // entries pushed since the last HeapifyCol/Finalize

	// key maps a raw stored row to its observable value (identity for an
	// unpermuted column, perm[raw] for a permuted one).
	key func(raw int) int
	// unkey maps an observable row back to its raw storage value (identity
	// for an unpermuted column, mrep[observable] for a permuted one).
	unkey func(observable int) int

	state State
	// CheckInvariants, when set, makes PivotFinalizedChecked and Sort return
	// ErrNotFinalized (and PivotFinalized return -1) instead of silently
	// reading a non-finalized slice.
	// Mirrors the original's paranoid build flag; off by default.
	CheckInvariants bool
}

// NewLazyHeap returns an empty, unpermuted LazyHeap column.
func NewLazyHeap() *LazyHeap {
	return &LazyHeap{key: identity, unkey: identity}
}

// NewPermutedLazyHeap returns an empty LazyHeap whose ordering and pivot
// values are taken through the supplied key/unkey pair, the Go equivalent of
// vector_heap_perm. matrix.Permuted reaches the same configuration on its
// existing columns through SetOrder.
func NewPermutedLazyHeap(key, unkey func(int) int) *LazyHeap {
	return &LazyHeap{key: key, unkey: unkey}
}

// SetOrder reconfigures l's key/unkey pair in place, preserving its stored
// rows, and restores heap order under the new comparator. matrix.Permuted
// uses this to attach its perm/mrep-backed key/unkey to columns that were
// constructed (and possibly already populated) as plain, unpermuted
// LazyHeaps via NewSparse.
func (l *LazyHeap) SetOrder(key, unkey func(int) int) {
	l.key = key
	l.unkey = unkey
	heap.Init(l.adapter())
}

// heapAdapter lets container/heap operate directly on LazyHeap.rows without
// allocating a parallel structure; it is re-created per call because it is
// just two words (a slice pointer and a func pointer), not because the
// underlying slice is copied.
type heapAdapter struct {
	rows *[]int
	key  func(int) int
}

func (a *heapAdapter) Len() int { return len(*a.rows) }
func (a *heapAdapter) Less(i, j int) bool {
	return a.key((*a.rows)[i]) > a.key((*a.rows)[j]) // max-heap
}
func (a *heapAdapter) Swap(i, j int) { (*a.rows)[i], (*a.rows)[j] = (*a.rows)[j], (*a.rows)[i] }
func (a *heapAdapter) Push(x any)    { *a.rows = append(*a.rows, x.(int)) }
func (a *heapAdapter) Pop() any {
	old := *a.rows
	n := len(old)
	v := old[n-1]
	*a.rows = old[:n-1]
	return v
}

func (l *LazyHeap) adapter() *heapAdapter { return &heapAdapter{rows: &l.rows, key: l.key} }

// Len reports the number of raw entries currently stored, duplicates
// included. It is not the logical size of the column.
func (l *LazyHeap) Len() int { return len(l.rows) }

// State reports the column's current lifecycle stage.
func (l *LazyHeap) State() State { return l.state }

// SetEntry pushes a raw row index onto the column without restoring heap
// order, moving the column to StateDirty. Callers that already hold an
// observable row must convert it themselves (matrix.Permuted does this via
// its own mrep before delegating here); SetEntry always takes a raw value.
func (l *LazyHeap) SetEntry(rawRow int) {
	l.rows = append(l.rows, rawRow)
	l.dirty++
	l.state = StateDirty
}

// HeapifyCol restores the max-heap invariant over whatever rows are
// currently stored, without cancelling duplicates. Moves the column to
// StateHeaped.
func (l *LazyHeap) HeapifyCol() {
	heap.Init(l.adapter())
	l.dirty = 0
	l.state = StateHeaped
}

// popMaxIndexRaw repeatedly pops the current heap root, cancelling it
// against any immediately-following duplicate of the same raw value, until
// it finds a raw value with no duplicate to cancel or the column empties.
// Returns -1 for the empty case. This is the direct translation of PHAT's
// _pop_max_index, including its "pop, then look at the new front" two-step.
func (l *LazyHeap) popMaxIndexRaw() int {
	if len(l.rows) == 0 {
		return -1
	}
	a := l.adapter()
	maxElement := heap.Pop(a).(int)
	for len(l.rows) > 0 && l.rows[0] == maxElement {
		heap.Pop(a)
		if len(l.rows) == 0 {
			return -1
		}
		maxElement = heap.Pop(a).(int)
	}
	return maxElement
}

// Pivot returns the observable row of the current maximum surviving entry
// without mutating the column's logical content, or -1 if the column is
// logically empty. Any raw duplicate pairs encountered while searching are
// permanently cancelled as a side effect (this is the "lazy" half of the
// lazy-heap representation), even though the survivor is restored.
func (l *LazyHeap) Pivot() int {
	raw := l.popMaxIndexRaw()
	if raw == -1 {
		return -1
	}
	heap.Push(l.adapter(), raw)
	return l.key(raw)
}

// PivotFinalized returns the observable row of the heap root directly,
// assuming Finalize has already cancelled every duplicate pair. It is O(1)
// where Pivot is amortized O(log n) with occasional cancellation work, and
// is the form used by the reduction engine's hot inner loop.
//
// If CheckInvariants is set and the column is not StateFinalized, returns
// -1 and the caller should not trust the result; use PivotFinalizedChecked
// for an explicit error instead.
func (l *LazyHeap) PivotFinalized() int {
	if l.CheckInvariants && l.state != StateFinalized {
		return -1
	}
	if len(l.rows) == 0 {
		return -1
	}
	return l.key(l.rows[0])
}

// PivotFinalizedChecked is PivotFinalized guarded by CheckInvariants: it
// returns ErrNotFinalized rather than an unreliable value when the column
// has not been finalized and checking is enabled.
func (l *LazyHeap) PivotFinalizedChecked() (int, error) {
	if l.CheckInvariants && l.state != StateFinalized {
		return 0, ErrNotFinalized
	}
	return l.PivotFinalized(), nil
}

// RemovePivot pops and returns the observable row of the current maximum
// surviving entry, this time actually discarding it from the column (unlike
// Pivot, which restores it). Returns -1 if the column is logically empty.
func (l *LazyHeap) RemovePivot() int {
	raw := l.popMaxIndexRaw()
	if raw == -1 {
		return -1
	}
	return l.key(raw)
}

// PushIndex pushes a single observable row back onto the column and
// restores heap order, converting it to raw storage via unkey first. Used
// by the reduction engine to re-insert an entry recorded in the global lows
// bookkeeping, which is always expressed in observable row numbers.
func (l *LazyHeap) PushIndex(observableRow int) {
	raw := l.unkey(observableRow)
	heap.Push(l.adapter(), raw)
	l.dirty++
	if l.state == StateFinalized && len(l.rows) > 1 {
		l.state = StateHeaped
	}
}

// Contains reports whether observableRow has odd multiplicity in the
// column, i.e. is a logical member under mod-2 arithmetic. This is an O(n)
// scan (the lazy-heap representation keeps no parity index), matching
// vector_heap_perm's _is_in_matrix.
func (l *LazyHeap) Contains(observableRow int) bool {
	raw := l.unkey(observableRow)
	count := 0
	for _, r := range l.rows {
		if r == raw {
			count++
		}
	}
	return count%2 == 1
}

// AddFrom adds src's raw entries onto l under mod-2 arithmetic: every raw
// row in src is pushed onto l via heap.Push, and l is re-pruned once the
// un-pruned pushes make up more than half of its raw entries, bounding the amount
// of uncancelled duplication the heap can accumulate before the next
// Finalize. src and l must be distinct columns.
func (l *LazyHeap) AddFrom(src *LazyHeap) {
	l.addRaw(src.rows)
}

// AddFromPopped adds src's entries onto l exactly like AddFrom, except it
// skips src.rows[0] — the entry currently sitting at the heap root. The
// reduction engine uses this once it has already popped and consumed a
// column's pivot: the remaining heap-ordered tail is added without paying
// to re-examine the just-removed root. Precondition: src is non-empty and
// src.rows[0] is the entry the caller has already accounted for separately.
func (l *LazyHeap) AddFromPopped(src *LazyHeap) {
	l.addRaw(src.rows[1:])
}

func (l *LazyHeap) addRaw(raws []int) {
	a := l.adapter()
	for _, r := range raws {
		heap.Push(a, r)
	}
	l.dirty += len(raws)
	l.state = StateHeaped
	if l.dirty*2 > len(l.rows) {
		l.prune()
	}
}

// prune drains the heap through popMaxIndexRaw (cancelling duplicate pairs
// as it goes), then rebuilds a valid heap from the survivors. This is the
// amortized cost that keeps AddFrom cheap in the common case and is the
// direct translation of _prune in vector_heap_mod.
func (l *LazyHeap) prune() {
	buf := scratch.AcquireInts()
	defer buf.Release()

	for {
		m := l.popMaxIndexRaw()
		if m == -1 {
			break
		}
		buf.Append(m)
	}

	survivors := buf.Slice()
	l.rows = l.rows[:0]
	for i := len(survivors) - 1; i >= 0; i-- {
		l.rows = append(l.rows, survivors[i])
	}
	heap.Init(l.adapter())
	l.dirty = 0
	l.state = StateHeaped
}

// Finalize cancels every duplicate raw-row pair and leaves the column in a
// valid max-heap order with each surviving row present exactly once,
// moving it to StateFinalized. Finalize is idempotent: calling it again on
// an already-finalized column is a no-op cost-wise (popMaxIndexRaw finds no
// duplicates to cancel) and leaves the same logical content.
func (l *LazyHeap) Finalize() {
	l.prune()
	l.state = StateFinalized
}

// Clear discards all entries, leaving an empty column in StateHeaped (an
// empty slice is trivially heap-ordered).
func (l *LazyHeap) Clear() {
	l.rows = l.rows[:0]
	l.dirty = 0
	l.state = StateHeaped
}

// ReindexColumn replaces every raw stored row r with remap(r), then
// restores heap order. Used when row indices are renumbered out from under
// an already-populated column (e.g. after a bigrade-colex layout pass).
func (l *LazyHeap) ReindexColumn(remap func(raw int) int) {
	for i, r := range l.rows {
		l.rows[i] = remap(r)
	}
	l.HeapifyCol()
}

// sortedRawRows drains l and returns its surviving raw rows in ascending,
// duplicate-free order, leaving l empty and StateFinalized. See Sort for the
// exported conversion that callers should use; sortedRawRows is the in-place
// step Sort delegates to.
func (l *LazyHeap) sortedRawRows() []int {
	buf := scratch.AcquireInts()
	defer buf.Release()
	for {
		m := l.popMaxIndexRaw()
		if m == -1 {
			break
		}
		buf.Append(m)
	}
	survivors := append([]int(nil), buf.Slice()...)
	for i, j := 0, len(survivors)-1; i < j; i, j = i+1, j-1 {
		survivors[i], survivors[j] = survivors[j], survivors[i]
	}
	l.rows = l.rows[:0]
	heap.Init(l.adapter())
	l.state = StateFinalized
	return survivors
}
