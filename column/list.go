package column

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// List is the sorted-list form of a sparse column: a strictly decreasing,
// duplicate-free sequence of raw row indices whose pivot is always its
// front element. It is the direct descendant of the original engine's
// MapMatrixNode chain, rebuilt here on top of gods' doubly linked list
// instead of a hand-rolled node type — the traversal-to-find-insertion-point
// algorithm below is unchanged from the original, only the node storage is
// borrowed.
//
// List trades LazyHeap's amortized-cheap bulk addition for an always-valid
// pivot and an always-sorted traversal order; it exists for callers that
// only ever touch a column through single-entry Set/Clear/Add and want the
// pivot available with no Finalize step.
type List struct {
	l *doublylinkedlist.List
}

// NewList returns an empty List column.
func NewList() *List {
	return &List{l: doublylinkedlist.New()}
}

// Len reports the number of distinct rows currently stored.
func (c *List) Len() int { return c.l.Size() }

// Pivot returns the largest stored row, or -1 if the column is empty. Since
// List is always kept sorted descending, this is simply the front element.
func (c *List) Pivot() int {
	v, ok := c.l.Get(0)
	if !ok {
		return -1
	}
	return v.(int)
}

// Contains reports whether row is currently stored.
func (c *List) Contains(row int) bool {
	return c.l.Contains(row)
}

// Set inserts row into the column, maintaining descending order. If row is
// already present it is removed instead (mod-2 cancellation), matching
// MapMatrix_Base::set's "if already there, this is a no-op toggle" rule
// expressed as the list-level equivalent of XOR.
func (c *List) Set(row int) {
	idx, found := c.indexOf(row)
	if found {
		c.l.Remove(idx)
		return
	}
	c.l.Insert(idx, row)
}

// Clear removes row from the column if present; a no-op otherwise.
func (c *List) Clear(row int) {
	if idx, found := c.indexOf(row); found {
		c.l.Remove(idx)
	}
}

// indexOf walks the descending list looking for row, returning (index,
// true) if found, or the insertion index that keeps the list descending
// and (that index, false) otherwise. This linear walk is the same
// traversal the original's node-chain set() performed; a doubly linked
// list gives no faster random access, so we do not pretend otherwise.
func (c *List) indexOf(row int) (int, bool) {
	i := 0
	it := c.l.Iterator()
	for it.Next() {
		v := it.Value().(int)
		if v == row {
			return i, true
		}
		if v < row {
			return i, false
		}
		i++
	}
	return i, false
}

// AddColumn adds other's entries onto c under mod-2 arithmetic (repeated
// Set), the list-form equivalent of LazyHeap.AddFrom. It is O(n*m) in the
// sizes of the two columns, since each entry requires a fresh descending
// walk; callers reducing large matrices should prefer LazyHeap. Returns
// ErrSelfAdd if other is c.
func (c *List) AddColumn(other *List) error {
	if c == other {
		return ErrSelfAdd
	}
	rows := other.Rows()
	for _, r := range rows {
		c.Set(r)
	}
	return nil
}

// Rows returns the column's stored rows in descending order. The returned
// slice is a fresh copy safe for the caller to retain or mutate.
func (c *List) Rows() []int {
	out := make([]int, 0, c.l.Size())
	it := c.l.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}
	return out
}
