package column

// ToLazyHeap builds an unpermuted, Finalized LazyHeap from a List's current
// contents. List is always duplicate-free by construction, so the result
// needs no separate Finalize pass beyond HeapifyCol.
func (c *List) ToLazyHeap() *LazyHeap {
	l := NewLazyHeap()
	l.rows = c.Rows() // descending already satisfies max-heap order trivially
	l.HeapifyCol()
	l.state = StateFinalized
	return l
}

// FromLazyHeap builds a List from a LazyHeap's current logical contents.
// The source is read via repeated RemovePivot on a scratch copy so that the
// original l is left untouched; duplicate raw rows are cancelled in the
// process exactly as Finalize would cancel them.
func FromLazyHeap(l *LazyHeap) *List {
	tmp := &LazyHeap{
		rows:  append([]int(nil), l.rows...),
		key:   l.key,
		unkey: l.unkey,
	}
	tmp.HeapifyCol()

	out := NewList()
	for {
		r := tmp.RemovePivot()
		if r == -1 {
			break
		}
		out.Set(r)
	}
	return out
}
