package scratch

import "sync"

var intSlicePool = sync.Pool{
	New: func() any {
		s := make([]int, 0, 64)
		return &s
	},
}

// IntBuffer is a reusable, growable []int on loan from a shared pool. It
// must be released exactly once, via Release, on every exit path from the
// operation that acquired it — including panics, which is why every caller
// in this module acquires with a deferred Release immediately afterward.
type IntBuffer struct {
	slice *[]int
}

// AcquireInts borrows an empty IntBuffer from the pool. The returned buffer
// is scoped to the current call: callers must not retain it, or a pointer
// obtained from Slice, past the matching Release.
func AcquireInts() *IntBuffer {
	s := intSlicePool.Get().(*[]int)
	*s = (*s)[:0]
	return &IntBuffer{slice: s}
}

// Append adds v to the buffer, growing it if necessary.
func (b *IntBuffer) Append(v int) {
	*b.slice = append(*b.slice, v)
}

// Slice returns the buffer's current contents. The returned slice is only
// valid until the next Append or the buffer's Release.
func (b *IntBuffer) Slice() []int {
	return *b.slice
}

// Len reports the number of elements currently appended.
func (b *IntBuffer) Len() int {
	return len(*b.slice)
}

// Release returns the buffer to the pool for reuse. Safe to call exactly
// once; calling it twice would let two unrelated acquisitions alias the
// same backing array, so it is never called more than once per Acquire.
func (b *IntBuffer) Release() {
	*b.slice = (*b.slice)[:0]
	intSlicePool.Put(b.slice)
}
