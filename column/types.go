package column

// State records where a column sits in the Dirty -> Heaped -> Finalized
// lifecycle, plus the Sorted terminal state reached from Finalized via Sort.
// Only LazyHeap tracks State; List is always implicitly sorted-descending
// and Sorted is always implicitly finalized-and-sorted, so neither needs to
// carry the field.
type State uint8

const (
	// StateDirty means entries have been pushed (SetEntry) since the column
	// was last heap-ordered; the backing slice is not a valid heap and
	// duplicate row entries have not been cancelled.
	StateDirty State = iota

	// StateHeaped means the backing slice satisfies the max-heap invariant
	// (HeapifyCol, Clear, or an addition through heap.Push has run), but duplicate rows
	// may still be present uncancelled below the root.
	StateHeaped

	// StateFinalized means duplicate rows have been fully cancelled in
	// pairs (Finalize has run) and the slice both satisfies the heap
	// invariant and contains each surviving row exactly once.
	StateFinalized
)

// String renders State for test failure messages and debug output.
func (s State) String() string {
	switch s {
	case StateDirty:
		return "Dirty"
	case StateHeaped:
		return "Heaped"
	case StateFinalized:
		return "Finalized"
	default:
		return "Unknown"
	}
}

func identity(i int) int { return i }
