// Package scratch provides a pool of reusable integer buffers for the
// per-call temporary storage that heap pruning (column.LazyHeap) and
// conversion to sorted form (column.Sort) need while they drain and rebuild
// a column.
//
// This plays the role the original engine's thread_local_storage /
// temp_column_buffer played: a scratch area that must never be shared
// across concurrently running reductions. In Go, the natural unit of
// "never shared" is a single call, not a single goroutine for its whole
// lifetime, so acquisition is scoped to the operation that needs it
// (Acquire, use, Release via defer) rather than stashed in a per-goroutine
// global. Each goroutine parallel.Run starts therefore makes its own
// acquire/release pairs inside the Kernel call it runs: two goroutines
// reducing disjoint matrices never contend on the same buffer.
package scratch
