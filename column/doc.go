// Package column implements the physical representations of a single sparse
// GF(2) column described by the Sparse Column Store: a sorted-descending
// linked list ("List"), a lazy max-heap vector ("LazyHeap"), and a sorted,
// duplicate-free terminal form used by presentation minimization ("Sorted").
//
// The three types are never implicitly convertible. Conversion between them
// is always an explicit function (List.ToLazyHeap, FromLazyHeap, Sort,
// Sorted.ToLazyHeap)
// so that the cost of a representation change is visible at the call site.
//
// Every row index a column stores is a mod-2 membership: adding the same row
// twice cancels it. None of the three representations keeps a running parity
// counter; List and LazyHeap instead resolve duplicates lazily (List on
// insertion, LazyHeap only when finalized or queried for its pivot), and
// Sorted, being already deduplicated, cancels shared rows through the Xor in
// AddSorted.
package column
