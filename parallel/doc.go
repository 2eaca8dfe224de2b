// Package parallel runs reduce.Kernel over a batch of disjoint matrices
// concurrently, the idiomatic Go expression of spec.md §5's observation
// that "if the embedding application runs multiple reductions concurrently
// on disjoint matrices, each thread must have its own buffer": every
// reduce.Kernel call allocates and releases its own scratch buffers
// per-call (see package scratch), so nothing here has to hand out buffers
// itself — the sync.Pool underneath already makes concurrent calls safe.
// This package only adds bounded fan-out and first-error propagation.
package parallel
