package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/twoparam-tda/bigraded/matrix"
	"github.com/twoparam-tda/bigraded/reduce"
)

// Run computes reduce.Kernel for each of matrices concurrently, assuming
// the caller promises they are pairwise disjoint (no shared Sparse Column
// Store), and returns the results in the same order as the input. At most
// WithMaxConcurrency reductions run at once; the first error from either a
// Kernel call or ctx's own cancellation aborts the remaining work and is
// returned, with every other result discarded.
func Run(ctx context.Context, matrices []*matrix.Bigraded, opts ...Option) ([]*matrix.Bigraded, error) {
	o := gatherOptions(opts...)

	sem := semaphore.NewWeighted(o.maxConcurrency)
	g, gctx := errgroup.WithContext(ctx)
	results := make([]*matrix.Bigraded, len(matrices))

	for i, m := range matrices {
		i, m := i, m
		if err := sem.Acquire(gctx, 1); err != nil {
			if werr := g.Wait(); werr != nil {
				return nil, werr
			}
			return nil, err
		}
		g.Go(func() error {
			defer sem.Release(1)
			k, err := reduce.Kernel(m, o.kernelOptions...)
			if err != nil {
				return err
			}
			results[i] = k
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
