package reduce

import (
	"github.com/twoparam-tda/bigraded/matrix"
)

// Kernel computes a basis for the kernel of m over GF(2), returned as a
// Bigraded Matrix in colex layout whose columns are the kernel generators,
// laid out by the bigrade at which each generator is born.
//
// Precondition: every column of m.Sparse() must already be Finalized
// (package ingest's construction API guarantees this on handoff). Kernel
// does not finalize m's columns itself, matching the original's
// low_finalized fast path, which assumes the invariant rather than
// enforcing it. Kernel reduces m's columns in place: on return m.Sparse()
// holds the column-reduced matrix, not the original one.
//
// Kernel visits bigrades in lex order (x outer, y inner) while reading m's
// native colex (y outer, x inner) column layout, carrying one lows array —
// indexed by row, holding the column currently pivoting at that row, or -1
// — across every bigrade it visits. This single global array, rather than
// one reset per bigrade, is what makes the result reflect the bigraded
// structure of m instead of a sequence of unrelated one-parameter kernels.
//
// If WithCancellation is supplied, Kernel calls it once per checkInterval
// bigrades (DefaultCheckInterval is every bigrade); a false return aborts
// the computation, discarding the partial result, and Kernel returns
// ErrAbortedByCaller.
func Kernel(m *matrix.Bigraded, opts ...Option) (*matrix.Bigraded, error) {
	o := gatherOptions(opts...)

	sp := m.Sparse()
	idx := m.Index()
	width := sp.NumCols()
	height := sp.NumRows()

	// ker_lex: the kernel basis under construction, in lex column order.
	kerLexSparse := matrix.NewSparse(width, 0)
	kerLexIndex := matrix.NewIndex(idx.InnerSize(), idx.OuterSize()) // outer=x, inner=y
	kerLex := matrix.NewBigradedLex(kerLexSparse, kerLexIndex)

	// slave: a column-sparse identity matrix mirroring every reduction
	// column-addition performed on m, so that once a column of m is
	// zeroed out, the matching column of slave holds the coefficients of
	// the linear combination of m's original columns that produced it —
	// exactly a kernel generator.
	slave := matrix.NewSparse(width, width)
	for i := 0; i < width; i++ {
		if err := slave.SetEntry(i, i); err != nil {
			return nil, err
		}
		if err := slave.Finalize(i); err != nil {
			return nil, err
		}
	}

	lows := make([]int, height)
	for i := range lows {
		lows[i] = -1
	}

	bigradesSeen := 0
	for x := 0; x < idx.InnerSize(); x++ {
		for y := 0; y < idx.OuterSize(); y++ {
			if o.shouldContinue != nil {
				bigradesSeen++
				if bigradesSeen%o.checkInterval == 0 && !o.shouldContinue() {
					return nil, ErrAbortedByCaller
				}
			}
			if err := kernelOneBigrade(sp, idx, slave, kerLex, x, y, lows); err != nil {
				return nil, err
			}
		}
	}

	return matrix.FromLex(kerLex)
}

// kernelOneBigrade reduces every column in bigrade (x,y)'s own range, plus
// every earlier column of row y revisited since the last time row y grew a
// new bigrade — the direct translation of BigradedMatrix::kernel_one_bigrade.
func kernelOneBigrade(mat *matrix.Sparse, idx *matrix.Index, slave *matrix.Sparse, kerLex *matrix.BigradedLex, currX, currY int, lows []int) error {
	firstCol, err := idx.StartIndex(currY, 0)
	if err != nil {
		return err
	}
	firstColCurrBigrade, err := idx.StartIndex(currY, currX)
	if err != nil {
		return err
	}
	lastCol, err := idx.Get(currY, currX)
	if err != nil {
		return err
	}

	for j := int(firstCol); j <= int(lastCol); j++ {
		changingColumn := false

		l, err := mat.PivotFinalized(j)
		if err != nil {
			return err
		}

		if l != -1 && lows[l] != -1 && lows[l] < j {
			changingColumn = true
			if _, err := mat.RemovePivot(j); err != nil {
				return err
			}
		}

		for l != -1 && lows[l] != -1 && lows[l] < j {
			c := lows[l]
			if err := mat.AddFromPopped(mat, c, j); err != nil {
				return err
			}
			if err := slave.AddTo(c, j); err != nil {
				return err
			}
			l, err = mat.RemovePivot(j)
			if err != nil {
				return err
			}
		}

		if l != -1 {
			// column j is still nonempty: it settles as the pivot for row l.
			lows[l] = j

			if changingColumn {
				// restore the entry we popped before the loop and
				// re-establish the finalized invariant for future visits.
				if err := mat.PushIndex(j, l); err != nil {
					return err
				}
				if err := mat.Finalize(j); err != nil {
					return err
				}
			}
		} else {
			// column j was reduced to zero: its slave column is a kernel
			// generator.
			if changingColumn {
				if err := slave.Finalize(j); err != nil {
					return err
				}
				if err := kerLex.Sparse().AppendColFrom(slave, j); err != nil {
					return err
				}
			} else if j >= int(firstColCurrBigrade) {
				// column j started empty and this is its first visit: it
				// was already a free kernel generator (e_j in slave).
				if err := kerLex.Sparse().AppendColFrom(slave, j); err != nil {
					return err
				}
			}
		}
	}

	lastIdx := int32(kerLex.Sparse().NumCols() - 1)
	return kerLex.Index().Set(currX, currY, lastIdx)
}
