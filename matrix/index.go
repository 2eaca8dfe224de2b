package matrix

import "fmt"

// Index is the bigrade bookkeeping grid described by spec.md's Index
// Matrix: a dense 2-D array of column indices, one cell per distinct
// bigrade, giving the index (within some fixed column ordering) of the
// last column belonging to that bigrade. StartIndex derives the first
// column of a bigrade from the previous cell in that same ordering, so
// only the "last column" array needs to be stored.
//
// Index itself is agnostic to whether its two axes mean (y, x) in colex
// order or (x, y) in lex order — Bigraded and BigradedLex each fix that
// convention by how they call Get/Set/StartIndex; this type just names the
// axes "outer" (the axis that varies slower, i.e. whose cells are each a
// contiguous run of the faster axis) and "inner" (the axis that varies
// fastest within the column ordering in question).
type Index struct {
	outerSize int
	innerSize int
	ind       [][]int32 // ind[outer][inner]; -1 means no columns up to and including this bigrade
}

// NewIndex returns an Index sized for outerSize x innerSize bigrades, all
// cells initialized to -1 (empty).
func NewIndex(outerSize, innerSize int) *Index {
	ind := make([][]int32, outerSize)
	for o := range ind {
		row := make([]int32, innerSize)
		for i := range row {
			row[i] = -1
		}
		ind[o] = row
	}
	return &Index{outerSize: outerSize, innerSize: innerSize, ind: ind}
}

// OuterSize reports the number of distinct grades along the outer axis.
func (idx *Index) OuterSize() int { return idx.outerSize }

// InnerSize reports the number of distinct grades along the inner axis.
func (idx *Index) InnerSize() int { return idx.innerSize }

func (idx *Index) checkBounds(outer, inner int) error {
	if outer < 0 || outer >= idx.outerSize || inner < 0 || inner >= idx.innerSize {
		return fmt.Errorf("bigrade (outer=%d, inner=%d): %w", outer, inner, ErrIndexOutOfRange)
	}
	return nil
}

// Set records lastCol as the index of the last column belonging to the
// bigrade at (outer, inner).
func (idx *Index) Set(outer, inner int, lastCol int32) error {
	if err := idx.checkBounds(outer, inner); err != nil {
		return err
	}
	idx.ind[outer][inner] = lastCol
	return nil
}

// Get returns the value recorded for the bigrade at (outer, inner): the index
// of its last column. A bigrade with no columns of its own records the same
// value as the cell before it in the ordering, and -1 when no earlier
// bigrade has columns either (or the cell was never Set).
func (idx *Index) Get(outer, inner int) (int32, error) {
	if err := idx.checkBounds(outer, inner); err != nil {
		return 0, err
	}
	return idx.ind[outer][inner], nil
}

// StartIndex returns the index of the first column belonging to the
// bigrade at (outer, inner), derived from the previous cell in the
// ordering this Index represents: the preceding inner cell in the same
// outer row, or, at inner == 0, the last inner cell of the previous outer
// row. Returns 0 at the very first bigrade.
func (idx *Index) StartIndex(outer, inner int) (int32, error) {
	if err := idx.checkBounds(outer, inner); err != nil {
		return 0, err
	}
	if inner > 0 {
		return idx.ind[outer][inner-1] + 1, nil
	}
	if outer > 0 {
		return idx.ind[outer-1][idx.innerSize-1] + 1, nil
	}
	return 0, nil
}
