package matrix

// BigradedLex is the same Bigraded Matrix content as Bigraded, laid out
// with columns ordered lexicographically instead: x-grade varying
// slowest, y-grade varying fastest, so its Index's outer axis is x and
// inner axis is y. The reduction engine builds its kernel result in this
// layout while walking bigrades x outer, y inner (per spec.md section 4.5),
// then converts it to a colex Bigraded with FromLex.
type BigradedLex struct {
	sparse *Sparse
	index  *Index
}

// NewBigradedLex pairs a Sparse Column Store with the lex Index describing
// its bigrade layout (outer axis x, inner axis y).
func NewBigradedLex(sparse *Sparse, index *Index) *BigradedLex {
	return &BigradedLex{sparse: sparse, index: index}
}

// Sparse returns the underlying column store.
func (b *BigradedLex) Sparse() *Sparse { return b.sparse }

// Index returns the lex bigrade bookkeeping grid (outer axis x, inner
// axis y).
func (b *BigradedLex) Index() *Index { return b.index }

// ColumnRange returns the half-open [start, end) column range, in lex
// order, belonging to bigrade (x, y).
func (b *BigradedLex) ColumnRange(x, y int) (start, end int32, err error) {
	start, err = b.index.StartIndex(x, y)
	if err != nil {
		return 0, 0, err
	}
	last, err := b.index.Get(x, y)
	if err != nil {
		return 0, 0, err
	}
	return start, last + 1, nil
}

// FromLex consumes lex, moving every column range into a newly built
// Bigraded in colex order (y outer, x inner), and leaves lex's Sparse
// empty (0 columns) once the move completes — the direct translation of
// the original's BigradedMatrix(BigradedMatrixLex&) move-construction
// constructor in bigraded_matrix.cpp.
func FromLex(lex *BigradedLex) (*Bigraded, error) {
	height := lex.index.InnerSize() // y count
	width := lex.index.OuterSize()  // x count

	colexIndex := NewIndex(height, width)
	colexSparse := NewSparse(lex.sparse.NumRows(), lex.sparse.NumCols())

	currentIndex := int32(0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			start, end, err := lex.ColumnRange(x, y)
			if err != nil {
				return nil, err
			}
			for c := start; c < end; c++ {
				if err := colexSparse.MoveColFrom(lex.sparse, int(c), int(currentIndex)); err != nil {
					return nil, err
				}
				currentIndex++
			}
			if err := colexIndex.Set(y, x, currentIndex-1); err != nil {
				return nil, err
			}
		}
	}

	*lex.sparse = *NewSparse(lex.sparse.NumRows(), 0)
	return NewBigraded(colexSparse, colexIndex), nil
}
