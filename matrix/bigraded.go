package matrix

import "fmt"

// Bigraded is the Bigraded Matrix in colex column layout: columns are
// ordered with the y-grade varying slowest and the x-grade varying
// fastest, so Index's outer axis is y and inner axis is x. This is the
// layout the Bigraded Reduction Engine's kernel() produces its result in
// and the layout RU-decomposition and the vineyard protocol operate on.
type Bigraded struct {
	sparse *Sparse
	index  *Index
}

// NewBigraded pairs a Sparse Column Store with the colex Index describing
// its bigrade layout. The caller is responsible for having populated both
// consistently (normally via package ingest); NewBigraded performs no
// cross-validation beyond what Sparse/Index already enforce internally.
func NewBigraded(sparse *Sparse, index *Index) *Bigraded {
	return &Bigraded{sparse: sparse, index: index}
}

// Sparse returns the underlying column store.
func (b *Bigraded) Sparse() *Sparse { return b.sparse }

// Index returns the colex bigrade bookkeeping grid (outer axis y, inner
// axis x).
func (b *Bigraded) Index() *Index { return b.index }

// ColumnRange returns the half-open [start, end) column range, in colex
// order, belonging to bigrade (x, y).
func (b *Bigraded) ColumnRange(y, x int) (start, end int32, err error) {
	start, err = b.index.StartIndex(y, x)
	if err != nil {
		return 0, 0, err
	}
	last, err := b.index.Get(y, x)
	if err != nil {
		return 0, 0, err
	}
	return start, last + 1, nil
}

func (b *Bigraded) String() string {
	return fmt.Sprintf("Bigraded(%d x %d, %d bigrades y, %d bigrades x)\n%s",
		b.sparse.NumRows(), b.sparse.NumCols(), b.index.OuterSize(), b.index.InnerSize(), b.sparse)
}
