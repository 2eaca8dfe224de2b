package ingest

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/twoparam-tda/bigraded/matrix"
)

// entryKey identifies a (row, col) pair for duplicate detection.
type entryKey struct{ row, col int }

// Builder assembles a matrix.Bigraded one entry and one bigrade boundary
// at a time, enforcing the construction boundary constraints spec.md
// places on callers: entry uniqueness, and an Index whose declared
// bigrade layout exactly covers the columns actually populated.
type Builder struct {
	sparse    *matrix.Sparse
	index     *matrix.Index
	outerSize int
	innerSize int
	marked    [][]bool
	seen      map[entryKey]struct{}
	validate  bool
}

// NewBuilder starts a construction session for a matrix with numRows rows
// and numCols columns, whose bigrades are arranged in an outerSize x
// innerSize colex grid (see matrix.Index for the outer/inner convention).
func NewBuilder(numRows, numCols, outerSize, innerSize int, opts ...Option) *Builder {
	o := gatherOptions(opts...)

	marked := make([][]bool, outerSize)
	for i := range marked {
		marked[i] = make([]bool, innerSize)
	}

	b := &Builder{
		sparse:    matrix.NewSparse(numRows, numCols),
		index:     matrix.NewIndex(outerSize, innerSize),
		outerSize: outerSize,
		innerSize: innerSize,
		marked:    marked,
		validate:  o.validate,
	}
	if b.validate {
		b.seen = make(map[entryKey]struct{})
	}
	return b
}

// AddEntry sets (row, col) in the matrix under construction. If validation
// is enabled, a repeated (row, col) pair returns ErrDuplicateEntry wrapped
// with a stack trace via github.com/pkg/errors, since this boundary is the
// one seam where an external, possibly malformed, construction sequence
// meets the engine.
func (b *Builder) AddEntry(row, col int) error {
	if b.validate {
		key := entryKey{row, col}
		if _, dup := b.seen[key]; dup {
			return errors.Wrapf(ErrDuplicateEntry, "row=%d col=%d", row, col)
		}
		b.seen[key] = struct{}{}
	}
	if err := b.sparse.SetEntry(row, col); err != nil {
		return errors.Wrapf(err, "ingest: AddEntry(row=%d, col=%d)", row, col)
	}
	return nil
}

// MarkBigrade records lastCol as the last column index belonging to the
// bigrade at (outer, inner). With validation enabled, every cell of the
// declared outerSize x innerSize grid must be marked before Build succeeds;
// marking a cell again overwrites its earlier value.
func (b *Builder) MarkBigrade(outer, inner, lastCol int) error {
	if outer < 0 || outer >= b.outerSize || inner < 0 || inner >= b.innerSize {
		return errors.Wrapf(matrix.ErrIndexOutOfRange, "ingest: MarkBigrade(outer=%d, inner=%d)", outer, inner)
	}
	if err := b.index.Set(outer, inner, int32(lastCol)); err != nil {
		return errors.Wrap(err, "ingest: MarkBigrade")
	}
	b.marked[outer][inner] = true
	return nil
}

// Build finalizes every touched column (see matrix.Sparse.Finalize),
// validates the recorded bigrade layout, and returns the resulting
// matrix.Bigraded. Validation (when enabled) checks: every declared
// bigrade cell was marked, the recorded last-column indices are
// non-decreasing in outer-major/inner-minor order, and the final bigrade
// accounts for exactly the column count the matrix was constructed with.
func (b *Builder) Build() (*matrix.Bigraded, error) {
	for col := 0; col < b.sparse.NumCols(); col++ {
		if err := b.sparse.Finalize(col); err != nil {
			return nil, errors.Wrapf(err, "ingest: Build finalizing column %d", col)
		}
	}

	if b.validate {
		if err := b.validateLayout(); err != nil {
			return nil, err
		}
	}

	return matrix.NewBigraded(b.sparse, b.index), nil
}

func (b *Builder) validateLayout() error {
	lastCols := make([]int32, 0, b.outerSize*b.innerSize)
	for outer := 0; outer < b.outerSize; outer++ {
		for inner := 0; inner < b.innerSize; inner++ {
			if !b.marked[outer][inner] {
				return errors.Wrapf(ErrBigradeNotFullyCovered, "bigrade (outer=%d, inner=%d) was never marked", outer, inner)
			}
			v, err := b.index.Get(outer, inner)
			if err != nil {
				return errors.Wrap(err, "ingest: validateLayout")
			}
			lastCols = append(lastCols, v)
		}
	}

	if !slices.IsSorted(lastCols) {
		return errors.Wrap(ErrBigradeOutOfOrder, "ingest: validateLayout")
	}

	if n := len(lastCols); n > 0 {
		want := int32(b.sparse.NumCols() - 1)
		if lastCols[n-1] != want {
			return errors.Wrapf(ErrColumnCountMismatch, "final bigrade ends at column %d, want %d", lastCols[n-1], want)
		}
	}

	return nil
}
