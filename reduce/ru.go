package reduce

import "github.com/twoparam-tda/bigraded/matrix"

// RowPriority is a square matrix addressed by row rather than column: its
// natural mutation is AddRow(src, dst), adding row src onto row dst. It is
// stored internally as a matrix.Sparse whose own columns hold, for each
// logical row i, the set of logical columns where row i has an entry —
// i.e. the transpose of the usual column-addressed storage — matching the
// original engine's MapMatrix_RowPriority_Perm, which swaps the meaning of
// "row" and "column" relative to MapMatrix so that the vineyard protocol's
// row-indexed queries on U run at the same cost as a normal matrix's
// column-indexed queries.
type RowPriority struct {
	store *matrix.Sparse // store's column i = logical row i's nonzero columns
}

func newIdentityRowPriority(n int) (*RowPriority, error) {
	s := matrix.NewSparse(n, n)
	for i := 0; i < n; i++ {
		if err := s.SetEntry(i, i); err != nil {
			return nil, err
		}
		if err := s.Finalize(i); err != nil {
			return nil, err
		}
	}
	return &RowPriority{store: s}, nil
}

// Size reports U's dimension (it is always square).
func (u *RowPriority) Size() int { return u.store.NumCols() }

// AddRow adds logical row src onto logical row dst under mod-2 arithmetic.
func (u *RowPriority) AddRow(src, dst int) error {
	return u.store.AddTo(src, dst)
}

// Entry reports whether U[row][col] is set.
func (u *RowPriority) Entry(row, col int) (bool, error) {
	return u.store.Contains(col, row)
}

// DecomposeRU runs the standard (one-parameter) column reduction over p's
// columns left to right, mirroring every addition of column c onto column j
// performed on p as the opposite row addition (row j onto row c) on a
// RowPriority matrix U initialized to the identity, and returns U such that
// the original content of p equals p's now-reduced content times U. This is
// the RU-decomposition the original
// engine's MapMatrix_Perm::decompose_RU performs; p is left in its reduced
// state as a side effect, exactly as the original mutates its receiver.
func DecomposeRU(p *matrix.Permuted) (*RowPriority, error) {
	n := p.NumCols()
	u, err := newIdentityRowPriority(n)
	if err != nil {
		return nil, err
	}

	lows := make([]int, p.NumRows())
	for i := range lows {
		lows[i] = -1
	}

	for j := 0; j < n; j++ {
		if err := p.Finalize(j); err != nil {
			return nil, err
		}
		l, err := p.PivotFinalized(j)
		if err != nil {
			return nil, err
		}
		for l != -1 && lows[l] != -1 {
			c := lows[l]
			if err := p.Sparse().AddTo(c, j); err != nil {
				return nil, err
			}
			if err := p.Finalize(j); err != nil {
				return nil, err
			}
			if err := u.AddRow(j, c); err != nil {
				return nil, err
			}
			l, err = p.PivotFinalized(j)
			if err != nil {
				return nil, err
			}
		}
		if l != -1 {
			lows[l] = j
		}
	}

	return u, nil
}
