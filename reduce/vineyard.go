package reduce

import "github.com/twoparam-tda/bigraded/matrix"

// Vineyard detects whether swapping adjacent observable rows i and i+1 on p
// (already performed by the caller via p.SwapRows(i, i+1)) has left the
// matrix in a non-reduced state requiring a repair column addition.
//
// The configuration that breaks reduced form is: two columns k < l with
// pivot(k) == i and pivot(l) == i+1, where row i is now set in column l.
// When this holds, the caller must add column k onto column l to restore
// the reduced property; Vineyard reports the pair but does not perform the
// addition itself (see Repair), so a caller tracking a full vineyard can
// choose when, or whether, to apply it — matching the original's comment
// that "the user must detect this and do a column operation to restore the
// matrix to a reduced state."
func Vineyard(p *matrix.Permuted, i int) (repairNeeded bool, k, l int, err error) {
	k, err = p.FindPivotColumn(i)
	if err != nil {
		return false, 0, 0, err
	}
	l, err = p.FindPivotColumn(i + 1)
	if err != nil {
		return false, 0, 0, err
	}
	if k == -1 || l == -1 || k >= l {
		return false, 0, 0, nil
	}

	rowISet, err := p.Contains(i, l)
	if err != nil {
		return false, 0, 0, err
	}
	if !rowISet {
		return false, 0, 0, nil
	}

	return true, k, l, nil
}

// Repair performs the column addition Vineyard reported as necessary:
// column k is added onto column l.
func Repair(p *matrix.Permuted, k, l int) error {
	return p.Sparse().AddTo(k, l)
}
