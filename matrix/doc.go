// Package matrix implements the bigraded linear-algebra engine's matrix
// layer over GF(2): the Sparse Column Store (a growable array of
// column.LazyHeap columns, each a mod-2 membership set of row indices), the
// Permuted Matrix (an explicit row/column permutation over a Sparse Column
// Store), the Index Matrix (the colex-order bookkeeping that maps a
// bigrade to a column range), and the Bigraded Matrix in both colex and lex
// column layouts.
//
// Row and column indices are always validated at this layer — ErrIndexOutOfRange
// is returned rather than letting a slice index panic — because a column
// object (column.List/LazyHeap/Sorted) has no notion of the matrix's fixed
// dimensions; only Sparse knows numRows and numCols.
package matrix
