// Package reduce implements the Bigraded Reduction Engine: kernel
// computation over GF(2) by the standard persistence reduction algorithm
// generalized to two parameters, plus the RU-decomposition and vineyard
// row-transposition protocol used to maintain a reduced form under row
// swaps.
//
// Kernel is grounded directly on
// _examples/original_source/math/bigraded_matrix.cpp's
// BigradedMatrix::kernel() / kernel_one_bigrade(): it visits bigrades in
// lex order (x outer, y inner) while reading the input matrix in its
// native colex (y outer, x inner) column layout, carries a single global
// lows array across every bigrade — the detail that gives the algorithm
// its bigraded structure rather than a sequence of independent
// one-parameter reductions — and uses the "changing column" fast path: a
// column about to be reduced has its pivot popped first, so each addition
// can skip the source column's matching pivot entry (AddFromPopped).
package reduce
