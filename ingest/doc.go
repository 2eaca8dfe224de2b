// Package ingest is the construction-API builder boundary: the only door
// through which a caller (a parser, a front-end, a test) may assemble a
// matrix.Bigraded from scratch.
//
// Building a matrix.Sparse and matrix.Index directly is legal but unchecked:
// matrix.Sparse.SetEntry trusts the caller never to set the same (row, col)
// pair twice, and nothing stops a caller from finalizing an Index whose
// bigrades disagree with the column layout actually present. Builder adds
// the validation the matrix package itself deliberately does not perform,
// the way the original engine's front-end (out of this module's scope)
// was responsible for honoring MapMatrix's unstated construction
// contract.
package ingest
