// Package isam implements the incremental sparse QR core of an
// incremental smoothing and mapping system: a sparse row-compressed
// matrix with amortized-growth semantics, a Givens rotation kernel that
// merges two sparse rows in a single monotone pass, and a triangulation
// driver that restores upper-triangular structure as new measurement
// rows and state columns arrive.
//
// The nonlinear front-end (factor graph, node and measurement types,
// pose and point arithmetic), dense BLAS-style Matrix/Vector primitives,
// and variable-ordering strategies are external collaborators and are
// out of scope here; see DenseMatrix and DenseVector for the narrow
// interface this package expects of the former.
package isam

// NumericalZero is the sparsity-pruning threshold: any value produced
// during a Givens rotation with absolute magnitude below this is
// treated as structurally absent and not stored. This trades bit-exact
// equivalence with a dense QR residual for sparsity.
const NumericalZero = 1e-12
