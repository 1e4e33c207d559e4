/*
Package splu provides a sparse direct solver for unsymmetric, square linear
systems A·x = b over real floating-point numbers.

The matrix A is supplied in compressed sparse column (CSC) form. Factorize
produces a left-looking LU factorization with partial (row) pivoting,
P·A = L·U, and the resulting LeftLookingLUFactorization supports efficient
triangular solves against dense right-hand sides.

The package is organised bottom-up:

  - SparsityPattern is the immutable CSC index structure (column offsets
    and row indices) plus the graph reachability primitives the symbolic
    phase of the factorization relies on.
  - SparsityPatternBuilder constructs a SparsityPattern from an
    ascending (column, row) insertion sequence.
  - CsMatrix pairs a SparsityPattern with a parallel slice of values; Csc
    is the column-oriented facade applications use directly.
  - LeftLookingLUFactorization is the driver: Factorize produces one from
    a Csc, and Solve/SolveArr apply it to dense right-hand sides.

No fill-reducing preordering, supernodal/multifrontal optimisation,
iterative refinement, symmetric/Cholesky path, complex scalars, or
parallelism is provided. Rank detection is limited to an exact zero-pivot
check during factorization.
*/
package splu
