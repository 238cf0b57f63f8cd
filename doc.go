// Package pstl provides parallel versions of the standard sequence
// algorithms over Go slices. While Go is primarily designed for concurrent
// programming, it is also usable to some extent for parallel programming,
// and this library runs otherwise sequential algorithms across the
// available cores and in blocks that compilers can vectorize, with the goal
// to improve performance.
//
// Every algorithm takes an execution policy that says whether it may run in
// parallel, whether it may process elements unsequenced, or both. Whatever
// the policy, an algorithm produces the same result as its sequential
// version.
//
// Pstl provides the following subpackages:
//
// pstl/pattern provides the algorithms: walks, searches, comparisons,
// compactions, partitions, sorts, merges, set operations, reductions and
// scans.
//
// pstl/policy provides the execution policies Seq, Unseq, Par and ParUnseq,
// and selects the strategy an algorithm runs with.
//
// pstl/executor provides the fork-join executor the parallel strategies
// schedule on, and the seam to offload backends.
//
// pstl/parallel provides the scheduling primitives the algorithms are built
// on: parallel find, parallel or, and the strict scan.
//
// pstl/sort provides parallel sorting and merging.
//
// pstl/brick provides the serial and vectorized element-wise building
// blocks.
//
// pstl/storage provides budgeted scratch memory, and pstl/config the
// tunables shared by all of the above.
//
// Pstl has been influenced to various extents by ideas from Cilk, Threading
// Building Blocks, and the parallel algorithms of the C++ standard library.
// See http://supertech.csail.mit.edu/papers/steal.pdf for some theoretical
// background.
package pstl
