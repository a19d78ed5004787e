// Package nd provides fixed-rank N-dimensional arrays with strided
// read and write views.
//
// # Overview
//
// The package is built around three types:
//   - Array[T]: an owned, contiguous, row-major allocation
//   - View[T]: a non-owning read-only strided window
//   - MutView[T]: a non-owning window with exclusive write access
//
// Rank is carried at runtime as the length of the Len vector; every
// rank-changing operation (Extract, AddDim, Slice, MatrixProduct)
// validates it on entry.
//
// # Basic Usage
//
//	m := nd.FromRows([][]int{
//		{1, 2, 3},
//		{4, 5, 6},
//	})
//
//	row := m.View().Extract(0, 1)           // [4, 5, 6]
//	col := m.View().Transpose().Extract(0, 2) // [3, 6]
//	sum := nd.Add[int](m, m)                // elementwise, new array
//
// # Views and Aliasing
//
// Views never allocate or free; they only compute offsets into an
// existing allocation. Any number of read views may overlap. While a
// write view is alive, no other read or write view may address
// overlapping memory; this exclusivity is a documented API contract
// (Go's type system cannot enforce it), and converting a read view
// back into a write view with Mut asserts it.
//
// # Elementwise Operations
//
// Arrays and both view kinds implement Sequence, the capability that
// Map, Zip, and ZipMap are built on. The arithmetic operators (Add,
// Sub, Mul, Div, Rem, And, Or, Xor, Shl, Shr and their in-place
// *Assign forms) are thin bindings over that layer, so every
// combination of array and view operands works.
//
// # Failure Policy
//
// Out-of-bounds coordinates, shape mismatches, and a zero slicing
// step are programmer errors: the checked accessors (Get, CheckIndex)
// report them, and everything else fails fast with a panic carrying
// the rejected coordinate, range, or length vectors.
package nd
