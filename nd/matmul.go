package nd

import "fmt"

// MatrixProduct multiplies two rank-2 views. Given a of length [r, k]
// and b of length [k, c], the result has length [r, c] and cell
// [i, j] is the sum over the shared inner axis of a[i, m] * b[m, j].
//
// Panics if either operand is not rank 2, or if the inner dimensions
// differ.
//
// Example:
//
//	a := nd.FromRows([][]int{{1, 2}, {3, 4}})
//	b := nd.FromRows([][]int{{5, 6}, {7, 8}})
//	c := nd.MatrixProduct(a.View(), b.View()) // [[19, 22], [43, 50]]
func MatrixProduct[T Num](a, b View[T]) *Array[T] {
	if a.Rank() != 2 || b.Rank() != 2 {
		panic(fmt.Sprintf("matrix product requires rank 2 operands, got rank %d and rank %d", a.Rank(), b.Rank()))
	}
	rows, inner := a.len[0], a.len[1]
	innerB, cols := b.len[0], b.len[1]
	if inner != innerB {
		panic(fmt.Sprintf("Cannot multiply matrices of %v and %v", a.len, b.len))
	}
	return NewWith(Len{rows, cols}, func(index Index) T {
		var sum T
		for m := 0; m < inner; m++ {
			sum += a.At(index[0], m) * b.At(m, index[1])
		}
		return sum
	})
}
