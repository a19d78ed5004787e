package nd

import (
	"fmt"
	"iter"
)

// Array is an owned, contiguous N-dimensional array in row-major
// order. It holds exactly Size(len) elements and its stride is
// implicitly the default row-major stride of its length vector.
type Array[T any] struct {
	data []T
	len  Len
}

// NewWith creates an array of the given length vector, initializing
// each element by calling init with its coordinate, in row-major
// order. Every slot is written exactly once.
//
// If init panics partway through, the partially written backing slice
// is unwound with the panic and reclaimed by the garbage collector;
// elements written so far are not individually released.
//
// Example:
//
//	a := nd.NewWith(nd.Len{2, 3}, func(i nd.Index) int { return i[0]*3 + i[1] })
func NewWith[T any](l Len, init func(Index) T) *Array[T] {
	l = l.Clone()
	data := make([]T, l.Size())
	i := 0
	for index := range Indices(l) {
		if i == len(data) {
			break
		}
		data[i] = init(index)
		i++
	}
	return &Array[T]{data: data, len: l}
}

// NewFill creates an array of the given length vector with every
// element set to value.
func NewFill[T any](l Len, value T) *Array[T] {
	return NewWith(l, func(Index) T { return value })
}

// NewZero creates an array of the given length vector with every
// element set to the zero value of T.
func NewZero[T any](l Len) *Array[T] {
	var zero T
	return NewFill(l, zero)
}

// Scalar creates a rank-0 array holding a single value.
func Scalar[T any](value T) *Array[T] {
	return NewWith(Len{}, func(Index) T { return value })
}

// FromSlice creates a rank-1 array by copying the given values.
func FromSlice[T any](values []T) *Array[T] {
	return NewWith(Len{len(values)}, func(index Index) T {
		return values[index[0]]
	})
}

// FromRows creates a rank-2 array by copying the given rows.
// Panics if the rows do not all have the same length.
//
// Example:
//
//	m := nd.FromRows([][]int{
//		{1, 2, 3},
//		{4, 5, 6},
//	})
func FromRows[T any](rows [][]T) *Array[T] {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("row %d has length %d, want %d", i, len(row), cols))
		}
	}
	return NewWith(Len{len(rows), cols}, func(index Index) T {
		return rows[index[0]][index[1]]
	})
}

// Len returns a copy of the array's length vector.
func (a *Array[T]) Len() Len {
	return a.len.Clone()
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.len)
}

// Size returns the total number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// View creates a read view sharing the array's storage, with the
// default row-major stride.
//
// The view must not be used while a write view over overlapping
// memory is alive, and must not outlive the array's storage being
// consumed by IntoPairs.
func (a *Array[T]) View() View[T] {
	a.checkLive()
	return View[T]{data: a.data, len: a.len, stride: a.len.Strides()}
}

// MutView creates a write view sharing the array's storage, with the
// default row-major stride.
//
// While the write view is alive, no other read or write view may
// address overlapping memory. This exclusivity is an API contract,
// not enforced at runtime.
func (a *Array[T]) MutView() MutView[T] {
	return MutView[T]{view: a.View()}
}

// Get returns the element at the given coordinate, reporting whether
// it is in range.
func (a *Array[T]) Get(index ...int) (T, bool) {
	return a.View().Get(index...)
}

// At returns the element at the given coordinate.
// Panics if the coordinate is out of range.
func (a *Array[T]) At(index ...int) T {
	return a.View().At(index...)
}

// Set stores value at the given coordinate.
// Panics if the coordinate is out of range.
func (a *Array[T]) Set(value T, index ...int) {
	a.MutView().Set(value, index...)
}

// All yields every element in row-major order.
func (a *Array[T]) All() iter.Seq[T] {
	return a.View().All()
}

// Pairs yields every (coordinate, element) pair in row-major order.
func (a *Array[T]) Pairs() iter.Seq2[Index, T] {
	return a.View().Iter()
}

// IntoPairs consumes the array, yielding (coordinate, element) pairs
// in row-major order. The array releases its backing storage
// immediately, so any later access through the array panics.
func (a *Array[T]) IntoPairs() iter.Seq2[Index, T] {
	a.checkLive()
	data, l := a.data, a.len
	a.data, a.len = nil, nil
	return func(yield func(Index, T) bool) {
		i := 0
		for index := range Indices(l) {
			if i == len(data) {
				return
			}
			if !yield(index, data[i]) {
				return
			}
			i++
		}
	}
}

// checkLive panics if the array's storage was consumed by IntoPairs.
// Every constructor allocates a non-nil backing slice, so a nil one
// can only mean consumption.
func (a *Array[T]) checkLive() {
	if a.data == nil {
		panic("array already consumed by IntoPairs")
	}
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	a.checkLive()
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &Array[T]{data: data, len: a.len.Clone()}
}

// String renders the array like its read view: a bare scalar for
// rank 0, nested bracketed lists otherwise.
func (a *Array[T]) String() string {
	return a.View().String()
}
