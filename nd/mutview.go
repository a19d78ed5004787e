package nd

import (
	"fmt"
	"iter"
)

// MutView is a non-owning window over a backing buffer with exclusive
// write access to the elements it addresses. While a write view is
// alive, no other read or write view may address overlapping memory;
// this exclusivity is an API contract, not enforced at runtime.
//
// A write view mirrors the read view's geometry operations but keeps
// the exclusivity guarantee, so it forbids operations that would make
// two of its own coordinates alias the same cell: AddDim only inserts
// an axis of extent 1.
type MutView[T any] struct {
	view View[T]
}

// View weakens the write view to a read view over the same memory.
func (m MutView[T]) View() View[T] {
	return m.view
}

// Len returns a copy of the view's length vector.
func (m MutView[T]) Len() Len {
	return m.view.Len()
}

// Stride returns a copy of the view's stride vector.
func (m MutView[T]) Stride() Stride {
	return m.view.Stride()
}

// Rank returns the number of axes.
func (m MutView[T]) Rank() int {
	return m.view.Rank()
}

// Size returns the total number of elements addressed by the view.
func (m MutView[T]) Size() int {
	return m.view.Size()
}

// Get returns a pointer to the element at the given coordinate,
// reporting whether it is in range.
func (m MutView[T]) Get(index ...int) (*T, bool) {
	idx := Index(index)
	if !m.view.CheckIndex(idx) {
		return nil, false
	}
	return &m.view.data[m.view.location(idx)], true
}

// At returns a pointer to the element at the given coordinate.
// Panics if the coordinate is out of range.
func (m MutView[T]) At(index ...int) *T {
	idx := Index(index)
	if !m.view.CheckIndex(idx) {
		panic(fmt.Sprintf("%v out of bounds for %v", idx, m.view.len))
	}
	return &m.view.data[m.view.location(idx)]
}

// Set stores value at the given coordinate.
// Panics if the coordinate is out of range.
func (m MutView[T]) Set(value T, index ...int) {
	*m.At(index...) = value
}

// Extract fixes the given axis to coordinate i, producing a write
// view of one less rank over the same memory.
func (m MutView[T]) Extract(axis, i int) MutView[T] {
	return MutView[T]{view: m.view.Extract(axis, i)}
}

// AddDim inserts a new axis of extent 1 at the given position.
// Unlike the read view, the extent is fixed at 1: a broadcast axis of
// extent > 1 would let two coordinates alias the same mutable cell.
func (m MutView[T]) AddDim(axis int) MutView[T] {
	return MutView[T]{view: m.view.AddDim(axis, 1)}
}

// Slice restricts the write view along each axis, exactly like the
// read view's Slice.
func (m MutView[T]) Slice(bounds ...Bounds) MutView[T] {
	return MutView[T]{view: m.view.Slice(bounds...)}
}

// Transpose reverses the order of the length and stride vectors.
func (m MutView[T]) Transpose() MutView[T] {
	return MutView[T]{view: m.view.Transpose()}
}

// All yields every element by value in row-major order, letting a
// write view stand as the right-hand operand of elementwise
// operations.
func (m MutView[T]) All() iter.Seq[T] {
	return m.view.All()
}

// Ptrs yields a pointer to every element in row-major order. Each
// element is visited exactly once, so no two yielded pointers alias.
func (m MutView[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for index := range m.view.Indices() {
			if !yield(&m.view.data[m.view.location(index)]) {
				return
			}
		}
	}
}

// Iter yields every (coordinate, element pointer) pair in row-major
// order.
func (m MutView[T]) Iter() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for index := range m.view.Indices() {
			if !yield(index, &m.view.data[m.view.location(index)]) {
				return
			}
		}
	}
}

// String renders the view like its read counterpart.
func (m MutView[T]) String() string {
	return m.view.String()
}
