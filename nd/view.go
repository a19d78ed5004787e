package nd

import (
	"fmt"
	"iter"
	"slices"
)

// View is a non-owning read-only window over a backing buffer,
// described by a base offset, a length vector, and a stride vector.
// The element at coordinate c lives at offset base + sum of
// c[d]*stride[d].
//
// Views are cheap values: copying one copies the (buffer, offset,
// length, stride) description, never the elements. Any number of read
// views may coexist over overlapping memory, but none may be used
// while a write view over overlapping memory is alive.
//
// Every view is constructed so that every in-range coordinate maps to
// an offset inside the backing buffer; slicing, extraction, and
// transposition preserve this by construction.
type View[T any] struct {
	data   []T
	off    int
	len    Len
	stride Stride
}

// location computes the buffer offset of a coordinate. Each component
// must be at most the corresponding axis length; equality is allowed
// only when computing an exclusive end, never for an element access.
func (v View[T]) location(index Index) int {
	off := v.off
	for d, i := range index {
		off += i * v.stride[d]
	}
	return off
}

// Len returns a copy of the view's length vector.
func (v View[T]) Len() Len {
	return v.len.Clone()
}

// Stride returns a copy of the view's stride vector.
func (v View[T]) Stride() Stride {
	return v.stride.Clone()
}

// Rank returns the number of axes.
func (v View[T]) Rank() int {
	return len(v.len)
}

// Size returns the total number of elements addressed by the view.
func (v View[T]) Size() int {
	return v.len.Size()
}

// CheckIndex reports whether every component of the coordinate is
// strictly within the corresponding axis length.
func (v View[T]) CheckIndex(index Index) bool {
	if len(index) != len(v.len) {
		return false
	}
	for d, i := range index {
		if i < 0 || i >= v.len[d] {
			return false
		}
	}
	return true
}

// Get returns the element at the given coordinate, reporting whether
// it is in range.
func (v View[T]) Get(index ...int) (T, bool) {
	idx := Index(index)
	if !v.CheckIndex(idx) {
		var zero T
		return zero, false
	}
	return v.data[v.location(idx)], true
}

// At returns the element at the given coordinate.
// Panics if the coordinate is out of range.
func (v View[T]) At(index ...int) T {
	idx := Index(index)
	if !v.CheckIndex(idx) {
		panic(fmt.Sprintf("%v out of bounds for %v", idx, v.len))
	}
	return v.data[v.location(idx)]
}

// Extract fixes the given axis to coordinate i, producing a view of
// one less rank that shares memory: the new length and stride vectors
// are the originals with the axis removed.
//
// Example:
//
//	m := nd.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	row := m.View().Extract(0, 1) // [4, 5, 6]
func (v View[T]) Extract(axis, i int) View[T] {
	v.checkAxis(axis)
	dimLen := v.len[axis]
	if i < 0 || i >= dimLen {
		panic(fmt.Sprintf("index %d out of bounds for dimension of len %d", i, dimLen))
	}
	return View[T]{
		data:   v.data,
		off:    v.off + i*v.stride[axis],
		len:    Len(removeAt(v.len, axis)),
		stride: Stride(removeAt(v.stride, axis)),
	}
}

// AddDim inserts a new axis of the given extent at the given position
// with stride 0, producing a view of one more rank. Every coordinate
// along the new axis aliases the same memory (a broadcast axis), so
// extracting any coordinate along it gives back the original view.
// The axis may be at most the current rank.
func (v View[T]) AddDim(axis, extent int) View[T] {
	if axis < 0 || axis > len(v.len) {
		panic(fmt.Sprintf("axis %d out of bounds for rank %d", axis, len(v.len)))
	}
	if extent < 0 {
		panic(fmt.Sprintf("extent must be non-negative, got %d", extent))
	}
	return View[T]{
		data:   v.data,
		off:    v.off,
		len:    Len(insertAt(v.len, axis, extent)),
		stride: Stride(insertAt(v.stride, axis, 0)),
	}
}

// Slice restricts the view along each axis, taking exactly one Bounds
// per axis. For each axis the start defaults to 0 and the exclusive
// end to the axis length; the step must be positive. The new axis
// length is the number of steps in start..end, the new stride is the
// old stride times the step, and the base moves to the per-axis
// starts.
//
// Example:
//
//	inner := m.View().Slice(nd.All().From(1).To(3), nd.All().From(1).To(3))
func (v View[T]) Slice(bounds ...Bounds) View[T] {
	if len(bounds) != len(v.len) {
		panic(fmt.Sprintf("expected %d bounds, got %d", len(v.len), len(bounds)))
	}
	off := v.off
	newLen := make(Len, len(v.len))
	newStride := make(Stride, len(v.len))
	for d, b := range bounds {
		start, end := 0, v.len[d]
		if b.start != nil {
			start = *b.start
		}
		if b.end != nil {
			end = *b.end
		}
		if start < 0 || start > end || end > v.len[d] {
			panic(fmt.Sprintf("range %d..%d out of bounds for dimension of len %d", start, end, v.len[d]))
		}
		if b.step == 0 {
			panic("assertion failed: step != 0")
		}
		if b.step < 0 {
			panic(fmt.Sprintf("step must be positive, got %d", b.step))
		}
		off += start * v.stride[d]
		newLen[d] = (end - start + b.step - 1) / b.step
		newStride[d] = v.stride[d] * b.step
	}
	return View[T]{data: v.data, off: off, len: newLen, stride: newStride}
}

// Transpose reverses the order of the length and stride vectors as a
// whole, so the element at coordinate [a, ..., z] moves to
// [z, ..., a]. For a rank-2 view this is the matrix transpose.
// Transpose is its own inverse.
func (v View[T]) Transpose() View[T] {
	l := v.len.Clone()
	s := v.stride.Clone()
	slices.Reverse(l)
	slices.Reverse(s)
	return View[T]{data: v.data, off: v.off, len: l, stride: s}
}

// Indices yields every coordinate of the view exactly once, in
// row-major order. The sequence is finite and can be ranged over
// again from the start.
func (v View[T]) Indices() iter.Seq[Index] {
	l := v.len.Clone()
	return func(yield func(Index) bool) {
		remaining := l.Size()
		for index := range Indices(l) {
			if remaining == 0 {
				return
			}
			if !yield(index) {
				return
			}
			remaining--
		}
	}
}

// All yields every element in row-major order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range v.Indices() {
			if !yield(v.data[v.location(index)]) {
				return
			}
		}
	}
}

// Iter yields every (coordinate, element) pair in row-major order.
func (v View[T]) Iter() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for index := range v.Indices() {
			if !yield(index, v.data[v.location(index)]) {
				return
			}
		}
	}
}

// Mut converts the read view back into a write view. The caller must
// guarantee exclusivity: no other read or write view may address
// overlapping memory while the result is alive.
func (v View[T]) Mut() MutView[T] {
	return MutView[T]{view: v}
}

func (v View[T]) checkAxis(axis int) {
	if axis < 0 || axis >= len(v.len) {
		panic(fmt.Sprintf("axis %d out of bounds for rank %d", axis, len(v.len)))
	}
}
