package nd

import (
	"fmt"
	"iter"
)

// Sequence is the elementwise capability shared by owned arrays and
// both view kinds: anything that yields its elements in row-major
// order and reports its own length vector.
type Sequence[T any] interface {
	Len() Len
	All() iter.Seq[T]
}

// Map applies f to every element of s in row-major order, producing a
// new owned array with the same length vector.
func Map[T, U any](s Sequence[T], f func(T) U) *Array[U] {
	l := s.Len().Clone()
	data := make([]U, 0, l.Size())
	for v := range s.All() {
		data = append(data, f(v))
	}
	return &Array[U]{data: data, len: l}
}

// Zip pairs the elements of two sequences positionally.
// Panics if their length vectors differ.
func Zip[A, B any](a Sequence[A], b Sequence[B]) iter.Seq2[A, B] {
	checkZip(a.Len(), b.Len())
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b.All())
		defer stop()
		for av := range a.All() {
			bv, ok := next()
			if !ok {
				return
			}
			if !yield(av, bv) {
				return
			}
		}
	}
}

// ZipMap pairs the elements of two sequences positionally, mapping
// each pair through f to produce a new owned array. This is the basis
// of every binary elementwise operator.
// Panics if the length vectors differ.
func ZipMap[A, B, C any](a Sequence[A], b Sequence[B], f func(A, B) C) *Array[C] {
	l := a.Len().Clone()
	data := make([]C, 0, l.Size())
	for av, bv := range Zip(a, b) {
		data = append(data, f(av, bv))
	}
	return &Array[C]{data: data, len: l}
}

// Equal reports whether two sequences have identical length vectors
// and equal corresponding elements. A length mismatch makes them
// unequal without inspecting elements.
func Equal[T comparable](a, b Sequence[T]) bool {
	if !a.Len().Equal(b.Len()) {
		return false
	}
	for av, bv := range Zip(a, b) {
		if av != bv {
			return false
		}
	}
	return true
}

func checkZip(a, b Len) {
	if !a.Equal(b) {
		panic(fmt.Sprintf("Cannot operate on arrays with %v and %v", a, b))
	}
}
