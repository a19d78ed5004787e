package nd

import (
	"strconv"
	"strings"
)

// Len holds the per-axis element counts of an array or view.
// The valid coordinates along axis d are 0 <= i < len[d].
type Len []int

// Size returns the total number of elements: the product of all axis
// lengths. A rank-0 Len has size 1 (a scalar); a Len with any zero
// axis has size 0.
func (l Len) Size() int {
	n := 1
	for _, dim := range l {
		n *= dim
	}
	return n
}

// Strides computes the row-major strides for the length vector:
// the last axis has stride 1, and axis d has the product of the
// lengths of all axes after d.
func (l Len) Strides() Stride {
	stride := make(Stride, len(l))
	next := 1
	for d := len(l) - 1; d >= 0; d-- {
		stride[d] = next
		next *= l[d]
	}
	return stride
}

// Equal checks if two length vectors are identical in rank and counts.
func (l Len) Equal(other Len) bool {
	if len(l) != len(other) {
		return false
	}
	for d := range l {
		if l[d] != other[d] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the length vector.
func (l Len) Clone() Len {
	clone := make(Len, len(l))
	copy(clone, l)
	return clone
}

func (l Len) String() string {
	return "Len(" + formatInts(l) + ")"
}

// Stride holds the per-axis element counts to skip in the backing
// buffer to advance one step along each axis. A zero stride makes an
// axis a broadcast axis: every coordinate along it aliases the same
// memory.
type Stride []int

// Clone returns a copy of the stride vector.
func (s Stride) Clone() Stride {
	clone := make(Stride, len(s))
	copy(clone, s)
	return clone
}

func (s Stride) String() string {
	return "Stride(" + formatInts(s) + ")"
}

// Index holds one coordinate per axis.
type Index []int

// Clone returns a copy of the coordinate.
func (i Index) Clone() Index {
	clone := make(Index, len(i))
	copy(clone, i)
	return clone
}

func (i Index) String() string {
	return "Index(" + formatInts(i) + ")"
}

func formatInts(v []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')
	return b.String()
}

// removeAt returns v without the element at position i.
func removeAt(v []int, i int) []int {
	out := make([]int, 0, len(v)-1)
	out = append(out, v[:i]...)
	return append(out, v[i+1:]...)
}

// insertAt returns v with value inserted at position i.
func insertAt(v []int, i, value int) []int {
	out := make([]int, 0, len(v)+1)
	out = append(out, v[:i]...)
	out = append(out, value)
	return append(out, v[i:]...)
}
