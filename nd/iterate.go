package nd

import "iter"

// Indices yields every coordinate from all-zeros up to the given
// length vector in row-major order: the last axis is incremented
// first, and when an axis reaches its length it resets to 0 and
// carries into the axis before it. After wrapping past the first axis
// the sequence restarts from all-zeros, so it never terminates on its
// own; callers wanting a finite walk take exactly l.Size() items.
//
// Each yielded Index is a fresh copy and may be retained.
func Indices(l Len) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		index := make(Index, len(l))
		for {
			if !yield(index.Clone()) {
				return
			}
			for d := len(l) - 1; d >= 0; d-- {
				index[d]++
				if index[d] < l[d] {
					break
				}
				index[d] = 0
			}
		}
	}
}
