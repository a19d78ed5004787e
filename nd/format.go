package nd

import (
	"fmt"
	"strings"
)

// String renders the view: a rank-0 view prints its bare element, and
// rank >= 1 prints nested bracketed lists built by recursively
// rendering each sub-view extracted along axis 0.
//
// Example:
//
//	nd.FromRows([][]int{{1, 2, 3}, {4, 5, 6}}).String() // "[[1, 2, 3], [4, 5, 6]]"
func (v View[T]) String() string {
	if len(v.len) == 0 {
		return fmt.Sprint(v.data[v.off])
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.len[0]; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Extract(0, i).String())
	}
	b.WriteByte(']')
	return b.String()
}
