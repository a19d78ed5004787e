package nd

// Bounds restricts one axis when slicing: an optional start (default
// 0), an optional exclusive end (default the axis length), and a step
// (default 1, must be positive). For example, "from 1, every 2nd
// element" is All().From(1).Step(2).
//
// The zero Bounds value has step 0 and is rejected by Slice; start
// from All() instead.
type Bounds struct {
	start *int
	end   *int
	step  int
}

// All selects every coordinate of an axis.
func All() Bounds {
	return Bounds{step: 1}
}

// From returns a copy of the bounds starting at the given coordinate.
func (b Bounds) From(start int) Bounds {
	b.start = &start
	return b
}

// To returns a copy of the bounds ending before the given coordinate.
func (b Bounds) To(end int) Bounds {
	b.end = &end
	return b
}

// ToInclusive returns a copy of the bounds ending at the given
// coordinate.
func (b Bounds) ToInclusive(end int) Bounds {
	return b.To(end + 1)
}

// Step returns a copy of the bounds keeping every step-th coordinate.
func (b Bounds) Step(step int) Bounds {
	b.step = step
	return b
}
