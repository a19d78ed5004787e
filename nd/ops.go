package nd

import "iter"

// Num is the constraint for types supporting the arithmetic
// elementwise operators.
type Num interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Integer is the constraint for types supporting the bitwise,
// shift, and remainder operators.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Unary operators, applied via Map.

// Neg negates every element, producing a new owned array.
func Neg[T Num](s Sequence[T]) *Array[T] {
	return Map(s, func(v T) T { return -v })
}

// Not inverts the bits of every element, producing a new owned array.
func Not[T Integer](s Sequence[T]) *Array[T] {
	return Map(s, func(v T) T { return ^v })
}

// Binary operators, applied via ZipMap. Any combination of owned
// arrays, read views, and write views works as either operand; the
// result is always a new owned array.
// Panics if the operands' length vectors differ.

// Add adds two sequences elementwise.
func Add[T Num](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x + y })
}

// Sub subtracts b from a elementwise.
func Sub[T Num](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x - y })
}

// Mul multiplies two sequences elementwise.
func Mul[T Num](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x * y })
}

// Div divides a by b elementwise.
func Div[T Num](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x / y })
}

// Rem computes a modulo b elementwise.
func Rem[T Integer](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x % y })
}

// And computes the bitwise AND of two sequences elementwise.
func And[T Integer](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x & y })
}

// Or computes the bitwise OR of two sequences elementwise.
func Or[T Integer](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x | y })
}

// Xor computes the bitwise XOR of two sequences elementwise.
func Xor[T Integer](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x ^ y })
}

// Shl shifts a left by b elementwise.
func Shl[T Integer](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x << y })
}

// Shr shifts a right by b elementwise.
func Shr[T Integer](a, b Sequence[T]) *Array[T] {
	return ZipMap(a, b, func(x, y T) T { return x >> y })
}

// Compound assignment, applied in place on a write view against any
// right-hand sequence, iterating in lockstep.
// Panics on length mismatch exactly like Zip.

// AddAssign adds rhs into dst elementwise.
func AddAssign[T Num](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p += v })
}

// SubAssign subtracts rhs from dst elementwise.
func SubAssign[T Num](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p -= v })
}

// MulAssign multiplies dst by rhs elementwise.
func MulAssign[T Num](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p *= v })
}

// DivAssign divides dst by rhs elementwise.
func DivAssign[T Num](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p /= v })
}

// RemAssign reduces dst modulo rhs elementwise.
func RemAssign[T Integer](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p %= v })
}

// AndAssign ANDs rhs into dst elementwise.
func AndAssign[T Integer](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p &= v })
}

// OrAssign ORs rhs into dst elementwise.
func OrAssign[T Integer](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p |= v })
}

// XorAssign XORs rhs into dst elementwise.
func XorAssign[T Integer](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p ^= v })
}

// ShlAssign shifts dst left by rhs elementwise.
func ShlAssign[T Integer](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p <<= v })
}

// ShrAssign shifts dst right by rhs elementwise.
func ShrAssign[T Integer](dst MutView[T], rhs Sequence[T]) {
	assign(dst, rhs, func(p *T, v T) { *p >>= v })
}

func assign[T any](dst MutView[T], rhs Sequence[T], op func(*T, T)) {
	checkZip(dst.Len(), rhs.Len())
	next, stop := iter.Pull(rhs.All())
	defer stop()
	for p := range dst.Ptrs() {
		v, ok := next()
		if !ok {
			return
		}
		op(p, v)
	}
}
