package nd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Combinator layer

func TestMap(t *testing.T) {
	a := FromRows([][]int{{1, 2}, {3, 4}})
	doubled := Map[int](a, func(v int) int { return v * 2 })

	require.Equal(t, Len{2, 2}, doubled.Len())
	assert.Equal(t, "[[2, 4], [6, 8]]", doubled.String())
	assert.Equal(t, 1, a.At(0, 0), "map must not modify its input")
}

func TestMapChangesElementType(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	halves := Map[int](a, func(v int) float64 { return float64(v) / 2 })
	assert.Equal(t, "[0.5, 1, 1.5]", halves.String())
}

func TestZip(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]string{"a", "b", "c"})

	var pairs []string
	for x, s := range Zip[int, string](a, b) {
		pairs = append(pairs, fmt.Sprintf("%d%s", x, s))
	}
	assert.Equal(t, []string{"1a", "2b", "3c"}, pairs)
}

func TestZipMismatchPanics(t *testing.T) {
	a := NewZero[int](Len{3, 3})
	b := NewZero[int](Len{2, 3})
	assert.PanicsWithValue(t, "Cannot operate on arrays with Len([3, 3]) and Len([2, 3])", func() {
		Zip[int, int](a, b)
	})
}

func TestZipMap(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{10, 20, 30})
	sums := ZipMap[int, int](a, b, func(x, y int) int { return x + y })
	assert.Equal(t, "[11, 22, 33]", sums.String())
}

// Operator bindings

func TestAddAllOperandKinds(t *testing.T) {
	a := FromRows([][]int{{1, 2}, {3, 4}})
	b := FromRows([][]int{{10, 20}, {30, 40}})
	want := FromRows([][]int{{11, 22}, {33, 44}})

	assert.True(t, Equal[int](Add[int](a, b), want), "owned + owned")
	assert.True(t, Equal[int](Add[int](a.View(), b.View()), want), "view + view")
	assert.True(t, Equal[int](Add[int](a, b.View()), want), "owned + view")
	assert.True(t, Equal[int](Add[int](a.View(), b), want), "view + owned")
	assert.True(t, Equal[int](Add[int](a.MutView(), b), want), "write view + owned")
}

func TestArithmeticOperators(t *testing.T) {
	a := FromSlice([]int{8, 12, 20})
	b := FromSlice([]int{2, 3, 5})

	assert.Equal(t, "[6, 9, 15]", Sub[int](a, b).String())
	assert.Equal(t, "[16, 36, 100]", Mul[int](a, b).String())
	assert.Equal(t, "[4, 4, 4]", Div[int](a, b).String())
	assert.Equal(t, "[0, 0, 0]", Rem[int](a, b).String())
}

func TestBitwiseOperators(t *testing.T) {
	a := FromSlice([]uint8{0b1100, 0b1010})
	b := FromSlice([]uint8{0b1010, 0b0110})

	assert.Equal(t, "[8, 2]", And[uint8](a, b).String())
	assert.Equal(t, "[14, 14]", Or[uint8](a, b).String())
	assert.Equal(t, "[6, 12]", Xor[uint8](a, b).String())
}

func TestShiftOperators(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	by := FromSlice([]int{1, 2, 3})

	assert.Equal(t, "[2, 8, 24]", Shl[int](a, by).String())
	assert.Equal(t, "[0, 0, 0]", Shr[int](a, by).String())
}

func TestUnaryOperators(t *testing.T) {
	a := FromSlice([]int{1, -2, 3})
	assert.Equal(t, "[-1, 2, -3]", Neg[int](a).String())

	b := FromSlice([]uint8{0, 255})
	assert.Equal(t, "[255, 0]", Not[uint8](b).String())
}

func TestNegOnView(t *testing.T) {
	a := signed4x4()
	row := a.View().Extract(0, 1)
	assert.Equal(t, "[5, -6, 7, -8]", Neg[int](row).String())
}

func TestOperatorMismatchPanics(t *testing.T) {
	a := NewZero[int](Len{3, 3})
	b := NewZero[int](Len{2, 3})
	assert.PanicsWithValue(t, "Cannot operate on arrays with Len([3, 3]) and Len([2, 3])", func() {
		Add[int](a, b)
	})
}

// Compound assignment

func TestAddAssign(t *testing.T) {
	a := FromRows([][]int{{1, 2}, {3, 4}})
	rhs := FromRows([][]int{{10, 10}, {10, 10}})

	AddAssign(a.MutView(), rhs)

	assert.Equal(t, "[[11, 12], [13, 14]]", a.String())
}

func TestAssignOperatorsInPlace(t *testing.T) {
	fixture := func() *Array[int] { return FromSlice([]int{8, 12, 20}) }
	rhs := FromSlice([]int{2, 3, 5})

	tests := []struct {
		name string
		op   func(MutView[int], Sequence[int])
		want string
	}{
		{"sub", SubAssign[int], "[6, 9, 15]"},
		{"mul", MulAssign[int], "[16, 36, 100]"},
		{"div", DivAssign[int], "[4, 4, 4]"},
		{"rem", RemAssign[int], "[0, 0, 0]"},
		{"and", AndAssign[int], "[0, 0, 4]"},
		{"or", OrAssign[int], "[10, 15, 21]"},
		{"xor", XorAssign[int], "[10, 15, 17]"},
		{"shl", ShlAssign[int], "[32, 96, 640]"},
		{"shr", ShrAssign[int], "[2, 1, 0]"},
	}

	for _, tt := range tests {
		a := fixture()
		tt.op(a.MutView(), rhs)
		assert.Equal(t, tt.want, a.String(), tt.name)
	}
}

func TestAssignThroughStridedView(t *testing.T) {
	a := NewZero[int](Len{4, 4})
	inner := a.MutView().Slice(All().From(1).To(3), All().From(1).To(3))

	AddAssign(inner, FromRows([][]int{{1, 2}, {3, 4}}))

	want := FromRows([][]int{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	})
	assert.True(t, Equal[int](a, want))
}

func TestAssignMismatchPanics(t *testing.T) {
	a := NewZero[int](Len{2, 2})
	rhs := NewZero[int](Len{3})
	assert.PanicsWithValue(t, "Cannot operate on arrays with Len([2, 2]) and Len([3])", func() {
		AddAssign(a.MutView(), rhs)
	})
}
