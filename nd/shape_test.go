package nd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Geometry tests

func TestLenSize(t *testing.T) {
	tests := []struct {
		len  Len
		size int
	}{
		{Len{}, 1}, // scalar
		{Len{5}, 5},
		{Len{3, 4}, 12},
		{Len{2, 3, 4}, 24},
		{Len{3, 0}, 0},
		{Len{0, 7, 2}, 0},
	}

	for _, tt := range tests {
		if got := tt.len.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.len, got, tt.size)
		}
	}
}

func TestLenStrides(t *testing.T) {
	tests := []struct {
		len    Len
		stride Stride
	}{
		{Len{}, Stride{}},
		{Len{5}, Stride{1}},
		{Len{3, 4}, Stride{4, 1}},
		{Len{2, 3, 4}, Stride{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.len.Strides()
		if len(got) != len(tt.stride) {
			t.Fatalf("%v.Strides() = %v, want %v", tt.len, got, tt.stride)
		}
		for d := range got {
			if got[d] != tt.stride[d] {
				t.Errorf("%v.Strides() = %v, want %v", tt.len, got, tt.stride)
				break
			}
		}
	}
}

func TestLenEqual(t *testing.T) {
	tests := []struct {
		a, b  Len
		equal bool
	}{
		{Len{3, 4}, Len{3, 4}, true},
		{Len{3, 4}, Len{4, 3}, false},
		{Len{3}, Len{3, 1}, false},
		{Len{}, Len{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestLenClone(t *testing.T) {
	l := Len{3, 4}
	clone := l.Clone()
	clone[0] = 9
	if l[0] != 3 {
		t.Errorf("Clone shares storage with the original")
	}
}

func TestGeometryString(t *testing.T) {
	assert.Equal(t, "Len([3, 4])", Len{3, 4}.String())
	assert.Equal(t, "Stride([4, 1])", Stride{4, 1}.String())
	assert.Equal(t, "Index([1, 2])", Index{1, 2}.String())
	assert.Equal(t, "Len([])", Len{}.String())
	assert.Equal(t, "Index([7])", Index{7}.String())
}

func TestBoundsBuilders(t *testing.T) {
	b := All()
	assert.Nil(t, b.start)
	assert.Nil(t, b.end)
	assert.Equal(t, 1, b.step)

	from := b.From(1)
	assert.Equal(t, 1, *from.start)
	assert.Nil(t, b.start, "From must not mutate the receiver")

	to := from.To(5)
	assert.Equal(t, 1, *to.start)
	assert.Equal(t, 5, *to.end)

	incl := b.ToInclusive(4)
	assert.Equal(t, 5, *incl.end)

	stepped := to.Step(2)
	assert.Equal(t, 2, stepped.step)
	assert.Equal(t, 1, to.step, "Step must not mutate the receiver")
}

// Index enumerator tests

func TestIndicesRowMajorOrder(t *testing.T) {
	want := []Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	var got []Index
	for index := range Indices(Len{2, 2}) {
		got = append(got, index)
		if len(got) == len(want) {
			break
		}
	}

	assert.Equal(t, want, got)
}

func TestIndicesWrapAround(t *testing.T) {
	// The sequence repeats forever; after Size items it restarts at
	// all-zeros.
	var got []Index
	for index := range Indices(Len{2, 2}) {
		got = append(got, index)
		if len(got) == 5 {
			break
		}
	}

	assert.Equal(t, Index{0, 0}, got[4])
}

func TestIndicesScalar(t *testing.T) {
	for index := range Indices(Len{}) {
		assert.Equal(t, Index{}, index)
		break
	}
}

func TestLocationMatchesDefaultStride(t *testing.T) {
	a := NewZero[int](Len{3, 4})
	v := a.View()
	stride := Len{3, 4}.Strides()

	for index := range v.Indices() {
		want := 0
		for d, i := range index {
			want += i * stride[d]
		}
		if got := v.location(index); got != want {
			t.Errorf("location(%v) = %d, want %d", index, got, want)
		}
	}
}
