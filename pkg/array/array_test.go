package array

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New[int](4)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 4, a.Cap())

	s, err := NewSized[string](3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"", "", ""}, s.Values())

	_, err = New[int](-1)
	require.True(t, errors.Is(err, ErrInvalidSize))
	_, err = NewSized[int](-5)
	require.True(t, errors.Is(err, ErrInvalidSize))

	assert.Panics(t, func() { MustNew[int](-1) })
}

func TestArray_PushGrow(t *testing.T) {
	a := MustNew[int](0)
	caps := []int{}
	for i := 0; i < 20; i++ {
		a.Push(i)
		caps = append(caps, a.Cap())
	}
	assert.Equal(t, 20, a.Len())
	// 0 -> 8 -> 16 -> 32
	assert.Equal(t, 8, caps[0])
	assert.Equal(t, 8, caps[7])
	assert.Equal(t, 16, caps[8])
	assert.Equal(t, 32, caps[16])
	for i := 0; i < 20; i++ {
		v, err := a.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestArray_GetSetBounds(t *testing.T) {
	a := MustNew[int](8)
	a.Push(1)
	a.Push(2)

	_, err := a.Get(2)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = a.Get(-1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.True(t, errors.Is(a.Set(5, 9), ErrIndexOutOfRange))

	require.NoError(t, a.Set(1, 7))
	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestArray_SlotIgnoresLength(t *testing.T) {
	a := MustNew[int](8)
	// nothing pushed, but every allocated slot is addressable
	p, err := a.Slot(7)
	require.NoError(t, err)
	*p = 42
	assert.Equal(t, 42, *a.At(7))
	assert.Equal(t, 0, a.Len())

	_, err = a.Slot(8)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))

	assert.PanicsWithError(t, "index 8, bound 8: array: index out of range", func() {
		a.At(8)
	})
}

func TestArray_GrowKeepsPrefixOnly(t *testing.T) {
	a := MustNew[int](2)
	a.Push(1)
	*a.At(1) = 99 // past the logical length
	a.Grow()
	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 1, *a.At(0))
	assert.Equal(t, 0, *a.At(1))
}

func TestArray_Fill(t *testing.T) {
	a := MustNew[byte](8)
	a.Push(1)
	a.Push(2)
	a.Fill(5, false)
	assert.Equal(t, []byte{5, 5}, a.Values())
	assert.Equal(t, byte(0), *a.At(2))

	a.Fill(7, true)
	for i := 0; i < a.Cap(); i++ {
		assert.Equal(t, byte(7), *a.At(i))
	}
}

func TestArray_InsertDelete(t *testing.T) {
	a := MustNew[string](0)
	for _, s := range []string{"a", "c", "d"} {
		a.Push(s)
	}
	require.NoError(t, a.Insert(1, "b"))
	require.NoError(t, a.Insert(4, "e"))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, a.Values())
	require.True(t, errors.Is(a.Insert(7, "x"), ErrIndexOutOfRange))

	v, err := a.Delete(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"b", "c", "d", "e"}, a.Values())
	_, err = a.Delete(4)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestArray_InsertGrowsWhenFull(t *testing.T) {
	a := MustNew[int](8)
	for i := 0; i < 8; i++ {
		a.Push(i)
	}
	require.NoError(t, a.Insert(0, -1))
	assert.Equal(t, 16, a.Cap())
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6, 7}, a.Values())
}

func TestArray_Pop(t *testing.T) {
	a := MustNew[int](0)
	_, err := a.Pop()
	require.True(t, errors.Is(err, ErrEmpty))
	a.Push(3)
	a.Push(4)
	v, err := a.Pop()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 1, a.Len())
}

func TestArray_CloneEqual(t *testing.T) {
	a := MustNew[int](0)
	for i := 0; i < 10; i++ {
		a.Push(i * i)
	}
	b := a.Clone()
	assert.True(t, Equal(a, b))
	assert.Equal(t, a.Cap(), b.Cap())

	require.NoError(t, b.Set(3, -1))
	assert.False(t, Equal(a, b))
	v, _ := a.Get(3)
	assert.Equal(t, 9, v)

	b.Push(100)
	assert.False(t, Equal(a, b))
}

func TestArray_Range(t *testing.T) {
	a := MustNew[int](0)
	for i := 0; i < 5; i++ {
		a.Push(i)
	}
	var seen []int
	a.Range(func(i int, v int) bool {
		seen = append(seen, v)
		return i < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func BenchmarkArray_Push(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		a := MustNew[int](0)
		for i := 0; i < 1024; i++ {
			a.Push(i)
		}
	}
}
