package array

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrIndexOutOfRange = errors.New("array: index out of range")
	ErrInvalidSize     = errors.New("array: invalid size")
	ErrEmpty           = errors.New("array: empty")
)

// minGrowth is the capacity an empty array grows to
const minGrowth = 8

// Array is a contiguous, owned and resizable buffer of T. It keeps a
// logical length n <= capacity; slots [n, cap) are allocated but hold
// whatever was last written there (or the zero value).
type Array[T any] struct {
	entries []T // len(entries) is always the capacity
	count   int
}

// New returns an empty Array with room for exactly capacity elements
func New[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "capacity %d", capacity)
	}
	return &Array[T]{
		entries: make([]T, capacity),
		count:   0,
	}, nil
}

// NewSized returns an Array whose length and capacity are both size,
// each slot holding the zero value of T
func NewSized[T any](size int) (*Array[T], error) {
	a, err := New[T](size)
	if err != nil {
		return nil, err
	}
	a.count = size
	return a, nil
}

// MustNew is like New but panics on a bad capacity
func MustNew[T any](capacity int) *Array[T] {
	a, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Array[T]) outOfRange(i, bound int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, bound %d", i, bound)
}

// Len returns the logical length
func (a *Array[T]) Len() int {
	return a.count
}

// Cap returns the number of allocated slots
func (a *Array[T]) Cap() int {
	return len(a.entries)
}

// Get returns the element at i, where i must be below the logical length
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.count {
		return *new(T), a.outOfRange(i, a.count)
	}
	return a.entries[i], nil
}

// Set overwrites the element at i, where i must be below the logical length
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.count {
		return a.outOfRange(i, a.count)
	}
	a.entries[i] = v
	return nil
}

// Slot returns a pointer to the raw slot at i. It only checks i against
// the capacity, not the logical length. The pointer is invalidated by
// anything that can grow the array.
func (a *Array[T]) Slot(i int) (*T, error) {
	if i < 0 || i >= len(a.entries) {
		return nil, a.outOfRange(i, len(a.entries))
	}
	return &a.entries[i], nil
}

// At is Slot for callers that manage occupancy themselves. It panics
// with a wrapped ErrIndexOutOfRange instead of returning it.
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= len(a.entries) {
		panic(a.outOfRange(i, len(a.entries)))
	}
	return &a.entries[i]
}

// Grow reallocates to double the capacity (or minGrowth when empty) and
// moves the populated prefix over. Slots past the length start zeroed.
func (a *Array[T]) Grow() {
	n := len(a.entries) * 2
	if n == 0 {
		n = minGrowth
	}
	a.growTo(n)
}

func (a *Array[T]) growTo(n int) {
	entries := make([]T, n)
	copy(entries, a.entries[:a.count])
	a.entries = entries
}

// Reserve grows the array until it can hold at least n elements
func (a *Array[T]) Reserve(n int) {
	for len(a.entries) < n {
		a.Grow()
	}
}

// Push appends v, growing first if the array is full
func (a *Array[T]) Push(v T) {
	if a.count >= len(a.entries) {
		a.Grow()
	}
	a.entries[a.count] = v
	a.count++
}

// Pop removes and returns the last element
func (a *Array[T]) Pop() (T, error) {
	if a.count == 0 {
		return *new(T), ErrEmpty
	}
	a.count--
	v := a.entries[a.count]
	a.entries[a.count] = *new(T)
	return v, nil
}

// Insert places v at i, shifting [i, n) one slot to the right. An index
// equal to the length appends.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.count {
		return a.outOfRange(i, a.count)
	}
	if i == a.count {
		a.Push(v)
		return nil
	}
	a.shift(1, i)
	a.entries[i] = v
	a.count++
	return nil
}

// Delete removes the element at i, shifting [i+1, n) one slot to the left
func (a *Array[T]) Delete(i int) (T, error) {
	if i < 0 || i >= a.count {
		return *new(T), a.outOfRange(i, a.count)
	}
	v := a.entries[i]
	copy(a.entries[i:], a.entries[i+1:a.count])
	a.count--
	a.entries[a.count] = *new(T)
	return v, nil
}

// shift moves [start, n) right by k slots, growing as needed. The gap
// left behind must be written by the caller before count is bumped.
func (a *Array[T]) shift(k, start int) {
	if k <= 0 || a.count == 0 {
		return
	}
	a.Reserve(a.count + k)
	copy(a.entries[start+k:], a.entries[start:a.count])
}

// Fill writes v to every slot in [0, n), or to every allocated slot when
// all is true.
func (a *Array[T]) Fill(v T, all bool) {
	n := a.count
	if all {
		n = len(a.entries)
	}
	for i := 0; i < n; i++ {
		a.entries[i] = v
	}
}

// Clone returns a deep, independent copy with the same capacity
func (a *Array[T]) Clone() *Array[T] {
	b := &Array[T]{
		entries: make([]T, len(a.entries)),
		count:   a.count,
	}
	copy(b.entries, a.entries)
	return b
}

// Values returns a copy of the populated prefix
func (a *Array[T]) Values() []T {
	vals := make([]T, a.count)
	copy(vals, a.entries[:a.count])
	return vals
}

// Range calls fn for each populated element until fn returns false
func (a *Array[T]) Range(fn func(i int, v T) bool) {
	for i := 0; i < a.count; i++ {
		if !fn(i, a.entries[i]) {
			return
		}
	}
}

// Equal reports whether a and b have the same length and elements
func Equal[T comparable](a, b *Array[T]) bool {
	if a.count != b.count {
		return false
	}
	for i := 0; i < a.count; i++ {
		if a.entries[i] != b.entries[i] {
			return false
		}
	}
	return true
}
