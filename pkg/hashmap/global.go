package hashmap

import (
	"io"
	"math"
	"math/bits"
)

const (
	DefaultLoadFactor = 0.80
	MinLoadFactor     = 0.50
	MaxLoadFactor     = 0.95
	DefaultCapacity   = 2

	// MaxCapacity is the largest power of two an int can hold
	MaxCapacity = 1 << (bits.UintSize - 2)
)

// State marks what a slot currently holds. The zero value is Empty so
// freshly grown storage needs no initialization.
type State uint8

const (
	Empty State = iota
	Valid
	Tombstone
)

func (s State) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Valid:
		return "VALID"
	case Tombstone:
		return "TOMB"
	}
	return "UNKNOWN"
}

// AlignCapacity rounds size up to a power of two, never below DefaultCapacity
// and never above MaxCapacity
func AlignCapacity(size int) int {
	if size >= MaxCapacity {
		return MaxCapacity
	}
	count := DefaultCapacity
	for count < size {
		count *= 2
	}
	return count
}

// NextCapacity is the capacity a table grows to from capacity c
func NextCapacity(c int) int {
	if c == 0 {
		return 8
	}
	return c * 2
}

// NeedsGrow reports whether adding one more entry to a table holding used
// slots would push it past the load factor
func NeedsGrow(capacity, used int, loadFactor float64) bool {
	return float64(capacity)*loadFactor < float64(used+1)
}

// CheckLoadFactor clamps lf into [MinLoadFactor, MaxLoadFactor], mapping
// anything unset or NaN to DefaultLoadFactor
func CheckLoadFactor(lf float64) float64 {
	if lf <= 0 || math.IsNaN(lf) {
		return DefaultLoadFactor
	}
	if lf < MinLoadFactor {
		return MinLoadFactor
	}
	if lf > MaxLoadFactor {
		return MaxLoadFactor
	}
	return lf
}

// Table is the surface shared by the open addressing tables
type Table[K comparable, V any] interface {
	Add(key K, value V)
	Set(key K, value V)
	Get(key K) (V, bool)
	Remove(key K) (V, bool)
	Entry(key K) *V
	Range(fn func(key K, value V) bool)
	Len() int
	Cap() int
	LoadFactor() float64
	MaxProbeDistance() int
	Dump(w io.Writer)
}
