package linear

import (
	"github.com/scottcagno/collections/pkg/array"
	"github.com/scottcagno/collections/pkg/hash"
	"github.com/scottcagno/collections/pkg/hashmap"
)

// entry is a single slot of the table
type entry[K comparable, V any] struct {
	state hashmap.State
	hash  uint32
	key   K
	value V
}

// Table is an open addressing hash table using plain linear probing.
// Removed entries leave tombstones behind, which later inserts reuse and
// which are dropped whenever the table is rebuilt. It is not safe for
// concurrent use.
type Table[K comparable, V any] struct {
	hash       hash.Func[K]
	loadFactor float64
	mask       int
	count      int
	tombs      int
	maxIndex   int
	entries    *array.Array[entry[K, V]]
}

// New returns a new Table configured by options, which may be nil
func New[K comparable, V any](options *hashmap.Options[K]) *Table[K, V] {
	opts := hashmap.CheckOptions(options)
	return newTable[K, V](opts.InitialCapacity, opts.Hash, opts.LoadFactor)
}

func newTable[K comparable, V any](capacity int, fn hash.Func[K], lf float64) *Table[K, V] {
	return &Table[K, V]{
		hash:       fn,
		loadFactor: lf,
		mask:       capacity - 1,
		maxIndex:   -1,
		entries:    array.MustNew[entry[K, V]](capacity),
	}
}

// findSlot searches for key. When found it returns the slot and true.
// Otherwise it returns the slot an insert should use: the first tombstone
// passed on the way, or else the empty slot that ended the probe.
func (t *Table[K, V]) findSlot(key K, h uint32) (int, bool) {
	i, tomb := int(h&uint32(t.mask)), -1
	for {
		e := t.entries.At(i)
		switch e.state {
		case hashmap.Empty:
			if tomb >= 0 {
				return tomb, false
			}
			return i, false
		case hashmap.Tombstone:
			if tomb < 0 {
				tomb = i
			}
		case hashmap.Valid:
			if e.hash == h && e.key == key {
				return i, true
			}
		}
		i = (i + 1) & t.mask
	}
}

// place writes a new entry into slot i
func (t *Table[K, V]) place(i int, h uint32, key K, value V) {
	e := t.entries.At(i)
	if e.state == hashmap.Tombstone {
		t.tombs--
	}
	*e = entry[K, V]{state: hashmap.Valid, hash: h, key: key, value: value}
	t.count++
	if i > t.maxIndex {
		t.maxIndex = i
	}
}

// resize makes room for one more entry. Tombstones occupy slots as far as
// probing is concerned, so they count against the load factor. If the
// live entries alone fit, the table is rebuilt at the same size, which
// is enough to clear the tombstones out.
func (t *Table[K, V]) resize() bool {
	c := t.Cap()
	if !hashmap.NeedsGrow(c, t.count+t.tombs, t.loadFactor) {
		return false
	}
	n := c
	if hashmap.NeedsGrow(c, t.count, t.loadFactor) {
		n = hashmap.NextCapacity(c)
	}
	if t.count == 0 && n > c {
		t.entries.Grow()
		t.entries.Fill(entry[K, V]{}, true)
		t.mask = t.entries.Cap() - 1
		t.tombs = 0
		t.maxIndex = -1
		return true
	}
	t.reorder(n)
	return true
}

func (t *Table[K, V]) reorder(capacity int) {
	fresh := newTable[K, V](capacity, t.hash, t.loadFactor)
	for i := 0; i <= t.maxIndex; i++ {
		e := t.entries.At(i)
		if e.state != hashmap.Valid {
			continue
		}
		j, _ := fresh.findSlot(e.key, e.hash)
		fresh.place(j, e.hash, e.key, e.value)
	}
	*t = *fresh
}

// add stores value for key and returns the slot it lives in
func (t *Table[K, V]) add(key K, value V) int {
	h := t.hash(key)
	i, ok := t.findSlot(key, h)
	if ok {
		t.entries.At(i).value = value
		return i
	}
	if t.resize() {
		i, _ = t.findSlot(key, h)
	}
	t.place(i, h, key, value)
	return i
}

// Add inserts or overwrites the value for key
func (t *Table[K, V]) Add(key K, value V) {
	t.add(key, value)
}

// Set updates the value for key, adding key if it is absent
func (t *Table[K, V]) Set(key K, value V) {
	t.add(key, value)
}

// Get returns the value for key, or false if none could be found
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t.count == 0 {
		return *new(V), false
	}
	i, ok := t.findSlot(key, t.hash(key))
	if !ok {
		return *new(V), false
	}
	return t.entries.At(i).value, true
}

// Has reports whether key is present
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Entry returns a pointer to the value stored for key, adding the zero
// value first if key is absent. The pointer is only valid until the next
// call that modifies the table.
func (t *Table[K, V]) Entry(key K) *V {
	h := t.hash(key)
	if i, ok := t.findSlot(key, h); ok {
		return &t.entries.At(i).value
	}
	return &t.entries.At(t.add(key, *new(V))).value
}

// Remove marks the slot holding key as a tombstone and returns the value
// it held, or false if key was not present
func (t *Table[K, V]) Remove(key K) (V, bool) {
	if t.count == 0 {
		return *new(V), false
	}
	i, ok := t.findSlot(key, t.hash(key))
	if !ok {
		return *new(V), false
	}
	e := t.entries.At(i)
	v := e.value
	*e = entry[K, V]{state: hashmap.Tombstone}
	t.count--
	t.tombs++
	return v, true
}

// Merge adds every entry of other to t. On conflicting keys the value
// from other wins.
func (t *Table[K, V]) Merge(other *Table[K, V]) {
	for i := 0; i <= other.maxIndex; i++ {
		if e := other.entries.At(i); e.state == hashmap.Valid {
			t.add(e.key, e.value)
		}
	}
}

// Clone returns a deep copy of t that shares no storage with it
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := *t
	c.entries = t.entries.Clone()
	return &c
}

// Range calls fn for each entry in slot order until fn returns false.
// The table must not be modified while ranging.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := 0; i <= t.maxIndex; i++ {
		e := t.entries.At(i)
		if e.state != hashmap.Valid {
			continue
		}
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Len returns the number of entries currently in the Table
func (t *Table[K, V]) Len() int {
	return t.count
}

// Tombstones returns the number of slots currently holding tombstones
func (t *Table[K, V]) Tombstones() int {
	return t.tombs
}

// Cap returns the number of slots
func (t *Table[K, V]) Cap() int {
	return t.entries.Cap()
}

// LoadFactor returns the current ratio of entries to slots
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.Cap())
}

// MaxProbeDistance returns the highest distance from home of any entry
func (t *Table[K, V]) MaxProbeDistance() int {
	var hd int
	for i := 0; i <= t.maxIndex; i++ {
		e := t.entries.At(i)
		if e.state != hashmap.Valid {
			continue
		}
		if d := (i - int(e.hash&uint32(t.mask)) + t.mask + 1) & t.mask; d > hd {
			hd = d
		}
	}
	return hd
}
