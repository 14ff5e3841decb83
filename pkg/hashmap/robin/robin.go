package robin

import (
	"github.com/scottcagno/collections/pkg/array"
	"github.com/scottcagno/collections/pkg/hash"
	"github.com/scottcagno/collections/pkg/hashmap"
)

// columns is the structure of arrays backing a Table. All four arrays
// always share one capacity and are only ever grown or swapped together.
type columns[K comparable, V any] struct {
	states *array.Array[hashmap.State]
	hashes *array.Array[uint32]
	keys   *array.Array[K]
	values *array.Array[V]
}

func newColumns[K comparable, V any](capacity int) columns[K, V] {
	c := columns[K, V]{
		states: array.MustNew[hashmap.State](capacity),
		hashes: array.MustNew[uint32](capacity),
		keys:   array.MustNew[K](capacity),
		values: array.MustNew[V](capacity),
	}
	c.states.Fill(hashmap.Empty, true)
	return c
}

func (c *columns[K, V]) grow() {
	c.states.Grow()
	c.hashes.Grow()
	c.keys.Grow()
	c.values.Grow()
	c.states.Fill(hashmap.Empty, true)
}

func (c *columns[K, V]) clone() columns[K, V] {
	return columns[K, V]{
		states: c.states.Clone(),
		hashes: c.hashes.Clone(),
		keys:   c.keys.Clone(),
		values: c.values.Clone(),
	}
}

// move copies the row at src over the row at dst
func (c *columns[K, V]) move(dst, src int) {
	*c.states.At(dst) = *c.states.At(src)
	*c.hashes.At(dst) = *c.hashes.At(src)
	*c.keys.At(dst) = *c.keys.At(src)
	*c.values.At(dst) = *c.values.At(src)
}

// clear resets the row at i to an empty slot
func (c *columns[K, V]) clear(i int) {
	*c.states.At(i) = hashmap.Empty
	*c.hashes.At(i) = 0
	*c.keys.At(i) = *new(K)
	*c.values.At(i) = *new(V)
}

// Table is an open addressing hash table using robin hood hashing with
// backward shift deletion. It is not safe for concurrent use.
type Table[K comparable, V any] struct {
	hash       hash.Func[K]
	loadFactor float64
	mask       int
	count      int
	maxIndex   int // highest slot written since the last rebuild, -1 if none
	cols       columns[K, V]
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
		mask:       capacity - 1, // capacity is a power of two, so this masks instead of modulo
		count:      0,
		maxIndex:   -1,
		cols:       newColumns[K, V](capacity),
	}
}

func (t *Table[K, V]) home(h uint32) int {
	return int(h & uint32(t.mask))
}

func (t *Table[K, V]) next(i int) int {
	return (i + 1) & t.mask
}

// distance returns how far slot i is from the home slot of hash h
func (t *Table[K, V]) distance(i int, h uint32) int {
	return (i - t.home(h) + t.mask + 1) & t.mask
}

// findSlot returns the slot holding key, or -1. The scan ends at an empty
// slot or at a resident that is closer to its home than we are to ours,
// since an insert of key would have displaced that resident.
func (t *Table[K, V]) findSlot(key K, h uint32) int {
	i := t.home(h)
	for d := 0; *t.cols.states.At(i) == hashmap.Valid; d++ {
		rh := *t.cols.hashes.At(i)
		if t.distance(i, rh) < d {
			break
		}
		if rh == h && *t.cols.keys.At(i) == key {
			return i
		}
		i = t.next(i)
	}
	return -1
}

// insert places a key known to be absent, carrying displaced residents
// forward until an empty slot turns up. It returns the slot key landed in.
// The caller must have made room already.
func (t *Table[K, V]) insert(h uint32, key K, value V) int {
	i, d, landed := t.home(h), 0, -1
	for {
		if st := t.cols.states.At(i); *st != hashmap.Valid {
			*st = hashmap.Valid
			*t.cols.hashes.At(i) = h
			*t.cols.keys.At(i) = key
			*t.cols.values.At(i) = value
			t.count++
			if i > t.maxIndex {
				t.maxIndex = i
			}
			if landed < 0 {
				landed = i
			}
			return landed
		}
		hp := t.cols.hashes.At(i)
		if rd := t.distance(i, *hp); rd < d {
			// the resident is richer, so it gives up the slot and we
			// carry it forward from its own distance
			kp, vp := t.cols.keys.At(i), t.cols.values.At(i)
			h, *hp = *hp, h
			key, *kp = *kp, key
			value, *vp = *vp, value
			if landed < 0 {
				landed = i
			}
			d = rd
		}
		i = t.next(i)
		d++
	}
}

// resize grows the table when one more entry would exceed the load factor.
// An empty table just grows its arrays; otherwise every live entry is
// replayed into a fresh set of arrays which then replace the old ones.
func (t *Table[K, V]) resize() {
	if !hashmap.NeedsGrow(t.Cap(), t.count, t.loadFactor) {
		return
	}
	if t.count == 0 {
		t.cols.grow()
		t.mask = t.cols.states.Cap() - 1
		t.maxIndex = -1
		return
	}
	t.reorder(hashmap.NextCapacity(t.Cap()))
}

func (t *Table[K, V]) reorder(capacity int) {
	fresh := newTable[K, V](capacity, t.hash, t.loadFactor)
	for i := 0; i <= t.maxIndex; i++ {
		if *t.cols.states.At(i) != hashmap.Valid {
			continue
		}
		fresh.insert(*t.cols.hashes.At(i), *t.cols.keys.At(i), *t.cols.values.At(i))
	}
	*t = *fresh
}

// deleteAt empties slot i and pulls every following displaced entry one
// slot back toward home, stopping at an empty slot or an entry at home.
func (t *Table[K, V]) deleteAt(i int) {
	for {
		j := t.next(i)
		if *t.cols.states.At(j) != hashmap.Valid || t.distance(j, *t.cols.hashes.At(j)) == 0 {
			t.cols.clear(i)
			break
		}
		t.cols.move(i, j)
		i = j
	}
	t.count--
}

// Add inserts or overwrites the value for key. Overwriting never moves
// entries or resizes the table.
func (t *Table[K, V]) Add(key K, value V) {
	h := t.hash(key)
	if i := t.findSlot(key, h); i >= 0 {
		*t.cols.values.At(i) = value
		return
	}
	t.resize()
	t.insert(h, key, value)
}

// Set updates the value for key, adding key if it is absent
func (t *Table[K, V]) Set(key K, value V) {
	t.Add(key, value)
}

// Get returns the value for key, or false if none could be found
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t.count == 0 {
		return *new(V), false
	}
	i := t.findSlot(key, t.hash(key))
	if i < 0 {
		return *new(V), false
	}
	return *t.cols.values.At(i), true
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
	if i := t.findSlot(key, h); i >= 0 {
		return t.cols.values.At(i)
	}
	t.resize()
	return t.cols.values.At(t.insert(h, key, *new(V)))
}

// Remove deletes key and returns its value, or false if it was not present.
// Removing never shrinks the table.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	if t.count == 0 {
		return *new(V), false
	}
	i := t.findSlot(key, t.hash(key))
	if i < 0 {
		return *new(V), false
	}
	v := *t.cols.values.At(i)
	t.deleteAt(i)
	return v, true
}

// Merge adds every entry of other to t. On conflicting keys the value
// from other wins.
func (t *Table[K, V]) Merge(other *Table[K, V]) {
	for i := 0; i <= other.maxIndex; i++ {
		if *other.cols.states.At(i) == hashmap.Valid {
			t.Add(*other.cols.keys.At(i), *other.cols.values.At(i))
		}
	}
}

// Clone returns a deep copy of t that shares no storage with it
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := *t
	c.cols = t.cols.clone()
	return &c
}

// Range calls fn for each entry in slot order until fn returns false.
// The table must not be modified while ranging.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := 0; i <= t.maxIndex; i++ {
		if *t.cols.states.At(i) != hashmap.Valid {
			continue
		}
		if !fn(*t.cols.keys.At(i), *t.cols.values.At(i)) {
			return
		}
	}
}

// Len returns the number of entries currently in the Table
func (t *Table[K, V]) Len() int {
	return t.count
}

// Cap returns the number of slots
func (t *Table[K, V]) Cap() int {
	return t.cols.states.Cap()
}

// LoadFactor returns the current ratio of entries to slots
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.Cap())
}

// MaxProbeDistance returns the highest distance from home of any entry
func (t *Table[K, V]) MaxProbeDistance() int {
	var hd int
	for i := 0; i <= t.maxIndex; i++ {
		if *t.cols.states.At(i) != hashmap.Valid {
			continue
		}
		if d := t.distance(i, *t.cols.hashes.At(i)); d > hd {
			hd = d
		}
	}
	return hd
}
