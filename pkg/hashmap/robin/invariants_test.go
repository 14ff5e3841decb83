package robin

import (
	"github.com/cockroachdb/errors"
	"github.com/scottcagno/collections/pkg/hashmap"
)

// checkInvariants walks every slot and verifies the structural rules of
// the table: power of two capacity, load factor bound, an accurate count,
// no tombstones, every entry reachable from its home, and robin hood
// ordering (an entry displaced d slots is preceded by one displaced at
// least d-1 slots).
func (t *Table[K, V]) checkInvariants() error {
	c := t.Cap()
	if c == 0 || c&(c-1) != 0 {
		return errors.AssertionFailedf("capacity %d is not a power of two", c)
	}
	if t.mask != c-1 {
		return errors.AssertionFailedf("mask %d does not match capacity %d", t.mask, c)
	}
	for _, n := range []int{t.cols.hashes.Cap(), t.cols.keys.Cap(), t.cols.values.Cap()} {
		if n != c {
			return errors.AssertionFailedf("column capacity %d differs from %d", n, c)
		}
	}
	if float64(t.count) > float64(c)*t.loadFactor {
		return errors.AssertionFailedf("load %d/%d exceeds %.2f", t.count, c, t.loadFactor)
	}
	var valid int
	for i := 0; i < c; i++ {
		switch *t.cols.states.At(i) {
		case hashmap.Empty:
			continue
		case hashmap.Tombstone:
			return errors.AssertionFailedf("tombstone at slot %d", i)
		}
		valid++
		if i > t.maxIndex {
			return errors.AssertionFailedf("entry at slot %d beyond max index %d", i, t.maxIndex)
		}
		h := *t.cols.hashes.At(i)
		if h != t.hash(*t.cols.keys.At(i)) {
			return errors.AssertionFailedf("stale hash at slot %d", i)
		}
		if j := t.findSlot(*t.cols.keys.At(i), h); j != i {
			return errors.AssertionFailedf("entry at slot %d found at %d", i, j)
		}
		d := t.distance(i, h)
		if d == 0 {
			continue
		}
		p := (i - 1) & t.mask
		if *t.cols.states.At(p) != hashmap.Valid {
			return errors.AssertionFailedf("slot %d at distance %d follows an empty slot", i, d)
		}
		if pd := t.distance(p, *t.cols.hashes.At(p)); pd < d-1 {
			return errors.AssertionFailedf("slot %d at distance %d follows distance %d", i, d, pd)
		}
	}
	if valid != t.count {
		return errors.AssertionFailedf("count %d but %d valid slots", t.count, valid)
	}
	return nil
}
