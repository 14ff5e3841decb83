/*
	Package hashmap holds the pieces shared by the open addressing tables in
	its sub packages. Both tables keep capacity at a power of two so the home
	slot of a key is simply hash & (capacity-1), and both resize before an
	insert would push them past their load factor.

	robin: open addressing with linear probing and 'robin hood hashing.' While
	searching, the distance from the home slot (DIB, distance from initial bucket)
	is kept. An entry that has probed further than the resident of a slot takes
	that slot, and the resident continues probing in its place. Lookups can stop
	as soon as they meet a resident closer to home than themselves. Deletion uses
	backward shifting, so no tombstones are ever left behind. States, hashes,
	keys and values live in four parallel arrays.
	01) https://andre.arko.net/2017/08/24/robin-hood-hashing/
	02) https://cs.uwaterloo.ca/research/tr/1986/CS-86-14.pdf
	03) http://codecapsule.com/2013/11/11/robin-hood-hashing/
	04) http://codecapsule.com/2013/11/17/robin-hood-hashing-backward-shift-deletion/

	linear: plain linear probing over a single array of entries. Deleted slots
	become tombstones, which keep probe chains intact and are reused by later
	inserts. Tombstones are dropped whenever the table is rebuilt.
*/
package hashmap
