package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Bytes hashes a raw byte representation down to 32 bits
type Bytes func(b []byte) uint32

// Jenkins is Bob Jenkins' one-at-a-time hash
func Jenkins(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Murmur3 is the 32 bit murmur3 hash with a zero seed
func Murmur3(b []byte) uint32 {
	return murmur3.Sum32(b)
}

// XXHash folds the 64 bit xxhash of b into 32 bits
func XXHash(b []byte) uint32 {
	h := xxhash.Sum64(b)
	return uint32(h) ^ uint32(h>>32)
}

// ByName looks up a byte hasher by its flag name
func ByName(name string) (Bytes, bool) {
	switch name {
	case "", "jenkins":
		return Jenkins, true
	case "murmur3":
		return Murmur3, true
	case "xxhash":
		return XXHash, true
	}
	return nil, false
}
