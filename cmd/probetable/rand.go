package main

import "math/rand"

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randString returns n random letters drawn from src. Each Int63 is cut
// into ten 6-bit indexes and indexes past the alphabet are skipped.
func randString(src rand.Source, n int) string {
	b := make([]byte, 0, n)
	var word int64
	var left int
	for len(b) < n {
		if left == 0 {
			word, left = src.Int63(), 10
		}
		if i := int(word & 0x3f); i < len(letters) {
			b = append(b, letters[i])
		}
		word >>= 6
		left--
	}
	return string(b)
}

// keySet returns count distinct keys produced by gen
func keySet[K comparable](count int, gen func() K) []K {
	seen := make(map[K]struct{}, count)
	keys := make([]K, 0, count)
	for len(keys) < count {
		k := gen()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
