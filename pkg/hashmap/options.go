package hashmap

import (
	"github.com/scottcagno/collections/pkg/hash"
)

// Options configures a table. The zero value (or nil) gives a table with
// capacity 2, a 0.8 load factor and a Jenkins based hash.
type Options[K comparable] struct {
	Hash            hash.Func[K]
	LoadFactor      float64
	InitialCapacity int
}

// CheckOptions returns a normalized copy of options, filling in defaults
func CheckOptions[K comparable](options *Options[K]) *Options[K] {
	opts := new(Options[K])
	if options != nil {
		*opts = *options
	}
	if opts.Hash == nil {
		opts.Hash = hash.For[K](nil)
	}
	opts.LoadFactor = CheckLoadFactor(opts.LoadFactor)
	opts.InitialCapacity = AlignCapacity(opts.InitialCapacity)
	return opts
}
