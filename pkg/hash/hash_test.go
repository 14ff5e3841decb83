package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 25 words
var words = []string{
	"reproducibility",
	"eruct",
	"acids",
	"flyspecks",
	"driveshafts",
	"volcanically",
	"discouraging",
	"acapnia",
	"phenazines",
	"hoarser",
	"abusing",
	"samara",
	"thromboses",
	"impolite",
	"drivennesses",
	"tenancy",
	"counterreaction",
	"kilted",
	"linty",
	"kistful",
	"biomarkers",
	"infusiblenesses",
	"capsulate",
	"reflowering",
	"heterophyllies",
}

func TestJenkins(t *testing.T) {
	assert.Equal(t, uint32(0), Jenkins(nil))
	assert.Equal(t, uint32(0xca2e9442), Jenkins([]byte("a")))
	assert.Equal(t, uint32(0x519e91f5), Jenkins([]byte("The quick brown fox jumps over the lazy dog")))
}

func TestXXHash(t *testing.T) {
	// xxhash64("") = 0xef46db3751d8e999
	assert.Equal(t, uint32(0xbe9e32ae), XXHash(nil))
}

func TestMurmur3(t *testing.T) {
	assert.Equal(t, uint32(0), Murmur3(nil))
	assert.Equal(t, Murmur3([]byte("abc")), Murmur3([]byte("abc")))
	assert.NotEqual(t, Murmur3([]byte("abc")), Murmur3([]byte("abd")))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "jenkins", "murmur3", "xxhash"} {
		fn, ok := ByName(name)
		require.True(t, ok, name)
		require.NotNil(t, fn)
	}
	_, ok := ByName("crc32")
	assert.False(t, ok)
}

func TestFor_Collisions(t *testing.T) {
	for _, name := range []string{"jenkins", "murmur3", "xxhash"} {
		fn, _ := ByName(name)
		h := For[string](fn)
		set := make(map[uint32]string, len(words))
		var coll int
		for _, word := range words {
			sum := h(word)
			if old, ok := set[sum]; ok {
				coll++
				t.Logf("%s collision: %q and %q -> %d", name, word, old, sum)
				continue
			}
			set[sum] = word
		}
		assert.Zero(t, coll, name)
	}
}

func TestFor_MatchesRawBytes(t *testing.T) {
	assert.Equal(t, Jenkins([]byte("hoarser")), For[string](nil)("hoarser"))
	// integers hash their little endian representation at their own width
	assert.Equal(t, uint32(0x359a7bad), For[uint32](nil)(3))
	assert.Equal(t, uint32(0x7003b4f9), For[int64](nil)(3))
	assert.Equal(t, Jenkins([]byte{7}), For[byte](nil)(7))
}

type userID uint32

type point struct {
	x, y float64
	tag  string
}

func TestFor_NamedAndComposite(t *testing.T) {
	assert.Equal(t, For[uint32](nil)(9), For[userID](nil)(9))

	ph := For[point](nil)
	assert.Equal(t, ph(point{1, 2, "a"}), ph(point{1, 2, "a"}))
	assert.NotEqual(t, ph(point{1, 2, "a"}), ph(point{2, 1, "a"}))
	// equal keys hash equal even when the bits differ
	assert.Equal(t, ph(point{0, 0, ""}), ph(point{negZero(), 0, ""}))
	assert.Equal(t, For[float64](nil)(0), For[float64](nil)(negZero()))

	ah := For[any](nil)
	assert.Equal(t, ah("x"), ah("x"))
	assert.NotEqual(t, ah("1"), ah(1))
	assert.Equal(t, ah(nil), ah(nil))

	arr := For[[2]int](nil)
	assert.NotEqual(t, arr([2]int{1, 2}), arr([2]int{2, 1}))
}

func negZero() float64 {
	var z float64
	return -z
}

func BenchmarkFor(b *testing.B) {
	for _, name := range []string{"jenkins", "murmur3", "xxhash"} {
		fn, _ := ByName(name)
		h := For[string](fn)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			var sum uint32
			for n := 0; n < b.N; n++ {
				sum += h(words[n%len(words)])
			}
			result = sum
		})
	}
}

var result interface{}

func ExampleFor() {
	h := For[string](Jenkins)
	fmt.Printf("%#x\n", h("a"))
	// Output: 0xca2e9442
}
