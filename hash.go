package bloomfilter

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// Hasher maps arbitrary input to the 64-bit seed from which the k slot
// indices are expanded. It must be deterministic.
type Hasher func(data []byte) uint64

// XXHash is the default Hasher.
func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Murmur3 hashes with the 64-bit half of MurmurHash3 x64_128.
func Murmur3(data []byte) uint64 {
	return murmur3.Sum64(data)
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// reduce maps hash onto [0, n) without a division.
// http://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func reduce(hash, n uint64) uint64 {
	hi, _ := bits.Mul64(hash, n)
	return hi
}

// indices fills dst with len(dst) slot indices in [0, m) expanded from seed.
// The seed is copied, so the same seed always yields the same sequence.
// Repeated indices are kept.
func indices(dst []uint64, seed, m uint64) []uint64 {
	state := seed
	for i := range dst {
		dst[i] = reduce(splitmix64(&state), m)
	}
	return dst
}

func keyBytes(buf *[8]byte, key uint64) []byte {
	binary.LittleEndian.PutUint64(buf[:], key)
	return buf[:]
}

// Indices returns the k slot indices in [0, m) that data maps to under the
// default hasher. Calling it twice with the same arguments gives the same
// answer.
func Indices(data []byte, k, m uint64) []uint64 {
	if k == 0 || m == 0 {
		return nil
	}
	return indices(make([]uint64, k), XXHash(data), m)
}
