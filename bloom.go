package bloomfilter

import (
	"github.com/bits-and-blooms/bitset"
)

// BloomFilter is a classic Bloom filter over m bits with k indices per item.
// It reports false positives at roughly the configured rate and never
// reports false negatives. Items cannot be removed.
//
// A BloomFilter is not safe for concurrent use.
type BloomFilter struct {
	params Params
	hasher Hasher
	bits   *bitset.BitSet
	idx    []uint64
}

// NewBloomFilter creates an empty filter sized by cfg.
func NewBloomFilter(cfg Config, opts ...Option) (*BloomFilter, error) {
	params, err := Solve(cfg)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return &BloomFilter{
		params: params,
		hasher: o.hasher,
		bits:   bitset.New(uint(params.M)),
		idx:    make([]uint64, params.K),
	}, nil
}

// Params returns the resolved parameters.
func (f *BloomFilter) Params() Params {
	return f.params
}

func (f *BloomFilter) locations(data []byte) []uint64 {
	return indices(f.idx, f.hasher(data), f.params.M)
}

// Insert adds data to the set.
func (f *BloomFilter) Insert(data []byte) {
	for _, i := range f.locations(data) {
		f.bits.Set(uint(i))
	}
}

// InsertString adds s to the set.
func (f *BloomFilter) InsertString(s string) {
	f.Insert([]byte(s))
}

// Query reports whether data is possibly in the set. A false result is
// definite.
func (f *BloomFilter) Query(data []byte) bool {
	for _, i := range f.locations(data) {
		if !f.bits.Test(uint(i)) {
			return false
		}
	}
	return true
}

// QueryString reports whether s is possibly in the set.
func (f *BloomFilter) QueryString(s string) bool {
	return f.Query([]byte(s))
}

// FillRatio returns the fraction of bits that are set.
func (f *BloomFilter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.params.M)
}

// ClearAll empties the filter.
func (f *BloomFilter) ClearAll() {
	f.bits.ClearAll()
}
