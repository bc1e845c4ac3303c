package bloomfilter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomFilterBasic(t *testing.T) {
	for _, h := range []struct {
		name   string
		hasher Hasher
	}{{"xxhash", XXHash}, {"murmur3", Murmur3}} {
		t.Run(h.name, func(t *testing.T) {
			filter, err := NewBloomFilter(Config{N: 1000, P: 0.01}, WithHasher(h.hasher))
			require.NoError(t, err)
			for i := 0; i < 1000; i++ {
				filter.InsertString(fmt.Sprintf("item-%d", i))
			}
			for i := 0; i < 1000; i++ {
				assert.Equal(t, true, filter.QueryString(fmt.Sprintf("item-%d", i)))
			}
			falsesize := 100000
			matches := 0
			for i := 0; i < falsesize; i++ {
				if filter.QueryString(fmt.Sprintf("absent-%d", i)) {
					matches++
				}
			}
			fpp := float64(matches) * 100.0 / float64(falsesize)
			fmt.Println("Bloom filter", h.name+":")
			fmt.Println("bits per entry ", filter.Params().BitsPerItem())
			fmt.Println("fill ratio ", filter.FillRatio())
			fmt.Println("false positive rate ", fpp)
			assert.Equal(t, true, fpp < 1.5)
		})
	}
}

func TestBloomFilterNoFalseNegatives(t *testing.T) {
	filter, err := NewBloomFilter(Config{N: 100, P: 0.05})
	require.NoError(t, err)
	first := []byte("first")
	filter.Insert(first)
	assert.True(t, filter.Query(first))
	// keeps answering true well past the configured load
	for i := 0; i < 1000; i++ {
		key := keyBytes(&[8]byte{}, splitmix64(&rng))
		filter.Insert(key)
		assert.True(t, filter.Query(key))
		assert.True(t, filter.Query(first))
	}
}

func TestBloomFilterIdempotentInsert(t *testing.T) {
	filter, err := NewBloomFilter(Config{N: 10, M: 1000, K: 5})
	require.NoError(t, err)
	filter.InsertString("a")
	fill := filter.FillRatio()
	assert.InDelta(t, 0.005, fill, 0.0051)
	filter.InsertString("a")
	assert.Equal(t, fill, filter.FillRatio())
}

func TestBloomFilterEmpty(t *testing.T) {
	filter, err := NewBloomFilter(Config{M: 1024, P: 0.01})
	require.NoError(t, err)
	assert.False(t, filter.QueryString("anything"))
	assert.Equal(t, 0.0, filter.FillRatio())

	filter.InsertString("anything")
	assert.True(t, filter.QueryString("anything"))
	filter.ClearAll()
	assert.False(t, filter.QueryString("anything"))
}

func TestBloomFilterConfigurationError(t *testing.T) {
	_, err := NewBloomFilter(Config{N: 100})
	require.ErrorIs(t, err, ErrConfiguration)
}

func BenchmarkBloomFilterInsert(b *testing.B) {
	filter, _ := NewBloomFilter(Config{N: 100000, P: 0.01})
	key := make([]byte, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		key[0], key[1], key[2] = byte(n), byte(n>>8), byte(n>>16)
		filter.Insert(key)
	}
}

func BenchmarkBloomFilterQuery(b *testing.B) {
	filter, _ := NewBloomFilter(Config{N: 100000, P: 0.01})
	for i := 0; i < 100000; i++ {
		filter.InsertString(fmt.Sprint(i))
	}
	key := []byte("12345")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		filter.Query(key)
	}
}
