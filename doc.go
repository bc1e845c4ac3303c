// Package bloomfilter implements a classic Bloom filter and an Invertible
// Bloom Filter. Both are sized from any two of n (items), p (false-positive
// rate) and m (slots), and touch k slots per item. The k slots are expanded
// from one 64-bit hash of the item, so no generator state is shared between
// calls.
//
// The Invertible Bloom Filter stores uint64 key-value pairs, supports
// deletion, and can list its contents back by peeling pure cells. See
// https://arxiv.org/pdf/1101.2245.pdf.
package bloomfilter
