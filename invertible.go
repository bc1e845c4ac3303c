package bloomfilter

// LookupResult is the outcome of InvertibleFilter.Lookup.
type LookupResult int

const (
	// NotFound means the key is definitely absent.
	NotFound LookupResult = iota
	// Found means the returned value is the one stored with the key.
	Found
	// Ambiguous means every probed cell held several pairs, so the
	// filter cannot tell.
	Ambiguous
)

func (r LookupResult) String() string {
	switch r {
	case NotFound:
		return "not found"
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	}
	return "unknown"
}

// InvertibleFilter is an Invertible Bloom Filter mapping uint64 keys to
// uint64 values. Each pair is XORed into k of its m cells, which allows
// pairs to be deleted and the whole content to be listed back with high
// probability while the load stays below n.
//
// Deleting a pair that was not inserted is not detected and leaves the
// filter in a state where lookups and listings may return wrong pairs.
//
// An InvertibleFilter is not safe for concurrent use, including concurrent
// reads.
type InvertibleFilter struct {
	params Params
	hasher Hasher
	cells  []Entry
	idx    []uint64
	keybuf [8]byte
	pairs  int64
}

// NewInvertibleFilter creates an empty filter sized by cfg.
func NewInvertibleFilter(cfg Config, opts ...Option) (*InvertibleFilter, error) {
	params, err := Solve(cfg)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return &InvertibleFilter{
		params: params,
		hasher: o.hasher,
		cells:  make([]Entry, params.M),
		idx:    make([]uint64, params.K),
	}, nil
}

// Params returns the resolved parameters.
func (f *InvertibleFilter) Params() Params {
	return f.params
}

// Len returns the number of inserted pairs minus the number of deleted ones.
func (f *InvertibleFilter) Len() int64 {
	return f.pairs
}

// IsEmpty reports whether every cell is back to the zero entry.
func (f *InvertibleFilter) IsEmpty() bool {
	for _, e := range f.cells {
		if e != (Entry{}) {
			return false
		}
	}
	return true
}

func (f *InvertibleFilter) locations(key uint64) []uint64 {
	return indices(f.idx, f.hasher(keyBytes(&f.keybuf, key)), f.params.M)
}

// Insert adds the pair to the filter. It always succeeds.
func (f *InvertibleFilter) Insert(key, value uint64) {
	for _, i := range f.locations(key) {
		f.cells[i].add(key, value)
	}
	f.pairs++
}

// Delete removes a pair previously added with Insert.
func (f *InvertibleFilter) Delete(key, value uint64) {
	for _, i := range f.locations(key) {
		f.cells[i].remove(key, value)
	}
	f.pairs--
}

// Lookup probes the cells of key in order. An empty cell proves the key
// absent; a pure cell either holds key or proves it absent. If no probed
// cell is empty or pure the result is Ambiguous.
func (f *InvertibleFilter) Lookup(key uint64) (uint64, LookupResult) {
	for _, i := range f.locations(key) {
		cell := &f.cells[i]
		switch cell.Count {
		case 0:
			return 0, NotFound
		case 1:
			if cell.KeySum == key {
				return cell.ValueSum, Found
			}
			return 0, NotFound
		}
	}
	return 0, Ambiguous
}

// Get returns the value stored with key. ok is false when the key is not
// in the filter; ErrAmbiguousLookup is returned when the filter cannot
// tell.
func (f *InvertibleFilter) Get(key uint64) (value uint64, ok bool, err error) {
	value, res := f.Lookup(key)
	switch res {
	case Found:
		return value, true, nil
	case Ambiguous:
		return 0, false, ErrAmbiguousLookup
	}
	return 0, false, nil
}

// Clone returns an independent copy of the filter.
func (f *InvertibleFilter) Clone() *InvertibleFilter {
	cells := make([]Entry, len(f.cells))
	copy(cells, f.cells)
	return &InvertibleFilter{
		params: f.params,
		hasher: f.hasher,
		cells:  cells,
		idx:    make([]uint64, len(f.idx)),
		pairs:  f.pairs,
	}
}
