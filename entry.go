package bloomfilter

// Entry is one cell of an InvertibleFilter. Count is the number of pairs
// hashed into the cell; it goes negative if pairs that were never inserted
// are deleted. KeySum and ValueSum are the XOR of those pairs' keys and
// values. The zero value is an empty cell.
type Entry struct {
	Count    int64
	KeySum   uint64
	ValueSum uint64
}

func (e *Entry) add(key, value uint64) {
	e.Count++
	e.KeySum ^= key
	e.ValueSum ^= value
}

func (e *Entry) remove(key, value uint64) {
	e.Count--
	e.KeySum ^= key
	e.ValueSum ^= value
}

// Less orders entries by ascending count.
func (e *Entry) Less(other *Entry) bool {
	return e.Count < other.Count
}

// IsPure reports whether the cell holds exactly one pair.
func (e *Entry) IsPure() bool {
	return e.Count == 1
}

// Pair is a key-value pair stored in an InvertibleFilter.
type Pair struct {
	Key   uint64
	Value uint64
}
