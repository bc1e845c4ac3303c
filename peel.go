package bloomfilter

import "container/heap"

// drawnCell is a cell as it was when listing started.
type drawnCell struct {
	index int
	entry Entry
}

// peelQueue is a min-heap of drawn cells keyed by their count at draw time.
// Deleting pairs while peeling changes the live cells but never reorders
// the queue.
type peelQueue []drawnCell

func (q peelQueue) Len() int { return len(q) }

func (q peelQueue) Less(i, j int) bool {
	if q[i].entry.Count == q[j].entry.Count {
		return q[i].index < q[j].index
	}
	return q[i].entry.Less(&q[j].entry)
}

func (q peelQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *peelQueue) Push(x any) { *q = append(*q, x.(drawnCell)) }

func (q *peelQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

// List recovers the stored pairs by peeling: cells are drawn once, lowest
// count first, and each drawn cell that is pure at the moment it is popped
// is decoded and its pair deleted from the filter. A cell that only becomes
// pure after it was popped is not revisited; calling List again picks it up.
//
// complete is false if a drawn cell still holds more than one pair at the
// end. The recovered pairs are returned either way. A true complete does
// not mean the filter is empty: pairs whose cells all dropped to a count of
// one after being popped stay behind. Check IsEmpty or Len, or call List
// again.
//
// List empties the filter of every pair it returns. Use Clone first to keep
// the contents.
func (f *InvertibleFilter) List() (complete bool, pairs []Pair) {
	q := make(peelQueue, 0, len(f.cells))
	for i, e := range f.cells {
		if e.Count >= 1 {
			q = append(q, drawnCell{index: i, entry: e})
		}
	}
	drawn := make([]int, 0, len(q))
	heap.Init(&q)
	for q.Len() > 0 {
		c := heap.Pop(&q).(drawnCell)
		drawn = append(drawn, c.index)
		cell := f.cells[c.index]
		if !cell.IsPure() {
			continue
		}
		pairs = append(pairs, Pair{Key: cell.KeySum, Value: cell.ValueSum})
		f.Delete(cell.KeySum, cell.ValueSum)
	}
	for _, i := range drawn {
		if f.cells[i].Count > 1 {
			return false, pairs
		}
	}
	return true, pairs
}
