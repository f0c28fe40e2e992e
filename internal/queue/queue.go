// Package queue provides a bounded top-k selection heap for search ranking.
package queue

import "container/heap"

// Item is a scored candidate with its enumeration sequence number.
// Seq is the zero-based position in which the candidate was listed; it breaks
// score ties so ranking stays deterministic regardless of retrieval order.
type Item struct {
	ID    string
	Score float32
	Seq   int
}

// worse reports whether a ranks below b: lower score, or equal score and later
// enumeration.
func worse(a, b Item) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Seq > b.Seq
}

// TopK keeps the k best items by descending score, breaking ties by ascending
// enumeration order. Internally it is a min-heap whose root is the current
// worst item, so each push is O(log k) and memory stays bounded at k.
type TopK struct {
	k     int
	items minHeap
}

// NewTopK creates a TopK selector. k must be positive.
func NewTopK(k int) *TopK {
	return &TopK{
		k:     k,
		items: make(minHeap, 0, k),
	}
}

// Push offers an item for selection. Items ranking below the current k best
// are discarded.
func (q *TopK) Push(it Item) {
	if len(q.items) < q.k {
		heap.Push(&q.items, it)
		return
	}
	if worse(it, q.items[0]) {
		return
	}
	q.items[0] = it
	heap.Fix(&q.items, 0)
}

// Len returns the number of currently selected items.
func (q *TopK) Len() int { return len(q.items) }

// Results drains the heap and returns the selected items ranked best-first.
// The TopK must not be reused afterwards.
func (q *TopK) Results() []Item {
	results := make([]Item, len(q.items))
	for i := len(results) - 1; i >= 0; i-- {
		results[i] = heap.Pop(&q.items).(Item)
	}
	return results
}

// minHeap implements heap.Interface ordered worst-first.
type minHeap []Item

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) {
	*h = append(*h, x.(Item))
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
