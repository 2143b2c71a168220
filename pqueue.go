package huffpack

import (
	"container/heap"
)

// queueItem is a trie node waiting to be merged.  seq records the order in
// which items entered the queue and breaks frequency ties.
type queueItem struct {
	node int32
	freq uint64
	seq  uint32
}

// type nodeQueue {{{

type nodeQueue struct {
	list    []queueItem
	nextSeq uint32
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]queueItem, 0, capacity)}
}

// Insert adds node with the given frequency.
func (q *nodeQueue) Insert(node int32, freq uint64) {
	item := queueItem{node: node, freq: freq, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(q, item)
}

// DelMin removes and returns the item with the smallest frequency.
func (q *nodeQueue) DelMin() queueItem {
	return heap.Pop(q).(queueItem)
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueItem{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
