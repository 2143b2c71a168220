package huffpack

import (
	"testing"
)

func TestNodeQueue_Order(t *testing.T) {
	q := newNodeQueue(0)
	q.Insert(0, 7)
	q.Insert(1, 3)
	q.Insert(2, 7)
	q.Insert(3, 1)
	q.Insert(4, 3)

	expect := []int32{3, 1, 4, 0, 2}
	for i, node := range expect {
		if q.Len() != len(expect)-i {
			t.Fatalf("expected length %d, got %d", len(expect)-i, q.Len())
		}
		item := q.DelMin()
		if item.node != node {
			t.Errorf("pop %d: expected node %d, got %d (freq %d)", i, node, item.node, item.freq)
		}
	}
}
