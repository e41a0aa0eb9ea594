package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// PriorityQueue is a min-priority queue keyed by an orderable priority,
// matching the teacher's NewPriorityQueue[K,P](cap)/Enqueue/Dequeue
// idiom used throughout routing/*.go and graph/pre_process_tiles.go.
// It is backed by container/heap rather than reimplementing the heap
// invariant by hand.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items *pqItems[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	items := make(pqItems[T, P], 0, capacity)
	heap.Init(&items)
	return PriorityQueue[T, P]{items: &items}
}

func (self PriorityQueue[T, P]) Enqueue(item T, priority P) {
	heap.Push(self.items, pqEntry[T, P]{item: item, priority: priority})
}

func (self PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Len() == 0 {
		var zero T
		return zero, false
	}
	entry := heap.Pop(self.items).(pqEntry[T, P])
	return entry.item, true
}

func (self PriorityQueue[T, P]) Length() int {
	return self.items.Len()
}
func (self PriorityQueue[T, P]) IsEmpty() bool {
	return self.items.Len() == 0
}

type pqEntry[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

type pqItems[T any, P constraints.Ordered] []pqEntry[T, P]

func (self pqItems[T, P]) Len() int            { return len(self) }
func (self pqItems[T, P]) Less(i, j int) bool  { return self[i].priority < self[j].priority }
func (self pqItems[T, P]) Swap(i, j int)       { self[i], self[j] = self[j], self[i] }
func (self *pqItems[T, P]) Push(x any)         { *self = append(*self, x.(pqEntry[T, P])) }
func (self *pqItems[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
