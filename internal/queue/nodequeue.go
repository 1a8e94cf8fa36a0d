package queue

import (
	"sync/atomic"
)

// node is one link of a NodeQueue chain. A node belongs to exactly one
// chain; the only cross-thread access is the consumer loading next after
// the producer's publishing store.
type node[T any] struct {
	next atomic.Pointer[node[T]]
	val  T
}

// NodeQueue is an unbounded lock-free SPSC (Single-Producer Single-Consumer)
// queue built on a singly-linked chain of nodes.
//
// The design is Dmitry Vyukov's unbounded SPSC queue
// (https://www.1024cores.net/home/lock-free-algorithms/queues/unbounded-spsc-queue):
// dequeued nodes are not returned to the allocator but kept at the front of
// the chain, where the producer recycles them before allocating new ones.
// In steady state (consumer keeping up with producer) Push performs zero
// allocations and neither operation performs a compare-and-swap.
//
// The chain always satisfies:
//
//	first -> ... -> tailCopy -> ... -> tail -> ... -> head
//
// Nodes strictly between first and tail have been consumed and are free for
// reuse. Nodes after tail up to head hold live values. tailCopy is the
// producer's possibly-stale snapshot of tail; staleness only delays
// recycling, it never breaks the queue.
//
// Dequeued nodes are cached for the lifetime of the queue. If the producer
// outruns the consumer for a sustained period the chain grows and is never
// trimmed; only Reset releases it. This is a deliberate trade: no
// deallocation ever happens on the hot path.
//
// WARNING: This queue is NOT safe for multiple producers or multiple
// consumers. There are no runtime guards; see the package documentation.
type NodeQueue[T any] struct {
	// Consumer side: tail is the most recently consumed node. Its successor,
	// if any, holds the next value to pop. Written only by the consumer,
	// loaded by the producer when refreshing tailCopy.
	tail atomic.Pointer[node[T]]

	// Cache line padding so the consumer's tail stores never invalidate the
	// line holding the producer's cursors.
	_pad0 [56]byte //nolint:unused

	// Producer side: plain pointers, touched only by the producer.
	head     *node[T] // most recently pushed node (end of the chain)
	first    *node[T] // oldest retained node (start of the recycle region)
	tailCopy *node[T] // producer's last observed tail; somewhere between first and tail

	_pad1 [40]byte //nolint:unused
}

// NewNode creates an empty NodeQueue.
//
// The queue starts with a single sentinel node that never carries a value;
// all four cursors point at it.
func NewNode[T any]() *NodeQueue[T] {
	q := &NodeQueue[T]{}
	sentinel := &node[T]{}
	q.tail.Store(sentinel)
	q.head = sentinel
	q.first = sentinel
	q.tailCopy = sentinel
	return q
}

// getNode takes a node from the recycle region, or returns nil if every
// retained node is still live. Producer-only; performs no atomic writes.
func (q *NodeQueue[T]) getNode() *node[T] {
	if q.first != q.tailCopy {
		n := q.first
		q.first = n.next.Load()
		return n
	}

	// The snapshot may be stale; refresh it from the consumer's tail.
	// Pairs with the consumer's store in Pop.
	q.tailCopy = q.tail.Load()
	if q.first != q.tailCopy {
		n := q.first
		q.first = n.next.Load()
		return n
	}

	return nil
}

// Push adds an item to the queue.
// Always returns true: the queue is unbounded and never reports full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push().
func (q *NodeQueue[T]) Push(v T) bool {
	n := q.getNode()
	if n != nil {
		n.next.Store(nil)
		n.val = v
	} else {
		n = &node[T]{val: v}
	}

	// Publish: after this store the consumer's next.Load in Pop observes
	// the node and, with it, the value written above. This is the only
	// synchronization edge in the queue.
	q.head.next.Store(n)
	q.head = n

	return true
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty; an empty result is a normal outcome
// under producer/consumer speed mismatch, and repeated calls on an empty
// queue are side-effect free.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop().
func (q *NodeQueue[T]) Pop() (T, bool) {
	tail := q.tail.Load()
	next := tail.next.Load()
	if next == nil {
		var zero T
		return zero, false
	}

	v := next.val

	// Clear the slot before handing the node back to the producer, so a
	// parked node does not pin whatever the value references.
	var zero T
	next.val = zero

	// Advancing tail is what releases tail (the old sentinel position) into
	// the producer's recycle region.
	q.tail.Store(next)

	return v, true
}

// Reset discards any queued values and releases every retained node,
// leaving the queue empty and ready for reuse.
//
// The chain is walked from the oldest node and unlinked one node at a time
// so the garbage collector can reclaim nodes individually even if the
// caller holds a stale reference somewhere.
//
// Reset must not run concurrently with Push or Pop; the caller must stop
// both goroutines first.
func (q *NodeQueue[T]) Reset() {
	var zero T
	for n := q.first; n != nil; {
		next := n.next.Load()
		n.val = zero
		n.next.Store(nil)
		n = next
	}

	sentinel := &node[T]{}
	q.tail.Store(sentinel)
	q.head = sentinel
	q.first = sentinel
	q.tailCopy = sentinel
}
