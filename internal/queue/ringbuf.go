package queue

import (
	"sync/atomic"
)

// RingBuffer is a bounded lock-free SPSC (Single-Producer Single-Consumer)
// queue over a power-of-two ring.
//
// Each side keeps a cached copy of the other side's index, so in the common
// case Push and Pop touch only their own cache line: the producer re-reads
// the consumer's tail only when the ring looks full, and the consumer
// re-reads the producer's head only when the ring looks empty.
//
// WARNING: This queue is NOT safe for multiple producers or multiple
// consumers. There are no runtime guards; see the package documentation.
type RingBuffer[T any] struct {
	buf  []T
	mask uint64

	_pad0 [56]byte //nolint:unused

	// Producer side
	head       atomic.Uint64 // next write position; stored by producer, loaded by consumer
	cachedTail uint64        // producer's snapshot of tail

	_pad1 [48]byte //nolint:unused

	// Consumer side
	tail       atomic.Uint64 // next read position; stored by consumer, loaded by producer
	cachedHead uint64        // consumer's snapshot of head

	_pad2 [48]byte //nolint:unused
}

// NewRingBuffer creates a RingBuffer with the specified size.
// Size will be rounded up to the next power of 2; sizes below 1 are
// treated as 1.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size < 1 {
		size = 1
	}

	// Round up to power of 2
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}

	return &RingBuffer[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// Push adds an item to the queue.
// Returns false if the queue is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push().
func (r *RingBuffer[T]) Push(v T) bool {
	head := r.head.Load()

	if head-r.cachedTail >= uint64(len(r.buf)) {
		// Snapshot looks full; refresh from the consumer's tail.
		r.cachedTail = r.tail.Load()
		if head-r.cachedTail >= uint64(len(r.buf)) {
			return false
		}
	}

	r.buf[head&r.mask] = v

	// Publish the value to the consumer.
	r.head.Store(head + 1)

	return true
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop().
func (r *RingBuffer[T]) Pop() (T, bool) {
	tail := r.tail.Load()

	if tail >= r.cachedHead {
		// Snapshot looks empty; refresh from the producer's head.
		r.cachedHead = r.head.Load()
		if tail >= r.cachedHead {
			var zero T
			return zero, false
		}
	}

	v := r.buf[tail&r.mask]

	// Clear the slot so it does not pin whatever the value references.
	var zero T
	r.buf[tail&r.mask] = zero

	// Release the slot back to the producer.
	r.tail.Store(tail + 1)

	return v, true
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale.
func (r *RingBuffer[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int(head - tail)
}

// Cap returns the capacity of the queue.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}
