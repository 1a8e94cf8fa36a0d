// Package queue provides SPSC (Single-Producer Single-Consumer) queue
// implementations.
//
// This package offers three implementations of the Queue interface:
//   - NodeQueue: Unbounded lock-free linked-node queue with node recycling
//   - RingBuffer: Bounded lock-free ring buffer with cached indices
//   - ChannelQueue: Standard library approach using buffered channels
//
// # SPSC Safety (IMPORTANT)
//
// NodeQueue and RingBuffer are Single-Producer Single-Consumer queues.
// They are NOT safe for multiple goroutines to call Push() or Pop()
// concurrently. There are no runtime guards: misuse is undefined behavior.
// The hot paths are deliberately free of compare-and-swap and of contended
// atomic writes, and a guard would cost more than the operation it guards.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push()
//   - Exactly ONE goroutine calls Pop()
//   - These may be the same goroutine or different goroutines
package queue

// Queue is a single-producer single-consumer queue.
//
// Implementations are non-blocking: Push returns false if full,
// Pop returns false if empty. Unbounded implementations never
// report full.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)
}
