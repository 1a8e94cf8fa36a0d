// Package cancel provides stop-flag implementations for producer/consumer
// loops.
//
// The throughput harness runs its producer and consumer in tight loops that
// poll a stop flag millions of times per second, so the cost of the check
// matters. This package offers two implementations of the Canceler
// interface:
//   - ContextCanceler: Standard library approach using context.Context
//   - AtomicCanceler: Optimized approach using atomic.Bool
//
// A single atomic load is an order of magnitude cheaper than a channel
// select on ctx.Done(), which is why the harness uses AtomicCanceler.
package cancel

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}
