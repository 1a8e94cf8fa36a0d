// Package tick provides periodic trigger implementations for hot loops.
//
// The throughput harness wants to print progress every second or so without
// putting a time.Now() call in a loop that runs a hundred million times a
// second. This package offers three implementations of the Ticker
// interface:
//   - StdTicker: Standard library time.Ticker wrapper
//   - BatchTicker: Check the clock only every N operations
//   - AtomicTicker: Atomic timestamp comparison using runtime.nanotime
//
// The optimized implementations avoid the overhead of the Go runtime's
// central timer heap, which is significant in high-throughput loops.
package tick

import "time"

// Ticker signals when a time interval has elapsed.
//
// All implementations are safe for concurrent use from multiple goroutines,
// though typically only one goroutine polls Tick() in a hot loop.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Reset resets the ticker to start a new interval from now.
	// Useful for reusing a ticker without reallocation.
	Reset()

	// Stop releases any resources held by the ticker.
	// After Stop, the ticker should not be used.
	Stop()
}

// DefaultInterval is a reasonable default for progress reporting.
const DefaultInterval = time.Second
