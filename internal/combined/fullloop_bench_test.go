package combined_test

import (
	"context"
	"testing"
	"time"

	"github.com/randomizedcoder/go-spsc-queue/internal/cancel"
	"github.com/randomizedcoder/go-spsc-queue/internal/queue"
	"github.com/randomizedcoder/go-spsc-queue/internal/tick"
)

const benchInterval = time.Hour

// ============================================================================
// Full loop benchmarks (cancel + tick + queue)
// ============================================================================
//
// These measure what the harness hot loop actually costs: each iteration
// checks the stop flag, checks the progress ticker, and moves one value
// through the queue. The gap between the Standard and Optimized variants
// is the overhead the harness would add to the queue measurement if it
// used stdlib primitives in the loop.

// BenchmarkCombined_FullLoop_Standard simulates the consumer loop with
// stdlib primitives: context cancellation, time.Ticker, buffered channel.
func BenchmarkCombined_FullLoop_Standard(b *testing.B) {
	ctx := cancel.NewContext(context.Background())
	ticker := tick.NewTicker(benchInterval)
	q := queue.NewChannel[int](1024)
	defer ticker.Stop()

	// Pre-fill queue
	for i := 0; i < 1024; i++ {
		q.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok, cancelled, ticked bool
	for i := 0; i < b.N; i++ {
		cancelled = ctx.Done()
		ticked = ticker.Tick()
		val, ok = q.Pop()
		q.Push(val) // Recycle
	}
	sinkInt = val
	sinkBool = ok || cancelled || ticked
}

// BenchmarkCombined_FullLoop_Optimized uses the primitives the harness
// actually runs with: atomic stop flag, batched clock checks, NodeQueue.
func BenchmarkCombined_FullLoop_Optimized(b *testing.B) {
	ctx := cancel.NewAtomic()
	ticker := tick.NewBatch(benchInterval, 1<<16)
	q := queue.NewNode[int]()

	// Prime the recycle region
	for i := 0; i < 1024; i++ {
		q.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok, cancelled, ticked bool
	for i := 0; i < b.N; i++ {
		cancelled = ctx.Done()
		ticked = ticker.Tick()
		val, ok = q.Pop()
		q.Push(val) // Recycle
	}
	sinkInt = val
	sinkBool = ok || cancelled || ticked
}

// BenchmarkCombined_FullLoop_RingBuffer is the bounded variant of the
// optimized loop.
func BenchmarkCombined_FullLoop_RingBuffer(b *testing.B) {
	ctx := cancel.NewAtomic()
	ticker := tick.NewAtomicTicker(benchInterval)
	q := queue.NewRingBuffer[int](1024)

	// Pre-fill queue
	for i := 0; i < 1024; i++ {
		q.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok, cancelled, ticked bool
	for i := 0; i < b.N; i++ {
		cancelled = ctx.Done()
		ticked = ticker.Tick()
		val, ok = q.Pop()
		q.Push(val) // Recycle
	}
	sinkInt = val
	sinkBool = ok || cancelled || ticked
}
