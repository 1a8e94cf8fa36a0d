package combined_test

import (
	"testing"

	"github.com/valyala/fastrand"

	"github.com/randomizedcoder/go-spsc-queue/internal/queue"
)

// Sink variables
var sinkInt int
var sinkBool bool

// ============================================================================
// Pipeline benchmarks (one producer goroutine, one consumer goroutine)
// ============================================================================

// runPipeline drives a 2-goroutine SPSC pipeline: the benchmark goroutine
// produces, a spawned goroutine consumes until told to stop.
func runPipeline(b *testing.B, q queue.Queue[int]) {
	b.Helper()

	done := make(chan struct{})
	consumerDone := make(chan struct{})

	// Consumer goroutine (single consumer - SPSC contract)
	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Pop()
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	// Producer (single producer - SPSC contract)
	for i := 0; i < b.N; i++ {
		for !q.Push(i) {
			// Spin until push succeeds (bounded queues only)
		}
	}

	b.StopTimer()
	close(done)
	<-consumerDone
}

func BenchmarkPipeline_Channel(b *testing.B) {
	runPipeline(b, queue.NewChannel[int](1024))
}

func BenchmarkPipeline_RingBuffer(b *testing.B) {
	runPipeline(b, queue.NewRingBuffer[int](1024))
}

func BenchmarkPipeline_NodeQueue(b *testing.B) {
	runPipeline(b, queue.NewNode[int]())
}

// ============================================================================
// Burst pipelines
// ============================================================================
//
// Real producers rarely emit one value at a time. These benchmarks push
// random-sized bursts (1..64) before the consumer catches up, which
// exercises NodeQueue's chain growth and recycling rather than the
// lockstep fast path. Burst sizes come from fastrand: math/rand's locked
// source would serialize against nothing here but still cost more than
// the queue operations being measured.

func runBurstPipeline(b *testing.B, q queue.Queue[int]) {
	b.Helper()

	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Pop()
			}
		}
	}()

	var rng fastrand.RNG

	b.ReportAllocs()
	b.ResetTimer()

	i := 0
	for i < b.N {
		burst := int(rng.Uint32n(64)) + 1
		if i+burst > b.N {
			burst = b.N - i
		}
		for j := 0; j < burst; j++ {
			for !q.Push(i + j) {
			}
		}
		i += burst
	}

	b.StopTimer()
	close(done)
	<-consumerDone
}

func BenchmarkPipelineBurst_Channel(b *testing.B) {
	runBurstPipeline(b, queue.NewChannel[int](1024))
}

func BenchmarkPipelineBurst_RingBuffer(b *testing.B) {
	runBurstPipeline(b, queue.NewRingBuffer[int](1024))
}

func BenchmarkPipelineBurst_NodeQueue(b *testing.B) {
	runBurstPipeline(b, queue.NewNode[int]())
}
