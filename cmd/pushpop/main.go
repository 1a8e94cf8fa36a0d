// Command pushpop benchmarks single-goroutine push+pop latency across the
// SPSC queue implementations.
//
// Usage:
//
//	go run ./cmd/pushpop -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/randomizedcoder/go-spsc-queue/internal/queue"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "capacity for bounded queues")
	flag.Parse()

	fmt.Printf("Benchmarking SPSC queues (%d iterations, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	// Benchmark channel queue
	ch := queue.NewChannel[int](*size)
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		ch.Push(i)
		ch.Pop()
	}
	chDur := time.Since(start)

	// Benchmark ring buffer
	ring := queue.NewRingBuffer[int](*size)
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		ring.Push(i)
		ring.Pop()
	}
	ringDur := time.Since(start)

	// Benchmark node queue. Push+pop in lockstep keeps it on the recycle
	// path, so this measures the allocation-free steady state.
	node := queue.NewNode[int]()
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		node.Push(i)
		node.Pop()
	}
	nodeDur := time.Since(start)

	// Results
	chPerOp := float64(chDur.Nanoseconds()) / float64(*iterations)
	ringPerOp := float64(ringDur.Nanoseconds()) / float64(*iterations)
	nodePerOp := float64(nodeDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (push + pop per iteration):\n")
	fmt.Printf("  Channel:     %v (%.2f ns/op)\n", chDur, chPerOp)
	fmt.Printf("  RingBuffer:  %v (%.2f ns/op)\n", ringDur, ringPerOp)
	fmt.Printf("  NodeQueue:   %v (%.2f ns/op)\n", nodeDur, nodePerOp)

	fmt.Printf("\nSpeedup vs Channel:\n")
	fmt.Printf("  RingBuffer:  %.2fx\n", chPerOp/ringPerOp)
	fmt.Printf("  NodeQueue:   %.2fx\n", chPerOp/nodePerOp)

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Channel:     %.2f M ops/sec\n", 1000/chPerOp)
	fmt.Printf("  RingBuffer:  %.2f M ops/sec\n", 1000/ringPerOp)
	fmt.Printf("  NodeQueue:   %.2f M ops/sec\n", 1000/nodePerOp)
}
