// Command spsc runs a duration-based producer/consumer throughput benchmark
// of the SPSC queues.
//
// One goroutine pushes the sequence 0,1,2,... as fast as it can; another
// pops in a tight retry loop and verifies it observes the sequence gapless
// and in order. Both goroutines poll a shared atomic stop flag and start
// together off a shared start channel. SIGINT ends the run early; the final
// report still prints.
//
// With -queue node the queue is unbounded: if the consumer cannot keep up,
// the node chain grows and is never trimmed. That is the design trade of
// the node queue, and this command is the easiest way to watch it happen.
//
// Usage:
//
//	go run ./cmd/spsc -d 20s -queue node
//	go run ./cmd/spsc -d 5s -queue ring -size 4096
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/randomizedcoder/go-spsc-queue/internal/cancel"
	"github.com/randomizedcoder/go-spsc-queue/internal/queue"
	"github.com/randomizedcoder/go-spsc-queue/internal/tick"
)

// How many pops between clock checks in the consumer's progress ticker.
// Large enough that progress reporting is invisible in the throughput.
const progressEvery = 1 << 16

func main() {
	duration := flag.Duration("d", 20*time.Second, "run duration")
	queueName := flag.String("queue", "node", "queue implementation: node, ring, channel")
	size := flag.Int("size", 1024, "capacity for bounded queues (ring, channel)")
	progress := flag.Duration("progress", time.Second, "progress report interval (0 disables)")
	flag.Parse()

	var q queue.Queue[uint64]
	switch *queueName {
	case "node":
		q = queue.NewNode[uint64]()
	case "ring":
		q = queue.NewRingBuffer[uint64](*size)
	case "channel":
		q = queue.NewChannel[uint64](*size)
	default:
		fmt.Fprintf(os.Stderr, "unknown queue %q (want node, ring, or channel)\n", *queueName)
		os.Exit(2)
	}

	fmt.Printf("SPSC throughput: queue=%s duration=%v\n", *queueName, *duration)
	fmt.Println("─────────────────────────────────────────────────")

	stop := cancel.NewAtomic()

	// SIGINT cancels the run early
	interrupted := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		stop.Cancel()
		close(interrupted)
	}()

	var ready, workers sync.WaitGroup
	ready.Add(2)
	workers.Add(2)
	start := make(chan struct{})

	var pushed, pushRetries uint64
	var popped, emptyPops uint64

	// Producer (single goroutine - SPSC contract)
	go func() {
		defer workers.Done()
		ready.Done()
		<-start

		var i, retries uint64
		for !stop.Done() {
			if q.Push(i) {
				i++
			} else {
				retries++
			}
		}
		pushed = i
		pushRetries = retries
	}()

	// Consumer (single goroutine - SPSC contract)
	go func() {
		defer workers.Done()

		var progressTick *tick.BatchTicker
		if *progress > 0 {
			progressTick = tick.NewBatch(*progress, progressEvery)
		}

		ready.Done()
		<-start

		var expect, empty uint64
		lastCount := uint64(0)
		lastTime := time.Now()

		for !stop.Done() {
			v, ok := q.Pop()
			if !ok {
				// Normal under speed mismatch; keep polling
				empty++
				continue
			}
			if v != expect {
				fmt.Fprintf(os.Stderr, "order violation: expected %d, got %d\n", expect, v)
				os.Exit(1)
			}
			expect++

			if progressTick != nil && progressTick.Tick() {
				now := time.Now()
				rate := float64(expect-lastCount) / now.Sub(lastTime).Seconds()
				fmt.Printf("  popped %d (%.2f M ops/sec)\n", expect, rate/1e6)
				lastCount = expect
				lastTime = now
			}
		}
		popped = expect
		emptyPops = empty
	}()

	// Wait until both goroutines are parked on the start channel, then
	// release them together.
	ready.Wait()
	began := time.Now()
	close(start)

	timer := time.NewTimer(*duration)
	select {
	case <-timer.C:
	case <-interrupted:
		timer.Stop()
	}

	stop.Cancel()
	workers.Wait()
	elapsed := time.Since(began)

	// Results
	popPerOp := float64(elapsed.Nanoseconds()) / float64(popped)

	fmt.Printf("\nResults (%v):\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Pushed:       %d\n", pushed)
	fmt.Printf("  Popped:       %d\n", popped)
	fmt.Printf("  In flight:    %d (pushed but not popped)\n", pushed-popped)
	fmt.Printf("  Push retries: %d (bounded queue full)\n", pushRetries)
	fmt.Printf("  Empty pops:   %d (consumer outran producer)\n", emptyPops)

	fmt.Printf("\nThroughput:\n")
	fmt.Printf("  %.2f M values/sec (%.2f ns per value)\n",
		float64(popped)/elapsed.Seconds()/1e6, popPerOp)
}
