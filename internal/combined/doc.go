// Package combined provides interaction benchmarks that test multiple
// components together.
//
// These benchmarks are more representative of real-world performance than
// isolated micro-benchmarks: the pipeline benchmarks run a real producer
// and consumer goroutine pair, the full-loop benchmarks include the stop
// flag and progress ticker the harness carries in its hot loops, and the
// comparison benchmarks put the queues side by side with an external
// lock-free ring.
package combined
