package tick

import "time"

// BatchTicker checks the time only every N calls to Tick().
//
// This amortizes the cost of the clock read across many loop iterations,
// which is what a consumer loop popping tens of millions of values per
// second needs: with every=65536 and interval=1s, the clock is read a few
// hundred times per second instead of once per pop.
//
// BatchTicker is not safe for concurrent use; it is meant to live inside
// a single goroutine's loop.
type BatchTicker struct {
	interval time.Duration
	every    int
	count    int
	lastTick time.Time
}

// NewBatch creates a BatchTicker that checks time every N operations.
//
// Parameters:
//   - interval: How often ticks should fire (wall clock time)
//   - every: Check the clock only every N calls to Tick()
func NewBatch(interval time.Duration, every int) *BatchTicker {
	if every < 1 {
		every = 1
	}
	return &BatchTicker{
		interval: interval,
		every:    every,
		lastTick: time.Now(),
	}
}

// Tick returns true if the interval has elapsed.
//
// The time is only checked every N calls (as specified by 'every').
// On other calls, this returns false immediately without checking time.
func (b *BatchTicker) Tick() bool {
	b.count++
	if b.count%b.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(b.lastTick) >= b.interval {
		b.lastTick = now
		return true
	}
	return false
}

// Reset resets the ticker state.
func (b *BatchTicker) Reset() {
	b.count = 0
	b.lastTick = time.Now()
}

// Stop is a no-op for BatchTicker (no resources to release).
func (b *BatchTicker) Stop() {}

// Every returns the batch size.
func (b *BatchTicker) Every() int {
	return b.every
}

// Interval returns the ticker's interval.
func (b *BatchTicker) Interval() time.Duration {
	return b.interval
}
