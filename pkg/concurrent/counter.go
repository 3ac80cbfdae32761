package concurrent

import "go.uber.org/atomic"

// cacheLinePad is sized to push each worker's counter cell onto its own
// cache line, so that workers incrementing their own cell never invalidate
// a sibling's cache line (false sharing).
const cacheLinePad = 64

// Counter is a relaxed-atomic counter split across one cell per worker, so
// that concurrent increments from different goroutines never contend on the
// same cache line the way a single atomic.Int64 would under heavy fan-out.
type Counter struct {
	cells []paddedCell
}

type paddedCell struct {
	v   atomic.Int64
	_   [cacheLinePad - 8]byte
}

// NewCounter constructs a Counter with one cell per worker, indexed
// 0..workers-1.
func NewCounter(workers int) *Counter {
	return &Counter{cells: make([]paddedCell, workers)}
}

// Add adds delta to worker's own cell. worker must be in [0, workers).
func (c *Counter) Add(worker int, delta int64) {
	c.cells[worker].v.Add(delta)
}

// Sum returns the total across every worker's cell. It is relaxed: it does
// not synchronize with concurrent Add calls, so a sum taken while workers
// are still running is only approximate.
func (c *Counter) Sum() int64 {
	var total int64
	for i := range c.cells {
		total += c.cells[i].v.Load()
	}
	return total
}
