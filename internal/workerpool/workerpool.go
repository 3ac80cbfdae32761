// Package workerpool runs a fixed number of goroutines over a stream of
// work items, stopping early if ctx is cancelled. No ecosystem work-stealing
// pool appears among the example pack's dependencies, so this is a small
// hand-rolled goroutine/channel/sync.WaitGroup pool in the teacher's own
// concurrency idiom.
package workerpool

import (
	"context"
	"sync"

	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Run starts workers goroutines, each repeatedly pulling an index from
// [0, n) and calling fn(worker, index), until every index has been
// processed or ctx is cancelled. It blocks until all workers have returned.
func Run(ctx context.Context, workers int, n int, fn func(worker int, index int)) {
	if workers < 1 {
		workers = 1
	}

	indices := make(chan int)
	go func() {
		defer close(indices)
		for i := 0; i < n; i++ {
			select {
			case indices <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range indices {
				if contextx.IsCancelled(ctx) {
					return
				}
				fn(worker, i)
			}
		}(w)
	}
	wg.Wait()
}
