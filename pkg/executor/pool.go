package executor

import (
	"runtime"
	"sync"
)

// span is a half-open index range [Start, End) owned by exactly one worker
// at a time.
type span struct {
	Start, End int
}

// Pool distributes tasks over a fixed number of worker goroutines. The index
// space is split into contiguous spans fed through a buffered channel, so
// faster workers steal the remaining spans instead of idling.
type Pool struct {
	Workers int // Number of workers; <= 0 means runtime.NumCPU()
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int) Pool {
	return Pool{Workers: workers}
}

// Execute runs the tasks across the pool's workers and blocks until all
// indices have been processed.
func (p Pool) Execute(n int, task func(i int)) {
	if n <= 0 {
		return
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	// Several spans per worker so an uneven workload still balances.
	spanSize := n / (workers * 4)
	if spanSize < 1 {
		spanSize = 1
	}
	numSpans := (n + spanSize - 1) / spanSize

	taskQueue := make(chan span, numSpans)
	for start := 0; start < n; start += spanSize {
		end := start + spanSize
		if end > n {
			end = n
		}
		taskQueue <- span{Start: start, End: end}
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range taskQueue {
				for i := s.Start; i < s.End; i++ {
					task(i)
				}
			}
		}()
	}
	wg.Wait()
}
