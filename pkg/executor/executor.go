// Package executor distributes an index space across execution lanes. The
// renderer and the grayscale converter are both embarrassingly parallel over
// rows, so they share one algorithm parameterized by an Executor instead of
// maintaining separate sequential and parallel code paths.
package executor

// Executor runs task(i) for every i in [0, n). Tasks must be independent:
// an Executor gives no ordering guarantee between indices and may run them
// on any number of lanes concurrently.
type Executor interface {
	Execute(n int, task func(i int))
}

// Sequential runs all tasks on the calling goroutine in index order.
type Sequential struct{}

// Execute runs the tasks one after another
func (Sequential) Execute(n int, task func(i int)) {
	for i := 0; i < n; i++ {
		task(i)
	}
}
