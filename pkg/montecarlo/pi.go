// Package montecarlo estimates π by uniform sampling of the unit square:
// the fraction of points falling inside the quarter unit disk approaches
// π/4. Lanes are independent and reduce to a single integer count, so the
// parallel estimate is deterministic for a fixed seed and lane count.
package montecarlo

import (
	"fmt"
	"math/rand"
	"runtime"

	"gonum.org/v1/gonum/stat"
)

// Estimator configures a Monte Carlo π estimation
type Estimator struct {
	Samples int64 // Total samples per estimate
	Lanes   int   // Parallel lanes; <= 0 means runtime.NumCPU()
	Seed    int64 // Base PRNG seed; lane l uses Seed + l
}

// laneCount resolves the configured number of lanes
func (e Estimator) laneCount() int {
	if e.Lanes <= 0 {
		return runtime.NumCPU()
	}
	return e.Lanes
}

// Estimate runs one estimation pass and returns the π estimate
func (e Estimator) Estimate() (float64, error) {
	if e.Samples <= 0 {
		return 0, fmt.Errorf("sample count must be positive, got %d", e.Samples)
	}
	return e.estimate(e.Seed), nil
}

// estimate distributes the sample budget across lanes and reduces the
// per-lane hit counts over a result channel.
func (e Estimator) estimate(seed int64) float64 {
	lanes := e.laneCount()
	if int64(lanes) > e.Samples {
		lanes = int(e.Samples)
	}

	perLane := e.Samples / int64(lanes)
	remainder := e.Samples % int64(lanes)

	results := make(chan int64, lanes)
	for lane := 0; lane < lanes; lane++ {
		n := perLane
		if int64(lane) < remainder {
			n++
		}
		go func(laneSeed int64, n int64) {
			results <- countInside(laneSeed, n)
		}(seed+int64(lane), n)
	}

	var inside int64
	for lane := 0; lane < lanes; lane++ {
		inside += <-results
	}

	return 4.0 * float64(inside) / float64(e.Samples)
}

// countInside throws n darts at the unit square with a lane-local PRNG and
// counts those landing inside the quarter unit disk.
func countInside(seed, n int64) int64 {
	random := rand.New(rand.NewSource(seed))
	var inside int64
	for i := int64(0); i < n; i++ {
		x := random.Float64()
		y := random.Float64()
		if x*x+y*y <= 1.0 {
			inside++
		}
	}
	return inside
}

// BatchResult aggregates repeated independent estimates
type BatchResult struct {
	Estimates []float64 // One π estimate per batch
	Mean      float64
	StdDev    float64 // Sample standard deviation; 0 for a single batch
}

// RunBatches repeats the estimate n times with decorrelated seeds and
// reports mean and spread of the results.
func (e Estimator) RunBatches(n int) (BatchResult, error) {
	if n <= 0 {
		return BatchResult{}, fmt.Errorf("batch count must be positive, got %d", n)
	}
	if e.Samples <= 0 {
		return BatchResult{}, fmt.Errorf("sample count must be positive, got %d", e.Samples)
	}

	estimates := make([]float64, n)
	laneStride := int64(e.laneCount())
	for b := 0; b < n; b++ {
		// Offset by the lane stride so batches never share a lane seed.
		estimates[b] = e.estimate(e.Seed + int64(b)*laneStride)
	}

	result := BatchResult{
		Estimates: estimates,
		Mean:      stat.Mean(estimates, nil),
	}
	if n > 1 {
		result.StdDev = stat.StdDev(estimates, nil)
	}
	return result, nil
}
