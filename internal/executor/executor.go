// Package executor splits an index range into contiguous chunks and runs a
// task per chunk, joining before returning.
package executor

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

// Partition divides [0, n) into k contiguous ranges of n/k elements. The last
// range absorbs the n mod k remainder, so with k > n every range but the
// last is empty. k below 1 is treated as 1.
func Partition(n, k int) []Range {
	if n < 0 {
		n = 0
	}
	if k < 1 {
		k = 1
	}

	per := n / k
	ranges := make([]Range, k)
	for i := range ranges {
		ranges[i].Start = i * per
		ranges[i].End = (i + 1) * per
	}
	ranges[k-1].End = n
	return ranges
}

// Executor runs fn once per range and returns after every call finished.
// Ranges must not overlap when fn writes shared state.
type Executor interface {
	For(ranges []Range, fn func(Range))
	Close()
}

// Concurrency reports the number of logical CPUs, falling back to the
// runtime's view when the host cannot be queried.
func Concurrency() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// Sequential runs every range on the calling goroutine.
type Sequential struct{}

func (Sequential) For(ranges []Range, fn func(Range)) {
	for _, r := range ranges {
		fn(r)
	}
}

func (Sequential) Close() {}
