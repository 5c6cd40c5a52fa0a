package executor

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestPartitionCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 200, 2000, 2001, 2047} {
		for _, k := range []int{1, 2, 3, 7, 32, 64} {
			ranges := Partition(n, k)
			seen := make([]int, n)
			next := 0
			for _, r := range ranges {
				if r.Start != next {
					t.Fatalf("n=%d k=%d: range %v starts at %d, want %d", n, k, r, r.Start, next)
				}
				for i := r.Start; i < r.End; i++ {
					seen[i]++
				}
				next = r.End
			}
			if next != n {
				t.Fatalf("n=%d k=%d: ranges end at %d", n, k, next)
			}
			for i, c := range seen {
				if c != 1 {
					t.Fatalf("n=%d k=%d: index %d covered %d times", n, k, i, c)
				}
			}
		}
	}
}

func TestPartitionRemainderInLastChunk(t *testing.T) {
	ranges := Partition(2000, 32)
	if len(ranges) != 32 {
		t.Fatalf("got %d ranges, want 32", len(ranges))
	}
	for _, r := range ranges[:31] {
		if r.Len() != 62 {
			t.Errorf("range %v has %d elements, want 62", r, r.Len())
		}
	}
	if last := ranges[31]; last.Len() != 62+2000%32 {
		t.Errorf("last range %v has %d elements, want %d", last, last.Len(), 62+2000%32)
	}
}

func TestPartitionMoreChunksThanElements(t *testing.T) {
	ranges := Partition(5, 32)
	if len(ranges) != 32 {
		t.Fatalf("Partition(5, 32) has %d ranges, want 32", len(ranges))
	}
	for i, r := range ranges[:31] {
		if r.Len() != 0 {
			t.Errorf("range %d = %v, want empty", i, r)
		}
	}
	if last := ranges[31]; last != (Range{0, 5}) {
		t.Errorf("last range = %v, want {0 5}", last)
	}
}

func TestPartitionClampsChunks(t *testing.T) {
	if got := Partition(5, 0); len(got) != 1 || got[0] != (Range{0, 5}) {
		t.Errorf("Partition(5, 0) = %v, want [{0 5}]", got)
	}
}

func executors() map[string]Executor {
	return map[string]Executor{
		"sequential": Sequential{},
		"forkjoin":   ForkJoin{},
		"forkjoin-2": ForkJoin{Limit: 2},
		"pool":       NewPool(4),
	}
}

func TestExecutorsVisitEveryIndexOnce(t *testing.T) {
	for name, e := range executors() {
		t.Run(name, func(t *testing.T) {
			defer e.Close()
			const n = 1003
			counts := make([]int32, n)
			for call := 0; call < 3; call++ {
				e.For(Partition(n, 7), func(r Range) {
					for i := r.Start; i < r.End; i++ {
						atomic.AddInt32(&counts[i], 1)
					}
				})
			}
			for i, c := range counts {
				if c != 3 {
					t.Fatalf("index %d visited %d times, want 3", i, c)
				}
			}
		})
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	p := NewPool(2)
	p.For(Partition(10, 2), func(Range) {})
	p.Close()
	p.Close()
}

func TestConcurrency(t *testing.T) {
	if n := Concurrency(); n < 1 {
		t.Errorf("Concurrency() = %d", n)
	}
}

func BenchmarkFor(b *testing.B) {
	for name, e := range executors() {
		for _, k := range []int{1, 8, 32} {
			b.Run(fmt.Sprintf("%s-Chunks-%d", name, k), func(b *testing.B) {
				ranges := Partition(2000, k)
				sink := make([]int, 2000)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					e.For(ranges, func(r Range) {
						for j := r.Start; j < r.End; j++ {
							sink[j]++
						}
					})
				}
			})
		}
		e.Close()
	}
}
