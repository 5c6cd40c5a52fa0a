package executor

import "sync"

type task struct {
	fn func(Range)
	r  Range
	wg *sync.WaitGroup
}

// Pool keeps a fixed set of worker goroutines alive across calls so the
// per-frame cost is a channel send per range instead of a goroutine start.
type Pool struct {
	tasks   chan task
	workers sync.WaitGroup
	once    sync.Once
}

// NewPool starts n workers. n < 1 starts one worker per logical CPU.
func NewPool(n int) *Pool {
	if n < 1 {
		n = Concurrency()
	}
	p := &Pool{tasks: make(chan task, n)}
	p.workers.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.workers.Done()
			for t := range p.tasks {
				t.fn(t.r)
				t.wg.Done()
			}
		}()
	}
	return p
}

// For must not be called after Close.
func (p *Pool) For(ranges []Range, fn func(Range)) {
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		p.tasks <- task{fn: fn, r: r, wg: &wg}
	}
	wg.Wait()
}

// Close stops the workers and waits for them to exit. It is safe to call
// more than once.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.tasks)
		p.workers.Wait()
	})
}
