package executor

import "golang.org/x/sync/errgroup"

// ForkJoin starts a goroutine per range on every call and waits for all of
// them. Limit caps the number running at once; zero means no cap.
type ForkJoin struct {
	Limit int
}

func (f ForkJoin) For(ranges []Range, fn func(Range)) {
	var g errgroup.Group
	if f.Limit > 0 {
		g.SetLimit(f.Limit)
	}
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			fn(r)
			return nil
		})
	}
	_ = g.Wait()
}

func (ForkJoin) Close() {}
