package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs workers with at most limit of them in flight.
type Pool struct {
	limit int
}

// NewPool returns a pool running up to limit workers concurrently. A limit
// below one means no bound.
func NewPool(limit int) *Pool {
	return &Pool{limit: limit}
}

// Run executes every worker and waits for all of them. The returned slice
// has one entry per worker, in input order; nil means that worker succeeded.
// Workers not started before ctx is done report ctx.Err().
func (p *Pool) Run(ctx context.Context, workers ...Worker) []error {
	errs := make([]error, len(workers))

	var g errgroup.Group
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, worker := range workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}
