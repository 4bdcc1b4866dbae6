package optim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wjlewis/lagrangian/internal/vec"
)

// MultiStart runs one independent Nelder-Mead minimization per simplex
// concurrently and returns the best result. Observers are not called; the
// logger is shared. Starts not yet begun when ctx is done are skipped and
// the context error is returned.
func MultiStart(ctx context.Context, f Func, simplices [][]vec.Vector, opts Options) (*Result, error) {
	if len(simplices) == 0 {
		return nil, ErrNoStarts
	}
	opts.Observer = nil

	g, ctx := errgroup.WithContext(ctx)
	results := make([]*Result, len(simplices))

	for i, simplex := range simplices {
		i, simplex := i, simplex
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := NewNelderMead(opts).Run(f, simplex)
			if err != nil {
				return &RunError{Start: i, Wrapped: err}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Value < best.Value {
			best = r
		}
	}
	return best, nil
}
