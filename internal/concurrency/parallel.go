package concurrency

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// ParallelOptions configures fan-out.
type ParallelOptions struct {
	// MaxWorkers bounds concurrent calls. <=0 starts one goroutine per item,
	// so every call is in flight at once.
	MaxWorkers int
}

// DefaultOptions issues every call at once.
func DefaultOptions() ParallelOptions {
	return ParallelOptions{MaxWorkers: 0}
}

// ProcessParallel calls itemFunc once for every item concurrently and waits
// for all of them (join, not race). Each result lands in the slot of its input
// index, so the returned slice mirrors the input order whatever the
// completion order was. Errors are collected in completion order.
//
// Cancellation is left to itemFunc: a cancelled ctx is passed through, and
// every item is still visited exactly once.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	p := pool.New()
	if opts.MaxWorkers > 0 {
		p = p.WithMaxGoroutines(min(opts.MaxWorkers, len(items)))
	}

	results := make([]R, len(items))
	var (
		mu   sync.Mutex
		errs []error
	)

	for i := range items {
		p.Go(func() {
			// distinct index per goroutine: no lock needed for results
			r, err := itemFunc(ctx, i, items[i])
			results[i] = r
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}
	p.Wait()

	return results, errs
}
