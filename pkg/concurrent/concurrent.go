package concurrent

import (
	"context"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// ParallelMap applies mapFn to each element of the iterator with at most workers goroutines,
// preserving order. The first error cancels ctx for the remaining calls and is returned.
// A non-positive workers value means no limit.
func ParallelMap[T any, R any](ctx context.Context, i *sequence.Iterator[T], workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	in := i.Collect()
	out := make([]R, len(in))

	errGroup, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		errGroup.SetLimit(workers)
	}

	for idx, val := range in {
		errGroup.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			r, err := mapFn(groupCtx, val)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
