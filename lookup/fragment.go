package lookup

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/consensys/plookup/field"
)

// BuildFragments synthesizes n independent circuit fragments concurrently,
// each into a private witness table, then concatenates them in fragment
// order. build is called once per fragment index with that fragment's own
// table and must not retain it past returning; no table is ever shared
// between goroutines. On error, or when ctx is cancelled, the first failure
// is returned and no witness table is produced.
func BuildFragments[E field.Element[E]](ctx context.Context, n int, build func(fragment int, w *WitnessTable[E]) error) (*WitnessTable[E], error) {
	fragments := make([]*WitnessTable[E], n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			w := NewWitnessTable[E]()
			if err := build(i, w); err != nil {
				return err
			}
			fragments[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := NewWitnessTable[E]()
	if err := res.Concat(fragments...); err != nil {
		return nil, err
	}
	return res, nil
}
