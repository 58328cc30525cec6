package xcmd

import (
	"context"
	"sync"
)

// Group runs related goroutines and cancels all of them on the first error.
type Group struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	wg      sync.WaitGroup
	errOnce sync.Once
	err     error
}

// ErrGroup returns a new Group and an associated Context derived from ctx.
// The derived Context is canceled when the first goroutine returns an error,
// or when Wait returns.
func ErrGroup(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// Go calls f in a new goroutine. The first non-nil error cancels the group.
func (g *Group) Go(f func(ctx context.Context) error) {
	g.wg.Add(1)

	go func() {
		defer g.wg.Done()

		if err := f(g.ctx); err != nil {
			g.errOnce.Do(func() {
				g.err = err
				g.cancel(err)
			})
		}
	}()
}

// Wait blocks until every goroutine has returned and reports the first error.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel(nil)
	return g.err
}

// Run executes every function in its own goroutine under one group and
// returns the first error.
func Run(ctx context.Context, fns ...func(ctx context.Context) error) error {
	group, _ := ErrGroup(ctx)
	for _, f := range fns {
		group.Go(f)
	}
	return group.Wait()
}
