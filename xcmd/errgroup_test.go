package xcmd

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Run("success with no errors", func(t *testing.T) {
		group, ctx := ErrGroup(context.Background())

		var executed atomic.Int32
		for range 3 {
			group.Go(func(_ context.Context) error {
				executed.Add(1)
				return nil
			})
		}

		require.NoError(t, group.Wait())
		assert.Equal(t, int32(3), executed.Load())
		assert.Error(t, ctx.Err(), "context is released after Wait")
	})

	t.Run("first error cancels context", func(t *testing.T) {
		group, ctx := ErrGroup(context.Background())
		expectedErr := errors.New("listener closed")

		group.Go(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		group.Go(func(_ context.Context) error {
			return expectedErr
		})

		err := group.Wait()
		assert.Equal(t, expectedErr, err)
		assert.Equal(t, expectedErr, context.Cause(ctx))
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		group, _ := ErrGroup(parent)

		group.Go(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		cancel()
		assert.ErrorIs(t, group.Wait(), context.Canceled)
	})

	t.Run("empty group", func(t *testing.T) {
		group, _ := ErrGroup(context.Background())
		assert.NoError(t, group.Wait())
	})
}

func TestRun(t *testing.T) {
	t.Run("returns first error and stops the rest", func(t *testing.T) {
		expectedErr := errors.New("stop")
		stopped := make(chan bool, 1)

		err := Run(context.Background(),
			func(_ context.Context) error {
				return expectedErr
			},
			func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					stopped <- true
				case <-time.After(5 * time.Second):
					stopped <- false
				}
				return nil
			},
		)

		assert.Equal(t, expectedErr, err)
		assert.True(t, <-stopped)
	})

	t.Run("no functions", func(t *testing.T) {
		assert.NoError(t, Run(context.Background()))
	})
}
