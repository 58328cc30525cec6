package xcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// ErrInterrupted is returned by WaitInterrupted when a signal arrives.
var ErrInterrupted = errors.New("interrupted")

// WaitInterrupted blocks until one of signals is delivered or ctx is done.
// With no signals it waits for the platform's termination signals.
func WaitInterrupted(ctx context.Context, signals ...os.Signal) error {
	if len(signals) == 0 {
		signals = defaultSignals()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)
	defer signal.Stop(sigChan)

	select {
	case v := <-sigChan:
		return fmt.Errorf("%w: %s", ErrInterrupted, v)

	case <-ctx.Done():
		return ctx.Err()
	}
}
