package app

import (
	"context"
	"time"
)

// Sleeper spaces out watch cycles. Injectable so the loop can be tested with
// a fake clock instead of real timers.
type Sleeper interface {
	// Sleep blocks for d or until ctx is cancelled, returning ctx's error in
	// the cancelled case.
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// runWatch repeats cycle with interval spacing until the context is cancelled
// (clean exit, the only way a watch normally ends) or a cycle fails (fatal,
// stops the loop). The between hook runs after each sleep; terminal mode uses
// it to clear the screen before the next render.
func runWatch(ctx context.Context, interval time.Duration, sleeper Sleeper, cycle func(context.Context) error, between func()) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := cycle(ctx); err != nil {
			return err
		}
		if err := sleeper.Sleep(ctx, interval); err != nil {
			return nil
		}
		if between != nil {
			between()
		}
	}
}
