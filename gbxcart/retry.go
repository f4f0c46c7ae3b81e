package gbxcart

import (
	"context"
	"time"
)

// RetryPolicy bounds how long the response reader keeps trying to recover
// from an unresponsive device. Counters are consecutive: any successful read
// resets them.
type RetryPolicy struct {
	// MaxTimeouts is the number of consecutive read timeouts tolerated.
	// Zero means retry forever.
	MaxTimeouts int

	// MaxFaults is the number of consecutive transport errors tolerated.
	// Zero means retry forever.
	MaxFaults int

	// Backoff is the pause before resuming after a timeout or fault
	Backoff time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxTimeouts: 10,
		MaxFaults:   3,
		Backoff:     500 * time.Millisecond,
	}
}

// Unbounded returns a copy of the policy that never gives up.
func (p RetryPolicy) Unbounded() RetryPolicy {
	p.MaxTimeouts = 0
	p.MaxFaults = 0
	return p
}

func (p RetryPolicy) timeoutsExhausted(n int) bool {
	return p.MaxTimeouts > 0 && n > p.MaxTimeouts
}

func (p RetryPolicy) faultsExhausted(n int) bool {
	return p.MaxFaults > 0 && n > p.MaxFaults
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
