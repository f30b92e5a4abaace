package model

import (
	"context"
	"time"
)

// RetryPolicy bounds repeated attempts of a non-streaming call with
// exponential backoff between attempts.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     float64
}

// DefaultRetryPolicy matches the transport defaults: three attempts starting
// at one second, doubling per retry.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: time.Second, Backoff: 2.0}
}

// Do runs fn until it succeeds, attempts are exhausted or ctx is cancelled.
// The last error is returned. Streaming calls must not be wrapped here: once
// a stream has begun, a retry would duplicate partial output.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * p.Backoff)
	}
	return err
}
