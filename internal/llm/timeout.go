package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// timeoutProvider bounds a whole Generate call, retries included. It
// sits outside the retry decorator so backoff waits count against the
// limit too.
type timeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps p so each Generate call finishes within limit.
// A non-positive limit disables the bound.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, limit: limit}
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &ErrProviderUnavailable{
			Err: fmt.Errorf("no response within %s: %w", t.limit, err),
		}
	}
	return resp, err
}
