package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// stallProvider blocks until the context is done.
type stallProvider struct{}

func (stallProvider) ModelID() string { return "stall" }

func (stallProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestTimeoutBoundsGenerate(t *testing.T) {
	p := WithTimeout(stallProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Generate blocked for %v despite the timeout", elapsed)
	}

	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("want the deadline cause preserved, got %v", err)
	}
}

func TestTimeoutPassesFastResponses(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{}` {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestTimeoutDisabledWhenZero(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Error("zero limit should return the provider unwrapped")
	}
}
