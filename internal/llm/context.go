package llm

import "context"

type purposeContextKey struct{}

// WithPurpose labels the context with what the request is for, e.g.
// "quiz-gen" or "improvement-tip". The logging provider records the
// label with each event so usage can be broken down per feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeContextKey{}, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeContextKey{}).(string); ok {
		return v
	}
	return "unknown"
}
