package quizgen

import "context"

// Generator produces interview quizzes using an LLM provider.
type Generator interface {
	// Generate produces a full question set for the given input.
	// All configured validators run before returning; a set that fails
	// validation is discarded, never partially returned.
	Generate(ctx context.Context, input GenerateInput) (*QuestionSet, error)
}
