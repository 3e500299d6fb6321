package quizgen

import "fmt"

// Validator checks a generated question set for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g.
	// "structural".
	Name() string

	// Validate checks the set and returns nil if it passes.
	Validate(set *QuestionSet, input GenerateInput) *ValidationError
}

// ValidationError describes why a question set failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
