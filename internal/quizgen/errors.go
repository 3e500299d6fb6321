package quizgen

import "fmt"

// GenerationError indicates the LLM call itself failed.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the model returned text that could
// not be decoded into a question set even after sanitization. Raw
// carries the offending text for diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed quiz response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
