package quizgen

import (
	"os"
	"strconv"
)

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated set. The first failure stops the pipeline.
	Validators []Validator

	// QuestionCount is the default number of questions per quiz.
	QuestionCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults. PREPDECK_QUIZ_QUESTIONS overrides the
// question count.
func DefaultConfig() Config {
	cfg := Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		QuestionCount: 10,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
	if v := os.Getenv("PREPDECK_QUIZ_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 25 {
			cfg.QuestionCount = n
		}
	}
	return cfg
}
