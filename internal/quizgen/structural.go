package quizgen

import "fmt"

// StructuralValidator checks that every question has the required
// fields, exactly 4 options, and a correct answer present among them.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(set *QuestionSet, input GenerateInput) *ValidationError {
	if len(set.Questions) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question set is empty",
			Retryable: true,
		}
	}
	for i, q := range set.Questions {
		if q.Text == "" {
			return v.fail(i, "question text is empty")
		}
		if q.Explanation == "" {
			return v.fail(i, "explanation is empty")
		}
		if len(q.Options) != 4 {
			return v.fail(i, fmt.Sprintf("has %d options, want 4", len(q.Options)))
		}
		for j, opt := range q.Options {
			if opt == "" {
				return v.fail(i, fmt.Sprintf("option %d is empty", j))
			}
		}
		if q.CorrectAnswer == "" {
			return v.fail(i, "correct answer is empty")
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return v.fail(i, "correct answer does not match any option")
		}
	}
	return nil
}

func (v *StructuralValidator) fail(index int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %d: %s", index, msg),
		Retryable: true,
	}
}

func contains(opts []string, s string) bool {
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}
