package quizgen

// Question is a generated multiple-choice interview question.
type Question struct {
	// Text is the question prompt displayed to the user. Plain text,
	// no markdown.
	Text string

	// Options contains exactly 4 answer options, one of which matches
	// CorrectAnswer.
	Options []string

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string

	// Explanation is a short justification for the correct answer,
	// shown after the user answers.
	Explanation string
}

// QuestionSet is an ordered quiz. Question order is fixed at
// generation time and preserved through scoring and persistence.
type QuestionSet struct {
	Questions []Question
}

// Len returns the number of questions in the set.
func (s *QuestionSet) Len() int { return len(s.Questions) }

// GenerateInput holds the profile context for quiz generation.
type GenerateInput struct {
	// Industry is the user's industry slug, e.g. "tech-software-development".
	Industry string

	// Skills is the user's skill list. Included in the prompt when
	// non-empty for more targeted questions.
	Skills []string

	// Count is the number of questions to request. Zero means the
	// configured default.
	Count int
}
