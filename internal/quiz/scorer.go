package quiz

import (
	"errors"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/quizgen"
)

// ErrShapeMismatch is returned when the answer set is longer than the
// question set. A shorter answer set is padded with unanswered entries
// instead.
var ErrShapeMismatch = errors.New("answer count exceeds question count")

// QuestionResult pairs one question with the user's answer and the
// correctness verdict. This is what gets persisted with an attempt.
type QuestionResult struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`     // the correct answer
	UserAnswer  string `json:"userAnswer"` // empty when unanswered
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// Outcome is the result of scoring a completed quiz.
type Outcome struct {
	// Score is the percentage of correct answers, 0-100.
	Score float64

	// Results holds one entry per question, in question order.
	Results []QuestionResult
}

// Score grades an answer set against a question set. Pure function:
// identical inputs always produce identical outcomes.
//
// Answers align with questions by index. An answer set shorter than
// the question set is treated as if the missing tail were unanswered.
// A longer answer set is rejected with ErrShapeMismatch. Unanswered
// questions are always wrong; an empty user answer never matches even
// if a question somehow had an empty correct answer.
func Score(set *quizgen.QuestionSet, answers []string) (*Outcome, error) {
	if set == nil || set.Len() == 0 {
		return nil, errors.New("question set is empty")
	}
	if len(answers) > set.Len() {
		return nil, fmt.Errorf("%w: %d answers for %d questions",
			ErrShapeMismatch, len(answers), set.Len())
	}

	out := &Outcome{Results: make([]QuestionResult, set.Len())}
	correct := 0
	for i, q := range set.Questions {
		user := Unanswered
		if i < len(answers) {
			user = answers[i]
		}
		isCorrect := user != Unanswered && user == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		out.Results[i] = QuestionResult{
			Question:    q.Text,
			Answer:      q.CorrectAnswer,
			UserAnswer:  user,
			IsCorrect:   isCorrect,
			Explanation: q.Explanation,
		}
	}

	out.Score = float64(correct) / float64(set.Len()) * 100
	return out, nil
}

// WrongResults filters an outcome down to the incorrectly answered
// questions, preserving order.
func WrongResults(results []QuestionResult) []QuestionResult {
	var wrong []QuestionResult
	for _, r := range results {
		if !r.IsCorrect {
			wrong = append(wrong, r)
		}
	}
	return wrong
}
