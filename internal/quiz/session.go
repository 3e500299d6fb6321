// Package quiz holds the in-memory quiz session state machine and the
// pure scoring logic. A session owns one generated question set and
// tracks the user's progress through it; persistence happens elsewhere
// once the session completes.
package quiz

import (
	"errors"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/quizgen"
)

// State is the lifecycle phase of a quiz session.
type State int

const (
	// StateNotStarted means no question set has been loaded yet.
	StateNotStarted State = iota

	// StateInProgress means questions are being answered.
	StateInProgress

	// StateCompleted means every question has been advanced past.
	StateCompleted

	// StateFailed means generation failed; Restart is the only way out.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Unanswered marks a question the user never answered. Unanswered
// questions always score as wrong.
const Unanswered = ""

var (
	// ErrNotInProgress is returned by answer operations outside
	// StateInProgress.
	ErrNotInProgress = errors.New("quiz is not in progress")

	// ErrNoSelection is returned by Advance when the current question
	// has no recorded answer yet.
	ErrNoSelection = errors.New("no answer selected for current question")

	// ErrInvalidOption is returned when a selected answer is not one of
	// the current question's options.
	ErrInvalidOption = errors.New("selected answer is not an option")
)

// Session tracks progress through one quiz. Not safe for concurrent
// use; the UI drives it from a single goroutine.
type Session struct {
	state     State
	set       *quizgen.QuestionSet
	answers   []string
	index     int
	revealed  bool
	failCause error
}

// NewSession returns an empty session in StateNotStarted.
func NewSession() *Session {
	return &Session{state: StateNotStarted}
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Start loads a generated question set and moves to StateInProgress.
// Answers reset to unanswered and the cursor returns to the first
// question. Starting from any state is allowed; it discards prior
// progress.
func (s *Session) Start(set *quizgen.QuestionSet) error {
	if set == nil || set.Len() == 0 {
		return errors.New("question set is empty")
	}
	s.set = set
	s.answers = make([]string, set.Len())
	s.index = 0
	s.revealed = false
	s.failCause = nil
	s.state = StateInProgress
	return nil
}

// Fail moves the session to StateFailed, recording the cause.
// Used when generation errors out so the UI can offer a retry.
func (s *Session) Fail(cause error) {
	s.state = StateFailed
	s.failCause = cause
	s.set = nil
	s.answers = nil
	s.index = 0
	s.revealed = false
}

// FailCause returns the error recorded by Fail, or nil.
func (s *Session) FailCause() error { return s.failCause }

// Restart clears all state back to StateNotStarted.
func (s *Session) Restart() {
	*s = Session{state: StateNotStarted}
}

// Current returns the question under the cursor and its index.
// Returns nil outside StateInProgress.
func (s *Session) Current() (*quizgen.Question, int) {
	if s.state != StateInProgress {
		return nil, 0
	}
	return &s.set.Questions[s.index], s.index
}

// Len returns the number of questions, or 0 before Start.
func (s *Session) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Len()
}

// SelectAnswer records the user's choice for the current question.
// Re-selecting overwrites the previous choice until Advance is called.
func (s *Session) SelectAnswer(answer string) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	q := s.set.Questions[s.index]
	ok := false
	for _, opt := range q.Options {
		if opt == answer {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOption, answer)
	}
	s.answers[s.index] = answer
	return nil
}

// Selected returns the recorded answer for the current question, or
// Unanswered.
func (s *Session) Selected() string {
	if s.state != StateInProgress {
		return Unanswered
	}
	return s.answers[s.index]
}

// RevealExplanation marks the current question's explanation as shown.
// Requires a selected answer so the explanation cannot leak the
// correct choice early.
func (s *Session) RevealExplanation() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.answers[s.index] == Unanswered {
		return ErrNoSelection
	}
	s.revealed = true
	return nil
}

// Revealed reports whether the current question's explanation is shown.
func (s *Session) Revealed() bool { return s.revealed }

// Advance moves to the next question, or to StateCompleted after the
// last one. The current question must have a selected answer.
func (s *Session) Advance() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.answers[s.index] == Unanswered {
		return ErrNoSelection
	}
	s.revealed = false
	if s.index == s.set.Len()-1 {
		s.state = StateCompleted
		return nil
	}
	s.index++
	return nil
}

// Answers returns a copy of the answer set, aligned by index with the
// question set. Unanswered entries are empty strings.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Questions returns the loaded question set, or nil before Start.
func (s *Session) Questions() *quizgen.QuestionSet { return s.set }

// Progress returns answered-so-far and total counts for display.
func (s *Session) Progress() (answered, total int) {
	for _, a := range s.answers {
		if a != Unanswered {
			answered++
		}
	}
	return answered, len(s.answers)
}
