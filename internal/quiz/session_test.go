package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prepdeck/prepdeck/internal/quizgen"
)

func makeSet(n int) *quizgen.QuestionSet {
	set := &quizgen.QuestionSet{}
	for i := 0; i < n; i++ {
		set.Questions = append(set.Questions, quizgen.Question{
			Text:          fmt.Sprintf("Question %d?", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
			Explanation:   "Because B.",
		})
	}
	return set
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	if s.State() != StateNotStarted {
		t.Fatalf("initial state = %v", s.State())
	}

	if err := s.Start(makeSet(2)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("state after start = %v", s.State())
	}

	q, idx := s.Current()
	if q == nil || idx != 0 || q.Text != "Question 0?" {
		t.Fatalf("current = %v at %d", q, idx)
	}

	if err := s.SelectAnswer("B"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	_, idx = s.Current()
	if idx != 1 {
		t.Fatalf("index = %d, want 1", idx)
	}

	if err := s.SelectAnswer("C"); err != nil {
		t.Fatalf("select second: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance past last: %v", err)
	}
	if s.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", s.State())
	}
	answers := s.Answers()
	if answers[0] != "B" || answers[1] != "C" {
		t.Errorf("answers = %v", answers)
	}
}

func TestSelectAnswerRejectsNonOption(t *testing.T) {
	s := NewSession()
	if err := s.Start(makeSet(1)); err != nil {
		t.Fatalf("start: %v", err)
	}
	err := s.SelectAnswer("Z")
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	s := NewSession()
	if err := s.Start(makeSet(1)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.SelectAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectAnswer("D"); err != nil {
		t.Fatal(err)
	}
	if got := s.Selected(); got != "D" {
		t.Errorf("selected = %q, want D", got)
	}
}

func TestAdvanceRequiresSelection(t *testing.T) {
	s := NewSession()
	if err := s.Start(makeSet(2)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
}

func TestRevealExplanation(t *testing.T) {
	s := NewSession()
	if err := s.Start(makeSet(2)); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Reveal before answering is refused.
	if err := s.RevealExplanation(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}

	if err := s.SelectAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.RevealExplanation(); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if !s.Revealed() {
		t.Error("revealed = false after reveal")
	}

	// Advancing resets the reveal for the next question.
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.Revealed() {
		t.Error("revealed carried over to next question")
	}
}

func TestOperationsOutsideInProgress(t *testing.T) {
	s := NewSession()
	if err := s.SelectAnswer("A"); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("select err = %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("advance err = %v", err)
	}
	if err := s.RevealExplanation(); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("reveal err = %v", err)
	}
}

func TestFailAndRestart(t *testing.T) {
	s := NewSession()
	cause := errors.New("generation blew up")
	s.Fail(cause)
	if s.State() != StateFailed {
		t.Fatalf("state = %v, want failed", s.State())
	}
	if !errors.Is(s.FailCause(), cause) {
		t.Errorf("cause = %v", s.FailCause())
	}

	s.Restart()
	if s.State() != StateNotStarted {
		t.Fatalf("state after restart = %v", s.State())
	}
	if s.FailCause() != nil {
		t.Errorf("cause survived restart: %v", s.FailCause())
	}
}

func TestStartDiscardsProgress(t *testing.T) {
	s := NewSession()
	if err := s.Start(makeSet(2)); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	if err := s.Start(makeSet(3)); err != nil {
		t.Fatalf("restart with new set: %v", err)
	}
	_, idx := s.Current()
	if idx != 0 {
		t.Errorf("index = %d, want 0", idx)
	}
	for i, a := range s.Answers() {
		if a != Unanswered {
			t.Errorf("answer %d = %q, want unanswered", i, a)
		}
	}
}

func TestStartRejectsEmptySet(t *testing.T) {
	s := NewSession()
	if err := s.Start(&quizgen.QuestionSet{}); err == nil {
		t.Fatal("expected error for empty set")
	}
	if err := s.Start(nil); err == nil {
		t.Fatal("expected error for nil set")
	}
}

func TestProgress(t *testing.T) {
	s := NewSession()
	if err := s.Start(makeSet(3)); err != nil {
		t.Fatal(err)
	}
	answered, total := s.Progress()
	if answered != 0 || total != 3 {
		t.Fatalf("progress = %d/%d, want 0/3", answered, total)
	}
	if err := s.SelectAnswer("A"); err != nil {
		t.Fatal(err)
	}
	answered, _ = s.Progress()
	if answered != 1 {
		t.Errorf("answered = %d, want 1", answered)
	}
}
