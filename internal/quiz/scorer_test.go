package quiz

import (
	"errors"
	"testing"

	"github.com/prepdeck/prepdeck/internal/quizgen"
)

func TestScoreAllCorrect(t *testing.T) {
	set := makeSet(4)
	out, err := Score(set, []string{"B", "B", "B", "B"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out.Score != 100 {
		t.Errorf("score = %v, want 100", out.Score)
	}
	for i, r := range out.Results {
		if !r.IsCorrect {
			t.Errorf("result %d marked wrong", i)
		}
	}
}

func TestScoreMixed(t *testing.T) {
	set := makeSet(4)
	out, err := Score(set, []string{"B", "A", "B", "C"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out.Score != 50 {
		t.Errorf("score = %v, want 50", out.Score)
	}
	if !out.Results[0].IsCorrect || out.Results[1].IsCorrect {
		t.Errorf("results = %+v", out.Results)
	}
	if out.Results[1].UserAnswer != "A" || out.Results[1].Answer != "B" {
		t.Errorf("result 1 = %+v", out.Results[1])
	}
}

func TestScoreRange(t *testing.T) {
	set := makeSet(3)
	for _, answers := range [][]string{
		{"B", "B", "B"},
		{"A", "A", "A"},
		{"B", "", "A"},
		{},
	} {
		out, err := Score(set, answers)
		if err != nil {
			t.Fatalf("score %v: %v", answers, err)
		}
		if out.Score < 0 || out.Score > 100 {
			t.Errorf("score %v out of range for %v", out.Score, answers)
		}
	}
}

func TestScoreUnansweredAlwaysWrong(t *testing.T) {
	set := makeSet(2)
	out, err := Score(set, []string{"", "B"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out.Results[0].IsCorrect {
		t.Error("unanswered question scored as correct")
	}
	if out.Score != 50 {
		t.Errorf("score = %v, want 50", out.Score)
	}
}

func TestScoreEmptyAnswerNeverMatchesEmptyCorrect(t *testing.T) {
	set := &quizgen.QuestionSet{Questions: []quizgen.Question{
		{Text: "Q?", Options: []string{"", "B", "C", "D"}, CorrectAnswer: "", Explanation: "E"},
	}}
	out, err := Score(set, []string{""})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out.Results[0].IsCorrect {
		t.Error("empty answer matched empty correct answer")
	}
}

func TestScorePadsShortAnswerSet(t *testing.T) {
	set := makeSet(3)
	out, err := Score(set, []string{"B"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(out.Results))
	}
	if out.Results[1].UserAnswer != "" || out.Results[2].UserAnswer != "" {
		t.Errorf("missing tail not treated as unanswered: %+v", out.Results)
	}
}

func TestScoreRejectsLongAnswerSet(t *testing.T) {
	set := makeSet(2)
	_, err := Score(set, []string{"B", "B", "B"})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestScoreDeterministic(t *testing.T) {
	set := makeSet(5)
	answers := []string{"B", "A", "B", "", "C"}
	first, err := Score(set, answers)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Score(set, answers)
	if err != nil {
		t.Fatal(err)
	}
	if first.Score != second.Score {
		t.Errorf("scores differ: %v vs %v", first.Score, second.Score)
	}
	for i := range first.Results {
		if first.Results[i] != second.Results[i] {
			t.Errorf("result %d differs", i)
		}
	}
}

func TestScoreTandemSwapInvariance(t *testing.T) {
	// Swapping two questions together with their answers must not
	// change the score.
	set := makeSet(3)
	set.Questions[1].CorrectAnswer = "C"
	answers := []string{"B", "C", "A"}

	base, err := Score(set, answers)
	if err != nil {
		t.Fatal(err)
	}

	swapped := &quizgen.QuestionSet{Questions: []quizgen.Question{
		set.Questions[1], set.Questions[0], set.Questions[2],
	}}
	swappedAnswers := []string{answers[1], answers[0], answers[2]}

	after, err := Score(swapped, swappedAnswers)
	if err != nil {
		t.Fatal(err)
	}
	if base.Score != after.Score {
		t.Errorf("score changed after tandem swap: %v -> %v", base.Score, after.Score)
	}
}

func TestWrongResults(t *testing.T) {
	set := makeSet(3)
	out, err := Score(set, []string{"B", "A", ""})
	if err != nil {
		t.Fatal(err)
	}
	wrong := WrongResults(out.Results)
	if len(wrong) != 2 {
		t.Fatalf("len(wrong) = %d, want 2", len(wrong))
	}
	if wrong[0].UserAnswer != "A" {
		t.Errorf("wrong[0] = %+v", wrong[0])
	}

	allRight, err := Score(set, []string{"B", "B", "B"})
	if err != nil {
		t.Fatal(err)
	}
	if w := WrongResults(allRight.Results); w != nil {
		t.Errorf("expected nil for perfect outcome, got %v", w)
	}
}
