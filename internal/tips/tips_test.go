package tips

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/quiz"
)

func TestGenerateNoWrongAnswersSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	tip, err := svc.Generate(context.Background(), "tech-devops", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tip != "" {
		t.Errorf("tip = %q, want empty", tip)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestGenerateTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Brush up on indexing strategies. You're close!  "),
	})
	svc := NewService(mock)

	wrong := []quiz.QuestionResult{
		{
			Question:   "Which index type suits range scans?",
			Answer:     "B-tree",
			UserAnswer: "Hash",
		},
	}
	tip, err := svc.Generate(context.Background(), "tech-software-development", wrong)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tip != "Brush up on indexing strategies. You're close!" {
		t.Errorf("tip = %q", tip)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Which index type suits range scans?") {
		t.Errorf("prompt missing question: %s", msg)
	}
	if !strings.Contains(msg, `Correct Answer: "B-tree"`) {
		t.Errorf("prompt missing correct answer: %s", msg)
	}
	if !strings.Contains(msg, `User Answer: "Hash"`) {
		t.Errorf("prompt missing user answer: %s", msg)
	}
	if !strings.Contains(msg, "tech-software-development") {
		t.Errorf("prompt missing industry: %s", msg)
	}
}

func TestGeneratePropagatesError(t *testing.T) {
	boom := errors.New("rate limited")
	mock := llm.NewMockProvider(llm.MockResponse{Err: boom})
	svc := NewService(mock)

	wrong := []quiz.QuestionResult{{Question: "Q?", Answer: "A", UserAnswer: "B"}}
	_, err := svc.Generate(context.Background(), "finance-banking", wrong)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
