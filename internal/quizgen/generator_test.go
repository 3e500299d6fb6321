package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/llm"
)

func validQuizJSON(n int) json.RawMessage {
	var qs []string
	for i := 0; i < n; i++ {
		qs = append(qs, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["A", "B", "C", "D"],
			"correctAnswer": "B",
			"explanation": "Because B."
		}`, i))
	}
	return json.RawMessage(`{"questions": [` + strings.Join(qs, ",") + `]}`)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.QuestionCount = 3
	return cfg
}

func TestGenerateSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(3)})
	gen := New(mock, testConfig())

	set, err := gen.Generate(context.Background(), GenerateInput{
		Industry: "tech-software-development",
		Skills:   []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("len = %d, want 3", set.Len())
	}
	q := set.Questions[0]
	if q.Text != "Question 0?" || q.CorrectAnswer != "B" {
		t.Errorf("unexpected first question: %+v", q)
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %v", q.Options)
	}
}

func TestGeneratePromptIncludesProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(3)})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Industry: "finance-banking",
		Skills:   []string{"Risk Modeling"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "finance-banking") {
		t.Errorf("prompt missing industry: %s", msg)
	}
	if !strings.Contains(msg, "Risk Modeling") {
		t.Errorf("prompt missing skills: %s", msg)
	}
	if !strings.Contains(msg, "Generate 3 technical interview questions") {
		t.Errorf("prompt missing count: %s", msg)
	}
}

func TestGenerateCountOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(5)})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Industry: "tech-devops",
		Count:    5,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Generate 5 technical") {
		t.Errorf("prompt did not honor count override")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Industry: "tech-devops"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want GenerationError", err)
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	// MockProvider bypasses the provider-level sanitization, so raw
	// non-JSON reaches the decoder directly.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Sure! Here is your quiz`),
	})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Industry: "tech-devops"})
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedResponseError", err)
	}
	if malformed.Raw != "Sure! Here is your quiz" {
		t.Errorf("Raw = %q", malformed.Raw)
	}
}

func TestGenerateStructuralFailures(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{
			"empty set",
			`{"questions": []}`,
		},
		{
			"three options",
			`{"questions": [{"question": "Q?", "options": ["A","B","C"], "correctAnswer": "A", "explanation": "E"}]}`,
		},
		{
			"answer not among options",
			`{"questions": [{"question": "Q?", "options": ["A","B","C","D"], "correctAnswer": "E", "explanation": "E"}]}`,
		},
		{
			"empty explanation",
			`{"questions": [{"question": "Q?", "options": ["A","B","C","D"], "correctAnswer": "A", "explanation": ""}]}`,
		},
		{
			"empty question text",
			`{"questions": [{"question": "", "options": ["A","B","C","D"], "correctAnswer": "A", "explanation": "E"}]}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(c.json)})
			gen := New(mock, testConfig())

			_, err := gen.Generate(context.Background(), GenerateInput{Industry: "tech-devops"})
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Validator != "structural" {
				t.Errorf("validator = %q", verr.Validator)
			}
		})
	}
}

func TestStructuralValidatorPasses(t *testing.T) {
	set := &QuestionSet{Questions: []Question{
		{
			Text:          "What does SELECT do?",
			Options:       []string{"Reads rows", "Writes rows", "Drops tables", "Locks rows"},
			CorrectAnswer: "Reads rows",
			Explanation:   "SELECT reads data.",
		},
	}}
	v := &StructuralValidator{}
	if err := v.Validate(set, GenerateInput{}); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
