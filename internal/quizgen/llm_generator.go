package quizgen

import (
	"context"
	"encoding/json"

	"github.com/prepdeck/prepdeck/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate produces a full question set for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	count := input.Count
	if count <= 0 {
		count = g.config.QuestionCount
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &MalformedResponseError{Raw: string(resp.Content), Err: err}
	}

	set := &QuestionSet{Questions: make([]Question, 0, len(raw.Questions))}
	for _, q := range raw.Questions {
		set.Questions = append(set.Questions, Question{
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(set, input); verr != nil {
			return nil, verr
		}
	}

	return set, nil
}
