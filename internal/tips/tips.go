// Package tips generates short improvement tips from a user's wrong
// answers after a quiz. Tip generation is best-effort: callers treat
// failures as "no tip", never as a quiz failure.
package tips

import (
	"context"
	"strings"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/quiz"
)

const systemPrompt = `You are an encouraging career coach reviewing a candidate's practice interview results. You give short, specific, actionable advice.`

// Service generates improvement tips.
type Service struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewService creates a tip generation service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, maxTokens: 256, temperature: 0.7}
}

// Generate produces one improvement tip from the wrong answers of a
// quiz. Returns ("", nil) without calling the provider when there are
// no wrong answers.
func (s *Service) Generate(ctx context.Context, industry string, wrong []quiz.QuestionResult) (string, error) {
	if len(wrong) == 0 {
		return "", nil
	}

	ctx = llm.WithPurpose(ctx, "improvement-tip")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTipUserMessage(industry, wrong)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

func buildTipUserMessage(industry string, wrong []quiz.QuestionResult) string {
	var b strings.Builder

	b.WriteString("The user got the following " + industry + " technical interview questions wrong:\n\n")
	for i, r := range wrong {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Question: \"" + r.Question + "\"\n")
		b.WriteString("Correct Answer: \"" + r.Answer + "\"\n")
		b.WriteString("User Answer: \"" + r.UserAnswer + "\"")
	}

	b.WriteString(`

Based on these mistakes, provide a concise, specific improvement tip.
Focus on the knowledge gaps revealed by these wrong answers.
Keep the response under 2 sentences and make it encouraging.
Don't explicitly mention the mistakes, instead focus on what to learn and practice.`)

	return b.String()
}
