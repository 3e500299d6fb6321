package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/store"
)

// Service provides resume storage and AI assistance.
type Service struct {
	profiles *profile.Service
	provider llm.Provider
	repo     store.ResumeRepo
	log      *zap.Logger
}

func NewService(profiles *profile.Service, provider llm.Provider, repo store.ResumeRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{profiles: profiles, provider: provider, repo: repo, log: log}
}

// Save stores the current user's resume, replacing any previous one.
func (s *Service) Save(ctx context.Context, r *Resume) error {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return err
	}

	content, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	rec := &store.ResumeRecord{UserID: user.ID, Content: content}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	s.log.Info("resume saved", zap.String("user_id", user.ID))
	return nil
}

// Get returns the current user's resume, or an empty resume when none
// has been saved yet.
func (s *Service) Get(ctx context.Context) (*Resume, error) {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load resume: %w", err)
	}
	if rec == nil {
		return &Resume{}, nil
	}

	var r Resume
	if err := json.Unmarshal(rec.Content, &r); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &r, nil
}

const improveSystemPrompt = `You are an expert resume writer. You rewrite resume content to be achievement-oriented: strong action verbs, concrete outcomes, and industry keywords. You return only the rewritten text, plain, with no preamble, quotes, or markdown.`

// ImproveWithAI rewrites one piece of resume content for impact,
// using the user's industry for keyword targeting.
func (s *Service) ImproveWithAI(ctx context.Context, section SectionType, current string) (string, error) {
	if strings.TrimSpace(current) == "" {
		return "", fmt.Errorf("nothing to improve: %s content is empty", section)
	}

	user, err := s.profiles.Current(ctx)
	if err != nil {
		return "", err
	}

	ctx = llm.WithPurpose(ctx, "resume-improve")

	var b strings.Builder
	fmt.Fprintf(&b, "As an expert resume writer, improve the following %s description for a %s professional.\n", section, user.Industry)
	b.WriteString("Make it more impactful, quantifiable, and aligned with industry standards.\n\nCurrent content:\n")
	b.WriteString(current)
	b.WriteString(`

Requirements:
1. Use action verbs
2. Include metrics and results where possible
3. Highlight relevant technical skills
4. Keep it concise but detailed
5. Focus on achievements over responsibilities
6. Use industry-specific keywords

Format the response as a single paragraph without any additional text or explanations.`)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: improveSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   512,
		Temperature: 0.6,
	})
	if err != nil {
		return "", fmt.Errorf("improve %s: %w", section, err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}
