package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/store"
)

// ErrNoProvider means a report had to be generated but no LLM provider
// is configured. Cached reports are still served without one.
var ErrNoProvider = errors.New("no LLM provider configured")

// Service serves cached insights, regenerating them past their
// refresh deadline.
type Service struct {
	profiles *profile.Service
	provider llm.Provider
	repo     store.InsightRepo
	log      *zap.Logger

	now func() time.Time
}

func NewService(profiles *profile.Service, provider llm.Provider, repo store.InsightRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		profiles: profiles,
		provider: provider,
		repo:     repo,
		log:      log,
		now:      time.Now,
	}
}

// Get returns the insight for the current user's industry. A fresh
// cached copy is served directly. An expired or missing copy triggers
// regeneration; when regeneration fails and an expired copy exists, it
// is served marked Stale rather than failing the call.
func (s *Service) Get(ctx context.Context) (*Report, error) {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.ForIndustry(ctx, user.Industry)
}

// ForIndustry is Get for an explicit industry slug.
func (s *Service) ForIndustry(ctx context.Context, industry string) (*Report, error) {
	cached, err := s.repo.Get(ctx, industry)
	if err != nil {
		return nil, fmt.Errorf("load insight: %w", err)
	}

	now := s.now()
	if cached != nil && now.Before(cached.NextUpdate) {
		return reportFromRecord(cached, false)
	}

	fresh, genErr := s.generate(ctx, industry)
	if genErr != nil {
		if cached != nil {
			s.log.Warn("insight refresh failed, serving stale copy",
				zap.String("industry", industry),
				zap.Error(genErr))
			return reportFromRecord(cached, true)
		}
		return nil, genErr
	}

	payload, err := json.Marshal(fresh)
	if err != nil {
		return nil, fmt.Errorf("encode insight: %w", err)
	}
	rec := &store.InsightRecord{
		Industry:    industry,
		Payload:     payload,
		LastUpdated: now,
		NextUpdate:  now.Add(RefreshInterval),
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("store insight: %w", err)
	}

	s.log.Info("insight generated",
		zap.String("industry", industry),
		zap.Time("next_update", rec.NextUpdate))

	return &Report{
		Industry:    industry,
		Insight:     *fresh,
		LastUpdated: rec.LastUpdated,
		NextUpdate:  rec.NextUpdate,
	}, nil
}

func (s *Service) generate(ctx context.Context, industry string) (*Insight, error) {
	if s.provider == nil {
		return nil, ErrNoProvider
	}

	ctx = llm.WithPurpose(ctx, "industry-insight")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(industry)},
		},
		Schema:      InsightSchema,
		MaxTokens:   2048,
		Temperature: 0.4,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	var out Insight
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}
	return &out, nil
}

func reportFromRecord(rec *store.InsightRecord, stale bool) (*Report, error) {
	var ins Insight
	if err := json.Unmarshal(rec.Payload, &ins); err != nil {
		return nil, fmt.Errorf("decode cached insight: %w", err)
	}
	return &Report{
		Industry:    rec.Industry,
		Insight:     ins,
		LastUpdated: rec.LastUpdated,
		NextUpdate:  rec.NextUpdate,
		Stale:       stale,
	}, nil
}
