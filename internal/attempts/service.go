// Package attempts orchestrates the quiz lifecycle around persistence:
// generating a quiz for the current user, grading and saving a finished
// attempt with its improvement tip, and reading attempt history.
package attempts

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/quizgen"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/tips"
)

// CategoryTechnical is the category recorded on every quiz attempt.
const CategoryTechnical = "Technical"

// Attempt is a persisted quiz attempt with decoded results.
type Attempt struct {
	ID             string
	QuizScore      int
	Results        []quiz.QuestionResult
	Category       string
	ImprovementTip string
	CreatedAt      time.Time
}

// SaveInput is a finished quiz handed in for grading and persistence.
type SaveInput struct {
	// Questions is the generated set the user answered.
	Questions *quizgen.QuestionSet

	// Answers aligns with Questions by index. Empty entries mean
	// unanswered. A set shorter than Questions is padded; longer is
	// rejected.
	Answers []string

	// ClaimedScore is the score the caller computed while running the
	// quiz. It is persisted (clamped to 0) but recomputed server-side
	// for verification.
	ClaimedScore float64
}

// Service wires quiz generation, scoring, tips, and storage together.
type Service struct {
	profiles  *profile.Service
	generator quizgen.Generator
	tips      *tips.Service
	repo      store.AttemptRepo
	log       *zap.Logger
}

func NewService(profiles *profile.Service, gen quizgen.Generator, tipSvc *tips.Service, repo store.AttemptRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		profiles:  profiles,
		generator: gen,
		tips:      tipSvc,
		repo:      repo,
		log:       log,
	}
}

// GenerateQuiz produces a question set tailored to the current user's
// profile. Nothing is persisted until the attempt is saved.
func (s *Service) GenerateQuiz(ctx context.Context, count int) (*quizgen.QuestionSet, error) {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}

	set, err := s.generator.Generate(ctx, quizgen.GenerateInput{
		Industry: user.Industry,
		Skills:   user.Skills,
		Count:    count,
	})
	if err != nil {
		s.log.Error("quiz generation failed",
			zap.String("industry", user.Industry),
			zap.Error(err))
		return nil, err
	}

	s.log.Info("quiz generated",
		zap.String("industry", user.Industry),
		zap.Int("questions", set.Len()))
	return set, nil
}

// SaveAttempt grades a finished quiz and persists it as one attempt.
// The improvement tip is best-effort: a tip generation failure is
// logged and the attempt saves with no tip.
func (s *Service) SaveAttempt(ctx context.Context, in SaveInput) (*Attempt, error) {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}

	if in.Questions == nil || in.Questions.Len() == 0 {
		return nil, &InvalidInputError{Reason: "question set is empty"}
	}

	outcome, err := quiz.Score(in.Questions, in.Answers)
	if err != nil {
		return nil, &InvalidInputError{Reason: "answers do not match questions", Err: err}
	}

	score := in.ClaimedScore
	if score < 0 {
		score = 0
	}
	persisted := int(math.Round(score))
	if recomputed := int(math.Round(outcome.Score)); persisted != recomputed {
		s.log.Warn("claimed score differs from recomputed score",
			zap.Float64("claimed", in.ClaimedScore),
			zap.Float64("recomputed", outcome.Score))
	}

	var tip string
	if wrong := quiz.WrongResults(outcome.Results); len(wrong) > 0 {
		tip, err = s.tips.Generate(ctx, user.Industry, wrong)
		if err != nil {
			s.log.Warn("improvement tip generation failed", zap.Error(err))
			tip = ""
		}
	}

	results, err := json.Marshal(outcome.Results)
	if err != nil {
		return nil, &SaveFailedError{Err: fmt.Errorf("encode results: %w", err)}
	}

	rec := &store.AttemptRecord{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		QuizScore:      persisted,
		Questions:      results,
		Category:       CategoryTechnical,
		ImprovementTip: tip,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, &SaveFailedError{Err: err}
	}

	s.log.Info("attempt saved",
		zap.String("attempt_id", rec.ID),
		zap.Int("score", persisted),
		zap.Bool("has_tip", tip != ""))

	return &Attempt{
		ID:             rec.ID,
		QuizScore:      persisted,
		Results:        outcome.Results,
		Category:       rec.Category,
		ImprovementTip: tip,
		CreatedAt:      rec.CreatedAt,
	}, nil
}

// ListAttempts returns the current user's attempts, oldest first.
func (s *Service) ListAttempts(ctx context.Context) ([]Attempt, error) {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	out := make([]Attempt, 0, len(recs))
	for _, rec := range recs {
		var results []quiz.QuestionResult
		if err := json.Unmarshal(rec.Questions, &results); err != nil {
			return nil, fmt.Errorf("decode attempt %s results: %w", rec.ID, err)
		}
		out = append(out, Attempt{
			ID:             rec.ID,
			QuizScore:      rec.QuizScore,
			Results:        results,
			Category:       rec.Category,
			ImprovementTip: rec.ImprovementTip,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return out, nil
}

// Stats aggregates the current user's attempt history.
func (s *Service) Stats(ctx context.Context) (*store.AttemptStats, error) {
	user, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.StatsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("attempt stats: %w", err)
	}
	return stats, nil
}
