// Package profile manages the local user's career profile: industry,
// specialization, experience, and skills. Every AI feature reads the
// profile for prompt context, so most operations require one to exist.
package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/store"
)

var (
	// ErrUnauthorized is returned when no local user profile exists yet.
	ErrUnauthorized = errors.New("no user profile found, run onboarding first")

	// ErrUserNotFound is returned when a referenced user ID does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// User is a career profile.
type User struct {
	ID          string
	Industry    string // slug, e.g. "tech-software-development"
	SubIndustry string // display name, e.g. "Software Development"
	Experience  int    // years
	Skills      []string
	Bio         string
}

// Input is the data collected during onboarding.
type Input struct {
	Industry    string // industry ID from Industries, e.g. "tech"
	SubIndustry string // display name from the industry's SubIndustries
	Experience  int
	Skills      []string
	Bio         string
}

// Service provides profile operations backed by the store.
type Service struct {
	users store.UserRepo
	log   *zap.Logger
}

func NewService(users store.UserRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, log: log}
}

// IndustrySlug joins an industry ID and specialization into the slug
// stored on the profile: lowercase, spaces replaced with dashes.
func IndustrySlug(industryID, subIndustry string) string {
	sub := strings.ToLower(strings.TrimSpace(subIndustry))
	sub = strings.ReplaceAll(sub, " ", "-")
	return fmt.Sprintf("%s-%s", industryID, sub)
}

// Save creates or updates the local profile from onboarding input.
func (s *Service) Save(ctx context.Context, in Input) (*User, error) {
	if in.Industry == "" || in.SubIndustry == "" {
		return nil, errors.New("industry and specialization are required")
	}
	if in.Experience < 0 || in.Experience > 50 {
		return nil, errors.New("experience must be between 0 and 50 years")
	}

	// Single-user tool: reuse the existing record when one exists.
	existing, err := s.users.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	rec := &store.UserRecord{
		ID:          uuid.NewString(),
		Industry:    IndustrySlug(in.Industry, in.SubIndustry),
		SubIndustry: in.SubIndustry,
		Experience:  in.Experience,
		Skills:      in.Skills,
		Bio:         in.Bio,
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}

	if err := s.users.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("profile saved",
		zap.String("user_id", rec.ID),
		zap.String("industry", rec.Industry))
	return userFromRecord(rec), nil
}

// Get returns the user with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	rec, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}
	return userFromRecord(rec), nil
}

// Current resolves the local user. PREPDECK_USER selects a specific
// user ID; otherwise the first (only) stored profile is used. Returns
// ErrUnauthorized when onboarding has not been completed.
func (s *Service) Current(ctx context.Context) (*User, error) {
	if id := os.Getenv("PREPDECK_USER"); id != "" {
		return s.Get(ctx, id)
	}

	rec, err := s.users.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if rec == nil {
		return nil, ErrUnauthorized
	}
	return userFromRecord(rec), nil
}

// Onboarded reports whether a local profile exists.
func (s *Service) Onboarded(ctx context.Context) (bool, error) {
	rec, err := s.users.First(ctx)
	if err != nil {
		return false, fmt.Errorf("load profile: %w", err)
	}
	return rec != nil, nil
}

func userFromRecord(rec *store.UserRecord) *User {
	return &User{
		ID:          rec.ID,
		Industry:    rec.Industry,
		SubIndustry: rec.SubIndustry,
		Experience:  rec.Experience,
		Skills:      rec.Skills,
		Bio:         rec.Bio,
	}
}
