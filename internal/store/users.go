package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// UserRecord is the stored form of a user profile.
type UserRecord struct {
	ID          string
	Industry    string
	SubIndustry string
	Experience  int
	Skills      []string
	Bio         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserRepo manages user profile records.
type UserRepo interface {
	// Save inserts or updates a user record.
	Save(ctx context.Context, rec *UserRecord) error

	// Get returns the user with the given ID, or nil if absent.
	Get(ctx context.Context, id string) (*UserRecord, error)

	// First returns the earliest-created user, or nil if none exist.
	// prepdeck is a single-user tool; First resolves the local identity.
	First(ctx context.Context) (*UserRecord, error)
}

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) Save(ctx context.Context, rec *UserRecord) error {
	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (id, industry, sub_industry, experience, skills, bio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			industry = excluded.industry,
			sub_industry = excluded.sub_industry,
			experience = excluded.experience,
			skills = excluded.skills,
			bio = excluded.bio,
			updated_at = excluded.updated_at`,
		rec.ID, rec.Industry, rec.SubIndustry, rec.Experience, string(skills), rec.Bio,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*UserRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, industry, sub_industry, experience, skills, bio, created_at, updated_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *userRepo) First(ctx context.Context) (*UserRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, industry, sub_industry, experience, skills, bio, created_at, updated_at
		FROM users ORDER BY created_at ASC LIMIT 1`)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*UserRecord, error) {
	var rec UserRecord
	var skills string
	err := row.Scan(&rec.ID, &rec.Industry, &rec.SubIndustry, &rec.Experience,
		&skills, &rec.Bio, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if err := json.Unmarshal([]byte(skills), &rec.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	return &rec, nil
}
