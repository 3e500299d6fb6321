package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ResumeRecord is the stored form of a user's resume. One per user.
type ResumeRecord struct {
	UserID    string
	Content   json.RawMessage
	UpdatedAt time.Time
}

// ResumeRepo manages resume records.
type ResumeRepo interface {
	// Upsert stores or replaces the resume for a user.
	Upsert(ctx context.Context, rec *ResumeRecord) error

	// Get returns the resume for a user, or nil if absent.
	Get(ctx context.Context, userID string) (*ResumeRecord, error)
}

type resumeRepo struct {
	db *sql.DB
}

func (r *resumeRepo) Upsert(ctx context.Context, rec *ResumeRecord) error {
	rec.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO resumes (user_id, content, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at`,
		rec.UserID, string(rec.Content), rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert resume: %w", err)
	}
	return nil
}

func (r *resumeRepo) Get(ctx context.Context, userID string) (*ResumeRecord, error) {
	var rec ResumeRecord
	var content string
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, content, updated_at FROM resumes WHERE user_id = ?`, userID).
		Scan(&rec.UserID, &content, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan resume: %w", err)
	}
	rec.Content = json.RawMessage(content)
	return &rec, nil
}
