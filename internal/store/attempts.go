package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AttemptRecord is the stored form of a completed quiz attempt.
// Attempts are write-once: saved exactly once and never updated.
type AttemptRecord struct {
	ID             string
	UserID         string
	QuizScore      int
	Questions      json.RawMessage // serialized question results
	Category       string
	ImprovementTip string // empty means no tip
	CreatedAt      time.Time
}

// AttemptStats aggregates a user's attempt history.
type AttemptStats struct {
	Count        int
	AverageScore float64
	LatestScore  int
	LatestAt     time.Time
}

// AttemptRepo manages quiz attempt records.
type AttemptRepo interface {
	// Save stores a new attempt atomically: the row is fully written
	// (score, results, tip) or not written at all.
	Save(ctx context.Context, rec *AttemptRecord) error

	// ListByUser returns all attempts for a user ordered by creation
	// time ascending.
	ListByUser(ctx context.Context, userID string) ([]AttemptRecord, error)

	// StatsByUser aggregates a user's attempts. Returns zero stats when
	// no attempts exist.
	StatsByUser(ctx context.Context, userID string) (*AttemptStats, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, rec *AttemptRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var tip any
	if rec.ImprovementTip != "" {
		tip = rec.ImprovementTip
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO attempts (id, user_id, quiz_score, questions, category, improvement_tip, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.QuizScore, string(rec.Questions), rec.Category, tip, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string) ([]AttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, quiz_score, questions, category, improvement_tip, created_at
		FROM attempts WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var questions string
		var tip sql.NullString
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.QuizScore, &questions,
			&rec.Category, &tip, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.Questions = json.RawMessage(questions)
		if tip.Valid {
			rec.ImprovementTip = tip.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attemptRepo) StatsByUser(ctx context.Context, userID string) (*AttemptStats, error) {
	var stats AttemptStats
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(quiz_score) FROM attempts WHERE user_id = ?`, userID).
		Scan(&stats.Count, &avg)
	if err != nil {
		return nil, fmt.Errorf("aggregate attempts: %w", err)
	}
	if stats.Count == 0 {
		return &stats, nil
	}
	stats.AverageScore = avg.Float64

	err = r.db.QueryRowContext(ctx, `
		SELECT quiz_score, created_at FROM attempts
		WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`, userID).
		Scan(&stats.LatestScore, &stats.LatestAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest attempt: %w", err)
	}
	return &stats, nil
}
