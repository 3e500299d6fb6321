package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// InsightRecord is the stored form of an AI-generated industry insight.
// One record per industry slug; regenerated when NextUpdate passes.
type InsightRecord struct {
	Industry    string
	Payload     json.RawMessage
	LastUpdated time.Time
	NextUpdate  time.Time
}

// InsightRepo manages industry insight records.
type InsightRepo interface {
	// Upsert stores or replaces the insight for an industry.
	Upsert(ctx context.Context, rec *InsightRecord) error

	// Get returns the insight for an industry, or nil if absent.
	Get(ctx context.Context, industry string) (*InsightRecord, error)
}

type insightRepo struct {
	db *sql.DB
}

func (r *insightRepo) Upsert(ctx context.Context, rec *InsightRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO industry_insights (industry, payload, last_updated, next_update)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(industry) DO UPDATE SET
			payload = excluded.payload,
			last_updated = excluded.last_updated,
			next_update = excluded.next_update`,
		rec.Industry, string(rec.Payload), rec.LastUpdated, rec.NextUpdate,
	)
	if err != nil {
		return fmt.Errorf("upsert insight: %w", err)
	}
	return nil
}

func (r *insightRepo) Get(ctx context.Context, industry string) (*InsightRecord, error) {
	var rec InsightRecord
	var payload string
	err := r.db.QueryRowContext(ctx, `
		SELECT industry, payload, last_updated, next_update
		FROM industry_insights WHERE industry = ?`, industry).
		Scan(&rec.Industry, &payload, &rec.LastUpdated, &rec.NextUpdate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan insight: %w", err)
	}
	rec.Payload = json.RawMessage(payload)
	return &rec, nil
}
