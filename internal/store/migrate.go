package store

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent DDL statements applied at every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		industry TEXT NOT NULL,
		sub_industry TEXT NOT NULL DEFAULT '',
		experience INTEGER NOT NULL DEFAULT 0,
		skills TEXT NOT NULL DEFAULT '[]',
		bio TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		quiz_score INTEGER NOT NULL,
		questions TEXT NOT NULL,
		category TEXT NOT NULL,
		improvement_tip TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_user_created
		ON attempts(user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS industry_insights (
		industry TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		last_updated TIMESTAMP NOT NULL,
		next_update TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		user_id TEXT PRIMARY KEY REFERENCES users(id),
		content TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS llm_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TIMESTAMP NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
