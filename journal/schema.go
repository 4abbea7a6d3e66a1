// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the journal table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Shared by sqlite and postgres: no engine-specific types
const schema = `
-- Submission attempts (never the voter's national id or comments)
CREATE TABLE IF NOT EXISTS submission_attempt (
    id TEXT PRIMARY KEY,
    request_id TEXT NOT NULL,
    ballot_fingerprint TEXT NOT NULL,
    candidate_id TEXT NOT NULL,
    outcome TEXT NOT NULL CHECK (outcome IN ('counted', 'rejected', 'error')),
    message TEXT NOT NULL DEFAULT '',
    attempted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submission_attempt_attempted_at ON submission_attempt(attempted_at);
CREATE INDEX IF NOT EXISTS idx_submission_attempt_ballot ON submission_attempt(ballot_fingerprint);
`
