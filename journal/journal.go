// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballot-client/auth"
	"github.com/danielhkuo/ballot-client/models"
)

// Driver names as registered with database/sql
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrInvalidOutcome = errors.New("invalid journal outcome")

type Journal struct {
	db *sql.DB
}

// Open connects to the journal database and makes sure the schema exists
func Open(ctx context.Context, driver, dsn string) (*Journal, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported journal driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("journal connection failed: %w", err)
	}
	if driver == DriverSQLite {
		// One writer; avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal ping failed: %w", err)
	}

	if err := CreateSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("journal ready", "driver", driver)
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores one submission attempt. ID and AttemptedAt are filled in
// when empty.
func (j *Journal) Record(ctx context.Context, entry models.JournalEntry) error {
	switch entry.Outcome {
	case models.OutcomeCounted, models.OutcomeRejected, models.OutcomeError:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, entry.Outcome)
	}

	if entry.ID == "" {
		id, err := auth.GenerateID(16)
		if err != nil {
			return err
		}
		entry.ID = id
	}
	if entry.AttemptedAt.IsZero() {
		entry.AttemptedAt = time.Now()
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO submission_attempt (id, request_id, ballot_fingerprint, candidate_id, outcome, message, attempted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.RequestID, entry.BallotFingerprint, entry.CandidateID,
		entry.Outcome, entry.Message, entry.AttemptedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record submission attempt: %w", err)
	}

	return nil
}

// Recent returns up to limit attempts, newest first
func (j *Journal) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, request_id, ballot_fingerprint, candidate_id, outcome, message, attempted_at
		FROM submission_attempt
		ORDER BY attempted_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.BallotFingerprint, &e.CandidateID,
			&e.Outcome, &e.Message, &e.AttemptedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}

// CountByOutcome returns the number of attempts per outcome
func (j *Journal) CountByOutcome(ctx context.Context) (map[string]int, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*) FROM submission_attempt GROUP BY outcome
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count journal entries: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{
		models.OutcomeCounted:  0,
		models.OutcomeRejected: 0,
		models.OutcomeError:    0,
	}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("failed to scan journal count: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

// AttemptsForBallot returns how many attempts were recorded for a ballot fingerprint
func (j *Journal) AttemptsForBallot(ctx context.Context, fingerprint string) (int, error) {
	var n int
	err := j.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM submission_attempt WHERE ballot_fingerprint = $1
	`, fingerprint).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count ballot attempts: %w", err)
	}
	return n, nil
}
