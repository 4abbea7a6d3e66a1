// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package journal keeps an optional local record of submission attempts.

The journal is off unless a database URL is configured. It stores what
the voter needs to answer "did my ballot go through?" and nothing that
identifies them:

  - id, request_id (matches X-Request-ID sent to the service)
  - ballot_fingerprint (HMAC of the ballot number, see package auth)
  - candidate_id, outcome (counted, rejected, error), message
  - attempted_at

The voter's national id and comments are never written.

# Drivers

	j, err := journal.Open(ctx, "sqlite", "file:journal.db")         // modernc.org/sqlite
	j, err := journal.Open(ctx, "postgres", "postgres://...")        // lib/pq

Open pings the database and runs CreateSchema, which is idempotent.

# Reading

	entries, err := j.Recent(ctx, 10)       // newest first
	counts, err := j.CountByOutcome(ctx)    // outcome -> count
*/
package journal
