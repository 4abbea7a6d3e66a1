// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballot client.

The ballot client is the voter-facing side of an electronic ballot-casting
workflow. It loads the candidate list once, lets the voter fill in a ballot
in a terminal session, validates it locally and submits it to a remote
tallying service.

# Starting the Client

With the tallying service on its default address:

	go run .

Or pointed elsewhere:

	go run . -u https://tally.example.org/api -timeout 15s

# Configuration

Settings come from flags, then environment variables, then a .env file:

  - BALLOT_API_URL (-u): tallying service base URL (default: http://127.0.0.1:5000/api)
  - BALLOT_TIMEOUT (-timeout): HTTP timeout (default: none)
  - JOURNAL_URL (-j): local journal DSN, disabled if empty
  - JOURNAL_TYPE (-t): sqlite or postgres (default: sqlite)
  - FINGERPRINT_SALT (--fingerprint-salt): required with a journal
  - REDACT_COMMENTS (--redact-comments): redact personal information from comments
  - NO_COLOR (--no-color): plain output
  - LOG_LEVEL (--log-level): debug, info, warn, error (default: warn)

# Architecture

  - console: interactive menu session
  - ballot: submission controller and draft validation
  - directory: memoized candidate list
  - tally: HTTP client for the tallying service
  - middleware: round-tripper chain and JSON helpers
  - notify: notification sinks
  - screening: personal information detection in comments
  - journal: optional local record of submission attempts
  - auth: fingerprints and request IDs
  - models: wire and domain types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
