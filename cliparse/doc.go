// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - BaseURL: Tallying service base URL (default: http://127.0.0.1:5000/api)
  - Timeout: HTTP timeout (default: none)
  - JournalURL: Journal database URL (optional)
  - JournalType: sqlite or postgres (default: sqlite)
  - FingerprintSalt: Secret for fingerprints (required with a journal)
  - RedactComments: Redact PII from comments before sending
  - NoColor: Disable colored output
  - LogLevel: debug, info, warn, error (default: warn)
  - EnvFile: Env file loaded before variables are read (default: .env)

# CLI Flags

	-u                 Base URL
	-timeout           HTTP timeout
	-j                 Journal URL
	-t                 Journal type
	--fingerprint-salt Fingerprint salt
	--redact-comments  Redact comments
	--no-color         Disable color
	--log-level        Log level
	--env-file         Env file

# Environment Variables

Flags fall back to environment variables:

	BALLOT_API_URL   → -u
	BALLOT_TIMEOUT   → -timeout
	JOURNAL_URL      → -j
	JOURNAL_TYPE     → -t
	FINGERPRINT_SALT → --fingerprint-salt
	REDACT_COMMENTS  → --redact-comments
	NO_COLOR         → --no-color
	LOG_LEVEL        → --log-level

CLI flags take precedence over environment variables, which take precedence
over the env file (godotenv never overrides variables that are already set).

# Validation

ParseFlags returns an error if:

  - the base URL is not an absolute http(s) URL
  - the timeout is not a non-negative duration
  - the journal type is not sqlite or postgres
  - a journal is configured without FINGERPRINT_SALT
*/
package cliparse
