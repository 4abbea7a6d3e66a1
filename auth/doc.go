// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides fingerprinting and ID generation for sensitive values.

The voter's national id and ballot number must never reach a log line or
the local journal in clear text. Anything that needs to refer to them uses
a keyed fingerprint instead.

# Fingerprints

	fp := auth.Fingerprint(nationalID, salt) // 16 hex chars, HMAC-SHA256

A Fingerprinter binds the salt once:

	f := auth.NewFingerprinter(cfg.FingerprintSalt)
	slog.Info("ballot submitted", "voter", f.Of(nationalID))

With an empty salt a random one is generated per process.

# IDs

	id, err := auth.GenerateID(16)  // 32 hex chars
	reqID := auth.NewRequestID()    // UUIDv4 for X-Request-ID
*/
package auth
