// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewRequestID returns a fresh ID for the X-Request-ID header
func NewRequestID() string {
	return uuid.NewString()
}

// Fingerprint creates a one-way keyed hash of a sensitive value
// (voter national id, ballot number) so it can appear in logs and the
// journal without exposing the value itself.
func Fingerprint(value, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough to correlate attempts
	return hex.EncodeToString(sum[:8])
}

// Fingerprinter binds a salt so callers don't pass it around.
type Fingerprinter struct {
	salt string
}

// NewFingerprinter returns a Fingerprinter for the given salt.
// An empty salt yields a random per-process salt: fingerprints stay
// useful for correlating log lines but are not comparable across runs.
func NewFingerprinter(salt string) *Fingerprinter {
	if salt == "" {
		salt = uuid.NewString()
	}
	return &Fingerprinter{salt: salt}
}

// Of returns the fingerprint of value, or "" for an empty value
func (f *Fingerprinter) Of(value string) string {
	if value == "" {
		return ""
	}
	return Fingerprint(value, f.salt)
}
