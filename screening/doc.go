// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package screening detects and redacts personal information in free text.
//
// Voter comments must not identify the voter. Scan finds email addresses,
// phone numbers, national-id-shaped numbers and caller-supplied literals;
// Redact replaces them with markers such as [REDACTED EMAIL].
package screening
