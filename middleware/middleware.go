// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/ballot-client/auth"
	"github.com/danielhkuo/ballot-client/models"
)

const HeaderRequestID = "X-Request-ID"

// Error bodies larger than this are truncated before parsing
const maxErrorBody = 64 << 10

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain wraps base with the given wrappers, outermost first
func Chain(base http.RoundTripper, wrappers ...func(http.RoundTripper) http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(wrappers) - 1; i >= 0; i-- {
		base = wrappers[i](base)
	}
	return base
}

// WithLogging wraps a transport with request logging
func WithLogging(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		slog.Debug("request started",
			"method", r.Method,
			"url", r.URL.String(),
			"request_id", r.Header.Get(HeaderRequestID),
		)

		resp, err := next.RoundTrip(r)

		duration := time.Since(start)
		if err != nil {
			slog.Warn("request failed",
				"method", r.Method,
				"url", r.URL.String(),
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return nil, err
		}

		slog.Info("request completed",
			"method", r.Method,
			"url", r.URL.String(),
			"status", resp.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)
		return resp, nil
	})
}

// WithRequestID stamps outgoing requests with an X-Request-ID unless one is set
func WithRequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if r.Header.Get(HeaderRequestID) != "" {
			return next.RoundTrip(r)
		}
		// RoundTrippers must not modify the caller's request
		r = r.Clone(r.Context())
		r.Header.Set(HeaderRequestID, auth.NewRequestID())
		return next.RoundTrip(r)
	})
}

// JSONBody encodes v for use as a request body
func JSONBody(v interface{}) (io.Reader, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON body: %w", err)
	}
	return &buf, nil
}

// DecodeJSON parses the response body into the given struct and closes it
func DecodeJSON(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// IsSuccess reports whether the status code is 2xx
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// StatusMessage extracts the human-readable status from a response body
// shaped like {"status": "..."} and closes it. Falls back to the HTTP
// status text when the body is empty or not JSON.
func StatusMessage(resp *http.Response) string {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(body) > 0 {
		var status models.StatusResponse
		if json.Unmarshal(body, &status) == nil && strings.TrimSpace(status.Status) != "" {
			return status.Status
		}
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
