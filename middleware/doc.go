// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP client transport wrappers and JSON helpers.

# Transport Chain

Wrappers compose around a base http.RoundTripper:

	transport := middleware.Chain(http.DefaultTransport,
		middleware.WithRequestID,
		middleware.WithLogging,
	)
	client := &http.Client{Transport: transport}

# Logging

WithLogging logs each request with slog:

  - request started: method, url, request_id (debug)
  - request completed: method, url, status, duration_ms (info)
  - request failed: method, url, duration_ms, error (warn)

Request bodies are never logged; they carry the voter's national id.

# Request IDs

WithRequestID sets X-Request-ID to a fresh UUID when the caller did not.

# JSON Helpers

	body, err := middleware.JSONBody(req)       // encode a request body
	err := middleware.DecodeJSON(resp, &result) // decode and close
	msg := middleware.StatusMessage(resp)       // {"status": "..."} or status text
*/
package middleware
