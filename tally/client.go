// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-client/cliparse"
	"github.com/danielhkuo/ballot-client/middleware"
	"github.com/danielhkuo/ballot-client/models"
)

// Operation names used in errors and logs
const (
	OpGetAllCandidates = "get_all_candidates"
	OpCountBallot      = "count_ballot"
)

// NetworkError means the service could not be reached or answered with
// something the client could not understand.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SubmissionRejected means the service answered count_ballot with a
// non-success status. Status is the server's message, shown verbatim.
type SubmissionRejected struct {
	StatusCode int
	Status     string
}

func (e *SubmissionRejected) Error() string {
	return fmt.Sprintf("ballot rejected (%d): %s", e.StatusCode, e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg cliparse.Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Transport: middleware.Chain(http.DefaultTransport,
				middleware.WithRequestID,
				middleware.WithLogging,
			),
			Timeout: cfg.Timeout,
		},
	}
}

// GetAllCandidates handles GET /get_all_candidates
func (c *Client) GetAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+models.PathGetAllCandidates, nil)
	if err != nil {
		return nil, &NetworkError{Op: OpGetAllCandidates, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: OpGetAllCandidates, Err: err}
	}

	if !middleware.IsSuccess(resp.StatusCode) {
		msg := middleware.StatusMessage(resp)
		return nil, &NetworkError{
			Op:  OpGetAllCandidates,
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg),
		}
	}

	var candidates []models.Candidate
	if err := middleware.DecodeJSON(resp, &candidates); err != nil {
		return nil, &NetworkError{Op: OpGetAllCandidates, Err: fmt.Errorf("malformed candidate list: %w", err)}
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}

	slog.Debug("candidates fetched", "count", len(candidates))
	return candidates, nil
}

// CountBallot handles POST /count_ballot. On success it returns the
// server's status message, which may be empty.
func (c *Client) CountBallot(ctx context.Context, ballot models.CountBallotRequest, requestID string) (string, error) {
	body, err := middleware.JSONBody(ballot)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+models.PathCountBallot, body)
	if err != nil {
		return "", &NetworkError{Op: OpCountBallot, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &NetworkError{Op: OpCountBallot, Err: err}
	}

	if !middleware.IsSuccess(resp.StatusCode) {
		return "", &SubmissionRejected{
			StatusCode: resp.StatusCode,
			Status:     middleware.StatusMessage(resp),
		}
	}

	// The accepted body is informational; a missing or odd body is fine
	var status models.StatusResponse
	if err := middleware.DecodeJSON(resp, &status); err != nil && err != io.EOF {
		slog.Debug("ignoring unparseable success body", "error", err)
	}
	return status.Status, nil
}
