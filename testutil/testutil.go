// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/ballot-client/cliparse"
	"github.com/danielhkuo/ballot-client/models"
)

// FakeTally is an in-process stand-in for the tallying service.
// It serves the candidate list and records every count_ballot request.
type FakeTally struct {
	Server *httptest.Server

	mu             sync.Mutex
	candidates     interface{}
	candidatesCode int
	countCode      int
	countBody      string
	candidateHits  int
	ballots        []models.CountBallotRequest
	requestIDs     []string
}

// NewFakeTally starts a fake service that lists the given candidates and
// accepts every ballot. The server is closed when the test ends.
func NewFakeTally(t *testing.T, candidates ...models.Candidate) *FakeTally {
	t.Helper()

	if candidates == nil {
		candidates = []models.Candidate{}
	}
	f := &FakeTally{
		candidates:     candidates,
		candidatesCode: http.StatusOK,
		countCode:      http.StatusOK,
		countBody:      `{"status": "ballot counted"}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api"+models.PathGetAllCandidates, f.getAllCandidates)
	mux.HandleFunc("POST /api"+models.PathCountBallot, f.countBallot)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL returns the URL to configure the client with
func (f *FakeTally) BaseURL() string {
	return f.Server.URL + "/api"
}

// SetCandidatesResponse replaces the candidate response. body may be any
// JSON-encodable value or a raw string written verbatim.
func (f *FakeTally) SetCandidatesResponse(statusCode int, body interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.candidatesCode = statusCode
	f.candidates = body
}

// SetCountResponse replaces the count_ballot status and raw body
func (f *FakeTally) SetCountResponse(statusCode int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCode = statusCode
	f.countBody = body
}

// CandidateHits returns how many times the candidate list was requested
func (f *FakeTally) CandidateHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.candidateHits
}

// Ballots returns the decoded count_ballot requests received so far
func (f *FakeTally) Ballots() []models.CountBallotRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CountBallotRequest(nil), f.ballots...)
}

// RequestIDs returns the X-Request-ID headers of count_ballot requests
func (f *FakeTally) RequestIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requestIDs...)
}

func (f *FakeTally) getAllCandidates(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.candidateHits++
	code, body := f.candidatesCode, f.candidates
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if raw, ok := body.(string); ok {
		w.Write([]byte(raw))
		return
	}
	json.NewEncoder(w).Encode(body)
}

func (f *FakeTally) countBallot(w http.ResponseWriter, r *http.Request) {
	var req models.CountBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": "malformed request"}`))
		return
	}

	f.mu.Lock()
	f.ballots = append(f.ballots, req)
	f.requestIDs = append(f.requestIDs, r.Header.Get("X-Request-ID"))
	code, body := f.countCode, f.countBody
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(body))
}

// DefaultCandidates is the two-candidate list used across tests
func DefaultCandidates() []models.Candidate {
	return []models.Candidate{
		{Name: "Alice", CandidateID: "1"},
		{Name: "Bob", CandidateID: "2"},
	}
}

// GetTestConfig returns a standard test configuration pointed at baseURL
func GetTestConfig(baseURL string) cliparse.Config {
	return cliparse.Config{
		BaseURL:         baseURL,
		JournalType:     "sqlite",
		FingerprintSalt: "test-fingerprint-salt",
		NoColor:         true,
		LogLevel:        "error",
	}
}
