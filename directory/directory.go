// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/danielhkuo/ballot-client/models"
	"github.com/danielhkuo/ballot-client/tally"
)

// Fetcher retrieves the current candidate list from the registry
type Fetcher interface {
	GetAllCandidates(ctx context.Context) ([]models.Candidate, error)
}

// Loader fetches the candidate list once and serves it read-only afterwards
type Loader struct {
	fetcher Fetcher

	once       sync.Once
	mu         sync.RWMutex
	loaded     bool
	candidates []models.Candidate
	byID       map[string]models.Candidate
	err        error
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches the candidate list on first call. Later calls return the
// same result, including a failure, without contacting the registry.
// On failure the list is empty and the error is a *tally.NetworkError.
func (l *Loader) Load(ctx context.Context) ([]models.Candidate, error) {
	l.once.Do(func() {
		candidates, err := l.fetcher.GetAllCandidates(ctx)
		if err != nil {
			var netErr *tally.NetworkError
			if !errors.As(err, &netErr) {
				err = &tally.NetworkError{Op: tally.OpGetAllCandidates, Err: err}
			}
			slog.Warn("failed to load candidates", "error", err)
			candidates = nil
		}
		l.store(candidates, err)
	})
	return l.Candidates(), l.Err()
}

func (l *Loader) store(candidates []models.Candidate, err error) {
	byID := make(map[string]models.Candidate, len(candidates))
	kept := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := byID[c.CandidateID]; dup {
			slog.Warn("duplicate candidate id in registry response", "candidate_id", c.CandidateID)
			continue
		}
		byID[c.CandidateID] = c
		kept = append(kept, c)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = true
	l.candidates = kept
	l.byID = byID
	l.err = err

	if err == nil {
		slog.Info("candidates loaded", "count", len(kept))
	}
}

// Loaded reports whether Load has completed, successfully or not
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Candidates returns a copy of the loaded list (empty before Load or after a failure)
func (l *Loader) Candidates() []models.Candidate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Candidate{}, l.candidates...)
}

// Err returns the load failure, if any
func (l *Loader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Lookup finds a loaded candidate by ID
func (l *Loader) Lookup(candidateID string) (models.Candidate, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.byID[candidateID]
	return c, ok
}
