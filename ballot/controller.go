// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/ballot-client/auth"
	"github.com/danielhkuo/ballot-client/models"
	"github.com/danielhkuo/ballot-client/notify"
	"github.com/danielhkuo/ballot-client/screening"
	"github.com/danielhkuo/ballot-client/tally"
)

var (
	ErrUnknownCandidate   = errors.New("unknown candidate")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// Submitter sends a ballot to the tallying service
type Submitter interface {
	CountBallot(ctx context.Context, ballot models.CountBallotRequest, requestID string) (string, error)
}

// Directory is the read-only candidate list
type Directory interface {
	Candidates() []models.Candidate
	Lookup(candidateID string) (models.Candidate, bool)
}

// Recorder keeps a record of submission attempts
type Recorder interface {
	Record(ctx context.Context, entry models.JournalEntry) error
}

type Option func(*Controller)

// WithJournal records every attempt that reached the network
func WithJournal(r Recorder) Option {
	return func(c *Controller) { c.journal = r }
}

// WithFingerprinter sets how sensitive values appear in logs and the journal
func WithFingerprinter(f *auth.Fingerprinter) Option {
	return func(c *Controller) { c.fingerprints = f }
}

// WithCommentRedaction redacts personal information from the comment
// that is sent. The draft keeps what the voter typed.
func WithCommentRedaction(enabled bool) Option {
	return func(c *Controller) { c.redactComments = enabled }
}

// Controller owns the voter's draft and drives a submission through
// Editing → Validating → Submitting → Succeeded/Failed → Editing.
type Controller struct {
	submitter      Submitter
	directory      Directory
	notifier       notify.Notifier
	journal        Recorder
	fingerprints   *auth.Fingerprinter
	redactComments bool

	mu        sync.Mutex
	state     State
	draft     Draft
	observers []func(from, to State)
}

func NewController(submitter Submitter, directory Directory, notifier notify.Notifier, opts ...Option) *Controller {
	c := &Controller{
		submitter: submitter,
		directory: directory,
		notifier:  notifier,
		state:     Editing,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fingerprints == nil {
		c.fingerprints = auth.NewFingerprinter("")
	}
	if c.notifier == nil {
		c.notifier = notify.NewLog(nil)
	}
	return c
}

// OnTransition registers fn to be called after every state change
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns a copy of the current draft
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Candidates returns the selectable candidates
func (c *Controller) Candidates() []models.Candidate {
	return c.directory.Candidates()
}

func (c *Controller) UpdateBallotNumber(value string) error {
	return c.edit(func(d *Draft) { d.BallotNumber = value })
}

func (c *Controller) UpdateVoterIdentityToken(value string) error {
	return c.edit(func(d *Draft) { d.VoterIdentityToken = value })
}

func (c *Controller) UpdateComments(value string) error {
	return c.edit(func(d *Draft) { d.Comments = value })
}

// SelectCandidate sets the chosen candidate. Ids that are not on the
// loaded list are refused and leave the draft unchanged.
func (c *Controller) SelectCandidate(candidateID string) error {
	if _, ok := c.directory.Lookup(candidateID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCandidate, candidateID)
	}
	return c.edit(func(d *Draft) {
		d.SelectedCandidateID = candidateID
		d.HasSelection = true
	})
}

func (c *Controller) ClearSelection() error {
	return c.edit(func(d *Draft) {
		d.SelectedCandidateID = ""
		d.HasSelection = false
	})
}

// Reset discards the draft
func (c *Controller) Reset() error {
	return c.edit(func(d *Draft) { *d = Draft{} })
}

func (c *Controller) edit(fn func(*Draft)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Editing {
		return ErrSubmissionInFlight
	}
	fn(&c.draft)
	return nil
}

// Validate checks the current draft without submitting it
func (c *Controller) Validate() error {
	if verr := validate(c.Draft(), c.directory); verr != nil {
		return verr
	}
	return nil
}

// Submit validates the draft and, if it is complete, sends it to the
// tallying service. The draft is cleared only when the ballot is counted.
//
// Returned errors: *ValidationError (nothing sent), *tally.SubmissionRejected,
// *tally.NetworkError, or ErrSubmissionInFlight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Editing {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	draft := c.draft
	c.state = Validating
	observers := c.observersLocked()
	c.mu.Unlock()

	c.fire(observers, Editing, Validating)

	if verr := validate(draft, c.directory); verr != nil {
		slog.Info("ballot validation failed", "field", verr.Field, "reason", verr.Reason)
		c.transition(Editing)
		c.emit(models.SeverityWarning, verr.Message)
		return verr
	}

	comments := c.screenComments(draft)
	requestID := auth.NewRequestID()
	ballotFP := c.fingerprints.Of(draft.BallotNumber)

	c.transition(Submitting)

	slog.Info("submitting ballot",
		"request_id", requestID,
		"ballot", ballotFP,
		"voter", c.fingerprints.Of(draft.VoterIdentityToken),
		"candidate_id", draft.SelectedCandidateID,
	)

	serverMsg, err := c.submitter.CountBallot(ctx, models.CountBallotRequest{
		VoterNationalID:   draft.VoterIdentityToken,
		BallotNumber:      draft.BallotNumber,
		ChosenCandidateID: draft.SelectedCandidateID,
		VoterComments:     comments,
	}, requestID)

	entry := models.JournalEntry{
		RequestID:         requestID,
		BallotFingerprint: ballotFP,
		CandidateID:       draft.SelectedCandidateID,
	}

	if err != nil {
		var rejected *tally.SubmissionRejected
		var userMsg string
		if errors.As(err, &rejected) {
			entry.Outcome = models.OutcomeRejected
			entry.Message = rejected.Status
			userMsg = models.MsgCastErrorPrefix + rejected.Status
			slog.Warn("ballot rejected", "request_id", requestID, "status_code", rejected.StatusCode, "status", rejected.Status)
		} else {
			var netErr *tally.NetworkError
			if !errors.As(err, &netErr) {
				err = &tally.NetworkError{Op: tally.OpCountBallot, Err: err}
			}
			entry.Outcome = models.OutcomeError
			entry.Message = err.Error()
			userMsg = models.MsgCastErrorPrefix + "could not reach the tallying service, please try again"
			slog.Error("ballot submission failed", "request_id", requestID, "error", err)
		}

		c.record(ctx, entry)
		c.transition(Failed)
		c.transition(Editing)
		c.emit(models.SeverityError, userMsg)
		return err
	}

	entry.Outcome = models.OutcomeCounted
	entry.Message = serverMsg
	c.record(ctx, entry)

	slog.Info("ballot counted", "request_id", requestID, "ballot", ballotFP)

	c.transitionWith(Succeeded, func(d *Draft) { *d = Draft{} })
	c.transition(Editing)
	c.emit(models.SeveritySuccess, models.MsgBallotCounted)
	return nil
}

// screenComments warns about personal information in the comment and
// returns the text to send
func (c *Controller) screenComments(d Draft) string {
	if strings.TrimSpace(d.Comments) == "" {
		return d.Comments
	}

	own := screening.Literal{Kind: screening.KindNationalID, Value: d.VoterIdentityToken}
	findings := screening.Scan(d.Comments, own)
	if len(findings) == 0 {
		return d.Comments
	}

	kinds := screening.Kinds(findings)
	slog.Info("personal information in comment", "kinds", kinds, "redacted", c.redactComments)
	c.emit(models.SeverityWarning, fmt.Sprintf(models.MsgCommentPII, strings.Join(kinds, ", ")))

	if c.redactComments {
		return screening.Redact(d.Comments, own)
	}
	return d.Comments
}

func (c *Controller) record(ctx context.Context, entry models.JournalEntry) {
	if c.journal == nil {
		return
	}
	// A cancelled submission is still worth recording
	if err := c.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		slog.Error("failed to record submission attempt", "request_id", entry.RequestID, "error", err)
	}
}

func (c *Controller) emit(severity models.Severity, message string) {
	c.notifier.Emit(models.Notification{Severity: severity, Message: message})
}

func (c *Controller) transition(to State) {
	c.transitionWith(to, nil)
}

// transitionWith changes state, applying mutate to the draft under the same lock
func (c *Controller) transitionWith(to State, mutate func(*Draft)) {
	c.mu.Lock()
	from := c.state
	c.state = to
	if mutate != nil {
		mutate(&c.draft)
	}
	observers := c.observersLocked()
	c.mu.Unlock()

	c.fire(observers, from, to)
}

func (c *Controller) observersLocked() []func(from, to State) {
	return append([]func(from, to State){}, c.observers...)
}

// fire runs observers outside the lock so they may read controller state
func (c *Controller) fire(observers []func(from, to State), from, to State) {
	slog.Debug("controller state changed", "from", from.String(), "to", to.String())
	for _, fn := range observers {
		fn(from, to)
	}
}
