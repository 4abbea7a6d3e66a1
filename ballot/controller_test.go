// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/ballot-client/auth"
	"github.com/danielhkuo/ballot-client/directory"
	"github.com/danielhkuo/ballot-client/models"
	"github.com/danielhkuo/ballot-client/notify"
	"github.com/danielhkuo/ballot-client/tally"
	"github.com/danielhkuo/ballot-client/testutil"
)

type fixture struct {
	ctrl  *Controller
	fake  *testutil.FakeTally
	queue *notify.Queue
}

func setupController(t *testing.T, opts ...Option) fixture {
	t.Helper()

	fake := testutil.NewFakeTally(t, testutil.DefaultCandidates()...)
	client := tally.NewClient(testutil.GetTestConfig(fake.BaseURL()))
	loader := directory.NewLoader(client)
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load candidates: %v", err)
	}

	queue := notify.NewQueue()
	return fixture{
		ctrl:  NewController(client, loader, queue, opts...),
		fake:  fake,
		queue: queue,
	}
}

func fillDraft(t *testing.T, c *Controller, ballotNumber, voterID, candidateID, comments string) {
	t.Helper()
	if err := c.UpdateBallotNumber(ballotNumber); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateVoterIdentityToken(voterID); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateComments(comments); err != nil {
		t.Fatal(err)
	}
	if candidateID != "" {
		if err := c.SelectCandidate(candidateID); err != nil {
			t.Fatal(err)
		}
	}
}

// recorder is an in-memory Recorder
type recorder struct {
	mu      sync.Mutex
	entries []models.JournalEntry
	err     error
}

func (r *recorder) Record(ctx context.Context, e models.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name        string
		ballot      string
		voterID     string
		candidateID string
		wantReason  string
		wantField   string
		wantMessage string
	}{
		{"missing ballot number", "", "123-45-6789", "1", "missing ballot number", FieldBallotNumber, models.MsgMissingBallotNumber},
		{"missing ballot number, no candidate", "", "123-45-6789", "", "missing ballot number", FieldBallotNumber, models.MsgMissingBallotNumber},
		{"missing ballot number and voter id", "", "", "2", "missing ballot number", FieldBallotNumber, models.MsgMissingBallotNumber},
		{"everything missing", "", "", "", "missing ballot number", FieldBallotNumber, models.MsgMissingBallotNumber},
		{"missing voter id", "B-0001", "", "1", "missing voter id", FieldVoterID, models.MsgMissingVoterID},
		{"missing voter id and candidate", "B-0001", "", "", "missing voter id", FieldVoterID, models.MsgMissingVoterID},
		{"no candidate selected", "B-0001", "123-45-6789", "", "no candidate selected", FieldCandidate, models.MsgNoCandidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupController(t)
			fillDraft(t, fx.ctrl, tt.ballot, tt.voterID, tt.candidateID, "a comment")
			before := fx.ctrl.Draft()

			err := fx.ctrl.Submit(context.Background())

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %v", err)
			}
			if verr.Reason != tt.wantReason || err.Error() != tt.wantReason {
				t.Errorf("Expected reason %q, got %q", tt.wantReason, verr.Reason)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, verr.Field)
			}

			if n := len(fx.fake.Ballots()); n != 0 {
				t.Errorf("Expected no network request, got %d", n)
			}
			if fx.ctrl.State() != Editing {
				t.Errorf("Expected Editing, got %s", fx.ctrl.State())
			}
			if fx.ctrl.Draft() != before {
				t.Error("Draft changed after validation failure")
			}

			notes := fx.queue.All()
			if len(notes) != 1 {
				t.Fatalf("Expected exactly 1 notification, got %d: %+v", len(notes), notes)
			}
			if notes[0].Severity != models.SeverityWarning {
				t.Errorf("Expected warning, got %s", notes[0].Severity)
			}
			if notes[0].Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, notes[0].Message)
			}
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	rec := &recorder{}
	fx := setupController(t, WithJournal(rec), WithFingerprinter(auth.NewFingerprinter("salt")))
	fillDraft(t, fx.ctrl, "B-0001", "123-45-6789", "2", "Thanks for organising this")

	if err := fx.ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// Request body carries all four fields
	ballots := fx.fake.Ballots()
	if len(ballots) != 1 {
		t.Fatalf("Expected 1 ballot, got %d", len(ballots))
	}
	want := models.CountBallotRequest{
		VoterNationalID:   "123-45-6789",
		BallotNumber:      "B-0001",
		ChosenCandidateID: "2",
		VoterComments:     "Thanks for organising this",
	}
	if ballots[0] != want {
		t.Errorf("Server received %+v, want %+v", ballots[0], want)
	}

	// Draft reset to empty, selection absent
	d := fx.ctrl.Draft()
	if !d.IsEmpty() {
		t.Errorf("Expected empty draft, got %+v", d)
	}
	if _, ok := d.Selected(); ok {
		t.Error("Expected no selection after success")
	}
	if fx.ctrl.State() != Editing {
		t.Errorf("Expected Editing, got %s", fx.ctrl.State())
	}

	notes := fx.queue.All()
	if len(notes) != 1 {
		t.Fatalf("Expected 1 notification, got %+v", notes)
	}
	if notes[0].Severity != models.SeveritySuccess {
		t.Errorf("Expected success severity, got %s", notes[0].Severity)
	}
	if !strings.Contains(notes[0].Message, "Congratulations") || !strings.Contains(notes[0].Message, "deregister") {
		t.Errorf("Unexpected success message %q", notes[0].Message)
	}

	// Journal entry: fingerprinted ballot, no voter id
	if len(rec.entries) != 1 {
		t.Fatalf("Expected 1 journal entry, got %d", len(rec.entries))
	}
	e := rec.entries[0]
	if e.Outcome != models.OutcomeCounted || e.CandidateID != "2" {
		t.Errorf("Unexpected journal entry %+v", e)
	}
	if e.BallotFingerprint != auth.Fingerprint("B-0001", "salt") {
		t.Errorf("Expected fingerprinted ballot number, got %q", e.BallotFingerprint)
	}
	if e.RequestID == "" || e.RequestID != fx.fake.RequestIDs()[0] {
		t.Errorf("Journal request ID %q should match the header sent", e.RequestID)
	}
	for _, field := range []string{e.ID, e.RequestID, e.BallotFingerprint, e.CandidateID, e.Message} {
		if strings.Contains(field, "123-45-6789") || strings.Contains(field, "B-0001") {
			t.Errorf("Journal entry leaks sensitive data: %+v", e)
		}
	}
}

func TestSubmit_EmptyCommentsSent(t *testing.T) {
	fx := setupController(t)
	fillDraft(t, fx.ctrl, "B-7", "987654321", "1", "")

	if err := fx.ctrl.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := fx.fake.Ballots()[0].VoterComments; got != "" {
		t.Errorf("Expected empty comments, got %q", got)
	}
}

func TestSubmit_RejectedDuplicateVote(t *testing.T) {
	rec := &recorder{}
	fx := setupController(t, WithJournal(rec))
	fx.fake.SetCountResponse(http.StatusConflict, `{ "status": "duplicate vote" }`)
	fillDraft(t, fx.ctrl, "B-0001", "123-45-6789", "1", "second try")
	before := fx.ctrl.Draft()

	err := fx.ctrl.Submit(context.Background())

	var rejected *tally.SubmissionRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("Expected *tally.SubmissionRejected, got %v", err)
	}
	if rejected.Status != "duplicate vote" {
		t.Errorf("Expected status 'duplicate vote', got %q", rejected.Status)
	}

	if fx.ctrl.Draft() != before {
		t.Errorf("Draft changed after rejection: %+v, want %+v", fx.ctrl.Draft(), before)
	}
	if fx.ctrl.State() != Editing {
		t.Errorf("Expected Editing, got %s", fx.ctrl.State())
	}

	last, ok := fx.queue.Last()
	if !ok {
		t.Fatal("Expected a notification")
	}
	if last.Severity != models.SeverityError {
		t.Errorf("Expected error severity, got %s", last.Severity)
	}
	if !strings.Contains(last.Message, "duplicate vote") {
		t.Errorf("Expected server message in notification, got %q", last.Message)
	}
	if last.Message != models.MsgCastErrorPrefix+"duplicate vote" {
		t.Errorf("Unexpected notification text %q", last.Message)
	}

	if len(rec.entries) != 1 || rec.entries[0].Outcome != models.OutcomeRejected || rec.entries[0].Message != "duplicate vote" {
		t.Errorf("Unexpected journal entries %+v", rec.entries)
	}
}

func TestSubmit_RejectedThenCorrected(t *testing.T) {
	fx := setupController(t)
	fx.fake.SetCountResponse(http.StatusBadRequest, `{"status": "the ballot doesn't belong to the voter specified"}`)
	fillDraft(t, fx.ctrl, "B-WRONG", "123-45-6789", "1", "")

	if err := fx.ctrl.Submit(context.Background()); err == nil {
		t.Fatal("Expected rejection")
	}

	// Voter fixes only the ballot number and resubmits
	fx.fake.SetCountResponse(http.StatusOK, `{"status": "ballot counted"}`)
	if err := fx.ctrl.UpdateBallotNumber("B-RIGHT"); err != nil {
		t.Fatal(err)
	}
	if err := fx.ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("Resubmit failed: %v", err)
	}

	ballots := fx.fake.Ballots()
	if len(ballots) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(ballots))
	}
	if ballots[1].BallotNumber != "B-RIGHT" || ballots[1].VoterNationalID != "123-45-6789" || ballots[1].ChosenCandidateID != "1" {
		t.Errorf("Resubmission should keep the untouched fields: %+v", ballots[1])
	}
	if !fx.ctrl.Draft().IsEmpty() {
		t.Error("Draft should be reset after the successful resubmission")
	}
}

func TestSubmit_NetworkError(t *testing.T) {
	rec := &recorder{}
	fx := setupController(t, WithJournal(rec))
	fillDraft(t, fx.ctrl, "B-0001", "123-45-6789", "1", "")
	before := fx.ctrl.Draft()
	fx.fake.Server.Close()

	err := fx.ctrl.Submit(context.Background())

	var netErr *tally.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Expected *tally.NetworkError, got %v", err)
	}
	if fx.ctrl.Draft() != before {
		t.Error("Draft changed after network failure")
	}
	if fx.ctrl.State() != Editing {
		t.Errorf("Expected Editing, got %s", fx.ctrl.State())
	}
	last, _ := fx.queue.Last()
	if last.Severity != models.SeverityError || !strings.HasPrefix(last.Message, models.MsgCastErrorPrefix) {
		t.Errorf("Unexpected notification %+v", last)
	}
	if len(rec.entries) != 1 || rec.entries[0].Outcome != models.OutcomeError {
		t.Errorf("Expected an error journal entry, got %+v", rec.entries)
	}
}

func TestSubmit_ResubmitAfterSuccess(t *testing.T) {
	fx := setupController(t)

	for i := 0; i < 2; i++ {
		fillDraft(t, fx.ctrl, "B-0001", "123-45-6789", "1", "")
		if err := fx.ctrl.Submit(context.Background()); err != nil {
			t.Fatalf("Submit #%d failed: %v", i+1, err)
		}
	}

	ballots := fx.fake.Ballots()
	if len(ballots) != 2 || ballots[0] != ballots[1] {
		t.Errorf("Expected two identical submissions, got %+v", ballots)
	}
}

func TestSelectCandidate(t *testing.T) {
	fx := setupController(t)

	for _, id := range []string{"1", "2"} {
		if err := fx.ctrl.SelectCandidate(id); err != nil {
			t.Errorf("SelectCandidate(%q) error = %v", id, err)
		}
		if got, ok := fx.ctrl.Draft().Selected(); !ok || got != id {
			t.Errorf("Expected selection %q, got %q (%v)", id, got, ok)
		}
	}

	for _, id := range []string{"3", "", "Alice", " 1"} {
		err := fx.ctrl.SelectCandidate(id)
		if !errors.Is(err, ErrUnknownCandidate) {
			t.Errorf("SelectCandidate(%q) = %v, want ErrUnknownCandidate", id, err)
		}
		if got, _ := fx.ctrl.Draft().Selected(); got != "2" {
			t.Errorf("Rejected selection %q changed the draft to %q", id, got)
		}
	}

	if err := fx.ctrl.ClearSelection(); err != nil {
		t.Fatal(err)
	}
	if _, ok := fx.ctrl.Draft().Selected(); ok {
		t.Error("Expected no selection after ClearSelection")
	}
}

// mutableDirectory lets a test remove a candidate after selection
type mutableDirectory struct {
	mu   sync.Mutex
	byID map[string]models.Candidate
}

func (m *mutableDirectory) Candidates() []models.Candidate {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Candidate
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out
}

func (m *mutableDirectory) Lookup(id string) (models.Candidate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	return c, ok
}

func TestSubmit_StaleSelection(t *testing.T) {
	fake := testutil.NewFakeTally(t)
	dir := &mutableDirectory{byID: map[string]models.Candidate{
		"1": {Name: "Alice", CandidateID: "1"},
		"2": {Name: "Bob", CandidateID: "2"},
	}}
	queue := notify.NewQueue()
	ctrl := NewController(tally.NewClient(testutil.GetTestConfig(fake.BaseURL())), dir, queue)
	fillDraft(t, ctrl, "B-1", "111223333", "2", "")

	dir.mu.Lock()
	delete(dir.byID, "2")
	dir.mu.Unlock()

	err := ctrl.Submit(context.Background())

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != "unknown candidate" {
		t.Fatalf("Expected unknown candidate validation error, got %v", err)
	}
	if len(fake.Ballots()) != 0 {
		t.Error("Stale selection must not reach the network")
	}
	if ctrl.Validate() == nil {
		t.Error("Validate() should report the stale selection too")
	}
	if last, _ := queue.Last(); last.Message != models.MsgUnknownCandidate {
		t.Errorf("Unexpected notification %q", last.Message)
	}
}

func TestValidate(t *testing.T) {
	fx := setupController(t)

	if err := fx.ctrl.Validate(); err == nil || err.Error() != "missing ballot number" {
		t.Errorf("Expected missing ballot number, got %v", err)
	}

	fillDraft(t, fx.ctrl, "B-1", "111223333", "1", "")
	if err := fx.ctrl.Validate(); err != nil {
		t.Errorf("Expected complete draft to validate, got %v", err)
	}
	if fx.queue.Len() != 0 {
		t.Error("Validate() must not emit notifications")
	}
}

func TestSubmit_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(fx fixture)
		complete  bool
		wantSteps string
	}{
		{
			name:      "validation failure",
			complete:  false,
			wantSteps: "editing>validating,validating>editing",
		},
		{
			name:      "success",
			complete:  true,
			wantSteps: "editing>validating,validating>submitting,submitting>succeeded,succeeded>editing",
		},
		{
			name: "rejection",
			setup: func(fx fixture) {
				fx.fake.SetCountResponse(http.StatusConflict, `{"status": "duplicate vote"}`)
			},
			complete:  true,
			wantSteps: "editing>validating,validating>submitting,submitting>failed,failed>editing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupController(t)
			if tt.setup != nil {
				tt.setup(fx)
			}
			if tt.complete {
				fillDraft(t, fx.ctrl, "B-1", "111223333", "1", "")
			}

			var steps []string
			fx.ctrl.OnTransition(func(from, to State) {
				// Observers may read state without deadlocking
				if fx.ctrl.State() != to {
					t.Errorf("State() = %s inside observer, want %s", fx.ctrl.State(), to)
				}
				steps = append(steps, from.String()+">"+to.String())
			})

			fx.ctrl.Submit(context.Background())

			if got := strings.Join(steps, ","); got != tt.wantSteps {
				t.Errorf("Transitions = %s, want %s", got, tt.wantSteps)
			}
		})
	}
}

// blockingSubmitter holds CountBallot until released
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingSubmitter) CountBallot(ctx context.Context, req models.CountBallotRequest, requestID string) (string, error) {
	close(b.started)
	<-b.release
	return "ballot counted", nil
}

func TestSubmit_InFlight(t *testing.T) {
	dir := directory.NewLoader(&staticFetcher{candidates: testutil.DefaultCandidates()})
	dir.Load(context.Background())
	sub := &blockingSubmitter{started: make(chan struct{}), release: make(chan struct{})}
	queue := notify.NewQueue()
	ctrl := NewController(sub, dir, queue)
	fillDraft(t, ctrl, "B-1", "111223333", "1", "")

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background()) }()
	<-sub.started

	if ctrl.State() != Submitting {
		t.Errorf("Expected Submitting, got %s", ctrl.State())
	}
	if err := ctrl.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Second Submit = %v, want ErrSubmissionInFlight", err)
	}
	if err := ctrl.UpdateComments("changed my mind"); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Edit during submission = %v, want ErrSubmissionInFlight", err)
	}
	if err := ctrl.SelectCandidate("2"); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Select during submission = %v, want ErrSubmissionInFlight", err)
	}

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("First Submit failed: %v", err)
	}
	if ctrl.State() != Editing || !ctrl.Draft().IsEmpty() {
		t.Error("Expected reset draft in Editing after success")
	}
	if queue.Len() != 1 {
		t.Errorf("Expected only the success notification, got %+v", queue.All())
	}
}

type staticFetcher struct {
	candidates []models.Candidate
}

func (s *staticFetcher) GetAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	return s.candidates, nil
}

func TestSubmit_CommentScreening(t *testing.T) {
	tests := []struct {
		name         string
		redact       bool
		comments     string
		wantWarning  bool
		wantSent     string
		wantKindHint string
	}{
		{
			name:     "clean comment",
			comments: "More bike lanes please",
			wantSent: "More bike lanes please",
		},
		{
			name:         "email, not redacted",
			comments:     "reach me at voter@example.org",
			wantWarning:  true,
			wantSent:     "reach me at voter@example.org",
			wantKindHint: "email address",
		},
		{
			name:         "email, redacted",
			redact:       true,
			comments:     "reach me at voter@example.org",
			wantWarning:  true,
			wantSent:     "reach me at [REDACTED EMAIL]",
			wantKindHint: "email address",
		},
		{
			name:         "own voter id, redacted",
			redact:       true,
			comments:     "my id is AB12CD",
			wantWarning:  true,
			wantSent:     "my id is [REDACTED NATIONAL ID]",
			wantKindHint: "national id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupController(t, WithCommentRedaction(tt.redact))
			fillDraft(t, fx.ctrl, "B-1", "AB12CD", "1", tt.comments)

			if err := fx.ctrl.Submit(context.Background()); err != nil {
				t.Fatal(err)
			}

			if got := fx.fake.Ballots()[0].VoterComments; got != tt.wantSent {
				t.Errorf("Sent comments %q, want %q", got, tt.wantSent)
			}

			notes := fx.queue.All()
			var warnings []models.Notification
			for _, n := range notes {
				if n.Severity == models.SeverityWarning {
					warnings = append(warnings, n)
				}
			}
			if tt.wantWarning {
				if len(warnings) != 1 {
					t.Fatalf("Expected 1 PII warning, got %+v", notes)
				}
				if !strings.Contains(warnings[0].Message, tt.wantKindHint) {
					t.Errorf("Warning %q should mention %q", warnings[0].Message, tt.wantKindHint)
				}
			} else if len(warnings) != 0 {
				t.Errorf("Unexpected warnings %+v", warnings)
			}

			if last := notes[len(notes)-1]; last.Severity != models.SeveritySuccess {
				t.Errorf("Expected success last, got %+v", last)
			}
		})
	}
}

func TestSubmit_VoterIDOnlyInsideWords(t *testing.T) {
	tests := []struct {
		name     string
		voterID  string
		comments string
	}{
		{"single letter id", "a", "I am a happy voter"},
		{"id inside longer token", "AB12CD", "ref XAB12CDY and AB12CDE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupController(t, WithCommentRedaction(true))
			fillDraft(t, fx.ctrl, "B-1", tt.voterID, "1", tt.comments)

			if err := fx.ctrl.Submit(context.Background()); err != nil {
				t.Fatal(err)
			}

			if got := fx.fake.Ballots()[0].VoterComments; got != tt.comments {
				t.Errorf("Sent comments %q, want them unchanged", got)
			}
			for _, n := range fx.queue.All() {
				if n.Severity == models.SeverityWarning {
					t.Errorf("Unexpected warning %q", n.Message)
				}
			}
		})
	}
}

func TestSubmit_RedactionKeepsDraftOnFailure(t *testing.T) {
	fx := setupController(t, WithCommentRedaction(true))
	fx.fake.SetCountResponse(http.StatusInternalServerError, `{"status": "try later"}`)
	fillDraft(t, fx.ctrl, "B-1", "111223333", "1", "call (555) 123-4567")

	fx.ctrl.Submit(context.Background())

	if got := fx.ctrl.Draft().Comments; got != "call (555) 123-4567" {
		t.Errorf("Draft comments should be untouched, got %q", got)
	}
}

func TestSubmit_JournalFailureNotSurfaced(t *testing.T) {
	fx := setupController(t, WithJournal(&recorder{err: errors.New("disk full")}))
	fillDraft(t, fx.ctrl, "B-1", "111223333", "1", "")

	if err := fx.ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("Journal failure should not fail the submission: %v", err)
	}
	for _, n := range fx.queue.All() {
		if n.Severity == models.SeverityError {
			t.Errorf("Journal failure surfaced to voter: %+v", n)
		}
	}
}

func TestReset(t *testing.T) {
	fx := setupController(t)
	fillDraft(t, fx.ctrl, "B-1", "111223333", "1", "hello")

	if err := fx.ctrl.Reset(); err != nil {
		t.Fatal(err)
	}
	if !fx.ctrl.Draft().IsEmpty() {
		t.Errorf("Expected empty draft, got %+v", fx.ctrl.Draft())
	}
}

func TestCandidates(t *testing.T) {
	fx := setupController(t)

	got := fx.ctrl.Candidates()
	if len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Errorf("Unexpected candidates %+v", got)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Editing: "editing", Validating: "validating", Submitting: "submitting",
		Succeeded: "succeeded", Failed: "failed", State(42): "unknown",
	} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
