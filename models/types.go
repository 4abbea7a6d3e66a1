package models

import "time"

// Service endpoints, relative to the configured base URL
const (
	PathGetAllCandidates = "/get_all_candidates"
	PathCountBallot      = "/count_ballot"
)

// Notification severities
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Journal outcomes
const (
	OutcomeCounted  = "counted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// User-facing messages
const (
	MsgMissingBallotNumber = "Please specify a ballot number"
	MsgMissingVoterID      = "Please specify your National ID"
	MsgNoCandidate         = "Please select a candidate"
	MsgUnknownCandidate    = "The selected candidate is no longer on the ballot, please choose again"
	MsgCastErrorPrefix     = "Error casting ballot: "
	MsgBallotCounted       = "Congratulations! Your vote has been successfully counted! " +
		"If you want to deregister from voting, please contact the voter registrar."
	MsgCommentPII = "Your comment looks like it contains personal information (%s). " +
		"Please remove your name, email address or phone number to protect your secrecy."
)

// Domain types

type Candidate struct {
	Name        string `json:"name"`
	CandidateID string `json:"candidate_id"`
}

// Request types

type CountBallotRequest struct {
	VoterNationalID   string `json:"voter_national_id"`
	BallotNumber      string `json:"ballot_number"`
	ChosenCandidateID string `json:"chosen_candidate_id"`
	VoterComments     string `json:"voter_comments"`
}

// Response types

// StatusResponse is the body the tallying service sends with both
// accepted and rejected ballots
type StatusResponse struct {
	Status string `json:"status"`
}

// Notifications

type Severity string

type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Journal

// JournalEntry is one submission attempt as recorded locally.
// It never carries the voter's national id or comments.
type JournalEntry struct {
	ID                string    `json:"id"`
	RequestID         string    `json:"request_id"`
	BallotFingerprint string    `json:"ballot_fingerprint"`
	CandidateID       string    `json:"candidate_id"`
	Outcome           string    `json:"outcome"`
	Message           string    `json:"message"`
	AttemptedAt       time.Time `json:"attempted_at"`
}
