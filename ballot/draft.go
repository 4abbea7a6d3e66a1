// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "github.com/danielhkuo/ballot-client/models"

type State int

const (
	Editing State = iota
	Validating
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Draft is the voter's in-progress ballot. The zero value is the empty draft.
type Draft struct {
	BallotNumber        string
	VoterIdentityToken  string
	Comments            string
	SelectedCandidateID string
	HasSelection        bool
}

// Selected returns the chosen candidate id, if any
func (d Draft) Selected() (string, bool) {
	return d.SelectedCandidateID, d.HasSelection
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Validation fields
const (
	FieldBallotNumber = "ballot_number"
	FieldVoterID      = "voter_national_id"
	FieldCandidate    = "chosen_candidate_id"
)

// ValidationError is a missing or invalid field found before anything is sent
type ValidationError struct {
	Field   string
	Reason  string // short, for logs and errors
	Message string // shown to the voter
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// validate checks the draft in a fixed order and stops at the first problem
func validate(d Draft, dir Directory) *ValidationError {
	if d.BallotNumber == "" {
		return &ValidationError{Field: FieldBallotNumber, Reason: "missing ballot number", Message: models.MsgMissingBallotNumber}
	}
	if d.VoterIdentityToken == "" {
		return &ValidationError{Field: FieldVoterID, Reason: "missing voter id", Message: models.MsgMissingVoterID}
	}
	id, ok := d.Selected()
	if !ok {
		return &ValidationError{Field: FieldCandidate, Reason: "no candidate selected", Message: models.MsgNoCandidate}
	}
	// The list may have changed since the voter chose
	if _, known := dir.Lookup(id); !known {
		return &ValidationError{Field: FieldCandidate, Reason: "unknown candidate", Message: models.MsgUnknownCandidate}
	}
	return nil
}
