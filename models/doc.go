// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines wire, domain, and notification types for the client.

# Wire Types

Types exchanged with the tallying service:

  - Candidate: name, candidate_id (GET /get_all_candidates)
  - CountBallotRequest: voter_national_id, ballot_number,
    chosen_candidate_id, voter_comments (POST /count_ballot)
  - StatusResponse: status (human-readable outcome or error)

# Notifications

A Notification pairs a Severity with a message:

	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"

The Msg* constants hold the user-facing texts.

# Journal

JournalEntry is a locally recorded submission attempt. Outcomes:

	OutcomeCounted  = "counted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
*/
package models
