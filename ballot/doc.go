// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot contains the submission controller: the voter's draft and
the state machine that validates, sends, and settles it.

# States

	Editing → Validating → Submitting → Succeeded → Editing (draft cleared)
	                                  ↘ Failed    → Editing (draft kept)
	          Validating → Editing (validation failed, nothing sent)

Draft edits are accepted only in Editing; while a submission is in flight
they, and a second Submit, return ErrSubmissionInFlight.

# Validation

Submit checks the draft in this order and stops at the first failure:

 1. ballot number present   → "missing ballot number"
 2. voter id present        → "missing voter id"
 3. candidate selected      → "no candidate selected"
 4. candidate still listed  → "unknown candidate"

A failure emits a warning notification and returns *ValidationError.

# Outcomes

  - counted: success notification, draft reset
  - *tally.SubmissionRejected: error notification with the server's status
    text, draft unchanged so the voter can correct and resubmit
  - *tally.NetworkError: error notification, draft unchanged

There is no automatic retry.

# Comments

Comments are screened for personal information (package screening). A hit
emits a warning; with WithCommentRedaction(true) the outgoing comment is
redacted while the draft keeps the original text.

# Usage

	ctrl := ballot.NewController(tallyClient, loader, sink,
		ballot.WithJournal(j),
		ballot.WithFingerprinter(auth.NewFingerprinter(cfg.FingerprintSalt)),
	)
	ctrl.UpdateBallotNumber("B-0001")
	ctrl.UpdateVoterIdentityToken(nationalID)
	if err := ctrl.SelectCandidate("2"); err != nil { ... }
	err := ctrl.Submit(ctx)
*/
package ballot
